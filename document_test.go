package bracken

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument(t *testing.T, src string, opts ...Option) *Document {
	t.Helper()
	doc, err := NewDocument(PHP(), []byte(src), opts...)
	require.NoError(t, err)
	t.Cleanup(doc.Close)
	return doc
}

// offsetOf returns the byte offset just past needle in src, the spot where
// a cursor sits after typing it.
func offsetOf(t *testing.T, src, needle string) uint {
	t.Helper()
	i := strings.Index(src, needle)
	require.GreaterOrEqual(t, i, 0, "needle %q not in source", needle)
	return uint(i + len(needle))
}

func names(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Name
	}
	return out
}

func TestNewDocument(t *testing.T) {
	doc := newTestDocument(t, `<?php $a = 1;`)
	require.NotNil(t, doc.tree)
	assert.Equal(t, "program", doc.tree.RootNode().Kind())
	assert.Equal(t, "php", doc.Language().Name)
}

func TestSetText_ReplacesContent(t *testing.T) {
	src1 := `<?php $first = 1; $fi`
	src2 := `<?php $second = 2; $se`
	doc := newTestDocument(t, src1)

	res := doc.Complete(Request{Offset: offsetOf(t, src1, "; $fi")})
	require.NotNil(t, res)
	assert.Contains(t, names(res.Candidates), "$first")

	require.NoError(t, doc.SetText([]byte(src2)))
	assert.Equal(t, src2, string(doc.Text()))

	res = doc.Complete(Request{Offset: offsetOf(t, src2, "; $se")})
	require.NotNil(t, res)
	assert.Contains(t, names(res.Candidates), "$second")
	assert.NotContains(t, names(res.Candidates), "$first")
}

func TestReplace_IncrementalEdit(t *testing.T) {
	src := `<?php $alpha = 1; $al`
	doc := newTestDocument(t, src)

	// Rename $alpha to $bravo in place.
	start := uint(strings.Index(src, "$alpha"))
	require.NoError(t, doc.Replace(start, start+uint(len("$alpha")), []byte("$bravo")))
	assert.Equal(t, `<?php $bravo = 1; $al`, string(doc.Text()))

	res := doc.Complete(Request{Offset: offsetOf(t, string(doc.Text()), "$al")})
	require.NotNil(t, res)
	assert.Contains(t, names(res.Candidates), "$bravo")
	assert.NotContains(t, names(res.Candidates), "$alpha")
}

func TestReplace_Insert(t *testing.T) {
	src := `<?php $a = 1;`
	doc := newTestDocument(t, src)

	at := uint(len(src))
	require.NoError(t, doc.Replace(at, at, []byte(" $b = 2;")))
	assert.Equal(t, `<?php $a = 1; $b = 2;`, string(doc.Text()))

	res := doc.Complete(Request{Offset: uint(len(doc.Text())), Explicit: true})
	require.NotNil(t, res)
	assert.Contains(t, names(res.Candidates), "$a")
	assert.Contains(t, names(res.Candidates), "$b")
}

func TestReplace_BadRange(t *testing.T) {
	doc := newTestDocument(t, `<?php $a = 1;`)
	assert.Error(t, doc.Replace(10, 5, []byte("x")))
	assert.Error(t, doc.Replace(5, 1000, []byte("x")))
}

func TestPointAt(t *testing.T) {
	src := []byte("ab\ncd\n\nef")
	assert.Equal(t, uint(0), pointAt(src, 0).Row)
	assert.Equal(t, uint(1), pointAt(src, 1).Column)
	assert.Equal(t, uint(1), pointAt(src, 3).Row)
	assert.Equal(t, uint(0), pointAt(src, 3).Column)
	assert.Equal(t, uint(3), pointAt(src, 7).Row)
	assert.Equal(t, uint(1), pointAt(src, 9).Column)
}

func TestClose_Idempotent(t *testing.T) {
	doc, err := NewDocument(PHP(), []byte(`<?php`))
	require.NoError(t, err)
	doc.Close()
	doc.Close()
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setPosition sets the position flags for one test and restores them after.
func setPosition(t *testing.T, offset, line, col int) {
	t.Helper()
	prevOffset, prevLine, prevCol := flagOffset, flagLine, flagCol
	flagOffset, flagLine, flagCol = offset, line, col
	t.Cleanup(func() { flagOffset, flagLine, flagCol = prevOffset, prevLine, prevCol })
}

func TestResolveOffset_Explicit(t *testing.T) {
	src := []byte("line one\nline two\nend")

	setPosition(t, 5, 0, 0)
	got, err := resolveOffset(src)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got)
}

func TestResolveOffset_OffsetPastEnd(t *testing.T) {
	setPosition(t, 100, 0, 0)
	_, err := resolveOffset([]byte("short"))
	require.Error(t, err)
}

func TestResolveOffset_LineCol(t *testing.T) {
	src := []byte("line one\nline two\nend")

	setPosition(t, -1, 2, 3)
	got, err := resolveOffset(src)
	require.NoError(t, err)
	assert.Equal(t, uint(11), got)

	// Missing --col defaults to the start of the line.
	setPosition(t, -1, 3, 0)
	got, err = resolveOffset(src)
	require.NoError(t, err)
	assert.Equal(t, uint(18), got)
}

func TestResolveOffset_ColClampsToLineEnd(t *testing.T) {
	src := []byte("line one\nline two\nend")

	// An oversized column stops at the newline instead of spilling into
	// the next line.
	setPosition(t, -1, 2, 99)
	got, err := resolveOffset(src)
	require.NoError(t, err)
	assert.Equal(t, uint(17), got)

	// On the last line it stops at the end of the file.
	setPosition(t, -1, 3, 99)
	got, err = resolveOffset(src)
	require.NoError(t, err)
	assert.Equal(t, uint(21), got)
}

func TestResolveOffset_BadPosition(t *testing.T) {
	src := []byte("one line")

	setPosition(t, -1, 0, 0)
	_, err := resolveOffset(src)
	require.Error(t, err)

	setPosition(t, -1, 9, 1)
	_, err = resolveOffset(src)
	require.Error(t, err)
}

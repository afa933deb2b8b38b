package bracken

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTablesYAML = `builtins:
  - name: wp_enqueue_script
    kind: function
    detail: "WordPress"
snippets:
  - name: getter
    kind: snippet
    template: "public function get${1:Name}() {}"
`

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables(strings.NewReader(testTablesYAML))
	require.NoError(t, err)
	require.Len(t, tables.Builtins, 1)
	require.Len(t, tables.Snippets, 1)
	assert.Equal(t, "wp_enqueue_script", tables.Builtins[0].Name)
	assert.Equal(t, "WordPress", tables.Builtins[0].Detail)
	assert.Equal(t, "snippet", tables.Snippets[0].Kind)
}

func TestLoadTables_UnknownField(t *testing.T) {
	_, err := LoadTables(strings.NewReader("builtins: []\nextras: []\n"))
	require.Error(t, err)
}

func TestLoadTables_MissingName(t *testing.T) {
	_, err := LoadTables(strings.NewReader("builtins:\n  - kind: function\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestLoadTables_BadYAML(t *testing.T) {
	_, err := LoadTables(strings.NewReader("builtins: {not a list"))
	require.Error(t, err)
}

func TestLoadTablesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testTablesYAML), 0o644))

	tables, err := LoadTablesFile(path)
	require.NoError(t, err)
	assert.Len(t, tables.Builtins, 1)

	_, err = LoadTablesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestTablesExtend_DoesNotMutateLanguage(t *testing.T) {
	tables, err := LoadTables(strings.NewReader(testTablesYAML))
	require.NoError(t, err)

	lang := PHP()
	builtinsBefore := len(lang.Builtins)
	snippetsBefore := len(lang.Snippets)

	ext := tables.Extend(lang)
	require.NotSame(t, lang, ext)
	assert.Len(t, ext.Builtins, builtinsBefore+1)
	assert.Len(t, ext.Snippets, snippetsBefore+1)
	assert.Len(t, lang.Builtins, builtinsBefore)
	assert.Len(t, lang.Snippets, snippetsBefore)
	assert.Contains(t, names(ext.Builtins), "wp_enqueue_script")
}

func TestTablesExtend_Empty(t *testing.T) {
	lang := PHP()
	empty := &Tables{}
	assert.Same(t, lang, empty.Extend(lang))
}

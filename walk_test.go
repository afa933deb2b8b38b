package bracken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

func TestWalk_PreOrder(t *testing.T) {
	doc := newTestDocument(t, `<?php $a = 1;`)

	var kinds []string
	Walk(doc.tree.RootNode(), func(n *tree_sitter.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	require.NotEmpty(t, kinds)
	assert.Equal(t, "program", kinds[0])
	assert.Contains(t, kinds, "expression_statement")
	assert.Contains(t, kinds, "assignment_expression")
	assert.Contains(t, kinds, "variable_name")
	// Anonymous tokens are visited too.
	assert.Contains(t, kinds, "=")
	assert.Contains(t, kinds, ";")

	// Parent precedes child.
	stmt := indexOf(kinds, "expression_statement")
	expr := indexOf(kinds, "assignment_expression")
	assert.Less(t, stmt, expr)
}

func TestWalk_PruneSkipsSubtree(t *testing.T) {
	doc := newTestDocument(t, `<?php function foo() { $inner = 1; } $outer = 2;`)

	var kinds []string
	Walk(doc.tree.RootNode(), func(n *tree_sitter.Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != "function_definition"
	})

	assert.Contains(t, kinds, "function_definition")
	assert.NotContains(t, kinds, "compound_statement")
	// The assignment outside the pruned subtree is still visited.
	assert.Contains(t, kinds, "assignment_expression")
}

func TestWalk_NilNode(t *testing.T) {
	called := false
	Walk(nil, func(n *tree_sitter.Node) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func indexOf(ss []string, want string) int {
	for i, s := range ss {
		if s == want {
			return i
		}
	}
	return -1
}

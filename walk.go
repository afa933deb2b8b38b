package bracken

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Walk visits node and every descendant in pre-order document order,
// including anonymous tokens, starting with node itself. visit returning
// false prunes that node's children; there is no other way to cut the
// traversal short. The order is deterministic and matches the document's
// textual order, which scope collection relies on for "nearest definition
// first" candidate ordering.
func Walk(node *tree_sitter.Node, visit func(*tree_sitter.Node) bool) {
	if node == nil || !visit(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		Walk(node.Child(i), visit)
	}
}

package bracken

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// scopeEntry is one cached scope result. The kind is stored alongside the
// candidates so a lookup can reject the (unlikely but possible) case where
// the allocator hands a new subtree the address of a freed one: a reused
// subtree always keeps its kind, so a kind mismatch means the identity is
// stale and the entry must be recomputed.
type scopeEntry struct {
	kind       string
	candidates []Candidate
}

// scopeCandidates returns the candidates visible directly in the scope
// rooted at root, not including ancestor scopes. Results are cached under
// the root's node identity; a cache hit returns the stored slice itself.
//
// The walk prunes at three points, evaluated at every node after the root:
// an extractor reporting the subtree handled, a nested scope root (captured
// by name only, collected separately), and anonymous nodes wider than the
// large-node threshold, which are collected recursively so their result is
// cached under their own identity and survives edits elsewhere. The last
// rule trades duplicate storage for never re-walking a wide unchanged
// region token by token on every keystroke.
func (d *Document) scopeCandidates(root *tree_sitter.Node) []Candidate {
	id := root.Id()
	rootKind := root.Kind()
	if e, ok := d.cache[id]; ok && e.kind == rootKind {
		return e.candidates
	}

	var out []Candidate
	define := func(n *tree_sitter.Node, kind string) {
		out = append(out, Candidate{Name: n.Utf8Text(d.src), Kind: kind})
	}

	Walk(root, func(n *tree_sitter.Node) bool {
		if n.Id() == id {
			return true
		}
		kind := n.Kind()
		if ex, ok := d.lang.Extractors[kind]; ok && ex(n, d.src, define) {
			return false
		}
		if d.lang.ScopeKinds[kind] {
			return false
		}
		if !n.IsNamed() && n.EndByte()-n.StartByte() > d.largeNodeThreshold {
			out = append(out, d.scopeCandidates(n)...)
			return false
		}
		return true
	})

	d.cache[id] = scopeEntry{kind: rootKind, candidates: out}
	return out
}

// ScopeInfo describes one scope root and its directly visible candidates.
type ScopeInfo struct {
	Kind       string      `json:"kind"`
	From       uint        `json:"from"`
	To         uint        `json:"to"`
	Candidates []Candidate `json:"candidates"`
}

// ScopeTree lists every scope root in the document in pre-order, each with
// its own candidate list. Intended for debugging and the CLI's scopes
// command; completion itself only collects the scopes enclosing the cursor.
func (d *Document) ScopeTree() []ScopeInfo {
	var out []ScopeInfo
	Walk(d.tree.RootNode(), func(n *tree_sitter.Node) bool {
		if d.lang.ScopeKinds[n.Kind()] {
			out = append(out, ScopeInfo{
				Kind:       n.Kind(),
				From:       n.StartByte(),
				To:         n.EndByte(),
				Candidates: d.scopeCandidates(n),
			})
		}
		return true
	})
	return out
}

package bracken

import (
	"regexp"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Request describes one completion invocation. Offset is a byte offset into
// the document; offsets outside the document are clamped. Explicit marks a
// deliberate user invocation (keybinding rather than a keystroke), which
// bypasses the partial-identifier requirement.
type Request struct {
	Offset   uint `json:"offset"`
	Explicit bool `json:"explicit"`
}

// Result is a successful completion computation. From and To delimit the
// byte range the host should replace with the chosen candidate: the span of
// the identifier token under the cursor, or a zero-width range at the cursor
// when completion was explicitly invoked elsewhere. ValidFor lets the host
// keep reusing the result while the user types characters matching it.
//
// A nil *Result means "no completions here" and is an expected outcome, not
// an error.
type Result struct {
	Candidates []Candidate    `json:"candidates"`
	From       uint           `json:"from"`
	To         uint           `json:"to"`
	ValidFor   *regexp.Regexp `json:"-"`
}

// Complete computes the local-scope candidates visible at the request
// offset. Candidates from inner scopes precede those from outer scopes;
// duplicate names across scopes are kept, nearer entries first.
func (d *Document) Complete(req Request) *Result {
	node := d.tokenAt(req.Offset)
	if node == nil || d.excluded(node) {
		return nil
	}

	isWord := d.isPartialIdentifier(node)
	if !isWord && !req.Explicit {
		return nil
	}

	var candidates []Candidate
	for n := node; n != nil; n = n.Parent() {
		if d.lang.ScopeKinds[n.Kind()] {
			candidates = append(candidates, d.scopeCandidates(n)...)
		}
	}

	res := &Result{Candidates: candidates, ValidFor: d.lang.Identifier}
	if isWord {
		res.From, res.To = node.StartByte(), node.EndByte()
	} else {
		offset := d.clamp(req.Offset)
		res.From, res.To = offset, offset
	}
	return res
}

// CompleteStatic serves a fixed candidate list through the same
// excluded-context and partial-identifier gate as Complete. It is the
// "complete from a static list, skip inside strings and comments"
// combinator used for builtin symbols and snippets.
func (d *Document) CompleteStatic(items []Candidate, req Request) *Result {
	node := d.tokenAt(req.Offset)
	if node == nil || d.excluded(node) {
		return nil
	}

	isWord := d.isPartialIdentifier(node)
	if !isWord && !req.Explicit {
		return nil
	}

	res := &Result{Candidates: items, ValidFor: d.lang.Identifier}
	if isWord {
		res.From, res.To = node.StartByte(), node.EndByte()
	} else {
		offset := d.clamp(req.Offset)
		res.From, res.To = offset, offset
	}
	return res
}

// CompleteAll merges local scope candidates with the language's builtin and
// snippet tables: the full list a completion popup would show before prefix
// filtering.
func (d *Document) CompleteAll(req Request) *Result {
	res := d.Complete(req)
	if res == nil {
		return nil
	}
	res.Candidates = append(res.Candidates, d.lang.Builtins...)
	res.Candidates = append(res.Candidates, d.lang.Snippets...)
	return res
}

// tokenAt resolves the innermost node at offset, tie-broken toward the token
// left of the cursor, so completion at the end of a word resolves to that
// word. A name token directly inside a variable-name node is normalized to
// the variable-name parent, whose span includes the sigil.
func (d *Document) tokenAt(offset uint) *tree_sitter.Node {
	root := d.tree.RootNode()
	if root == nil {
		return nil
	}
	pos := d.clamp(offset)
	if pos > 0 {
		pos--
	}
	node := root.DescendantForByteRange(pos, pos)
	if node == nil {
		return nil
	}
	if p := node.Parent(); p != nil && p.Kind() == d.lang.VariableKind {
		return p
	}
	return node
}

// excluded reports whether node sits in a context where identifier
// completion never fires: inside a string/heredoc/comment (checked over the
// whole ancestor chain, since interpolation can nest real nodes inside
// strings), or as the member name of a property access.
func (d *Document) excluded(node *tree_sitter.Node) bool {
	if p := node.Parent(); p != nil && d.lang.MemberParentKinds[p.Kind()] {
		// The member name itself, or the access operator with the cursor
		// right behind it. The object expression stays completable.
		if node.Kind() == "name" || !node.IsNamed() {
			return true
		}
	}
	for n := node; n != nil; n = n.Parent() {
		if d.lang.SkipKinds[n.Kind()] {
			return true
		}
	}
	return false
}

// isPartialIdentifier reports whether the token looks like an identifier in
// progress: a variable-name token, or a short token whose text matches the
// language's identifier pattern.
func (d *Document) isPartialIdentifier(node *tree_sitter.Node) bool {
	if node.Kind() == d.lang.VariableKind {
		return true
	}
	from, to := node.StartByte(), node.EndByte()
	if to-from == 0 || to-from > d.maxTokenLength {
		return false
	}
	return d.lang.Identifier.MatchString(node.Utf8Text(d.src))
}

func (d *Document) clamp(offset uint) uint {
	if max := uint(len(d.src)); offset > max {
		return max
	}
	return offset
}

package bracken

import (
	"regexp"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Candidate is a single completion entry. Name is the text a completion UI
// filters on and, for plain candidates, inserts. Kind is a free-form tag
// ("variable", "function", "class", "keyword", "constant", "superglobal",
// "snippet", ...) that hosts map to their own icon/kind scheme.
type Candidate struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Template, when non-empty, is an LSP-style snippet body ($1, ${2:x},
	// $0 tab stops) inserted in place of Name.
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

// DefineFunc records one binding. The candidate's name is the node's source
// text; kind is the tag the extractor assigns.
type DefineFunc func(node *tree_sitter.Node, kind string)

// Extractor decides whether a node of its registered kind introduces a named
// binding. It inspects the node's children, calls define for each binding
// found, and returns true when the node's subtree is fully handled and must
// not be descended into (a function definition contributes its name to the
// enclosing scope, but its body belongs to the nested scope).
type Extractor func(node *tree_sitter.Node, src []byte, define DefineFunc) bool

// Language describes everything the engine needs to know about one grammar.
// Node kinds absent from the maps below are ordinary: not scope-introducing,
// not defining, descended into normally. That makes partial or broken trees
// safe without special cases.
type Language struct {
	// Name is the canonical language name, e.g. "php".
	Name string

	// Grammar is the tree-sitter grammar used to parse documents.
	Grammar *tree_sitter.Language

	// ScopeKinds are the node kinds that introduce a lexical scope. The
	// document root kind must be part of this set so every position is
	// contained in at least one scope.
	ScopeKinds map[string]bool

	// Extractors maps node kinds to definition extractors. A typed map,
	// looked up with plain map indexing only.
	Extractors map[string]Extractor

	// SkipKinds are node kinds within which identifier completion never
	// fires: string literals, heredocs, comments. Checked against the
	// resolved node and all its ancestors.
	SkipKinds map[string]bool

	// MemberParentKinds are parent kinds that mark a bare name token as a
	// property/member position, another context completion skips.
	MemberParentKinds map[string]bool

	// VariableKind is the node kind of a variable-name token ("variable_name"
	// for PHP). Tokens of this kind always count as a partial identifier.
	VariableKind string

	// Identifier matches text that looks like a partial identifier. Also
	// returned to hosts as the validity predicate for reusing a result
	// across further keystrokes.
	Identifier *regexp.Regexp

	// Builtins are the language's static global candidates (superglobals,
	// keywords, constants, common functions). Plain data.
	Builtins []Candidate

	// Snippets are structural code templates. Plain data.
	Snippets []Candidate
}

package bracken

import (
	"regexp"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

// phpIdentifier matches a partial PHP identifier: a bare $ sigil, or an
// optionally sigiled word not starting with a digit. The upper Unicode range
// covers PHP's extended identifier characters.
var phpIdentifier = regexp.MustCompile(
	`^(?:\$|\$?[A-Za-z_\x{00a1}-\x{10ffff}][A-Za-z0-9_\x{00a1}-\x{10ffff}]*)$`)

var (
	phpOnce sync.Once
	phpLang *Language
)

// PHP returns the bundled PHP language definition. Built once and shared;
// callers must not mutate it.
func PHP() *Language {
	phpOnce.Do(func() {
		phpLang = &Language{
			Name:    "php",
			Grammar: tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP()),
			ScopeKinds: kindSet(
				"program",
				"compound_statement",
				"function_definition",
				"method_declaration",
				"class_declaration",
				"interface_declaration",
				"trait_declaration",
				"enum_declaration",
				"anonymous_function",
				// pre-0.23 grammar name for anonymous_function
				"anonymous_function_creation_expression",
				"arrow_function",
			),
			Extractors: map[string]Extractor{
				"function_definition":           extractNamed("name", "function"),
				"method_declaration":            extractNamed("name", "method"),
				"class_declaration":             extractNamed("name", "class"),
				"interface_declaration":         extractNamed("name", "class"),
				"trait_declaration":             extractNamed("name", "class"),
				"enum_declaration":              extractNamed("name", "class"),
				"assignment_expression":         extractAssignment,
				"simple_parameter":              extractParameter,
				"variadic_parameter":            extractParameter,
				"property_promotion_parameter":  extractParameter,
				"foreach_statement":             extractForeach,
				"static_variable_declaration":   extractVariables,
				"global_declaration":            extractVariables,
				"catch_clause":                  extractVariables,
				"anonymous_function_use_clause": extractVariables,
				"const_element":                 extractConstElement,
			},
			SkipKinds: kindSet(
				"string",
				"encapsed_string",
				"string_content",
				"heredoc",
				"heredoc_body",
				"nowdoc",
				"comment",
				"shell_command_expression",
			),
			MemberParentKinds: kindSet(
				"member_access_expression",
				"nullsafe_member_access_expression",
				"member_call_expression",
				"nullsafe_member_call_expression",
				"scoped_property_access_expression",
				"scoped_call_expression",
				"class_constant_access_expression",
			),
			VariableKind: "variable_name",
			Identifier:   phpIdentifier,
			Builtins:     phpBuiltins,
			Snippets:     phpSnippets,
		}
	})
	return phpLang
}

func kindSet(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// extractNamed builds an extractor for declarations that carry their binding
// in a name field. The subtree is reported handled: the name belongs to the
// enclosing scope, the body is a nested scope collected separately.
func extractNamed(field, kind string) Extractor {
	return func(node *tree_sitter.Node, _ []byte, define DefineFunc) bool {
		if name := node.ChildByFieldName(field); name != nil {
			define(name, kind)
		}
		return true
	}
}

// extractAssignment records the variables bound on the left of an
// assignment: a plain variable, or every variable inside a list()/[...]
// destructuring target. The right-hand side is still descended into: it may
// contain closures or further assignments.
func extractAssignment(node *tree_sitter.Node, _ []byte, define DefineFunc) bool {
	left := node.ChildByFieldName("left")
	if left == nil {
		return false
	}
	switch left.Kind() {
	case "variable_name":
		define(left, "variable")
	case "list_literal", "array_creation_expression":
		defineNestedVariables(left, define)
	}
	return false
}

// defineNestedVariables records every variable_name in a destructuring
// target, however deeply nested or keyed.
func defineNestedVariables(node *tree_sitter.Node, define DefineFunc) {
	Walk(node, func(n *tree_sitter.Node) bool {
		if n.Kind() == "variable_name" {
			define(n, "variable")
			return false
		}
		return true
	})
}

// extractParameter records a parameter's variable. Default values need no
// descent.
func extractParameter(node *tree_sitter.Node, _ []byte, define DefineFunc) bool {
	if name := node.ChildByFieldName("name"); name != nil {
		define(name, "variable")
	}
	return true
}

// extractForeach records the loop targets after the as keyword: a plain
// variable, both halves of a key => value pair, or every variable in a
// list()/[...] destructuring target. The subject expression before as is a
// use, not a binding.
func extractForeach(node *tree_sitter.Node, _ []byte, define DefineFunc) bool {
	seenAs := false
	for i := uint(0); i < node.ChildCount(); i++ {
		c := node.Child(i)
		switch {
		case c.Kind() == "as":
			seenAs = true
		case !seenAs:
		case c.Kind() == "variable_name":
			define(c, "variable")
		case c.Kind() == "pair" || c.Kind() == "by_ref" ||
			c.Kind() == "list_literal" || c.Kind() == "array_creation_expression":
			defineNestedVariables(c, define)
		}
	}
	return false
}

// extractVariables records every direct variable_name child. Covers static
// and global declarations, catch clauses, and closure use clauses.
func extractVariables(node *tree_sitter.Node, _ []byte, define DefineFunc) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		if c := node.Child(i); c.Kind() == "variable_name" {
			define(c, "variable")
		}
	}
	return false
}

// extractConstElement records the constant's name token.
func extractConstElement(node *tree_sitter.Node, _ []byte, define DefineFunc) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		if c := node.Child(i); c.Kind() == "name" {
			define(c, "constant")
			break
		}
	}
	return false
}

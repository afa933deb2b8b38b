// Package bracken is a local-scope completion engine for tree-sitter syntax
// trees. Given a byte offset in a parsed document, it determines which locally
// defined identifiers (variables, functions, classes) are visible at that
// position and returns them as ordered completion candidates together with
// the range the completion should replace.
//
// # Design
//
// Completion for one position proceeds in three layers:
//
//  1. [Walk] traverses a subtree in pre-order document order, including
//     anonymous tokens, with visitor-driven pruning.
//  2. A scope collector runs the walker over one scope-introducing node with
//     the language's definition extractors, producing that scope's candidate
//     list. Results are cached keyed by tree-sitter node identity (Node.Id),
//     which is stable across incremental reparses for structurally shared
//     (unedited) subtrees. Repeated keystrokes therefore only re-walk the
//     narrowest scope actually edited.
//  3. [Document.Complete] resolves the token at the cursor, rejects contexts
//     where identifier completion is meaningless (strings, comments, member
//     access), then walks the ancestor chain and merges every enclosing
//     scope's candidates, innermost first.
//
// Static builtin and snippet tables are served through the same
// excluded-context gate by [Document.CompleteStatic]; [Document.CompleteAll]
// returns the merged result a completion UI would display.
//
// # Usage
//
//	doc, err := bracken.NewDocument(bracken.PHP(), src)
//	if err != nil { ... }
//	defer doc.Close()
//
//	res := doc.CompleteAll(bracken.Request{Offset: cursor})
//	if res != nil {
//		// res.Candidates, res.From, res.To, res.ValidFor
//	}
//
// The engine is synchronous and single-threaded by contract: one Document
// must only be used from one goroutine, and every request runs to completion
// with no yield points. PHP is the bundled language definition; [Language]
// is the extension point for others.
package bracken

package bracken

import (
	"errors"
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const (
	// defaultLargeNodeThreshold is the span in bytes above which an anonymous
	// node is collected as its own independently cached scope instead of
	// being walked inline.
	defaultLargeNodeThreshold = 8192

	// defaultMaxTokenLength bounds how long a token may be and still count
	// as a partial identifier.
	defaultMaxTokenLength = 20

	// defaultCacheLimit caps the scope cache. Entries keyed by node
	// identities from dropped trees are unreachable garbage; once the map
	// outgrows this limit it is reset wholesale on the next edit rather
	// than tracked entry by entry.
	defaultCacheLimit = 4096
)

// Document owns one parsed source buffer: the tree-sitter parser, the
// current tree, the source bytes, and the per-scope completion cache.
//
// A Document is not safe for concurrent use. Every operation is synchronous
// and runs to completion; the cache is only ever touched from this call
// path, so no locking exists. An abandoned request leaves nothing
// inconsistent behind — its only side effect is cache population.
type Document struct {
	lang   *Language
	parser *tree_sitter.Parser
	tree   *tree_sitter.Tree
	src    []byte

	cache map[uintptr]scopeEntry

	largeNodeThreshold uint
	maxTokenLength     uint
	cacheLimit         int
}

// Option configures a Document.
type Option func(*Document)

// WithLargeNodeThreshold overrides the span above which anonymous nodes are
// collected as independently cached scopes.
func WithLargeNodeThreshold(bytes uint) Option {
	return func(d *Document) {
		d.largeNodeThreshold = bytes
	}
}

// WithMaxTokenLength overrides the length bound for tokens classified as
// partial identifiers.
func WithMaxTokenLength(bytes uint) Option {
	return func(d *Document) {
		d.maxTokenLength = bytes
	}
}

// WithCacheLimit overrides the scope cache size cap.
func WithCacheLimit(entries int) Option {
	return func(d *Document) {
		d.cacheLimit = entries
	}
}

// NewDocument parses src with the language's grammar and returns a ready
// Document. Close releases the C-side parser and tree.
func NewDocument(lang *Language, src []byte, opts ...Option) (*Document, error) {
	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(lang.Grammar); err != nil {
		parser.Close()
		return nil, fmt.Errorf("bracken: set %s grammar: %w", lang.Name, err)
	}

	d := &Document{
		lang:               lang,
		parser:             parser,
		largeNodeThreshold: defaultLargeNodeThreshold,
		maxTokenLength:     defaultMaxTokenLength,
		cacheLimit:         defaultCacheLimit,
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.SetText(src); err != nil {
		parser.Close()
		return nil, err
	}
	return d, nil
}

// SetText replaces the whole document and reparses from scratch. Every node
// identity dies with the old tree, so the scope cache is reset.
func (d *Document) SetText(src []byte) error {
	tree := d.parser.Parse(src, nil)
	if tree == nil {
		return errors.New("bracken: parse failed")
	}
	if d.tree != nil {
		d.tree.Close()
	}
	d.tree = tree
	d.src = src
	d.cache = make(map[uintptr]scopeEntry)
	return nil
}

// Edit applies an already-constructed tree-sitter edit and reparses
// incrementally. Subtrees outside the edited region are structurally shared
// with the old tree and keep their node identity, so their cached scope
// results remain valid; only identities inside the edit are fresh.
//
// Entries keyed by subtrees freed in earlier edits linger until the cache
// cap triggers a reset. If the allocator hands a later subtree such an
// address, the kind check in the scope cache rejects the entry unless the
// new subtree has the same kind; that same-kind window closes on the next
// cap reset or SetText.
func (d *Document) Edit(edit tree_sitter.InputEdit, src []byte) error {
	d.tree.Edit(&edit)
	tree := d.parser.Parse(src, d.tree)
	if tree == nil {
		return errors.New("bracken: incremental parse failed")
	}
	d.tree.Close()
	d.tree = tree
	d.src = src
	if len(d.cache) > d.cacheLimit {
		d.cache = make(map[uintptr]scopeEntry)
	}
	return nil
}

// Replace is a byte-range convenience over Edit: it splices text into
// [start, end), builds the InputEdit with the correct row/column points, and
// reparses incrementally.
func (d *Document) Replace(start, end uint, text []byte) error {
	if start > end || end > uint(len(d.src)) {
		return fmt.Errorf("bracken: replace range [%d, %d) outside document of %d bytes", start, end, len(d.src))
	}

	src := make([]byte, 0, uint(len(d.src))-(end-start)+uint(len(text)))
	src = append(src, d.src[:start]...)
	src = append(src, text...)
	src = append(src, d.src[end:]...)

	newEnd := start + uint(len(text))
	edit := tree_sitter.InputEdit{
		StartByte:      start,
		OldEndByte:     end,
		NewEndByte:     newEnd,
		StartPosition:  pointAt(d.src, start),
		OldEndPosition: pointAt(d.src, end),
		NewEndPosition: pointAt(src, newEnd),
	}
	return d.Edit(edit, src)
}

// Text returns the current source bytes. Callers must not mutate them.
func (d *Document) Text() []byte {
	return d.src
}

// Language returns the language definition the document was created with.
func (d *Document) Language() *Language {
	return d.lang
}

// Close releases the parser and tree. The Document must not be used after.
func (d *Document) Close() {
	if d.tree != nil {
		d.tree.Close()
		d.tree = nil
	}
	if d.parser != nil {
		d.parser.Close()
		d.parser = nil
	}
}

// pointAt computes the row/column point for a byte offset.
func pointAt(src []byte, offset uint) tree_sitter.Point {
	var p tree_sitter.Point
	for _, b := range src[:offset] {
		if b == '\n' {
			p.Row++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// Package textpos converts between LSP positions, which count UTF-16 code
// units, and byte offsets into the UTF-8 source buffer.
package textpos

import (
	"bytes"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// OffsetFor converts an LSP position to a byte offset. Positions past the
// end of a line or of the document clamp to the nearest valid offset; a
// position inside a surrogate pair rounds up to the rune boundary.
func OffsetFor(src []byte, pos protocol.Position) uint {
	off := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := bytes.IndexByte(src[off:], '\n')
		if i < 0 {
			return uint(len(src))
		}
		off += i + 1
	}

	rest := src[off:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	units := uint32(0)
	idx := 0
	for idx < len(rest) && units < pos.Character {
		r, size := utf8.DecodeRune(rest[idx:])
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		idx += size
	}
	return uint(off + idx)
}

// PositionFor converts a byte offset to an LSP position. Offsets past the
// end of the document clamp; offsets inside a rune round down to its start.
func PositionFor(src []byte, offset uint) protocol.Position {
	if offset > uint(len(src)) {
		offset = uint(len(src))
	}

	var pos protocol.Position
	lineStart := 0
	for i := 0; i < int(offset); i++ {
		if src[i] == '\n' {
			pos.Line++
			lineStart = i + 1
		}
	}
	for idx := lineStart; idx < int(offset); {
		r, size := utf8.DecodeRune(src[idx:])
		if idx+size > int(offset) {
			break
		}
		if r >= 0x10000 {
			pos.Character += 2
		} else {
			pos.Character++
		}
		idx += size
	}
	return pos
}

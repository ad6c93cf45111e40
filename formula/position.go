package formula

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// charOffset converts a byte offset into s to a character offset. When the
// offset splits a multi-byte character it is shrunk until the prefix decodes.
func charOffset(s string, byteOffset int) int {
	if byteOffset > len(s) {
		byteOffset = len(s)
	}
	for byteOffset > 0 && !utf8.ValidString(s[:byteOffset]) {
		byteOffset--
	}
	if byteOffset <= 0 {
		return 0
	}
	return utf8.RuneCountInString(s[:byteOffset])
}

// locate maps a lexer position (byte offset) to a 1-based line and character column.
func locate(source string, pos lexer.Position) Position {
	off := pos.Offset
	if off < 0 {
		off = 0
	}
	if off > len(source) {
		off = len(source)
	}
	prefix := source[:off]
	lineStart := strings.LastIndexByte(prefix, '\n') + 1

	return Position{
		Line:   strings.Count(prefix, "\n") + 1,
		Column: charOffset(source[lineStart:], off-lineStart) + 1,
	}
}

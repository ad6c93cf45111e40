package formula

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// formulaLexer tokenises formula text. Operators the grammar rejects (%, //,
// &, @, ...) are still lexed so the parser can point at them; anything else is
// a lexer error.
var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n\f]+`},

	// Hex/octal/binary integers before decimals so "0x1f" is one token.
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+|(?:\d+\.\d*|\.\d+|\d+)(?:[eE][+-]?\d+)?`},

	// Strings are recognised only to be rejected with a precise message.
	{Name: "String", Pattern: `"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'`},

	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},

	{Name: "Operator", Pattern: `\*\*|==|!=|<=|>=|<>|//|<<|>>|->|:=|[-+*/%<>()&|^~,\[\]{}.@:=;!]`},
})

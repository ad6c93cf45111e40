package formula

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The rules below are the concrete syntax tree produced by participle. They
// are lowered into the exported AST by lower.go and never escape the package.

type comparisonRule struct {
	Pos  lexer.Position
	Head *sumRule          `@@`
	Tail []*comparisonTail `@@*`
}

type comparisonTail struct {
	Pos     lexer.Position
	Op      string   `@( "==" | "!=" | "<=" | ">=" | "<" | ">" )`
	Operand *sumRule `@@`
}

type sumRule struct {
	Pos  lexer.Position
	Head *termRule  `@@`
	Tail []*sumTail `@@*`
}

type sumTail struct {
	Pos     lexer.Position
	Op      string    `@( "+" | "-" )`
	Operand *termRule `@@`
}

type termRule struct {
	Pos  lexer.Position
	Head *unaryRule  `@@`
	Tail []*termTail `@@*`
}

type termTail struct {
	Pos     lexer.Position
	Op      string     `@( "*" | "/" )`
	Operand *unaryRule `@@`
}

type unaryRule struct {
	Pos     lexer.Position
	Op      string     `(  @( "-" | "+" )`
	Operand *unaryRule `   @@ )`
	Power   *powerRule `| @@`
}

type powerRule struct {
	Pos      lexer.Position
	Base     *atomRule  `@@`
	Exponent *unaryRule `( "**" @@ )?`
}

type atomRule struct {
	Pos    lexer.Position
	Number *string         `  @Number`
	String *string         `| @String`
	Ident  *string         `| @Ident`
	Group  *comparisonRule `| "(" @@ ")"`
}

// formulaParser is built once; participle parsers are safe for concurrent use.
var formulaParser = participle.MustBuild[comparisonRule](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

package formula

import (
	"errors"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
)

// MaxLength is the longest accepted formula, in characters.
const MaxLength = 255

// Formula is a compiled, immutable formula.
type Formula struct {
	source string
	root   *Expression
	names  []string
}

// Compile parses source into a Formula. The returned error is always a
// *SyntaxError.
func Compile(source string) (*Formula, error) {
	// 1) Length cap is checked before any parsing.
	if utf8.RuneCountInString(source) > MaxLength {
		return nil, &SyntaxError{Msg: "The formula is too long", Line: 1, Column: 1}
	}

	// 2) Concrete syntax via participle.
	tree, err := formulaParser.ParseString("", source)
	if err != nil {
		return nil, parseError(source, err)
	}

	// 3) Lower to the AST, rejecting constructs the grammar admits only to
	//    report them precisely (strings, None, unary plus).
	l := lowerer{source: source}
	body, err := l.comparison(tree)
	if err != nil {
		return nil, err
	}
	root := &Expression{At: body.Pos(), Body: body}

	return &Formula{source: source, root: root, names: collectNames(root)}, nil
}

// Parse is an alias of Compile.
func Parse(source string) (*Formula, error) {
	return Compile(source)
}

// MustCompile is like Compile but panics on error. Intended for formulas
// fixed at build time.
func MustCompile(source string) *Formula {
	f, err := Compile(source)
	if err != nil {
		panic("formula: Compile(" + strconv.Quote(source) + "): " + err.Error())
	}
	return f
}

// Source returns the text the formula was compiled from.
func (f *Formula) Source() string { return f.source }

// Root returns the AST root.
func (f *Formula) Root() *Expression { return f.root }

// Names returns the sorted, de-duplicated identifiers the formula references.
// The slice is shared and must not be modified.
func (f *Formula) Names() []string { return f.names }

// String returns the formula source.
func (f *Formula) String() string { return f.source }

func collectNames(root Node) []string {
	seen := make(map[string]struct{})
	Inspect(root, func(n Node) bool {
		if nm, ok := n.(*Name); ok {
			seen[nm.ID] = struct{}{}
		}
		return true
	})
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// parseError converts a participle failure into a located *SyntaxError.
func parseError(source string, err error) *SyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := locate(source, perr.Position())
		return syntaxErrorAt(pos, "Could not parse: %s", perr.Message())
	}
	return &SyntaxError{Msg: "Could not parse: " + err.Error(), Line: 1, Column: 1}
}

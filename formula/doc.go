// Package formula implements the small arithmetic/comparison language used to
// compute per-cell traversability and cost.
//
// What:
//
//   - Compile turns a formula of at most MaxLength characters into an immutable
//     AST (Expression, Constant, Name, BinaryOp, UnaryOp, Compare).
//   - (*Formula).Evaluate walks the AST against a Bindings value and returns a
//     Value, which is either a float64 number or a boolean.
//
// Grammar, lowest to highest precedence:
//
//	comparison := sum ( ("==" | "!=" | "<" | "<=" | ">" | ">=") sum )*
//	sum        := term ( ("+" | "-") term )*
//	term       := unary ( ("*" | "/") unary )*
//	unary      := "-" unary | power
//	power      := atom ( "**" unary )?
//	atom       := number | identifier | "(" comparison ")"
//
// A chained comparison such as `1 < x < 3` is true only when every adjacent
// pair holds. There are no boolean operators, calls, strings or collections.
//
// Errors:
//
//   - *SyntaxError (errors.Is(err, ErrSyntax)): malformed or unsupported text, a
//     formula longer than MaxLength, or an identifier missing from the bindings
//     at evaluation time. Carries a 1-based line and a character-based column.
//   - *RuntimeError (errors.Is(err, ErrRuntime)): arithmetic failure such as
//     division by zero; Unwrap yields ErrDivisionByZero, ErrOverflow or ErrDomain.
//
// Concurrency:
//
//   - A *Formula is read-only after Compile and may be evaluated from many
//     goroutines, provided each call passes its own Bindings.
//
// Complexity:
//
//   - Compile: O(n) in the formula length.
//   - Evaluate: O(nodes) per call.
package formula

// Package frontend implements the compiler front end for the Marquee
// animation DSL: lexer, recursive-descent parser, AST and semantic
// validator for tick-based widget animation scripts.
//
// Design: Single-threaded and allocation-light. Each call processes one
// complete input and returns; no state is shared between calls, so
// concurrent use is safe as long as each goroutine constructs its own
// Lexer, Parser and Validator.
package frontend

// ParseSource scans and parses Marquee source text. The returned Program is
// never nil; syntax errors are collected in the list.
func ParseSource(source string) (*Program, []ParseError) {
	return NewParser(Scan(source)).Parse()
}

// ParseTokens parses an already-scanned token span. Hosts that embed
// Marquee inside a TIMELINE block can hand over the block's tokens directly
// instead of re-serializing them to text and lexing again.
func ParseTokens(tokens []Token) (*Program, []ParseError) {
	return NewParser(tokens).Parse()
}

// ParseAndValidate runs the full pipeline and returns the best-effort
// Program together with both diagnostic lists. Both render as
// "line:column: message" and are meant to be merged for reporting.
func ParseAndValidate(source string) (*Program, []ParseError, []ValidationError) {
	program, parseErrs := ParseSource(source)
	return program, parseErrs, Validate(program)
}

// Package frontend - Lexer for the Marquee animation DSL
// Design: Hand-written scanner, one pass, soft errors embedded as ERROR tokens
package frontend

import (
	"fmt"
	"strconv"
	"unicode"
)

// Lexer converts Marquee source text into a flat token stream. All lexical
// errors (unrecognized character, unterminated string or block comment) are
// embedded as ERROR tokens; Scan never aborts and always terminates the
// stream with EOF.
//
// String literals are consumed verbatim to the closing quote with no escape
// processing. This intentionally diverges from the host application DSL
// lexer, which does decode escapes: animation scripts treat backslashes as
// ordinary display characters.
type Lexer struct {
	source []rune
	start  int
	pos    int
	line   int
	col    int

	// position of the current token's first rune
	startLine int
	startCol  int

	// type of the last emitted token, for minus-sign handling
	prev TokenType
	any  bool
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		line:   1,
		col:    1,
	}
}

// Scan tokenizes the entire source, returning the token stream terminated
// by an EOF token.
func Scan(source string) []Token {
	return NewLexer(source).Scan()
}

func (l *Lexer) Scan() []Token {
	var tokens []Token
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
		if tok.Type != ERROR {
			l.prev = tok.Type
			l.any = true
		}
	}
}

func (l *Lexer) next() Token {
	for {
		l.skipWhitespace()

		if l.isAtEnd() {
			return Token{Type: EOF, Line: l.line, Col: l.col}
		}

		l.start = l.pos
		l.startLine = l.line
		l.startCol = l.col
		c := l.advance()

		switch c {
		case '#':
			l.lineComment()
			continue
		case '/':
			if l.match('/') {
				l.lineComment()
				continue
			}
			if l.match('*') {
				if tok, bad := l.blockComment(); bad {
					return tok
				}
				continue
			}
			return l.makeToken(SLASH)
		case '+':
			return l.makeToken(PLUS)
		case '-':
			if unicode.IsDigit(l.peek()) && !l.afterValue() {
				return l.number()
			}
			return l.makeToken(MINUS)
		case '*':
			return l.makeToken(STAR)
		case '%':
			return l.makeToken(PERCENT)
		case '(':
			return l.makeToken(LPAREN)
		case ')':
			return l.makeToken(RPAREN)
		case '{':
			return l.makeToken(LBRACE)
		case '}':
			return l.makeToken(RBRACE)
		case '[':
			return l.makeToken(LBRACKET)
		case ']':
			return l.makeToken(RBRACKET)
		case ',':
			return l.makeToken(COMMA)
		case ';':
			return l.makeToken(SEMICOLON)
		case ':':
			return l.makeToken(COLON)
		case '.':
			return l.makeToken(DOT)
		case '?':
			return l.makeToken(QUESTION)
		case '=':
			if l.match('=') {
				return l.makeToken(EQ)
			}
			if l.match('>') {
				return l.makeToken(ARROW)
			}
			return l.makeToken(ASSIGN)
		case '!':
			if l.match('=') {
				return l.makeToken(NE)
			}
			return l.errorToken("unexpected character: !")
		case '<':
			if l.match('=') {
				return l.makeToken(LE)
			}
			return l.makeToken(LT)
		case '>':
			if l.match('=') {
				return l.makeToken(GE)
			}
			return l.makeToken(GT)
		case '"':
			return l.stringLiteral()
		}

		if unicode.IsDigit(c) {
			return l.number()
		}
		if unicode.IsLetter(c) || c == '_' {
			return l.identifier()
		}

		return l.errorToken(fmt.Sprintf("unexpected character: %c", c))
	}
}

// afterValue reports whether the previous token could end an operand, in
// which case a following '-' is subtraction rather than a negative literal.
// Keeps `x-1` meaning x minus one while `MOVE(LEFT, -5)` still lexes -5.
func (l *Lexer) afterValue() bool {
	if !l.any {
		return false
	}
	switch l.prev {
	case IDENTIFIER, NUMBER, STRING, RPAREN, RBRACKET:
		return true
	}
	return false
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '\n':
			l.advance()
			l.line++
			l.col = 1
		default:
			return
		}
	}
}

func (l *Lexer) lineComment() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// blockComment consumes a /* */ comment, counting nesting depth. Returns an
// ERROR token if the comment never closes.
func (l *Lexer) blockComment() (Token, bool) {
	depth := 1
	for !l.isAtEnd() && depth > 0 {
		c := l.advance()
		switch c {
		case '\n':
			l.line++
			l.col = 1
		case '/':
			if l.match('*') {
				depth++
			}
		case '*':
			if l.match('/') {
				depth--
			}
		}
	}
	if depth > 0 {
		return l.errorToken("unterminated block comment"), true
	}
	return Token{}, false
}

func (l *Lexer) stringLiteral() Token {
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
			l.col = 0
		}
		l.advance()
	}
	if l.isAtEnd() {
		return l.errorToken("unterminated string")
	}
	l.advance() // closing quote
	value := string(l.source[l.start+1 : l.pos-1])
	return l.makeLiteral(STRING, value)
}

func (l *Lexer) number() Token {
	for unicode.IsDigit(l.peek()) {
		l.advance()
	}
	// A '.' is fractional only when a digit follows; otherwise leave it for
	// property access (widget.x).
	if l.peek() == '.' && unicode.IsDigit(l.peekNext()) {
		l.advance()
		for unicode.IsDigit(l.peek()) {
			l.advance()
		}
	}
	lexeme := string(l.source[l.start:l.pos])
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return l.errorToken(fmt.Sprintf("malformed number: %s", lexeme))
	}
	return l.makeLiteral(NUMBER, value)
}

func (l *Lexer) identifier() Token {
	for unicode.IsLetter(l.peek()) || unicode.IsDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	text := string(l.source[l.start:l.pos])
	if typ, ok := keywords[text]; ok {
		return l.makeToken(typ)
	}
	return l.makeToken(IDENTIFIER)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	return l.source[l.pos]
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.source) {
		return '\x00'
	}
	return l.source[l.pos+1]
}

func (l *Lexer) advance() rune {
	c := l.source[l.pos]
	l.pos++
	l.col++
	return c
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() || l.source[l.pos] != expected {
		return false
	}
	l.pos++
	l.col++
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) makeToken(typ TokenType) Token {
	return Token{
		Type:   typ,
		Lexeme: string(l.source[l.start:l.pos]),
		Line:   l.startLine,
		Col:    l.startCol,
	}
}

func (l *Lexer) makeLiteral(typ TokenType, literal any) Token {
	tok := l.makeToken(typ)
	tok.Literal = literal
	return tok
}

func (l *Lexer) errorToken(msg string) Token {
	return Token{
		Type:   ERROR,
		Lexeme: msg,
		Line:   l.startLine,
		Col:    l.startCol,
	}
}

// Package frontend - Token definitions for the Marquee animation DSL
package frontend

import "fmt"

type TokenType int

const (
	EOF TokenType = iota
	ERROR

	// Literals
	NUMBER
	STRING
	IDENTIFIER

	// Statement keywords
	MOVE
	PAUSE
	RESET_POSITION
	LOOP
	INFINITE
	AS
	IF
	ELSEIF
	ELSE
	END
	BREAK
	CONTINUE
	SYNC
	WAIT_FOR
	PERIOD
	START_AT
	SEGMENT
	POSITION_AT
	SCHEDULE_AT
	ON_VARIABLE_CHANGE
	SCROLL
	SLIDE
	POPUP

	// Direction keywords
	LEFT
	RIGHT
	UP
	DOWN

	// Popup action keywords
	SHOW
	HIDE
	TOGGLE

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	EQ // ==
	NE // !=
	LT // <
	LE // <=
	GT // >
	GE // >=
	ASSIGN
	ARROW // =>
	QUESTION

	// Delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON
	DOT
)

// Token carries one lexeme with its decoded literal value (float64 for
// NUMBER, string contents for STRING, nil otherwise) and 1-based position.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Col     int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
}

// Keywords are case-sensitive: "move" is an IDENTIFIER, "MOVE" is not.
var keywords = map[string]TokenType{
	"MOVE":               MOVE,
	"PAUSE":              PAUSE,
	"RESET_POSITION":     RESET_POSITION,
	"LOOP":               LOOP,
	"INFINITE":           INFINITE,
	"AS":                 AS,
	"IF":                 IF,
	"ELSEIF":             ELSEIF,
	"ELSE":               ELSE,
	"END":                END,
	"BREAK":              BREAK,
	"CONTINUE":           CONTINUE,
	"SYNC":               SYNC,
	"WAIT_FOR":           WAIT_FOR,
	"PERIOD":             PERIOD,
	"START_AT":           START_AT,
	"SEGMENT":            SEGMENT,
	"POSITION_AT":        POSITION_AT,
	"SCHEDULE_AT":        SCHEDULE_AT,
	"ON_VARIABLE_CHANGE": ON_VARIABLE_CHANGE,
	"SCROLL":             SCROLL,
	"SLIDE":              SLIDE,
	"POPUP":              POPUP,
	"LEFT":               LEFT,
	"RIGHT":              RIGHT,
	"UP":                 UP,
	"DOWN":               DOWN,
	"SHOW":               SHOW,
	"HIDE":               HIDE,
	"TOGGLE":             TOGGLE,
}

var tokenNames = map[TokenType]string{
	EOF:                "EOF",
	ERROR:              "ERROR",
	NUMBER:             "NUMBER",
	STRING:             "STRING",
	IDENTIFIER:         "IDENTIFIER",
	MOVE:               "MOVE",
	PAUSE:              "PAUSE",
	RESET_POSITION:     "RESET_POSITION",
	LOOP:               "LOOP",
	INFINITE:           "INFINITE",
	AS:                 "AS",
	IF:                 "IF",
	ELSEIF:             "ELSEIF",
	ELSE:               "ELSE",
	END:                "END",
	BREAK:              "BREAK",
	CONTINUE:           "CONTINUE",
	SYNC:               "SYNC",
	WAIT_FOR:           "WAIT_FOR",
	PERIOD:             "PERIOD",
	START_AT:           "START_AT",
	SEGMENT:            "SEGMENT",
	POSITION_AT:        "POSITION_AT",
	SCHEDULE_AT:        "SCHEDULE_AT",
	ON_VARIABLE_CHANGE: "ON_VARIABLE_CHANGE",
	SCROLL:             "SCROLL",
	SLIDE:              "SLIDE",
	POPUP:              "POPUP",
	LEFT:               "LEFT",
	RIGHT:              "RIGHT",
	UP:                 "UP",
	DOWN:               "DOWN",
	SHOW:               "SHOW",
	HIDE:               "HIDE",
	TOGGLE:             "TOGGLE",
	PLUS:               "PLUS",
	MINUS:              "MINUS",
	STAR:               "STAR",
	SLASH:              "SLASH",
	PERCENT:            "PERCENT",
	EQ:                 "EQ",
	NE:                 "NE",
	LT:                 "LT",
	LE:                 "LE",
	GT:                 "GT",
	GE:                 "GE",
	ASSIGN:             "ASSIGN",
	ARROW:              "ARROW",
	QUESTION:           "QUESTION",
	LPAREN:             "LPAREN",
	RPAREN:             "RPAREN",
	LBRACE:             "LBRACE",
	RBRACE:             "RBRACE",
	LBRACKET:           "LBRACKET",
	RBRACKET:           "RBRACKET",
	COMMA:              "COMMA",
	SEMICOLON:          "SEMICOLON",
	COLON:              "COLON",
	DOT:                "DOT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// isDirection reports whether t is one of the four direction keywords.
// The parser uses this to disambiguate the two MOVE forms.
func isDirection(t TokenType) bool {
	return t == LEFT || t == RIGHT || t == UP || t == DOWN
}

func isPopupAction(t TokenType) bool {
	return t == SHOW || t == HIDE || t == TOGGLE
}

// isStatementStart reports whether t can begin a statement. Panic-mode
// recovery skips forward to one of these (or past a semicolon).
func isStatementStart(t TokenType) bool {
	switch t {
	case MOVE, PAUSE, RESET_POSITION, LOOP, IF, BREAK, CONTINUE, SYNC,
		WAIT_FOR, PERIOD, START_AT, SEGMENT, POSITION_AT, SCHEDULE_AT,
		ON_VARIABLE_CHANGE, SCROLL, SLIDE, POPUP:
		return true
	}
	return false
}

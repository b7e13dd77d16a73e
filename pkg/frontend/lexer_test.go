// Package frontend - Tests for the Marquee lexer
package frontend

import (
	"testing"
)

// scanNoEOF tokenizes and strips the trailing EOF for easier assertions.
func scanNoEOF(t *testing.T, source string) []Token {
	t.Helper()
	tokens := Scan(source)
	if len(tokens) == 0 {
		t.Fatal("expected at least the EOF token")
	}
	last := tokens[len(tokens)-1]
	if last.Type != EOF {
		t.Fatalf("stream not EOF-terminated, last token %v", last)
	}
	return tokens[:len(tokens)-1]
}

func TestScanEmpty(t *testing.T) {
	tokens := Scan("")
	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected lone EOF, got %v", tokens)
	}
}

func TestScanKeywords(t *testing.T) {
	tests := []struct {
		source string
		want   TokenType
	}{
		{"MOVE", MOVE},
		{"PAUSE", PAUSE},
		{"RESET_POSITION", RESET_POSITION},
		{"LOOP", LOOP},
		{"INFINITE", INFINITE},
		{"AS", AS},
		{"IF", IF},
		{"ELSEIF", ELSEIF},
		{"ELSE", ELSE},
		{"END", END},
		{"BREAK", BREAK},
		{"CONTINUE", CONTINUE},
		{"SYNC", SYNC},
		{"WAIT_FOR", WAIT_FOR},
		{"PERIOD", PERIOD},
		{"START_AT", START_AT},
		{"SEGMENT", SEGMENT},
		{"POSITION_AT", POSITION_AT},
		{"SCHEDULE_AT", SCHEDULE_AT},
		{"ON_VARIABLE_CHANGE", ON_VARIABLE_CHANGE},
		{"SCROLL", SCROLL},
		{"SLIDE", SLIDE},
		{"POPUP", POPUP},
		{"LEFT", LEFT},
		{"RIGHT", RIGHT},
		{"UP", UP},
		{"DOWN", DOWN},
		{"SHOW", SHOW},
		{"HIDE", HIDE},
		{"TOGGLE", TOGGLE},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := scanNoEOF(t, tt.source)
			if len(tokens) != 1 {
				t.Fatalf("expected 1 token, got %d", len(tokens))
			}
			if tokens[0].Type != tt.want {
				t.Errorf("expected %v, got %v", tt.want, tokens[0].Type)
			}
		})
	}
}

func TestScanKeywordsCaseSensitive(t *testing.T) {
	tokens := scanNoEOF(t, "move Loop pause")
	for _, tok := range tokens {
		if tok.Type != IDENTIFIER {
			t.Errorf("lowercase keyword %q should be IDENTIFIER, got %v", tok.Lexeme, tok.Type)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.14", 3.14},
		{"100", 100},
	}
	for _, tt := range tests {
		tokens := scanNoEOF(t, tt.source)
		if len(tokens) != 1 || tokens[0].Type != NUMBER {
			t.Fatalf("%q: expected one NUMBER, got %v", tt.source, tokens)
		}
		if got := tokens[0].Literal.(float64); got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.source, tt.want, got)
		}
	}
}

func TestScanDotNotFractionalWithoutDigit(t *testing.T) {
	// "1." is the number 1 followed by DOT, not a float
	tokens := scanNoEOF(t, "1.x")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if tokens[0].Type != NUMBER || tokens[0].Literal.(float64) != 1 {
		t.Errorf("expected NUMBER 1, got %v", tokens[0])
	}
	if tokens[1].Type != DOT {
		t.Errorf("expected DOT, got %v", tokens[1].Type)
	}
	if tokens[2].Type != IDENTIFIER {
		t.Errorf("expected IDENTIFIER, got %v", tokens[2].Type)
	}
}

func TestScanSignFusion(t *testing.T) {
	// A '-' before a digit fuses into a negative literal after '(' or ','
	tokens := scanNoEOF(t, "(-5, -10)")
	want := []TokenType{LPAREN, NUMBER, COMMA, NUMBER, RPAREN}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d: expected %v, got %v", i, w, tokens[i].Type)
		}
	}
	if tokens[1].Literal.(float64) != -5 {
		t.Errorf("expected -5, got %v", tokens[1].Literal)
	}
	if tokens[3].Literal.(float64) != -10 {
		t.Errorf("expected -10, got %v", tokens[3].Literal)
	}
}

func TestScanSignFusionSuppressedAfterValue(t *testing.T) {
	// x-1 is subtraction, not x followed by -1
	tests := []struct {
		source string
		want   []TokenType
	}{
		{"x-1", []TokenType{IDENTIFIER, MINUS, NUMBER}},
		{"5-1", []TokenType{NUMBER, MINUS, NUMBER}},
		{"(x)-1", []TokenType{LPAREN, IDENTIFIER, RPAREN, MINUS, NUMBER}},
		{"a[0]-1", []TokenType{IDENTIFIER, LBRACKET, NUMBER, RBRACKET, MINUS, NUMBER}},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := scanNoEOF(t, tt.source)
			if len(tokens) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %v", len(tt.want), tokens)
			}
			for i, w := range tt.want {
				if tokens[i].Type != w {
					t.Errorf("token %d: expected %v, got %v", i, w, tokens[i].Type)
				}
			}
		})
	}
}

func TestScanStringVerbatim(t *testing.T) {
	// No escape processing: backslashes stay as-is
	tokens := scanNoEOF(t, `"hello \n world"`)
	if len(tokens) != 1 || tokens[0].Type != STRING {
		t.Fatalf("expected one STRING, got %v", tokens)
	}
	if got := tokens[0].Literal.(string); got != `hello \n world` {
		t.Errorf("expected verbatim contents, got %q", got)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens := Scan(`"no closing quote`)
	if len(tokens) != 2 {
		t.Fatalf("expected ERROR + EOF, got %v", tokens)
	}
	if tokens[0].Type != ERROR {
		t.Errorf("expected ERROR token, got %v", tokens[0].Type)
	}
	if tokens[1].Type != EOF {
		t.Errorf("stream must still end with EOF")
	}
}

func TestScanComments(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"hash", "# a comment\nMOVE"},
		{"slashes", "// a comment\nMOVE"},
		{"block", "/* a comment */ MOVE"},
		{"nested block", "/* outer /* inner */ still outer */ MOVE"},
		{"multiline block", "/* line one\nline two */ MOVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanNoEOF(t, tt.source)
			if len(tokens) != 1 || tokens[0].Type != MOVE {
				t.Fatalf("expected just MOVE, got %v", tokens)
			}
		})
	}
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	tokens := Scan("/* never closed")
	if len(tokens) != 2 || tokens[0].Type != ERROR {
		t.Fatalf("expected ERROR + EOF, got %v", tokens)
	}
}

func TestScanUnrecognizedCharacterIsSoft(t *testing.T) {
	// An unknown character yields an embedded ERROR token and scanning continues
	tokens := scanNoEOF(t, "@ MOVE")
	if len(tokens) != 2 {
		t.Fatalf("expected ERROR + MOVE, got %v", tokens)
	}
	if tokens[0].Type != ERROR {
		t.Errorf("expected ERROR first, got %v", tokens[0].Type)
	}
	if tokens[1].Type != MOVE {
		t.Errorf("scanning must continue past the bad character")
	}
}

func TestScanOperators(t *testing.T) {
	tokens := scanNoEOF(t, "+ * / % == != < <= > >= = => ? : .")
	want := []TokenType{PLUS, STAR, SLASH, PERCENT, EQ, NE, LT, LE, GT, GE, ASSIGN, ARROW, QUESTION, COLON, DOT}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d: expected %v, got %v", i, w, tokens[i].Type)
		}
	}
}

func TestScanPositions(t *testing.T) {
	tokens := scanNoEOF(t, "MOVE\n  PAUSE")
	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Errorf("MOVE at 1:1, got %d:%d", tokens[0].Line, tokens[0].Col)
	}
	if tokens[1].Line != 2 || tokens[1].Col != 3 {
		t.Errorf("PAUSE at 2:3, got %d:%d", tokens[1].Line, tokens[1].Col)
	}
}

func TestScanFullStatement(t *testing.T) {
	tokens := scanNoEOF(t, `MOVE(LEFT, 100) {easing="linear"};`)
	want := []TokenType{MOVE, LPAREN, LEFT, COMMA, NUMBER, RPAREN, LBRACE, IDENTIFIER, ASSIGN, STRING, RBRACE, SEMICOLON}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d: expected %v, got %v", i, w, tokens[i].Type)
		}
	}
}

// Package frontend - Recursive descent parser for the Marquee animation DSL
// Design: Predictive parsing, one monotonic pass over the token stream,
// panic-mode recovery per statement
package frontend

import (
	"fmt"
)

// ParseError is an unexpected-token diagnostic. It is used as a recoverable
// signal inside the parser and surfaced in the list Parse returns; it never
// escapes Parse as control flow.
type ParseError struct {
	Loc     Location
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Loc.Line, e.Loc.Col, e.Message)
}

// Parser consumes a token stream and produces a Program. It is single-use:
// construct, call Parse once, discard. On a syntax error the parser records
// the diagnostic and synchronizes forward to the next statement boundary, so
// one call can report several independent errors while still returning every
// well-formed statement. The token cursor only moves forward; total work is
// linear in the number of tokens.
type Parser struct {
	tokens []Token
	pos    int
	errors []ParseError
}

// NewParser wraps an already-scanned token stream. The stream must be
// EOF-terminated, as produced by Scan.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF, Line: 1, Col: 1})
	}
	return &Parser{tokens: tokens}
}

// Parse builds the Program. The returned Program is never nil; malformed
// input yields the statements that did parse plus a non-empty error list.
func (p *Parser) Parse() (*Program, []ParseError) {
	program := &Program{}
	for !p.check(EOF) {
		start := p.pos
		stmt, err := p.statement()
		if err != nil {
			p.record(err)
			p.synchronize(start)
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, p.errors
}

// statement dispatches on the leading keyword.
func (p *Parser) statement() (Stmt, error) {
	tok := p.current()
	switch tok.Type {
	case MOVE:
		return p.moveStatement()
	case PAUSE:
		return p.pauseStatement()
	case RESET_POSITION:
		return p.resetPositionStatement()
	case LOOP:
		return p.loopStatement()
	case IF:
		return p.ifStatement()
	case BREAK:
		p.advance()
		if _, err := p.consume(SEMICOLON, "expected ';' after BREAK"); err != nil {
			return nil, err
		}
		return &BreakStatement{Loc: tokenLoc(tok)}, nil
	case CONTINUE:
		p.advance()
		if _, err := p.consume(SEMICOLON, "expected ';' after CONTINUE"); err != nil {
			return nil, err
		}
		return &ContinueStatement{Loc: tokenLoc(tok)}, nil
	case SYNC:
		return p.syncStatement()
	case WAIT_FOR:
		return p.waitForStatement()
	case PERIOD:
		return p.periodStatement()
	case START_AT:
		return p.startAtStatement()
	case SEGMENT:
		return p.segmentStatement()
	case POSITION_AT:
		return p.positionAtStatement()
	case SCHEDULE_AT:
		return p.scheduleAtStatement()
	case ON_VARIABLE_CHANGE:
		return p.onVariableChangeStatement()
	case SCROLL:
		return p.scrollStatement()
	case SLIDE:
		return p.slideStatement()
	case POPUP:
		return p.popupStatement()
	case ERROR:
		p.advance()
		return nil, p.errorAt(tok, tok.Lexeme)
	default:
		return nil, p.errorAt(tok, fmt.Sprintf("unexpected token %s at start of statement", tok.Type))
	}
}

// moveStatement parses both MOVE forms. The parenthesized list opening with
// a direction keyword selects MOVE(direction, distance); anything else is
// the coordinate form MOVE(startX, endX[, startY, endY]).
func (p *Parser) moveStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after MOVE"); err != nil {
		return nil, err
	}

	stmt := &MoveStatement{Loc: tokenLoc(kw)}

	if isDirection(p.current().Type) {
		stmt.Direction = p.advance().Type
		if _, err := p.consume(COMMA, "expected ',' after direction"); err != nil {
			return nil, err
		}
		distance, err := p.expression()
		if err != nil {
			return nil, err
		}
		stmt.Distance = distance
	} else {
		args, err := p.expressionList(RPAREN)
		if err != nil {
			return nil, err
		}
		switch len(args) {
		case 2:
			stmt.StartX, stmt.EndX = args[0], args[1]
		case 4:
			stmt.StartX, stmt.EndX = args[0], args[1]
			stmt.StartY, stmt.EndY = args[2], args[3]
		default:
			return nil, p.errorAt(kw, fmt.Sprintf("MOVE expects (startX, endX) or (startX, endX, startY, endY), got %d arguments", len(args)))
		}
	}

	if _, err := p.consume(RPAREN, "expected ')' to close MOVE arguments"); err != nil {
		return nil, err
	}
	opts, err := p.optionalOptions()
	if err != nil {
		return nil, err
	}
	stmt.Options = opts
	if _, err := p.consume(SEMICOLON, "expected ';' after MOVE"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) pauseStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after PAUSE"); err != nil {
		return nil, err
	}
	duration, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "expected ')' after PAUSE duration"); err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after PAUSE"); err != nil {
		return nil, err
	}
	return &PauseStatement{Duration: duration, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) resetPositionStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after RESET_POSITION"); err != nil {
		return nil, err
	}
	stmt := &ResetPositionStatement{Loc: tokenLoc(kw)}
	if p.check(LBRACE) {
		opts, err := p.optionsMap()
		if err != nil {
			return nil, err
		}
		stmt.Options = opts
	}
	if _, err := p.consume(RPAREN, "expected ')' after RESET_POSITION"); err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after RESET_POSITION"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) loopStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after LOOP"); err != nil {
		return nil, err
	}

	stmt := &LoopStatement{Loc: tokenLoc(kw)}
	if p.check(INFINITE) {
		p.advance()
		stmt.Count = &InfiniteCount{}
	} else {
		count, err := p.expression()
		if err != nil {
			return nil, err
		}
		stmt.Count = &FiniteCount{Value: count}
	}

	if p.check(AS) {
		p.advance()
		name, err := p.consume(IDENTIFIER, "expected loop name after AS")
		if err != nil {
			return nil, err
		}
		stmt.Name = name.Lexeme
	}

	if _, err := p.consume(RPAREN, "expected ')' after loop count"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	if err := p.endStatement("LOOP"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) ifStatement() (Stmt, error) {
	kw := p.advance()
	cond, err := p.parenCondition("IF")
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}

	stmt := &IfStatement{Cond: cond, Then: then, Loc: tokenLoc(kw)}

	for p.check(ELSEIF) {
		p.advance()
		branchCond, err := p.parenCondition("ELSEIF")
		if err != nil {
			return nil, err
		}
		branchBody, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ElseIfBranch{Cond: branchCond, Body: branchBody})
	}

	if p.check(ELSE) {
		p.advance()
		elseBody, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.ElseBody = elseBody
	}

	if err := p.endStatement("IF"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) syncStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after SYNC"); err != nil {
		return nil, err
	}
	event, err := p.consume(IDENTIFIER, "expected event name in SYNC")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "expected ')' after event name"); err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after SYNC"); err != nil {
		return nil, err
	}
	return &SyncStatement{Event: event.Lexeme, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) waitForStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after WAIT_FOR"); err != nil {
		return nil, err
	}
	event, err := p.consume(IDENTIFIER, "expected event name in WAIT_FOR")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(COMMA, "expected ',' after event name"); err != nil {
		return nil, err
	}
	ticks, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "expected ')' after WAIT_FOR ticks"); err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after WAIT_FOR"); err != nil {
		return nil, err
	}
	return &WaitForStatement{Event: event.Lexeme, Ticks: ticks, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) periodStatement() (Stmt, error) {
	kw := p.advance()
	ticks, err := p.parenExpression("PERIOD")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after PERIOD"); err != nil {
		return nil, err
	}
	return &PeriodStatement{Ticks: ticks, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) startAtStatement() (Stmt, error) {
	kw := p.advance()
	tick, err := p.parenExpression("START_AT")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after START_AT"); err != nil {
		return nil, err
	}
	return &StartAtStatement{Tick: tick, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) segmentStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after SEGMENT"); err != nil {
		return nil, err
	}
	name, err := p.consume(IDENTIFIER, "expected segment name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(COMMA, "expected ',' after segment name"); err != nil {
		return nil, err
	}
	startTick, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(COMMA, "expected ',' after segment start tick"); err != nil {
		return nil, err
	}
	endTick, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "expected ')' after segment end tick"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement("SEGMENT"); err != nil {
		return nil, err
	}
	return &SegmentStatement{
		Name:      name.Lexeme,
		StartTick: startTick,
		EndTick:   endTick,
		Body:      body,
		Loc:       tokenLoc(kw),
	}, nil
}

func (p *Parser) positionAtStatement() (Stmt, error) {
	kw := p.advance()
	tick, err := p.parenExpression("POSITION_AT")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ARROW, "expected '=>' after POSITION_AT tick"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement("POSITION_AT"); err != nil {
		return nil, err
	}
	return &PositionAtStatement{Tick: tick, Body: body, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) scheduleAtStatement() (Stmt, error) {
	kw := p.advance()
	tick, err := p.parenExpression("SCHEDULE_AT")
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement("SCHEDULE_AT"); err != nil {
		return nil, err
	}
	return &ScheduleAtStatement{Tick: tick, Body: body, Loc: tokenLoc(kw)}, nil
}

// onVariableChangeStatement accepts a single variable or a bracketed list:
// ON_VARIABLE_CHANGE(temp) and ON_VARIABLE_CHANGE([temp, humidity]).
func (p *Parser) onVariableChangeStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after ON_VARIABLE_CHANGE"); err != nil {
		return nil, err
	}

	var vars []string
	if p.check(LBRACKET) {
		p.advance()
		for {
			name, err := p.consume(IDENTIFIER, "expected variable name")
			if err != nil {
				return nil, err
			}
			vars = append(vars, name.Lexeme)
			if !p.check(COMMA) {
				break
			}
			p.advance()
		}
		if _, err := p.consume(RBRACKET, "expected ']' after variable list"); err != nil {
			return nil, err
		}
	} else {
		name, err := p.consume(IDENTIFIER, "expected variable name")
		if err != nil {
			return nil, err
		}
		vars = append(vars, name.Lexeme)
	}

	if _, err := p.consume(RPAREN, "expected ')' after ON_VARIABLE_CHANGE variables"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement("ON_VARIABLE_CHANGE"); err != nil {
		return nil, err
	}
	return &OnVariableChangeStatement{Variables: vars, Body: body, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) scrollStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after SCROLL"); err != nil {
		return nil, err
	}
	if !isDirection(p.current().Type) {
		return nil, p.errorAt(p.current(), "expected direction in SCROLL")
	}
	stmt := &ScrollStatement{Direction: p.advance().Type, Loc: tokenLoc(kw)}

	if p.check(COMMA) {
		p.advance()
		distance, err := p.expression()
		if err != nil {
			return nil, err
		}
		stmt.Distance = distance
	}
	if _, err := p.consume(RPAREN, "expected ')' after SCROLL arguments"); err != nil {
		return nil, err
	}
	opts, err := p.optionalOptions()
	if err != nil {
		return nil, err
	}
	stmt.Options = opts
	if _, err := p.consume(SEMICOLON, "expected ';' after SCROLL"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) slideStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after SLIDE"); err != nil {
		return nil, err
	}
	if !isDirection(p.current().Type) {
		return nil, p.errorAt(p.current(), "expected direction in SLIDE")
	}
	direction := p.advance().Type
	if _, err := p.consume(COMMA, "expected ',' after SLIDE direction"); err != nil {
		return nil, err
	}
	distance, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "expected ')' after SLIDE arguments"); err != nil {
		return nil, err
	}
	opts, err := p.optionalOptions()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after SLIDE"); err != nil {
		return nil, err
	}
	return &SlideStatement{Direction: direction, Distance: distance, Options: opts, Loc: tokenLoc(kw)}, nil
}

func (p *Parser) popupStatement() (Stmt, error) {
	kw := p.advance()
	if _, err := p.consume(LPAREN, "expected '(' after POPUP"); err != nil {
		return nil, err
	}
	if !isPopupAction(p.current().Type) {
		return nil, p.errorAt(p.current(), "expected SHOW, HIDE or TOGGLE in POPUP")
	}
	action := p.advance().Type
	if _, err := p.consume(RPAREN, "expected ')' after POPUP action"); err != nil {
		return nil, err
	}
	opts, err := p.optionalOptions()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "expected ';' after POPUP"); err != nil {
		return nil, err
	}
	return &PopUpStatement{Action: action, Options: opts, Loc: tokenLoc(kw)}, nil
}

// block parses `{ statements }`. Errors inside the block are recorded and
// recovery continues within it, so one bad statement does not discard its
// siblings.
func (p *Parser) block() (*Block, error) {
	lb, err := p.consume(LBRACE, "expected '{'")
	if err != nil {
		return nil, err
	}
	blk := &Block{Loc: tokenLoc(lb)}
	for !p.check(RBRACE) && !p.check(EOF) {
		if p.check(END) {
			// Missing '}' - report at END rather than swallowing it.
			return nil, p.errorAt(p.current(), "expected '}' before END")
		}
		start := p.pos
		stmt, err := p.statement()
		if err != nil {
			p.record(err)
			p.synchronize(start)
			continue
		}
		blk.Statements = append(blk.Statements, stmt)
	}
	if _, err := p.consume(RBRACE, "expected '}' to close block"); err != nil {
		return nil, err
	}
	return blk, nil
}

// endStatement consumes the `END;` that closes every block construct.
func (p *Parser) endStatement(construct string) error {
	if _, err := p.consume(END, fmt.Sprintf("expected END after %s block", construct)); err != nil {
		return err
	}
	if _, err := p.consume(SEMICOLON, fmt.Sprintf("expected ';' after END of %s", construct)); err != nil {
		return err
	}
	return nil
}

func (p *Parser) parenExpression(construct string) (Expr, error) {
	if _, err := p.consume(LPAREN, fmt.Sprintf("expected '(' after %s", construct)); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, fmt.Sprintf("expected ')' after %s argument", construct)); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parenCondition(construct string) (Condition, error) {
	if _, err := p.consume(LPAREN, fmt.Sprintf("expected '(' after %s", construct)); err != nil {
		return Condition{}, err
	}
	cond, err := p.condition()
	if err != nil {
		return Condition{}, err
	}
	if _, err := p.consume(RPAREN, fmt.Sprintf("expected ')' after %s condition", construct)); err != nil {
		return Condition{}, err
	}
	return cond, nil
}

// condition is exactly one comparison: additive CMP additive.
func (p *Parser) condition() (Condition, error) {
	left, err := p.additive()
	if err != nil {
		return Condition{}, err
	}
	op := p.current()
	if !isComparison(op.Type) {
		return Condition{}, p.errorAt(op, "expected comparison operator in condition")
	}
	p.advance()
	right, err := p.additive()
	if err != nil {
		return Condition{}, err
	}
	return Condition{Left: left, Op: op.Type, Right: right, Loc: left.Pos()}, nil
}

// expressionList parses comma-separated expressions up to (not consuming)
// the given closing token.
func (p *Parser) expressionList(closing TokenType) ([]Expr, error) {
	var list []Expr
	if p.check(closing) {
		return list, nil
	}
	for {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
		if !p.check(COMMA) {
			return list, nil
		}
		p.advance()
	}
}

// optionalOptions parses a trailing `{ name=value, ... }` map if present.
func (p *Parser) optionalOptions() (*Options, error) {
	if !p.check(LBRACE) {
		return nil, nil
	}
	return p.optionsMap()
}

func (p *Parser) optionsMap() (*Options, error) {
	if _, err := p.consume(LBRACE, "expected '{' to open options"); err != nil {
		return nil, err
	}
	opts := NewOptions()
	for !p.check(RBRACE) {
		name, err := p.consume(IDENTIFIER, "expected option name")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(ASSIGN, "expected '=' after option name"); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		// last-wins on duplicate names
		opts.Set(name.Lexeme, value)
		if !p.check(COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(RBRACE, "expected '}' to close options"); err != nil {
		return nil, err
	}
	return opts, nil
}

// Expression grammar: factor -> term (* / %) -> additive (+ -) -> at most
// one trailing comparison, then at most one ternary.

func (p *Parser) expression() (Expr, error) {
	expr, err := p.additive()
	if err != nil {
		return nil, err
	}
	if isComparison(p.current().Type) {
		op := p.advance()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op.Type, Right: right, Loc: expr.Pos()}
	}
	if p.check(QUESTION) {
		p.advance()
		thenExpr, err := p.additive()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(COLON, "expected ':' in ternary expression"); err != nil {
			return nil, err
		}
		elseExpr, err := p.additive()
		if err != nil {
			return nil, err
		}
		expr = &TernaryExpr{Cond: expr, Then: thenExpr, Else: elseExpr, Loc: expr.Pos()}
	}
	return expr, nil
}

func (p *Parser) additive() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.check(PLUS) || p.check(MINUS) {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op.Type, Right: right, Loc: expr.Pos()}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.check(STAR) || p.check(SLASH) || p.check(PERCENT) {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op.Type, Right: right, Loc: expr.Pos()}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	tok := p.current()
	switch tok.Type {
	case MINUS:
		p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: MINUS, Operand: operand, Loc: tokenLoc(tok)}, nil
	case NUMBER, STRING:
		p.advance()
		return &Literal{Value: tok.Literal, Loc: tokenLoc(tok)}, nil
	case IDENTIFIER:
		p.advance()
		if p.check(LPAREN) {
			return p.callExpr(tok)
		}
		return p.postfix(&Variable{Name: tok.Lexeme, Loc: tokenLoc(tok)})
	case LPAREN:
		p.advance()
		elems, err := p.expressionList(RPAREN)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RPAREN, "expected ')'"); err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			return nil, p.errorAt(tok, "empty parenthesized expression")
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return &TupleExpr{Elements: elems, Loc: tokenLoc(tok)}, nil
	case ERROR:
		p.advance()
		return nil, p.errorAt(tok, tok.Lexeme)
	default:
		return nil, p.errorAt(tok, fmt.Sprintf("unexpected token %s in expression", tok.Type))
	}
}

func (p *Parser) callExpr(name Token) (Expr, error) {
	p.advance() // '('
	args, err := p.expressionList(RPAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "expected ')' after call arguments"); err != nil {
		return nil, err
	}
	return p.postfix(&CallExpr{Func: name.Lexeme, Args: args, Loc: tokenLoc(name)})
}

// postfix applies `.prop` and `[index]` chains by repeated nesting.
func (p *Parser) postfix(expr Expr) (Expr, error) {
	for {
		switch p.current().Type {
		case DOT:
			dot := p.advance()
			prop, err := p.consume(IDENTIFIER, "expected property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &PropertyAccess{Object: expr, Property: prop.Lexeme, Loc: tokenLoc(dot)}
		case LBRACKET:
			lb := p.advance()
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(RBRACKET, "expected ']' after index"); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Object: expr, Index: index, Loc: tokenLoc(lb)}
		default:
			return expr, nil
		}
	}
}

// synchronize discards tokens until a statement boundary: just past a
// semicolon, or before a statement keyword, '}' or END. Guarantees at least
// one token of progress when the failed attempt consumed none.
func (p *Parser) synchronize(start int) {
	if p.pos == start && !p.check(EOF) {
		p.advance()
	}
	for !p.check(EOF) {
		t := p.current().Type
		if t == SEMICOLON {
			p.advance()
			return
		}
		if isStatementStart(t) || t == RBRACE || t == END {
			return
		}
		p.advance()
	}
}

func (p *Parser) record(err error) {
	if pe, ok := err.(*ParseError); ok {
		p.errors = append(p.errors, *pe)
		return
	}
	p.errors = append(p.errors, ParseError{Message: err.Error()})
}

func (p *Parser) current() Token {
	return p.tokens[p.pos]
}

func (p *Parser) check(typ TokenType) bool {
	return p.current().Type == typ
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) consume(typ TokenType, msg string) (Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	tok := p.current()
	return Token{}, p.errorAt(tok, fmt.Sprintf("%s, got %s", msg, tok.Type))
}

func (p *Parser) errorAt(tok Token, msg string) error {
	return &ParseError{Loc: tokenLoc(tok), Message: msg}
}

func isComparison(t TokenType) bool {
	switch t {
	case EQ, NE, LT, LE, GT, GE:
		return true
	}
	return false
}

func tokenLoc(tok Token) Location {
	return Location{Line: tok.Line, Col: tok.Col}
}

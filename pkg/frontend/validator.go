// Package frontend - Semantic validation for Marquee programs
// Design: Read-only tree walk, every discoverable error collected in one pass
package frontend

import (
	"fmt"
	"math"
)

// ValidationError is a semantic diagnostic. Validation errors are always
// returned, never thrown; a program with errors is still a complete AST.
type ValidationError struct {
	Loc     Location
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Loc.Line, e.Loc.Col, e.Message)
}

type optionKind int

const (
	intOption optionKind = iota
	stringOption
)

// Option allow-lists per statement kind. Unknown names and literal values of
// the wrong type are errors; non-literal values are left to the animation
// engine.
var (
	moveOptions = map[string]optionKind{
		"step":     intOption,
		"interval": intOption,
		"easing":   stringOption,
		"gap":      intOption,
	}
	resetOptions = map[string]optionKind{
		"mode":     stringOption,
		"duration": intOption,
	}
	scrollOptions = map[string]optionKind{
		"step":     intOption,
		"interval": intOption,
		"gap":      intOption,
	}
	slideOptions = map[string]optionKind{
		"duration": intOption,
		"easing":   stringOption,
	}
	popupOptions = map[string]optionKind{
		"duration": intOption,
		"pause":    intOption,
	}
)

var resetModes = map[string]bool{
	"seamless": true,
	"instant":  true,
	"fade":     true,
}

type eventUse struct {
	name string
	loc  Location
}

type segmentRange struct {
	name  string
	start float64
	end   float64
	loc   Location
}

// Validator holds the per-call analysis state: the error accumulator, the
// program-wide sync event sets, literal segment ranges for the overlap
// check, the in-loop flag and the open loop-name stack. All of it is local
// to one Validate call.
type Validator struct {
	errors        []ValidationError
	definedEvents map[string]bool
	usedEvents    []eventUse
	segments      []segmentRange
	inLoop        bool
	loopNames     []string
}

func NewValidator() *Validator {
	return &Validator{
		definedEvents: make(map[string]bool),
	}
}

// Validate walks the program and returns every semantic error found. It
// never mutates the tree and never stops early.
func Validate(program *Program) []ValidationError {
	return NewValidator().Validate(program)
}

func (v *Validator) Validate(program *Program) []ValidationError {
	if program == nil {
		return nil
	}
	for _, stmt := range program.Statements {
		v.statement(stmt, true)
	}
	v.checkUndefinedEvents()
	v.checkSegmentOverlap()
	return v.errors
}

func (v *Validator) statement(s Stmt, topLevel bool) {
	switch stmt := s.(type) {
	case *Block:
		for _, inner := range stmt.Statements {
			v.statement(inner, false)
		}
	case *MoveStatement:
		v.move(stmt)
	case *PauseStatement:
		if n, ok := numberLiteral(stmt.Duration); ok && n < 0 {
			v.errorf(stmt.Loc, "PAUSE duration must be non-negative, got %s", formatNumber(n))
		}
	case *ResetPositionStatement:
		v.options(stmt.Loc, stmt.Options, resetOptions, "RESET_POSITION")
		v.resetMode(stmt)
	case *LoopStatement:
		v.loop(stmt)
	case *IfStatement:
		v.block(stmt.Then)
		for _, branch := range stmt.ElseIfs {
			v.block(branch.Body)
		}
		if stmt.ElseBody != nil {
			v.block(stmt.ElseBody)
		}
	case *BreakStatement:
		if !v.inLoop {
			v.errorf(stmt.Loc, "BREAK is only allowed inside a loop")
		}
	case *ContinueStatement:
		if !v.inLoop {
			v.errorf(stmt.Loc, "CONTINUE is only allowed inside a loop")
		}
	case *SyncStatement:
		v.definedEvents[stmt.Event] = true
	case *WaitForStatement:
		v.usedEvents = append(v.usedEvents, eventUse{name: stmt.Event, loc: stmt.Loc})
		if n, ok := numberLiteral(stmt.Ticks); ok && n <= 0 {
			v.errorf(stmt.Loc, "WAIT_FOR ticks must be positive, got %s", formatNumber(n))
		}
	case *PeriodStatement:
		v.timelinePlacement(stmt.Loc, "PERIOD", topLevel)
		if n, ok := numberLiteral(stmt.Ticks); ok && n <= 0 {
			v.errorf(stmt.Loc, "PERIOD ticks must be positive, got %s", formatNumber(n))
		}
	case *StartAtStatement:
		v.timelinePlacement(stmt.Loc, "START_AT", topLevel)
		if n, ok := numberLiteral(stmt.Tick); ok && n < 0 {
			v.errorf(stmt.Loc, "START_AT tick must be non-negative, got %s", formatNumber(n))
		}
	case *SegmentStatement:
		v.segment(stmt, topLevel)
	case *PositionAtStatement:
		v.timelinePlacement(stmt.Loc, "POSITION_AT", topLevel)
		if n, ok := numberLiteral(stmt.Tick); ok && n < 0 {
			v.errorf(stmt.Loc, "POSITION_AT tick must be non-negative, got %s", formatNumber(n))
		}
		v.block(stmt.Body)
	case *ScheduleAtStatement:
		v.timelinePlacement(stmt.Loc, "SCHEDULE_AT", topLevel)
		if n, ok := numberLiteral(stmt.Tick); ok && n < 0 {
			v.errorf(stmt.Loc, "SCHEDULE_AT tick must be non-negative, got %s", formatNumber(n))
		}
		v.block(stmt.Body)
	case *OnVariableChangeStatement:
		v.block(stmt.Body)
	case *ScrollStatement:
		v.options(stmt.Loc, stmt.Options, scrollOptions, "SCROLL")
	case *SlideStatement:
		v.options(stmt.Loc, stmt.Options, slideOptions, "SLIDE")
	case *PopUpStatement:
		v.options(stmt.Loc, stmt.Options, popupOptions, "POPUP")
	}
}

func (v *Validator) block(b *Block) {
	if b == nil {
		return
	}
	for _, stmt := range b.Statements {
		v.statement(stmt, false)
	}
}

func (v *Validator) move(stmt *MoveStatement) {
	if (stmt.StartY == nil) != (stmt.EndY == nil) {
		v.errorf(stmt.Loc, "MOVE start_y and end_y must both be given")
	}
	v.options(stmt.Loc, stmt.Options, moveOptions, "MOVE")
}

func (v *Validator) loop(stmt *LoopStatement) {
	switch count := stmt.Count.(type) {
	case *FiniteCount:
		if n, ok := numberLiteral(count.Value); ok && n <= 0 {
			v.errorf(stmt.Loc, "loop count must be positive, got %s", formatNumber(n))
		}
	case *InfiniteCount:
		// unbounded, nothing to check
	default:
		v.errorf(stmt.Loc, "loop count must be an expression or INFINITE")
	}

	if stmt.Name != "" {
		for _, open := range v.loopNames {
			if open == stmt.Name {
				v.errorf(stmt.Loc, "loop name %q shadows an enclosing loop", stmt.Name)
				break
			}
		}
		v.loopNames = append(v.loopNames, stmt.Name)
		defer func() { v.loopNames = v.loopNames[:len(v.loopNames)-1] }()
	}

	wasInLoop := v.inLoop
	v.inLoop = true
	v.block(stmt.Body)
	v.inLoop = wasInLoop
}

func (v *Validator) segment(stmt *SegmentStatement, topLevel bool) {
	v.timelinePlacement(stmt.Loc, "SEGMENT", topLevel)

	start, startOK := numberLiteral(stmt.StartTick)
	end, endOK := numberLiteral(stmt.EndTick)
	if startOK && start < 0 {
		v.errorf(stmt.Loc, "SEGMENT start tick must be non-negative, got %s", formatNumber(start))
	}
	if endOK && end < 0 {
		v.errorf(stmt.Loc, "SEGMENT end tick must be non-negative, got %s", formatNumber(end))
	}
	if startOK && endOK {
		if end < start {
			v.errorf(stmt.Loc, "SEGMENT %q end tick %s is before start tick %s", stmt.Name, formatNumber(end), formatNumber(start))
		} else {
			v.segments = append(v.segments, segmentRange{name: stmt.Name, start: start, end: end, loc: stmt.Loc})
		}
	}

	v.block(stmt.Body)
}

// timelinePlacement enforces the structural rule: timeline scheduling
// statements live at the top level of the program only.
func (v *Validator) timelinePlacement(loc Location, name string, topLevel bool) {
	if !topLevel {
		v.errorf(loc, "%s is only allowed at the top level of a program", name)
	}
}

func (v *Validator) options(loc Location, opts *Options, allowed map[string]optionKind, construct string) {
	if opts == nil {
		return
	}
	for _, name := range opts.Keys {
		kind, ok := allowed[name]
		if !ok {
			v.errorf(loc, "unknown %s option %q", construct, name)
			continue
		}
		value := opts.Values[name]
		lit, isLit := value.(*Literal)
		if !isLit {
			continue
		}
		switch kind {
		case intOption:
			n, isNum := lit.Value.(float64)
			if !isNum || n != math.Trunc(n) {
				v.errorf(lit.Loc, "%s option %q must be an integer", construct, name)
			}
		case stringOption:
			if _, isStr := lit.Value.(string); !isStr {
				v.errorf(lit.Loc, "%s option %q must be a string", construct, name)
			}
		}
	}
}

func (v *Validator) resetMode(stmt *ResetPositionStatement) {
	if stmt.Options == nil {
		return
	}
	value, ok := stmt.Options.Get("mode")
	if !ok {
		return
	}
	lit, isLit := value.(*Literal)
	if !isLit {
		return
	}
	mode, isStr := lit.Value.(string)
	if isStr && !resetModes[mode] {
		v.errorf(lit.Loc, "invalid mode %q: must be \"seamless\", \"instant\" or \"fade\"", mode)
	}
}

// checkUndefinedEvents reports each event awaited by WAIT_FOR but never
// declared by SYNC anywhere in the program. Forward references are legal, so
// this runs after the full walk; the diagnostic points at the first
// referencing WAIT_FOR.
func (v *Validator) checkUndefinedEvents() {
	reported := make(map[string]bool)
	for _, use := range v.usedEvents {
		if v.definedEvents[use.name] || reported[use.name] {
			continue
		}
		reported[use.name] = true
		v.errorf(use.loc, "sync event %q is never defined by SYNC", use.name)
	}
}

// checkSegmentOverlap compares every pair of literal segment ranges across
// the whole program, independent of statement order. Ranges overlap when
// their interiors intersect; adjacent segments sharing only an endpoint are
// legal.
func (v *Validator) checkSegmentOverlap() {
	for i := 0; i < len(v.segments); i++ {
		for j := i + 1; j < len(v.segments); j++ {
			a, b := v.segments[i], v.segments[j]
			if a.start < b.end && b.start < a.end {
				v.errorf(b.loc, "segments %q and %q overlap", a.name, b.name)
			}
		}
	}
}

func (v *Validator) errorf(loc Location, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{
		Loc:     loc,
		Message: fmt.Sprintf(format, args...),
	})
}

// numberLiteral extracts a numeric constant, folding a unary minus over a
// literal so that hand-built ASTs behave like lexed ones.
func numberLiteral(e Expr) (float64, bool) {
	switch expr := e.(type) {
	case *Literal:
		n, ok := expr.Value.(float64)
		return n, ok
	case *UnaryExpr:
		if expr.Op == MINUS {
			if n, ok := numberLiteral(expr.Operand); ok {
				return -n, true
			}
		}
	}
	return 0, false
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}

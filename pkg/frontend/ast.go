// Package frontend - AST node types for the Marquee animation DSL
//
// Design: Closed sum types via marker methods. Nodes are pure data, built
// once by the parser and never mutated afterwards; every node carries the
// source location of its first token for diagnostics.
package frontend

// Location is a 1-based (line, column) source position.
type Location struct {
	Line int
	Col  int
}

type Node interface {
	node()
}

// Expr is the closed set of expression variants.
type Expr interface {
	Node
	expr()
	Pos() Location
}

// Stmt is the closed set of statement variants.
type Stmt interface {
	Node
	stmt()
	Pos() Location
}

// Program is the root: top-level statements in source order.
type Program struct {
	Statements []Stmt
}

func (*Program) node() {}

// Expressions

// Literal holds a decoded constant: float64 for numbers, string for strings.
type Literal struct {
	Value any
	Loc   Location
}

// Variable is a bare identifier reference.
type Variable struct {
	Name string
	Loc  Location
}

type BinaryExpr struct {
	Left  Expr
	Op    TokenType
	Right Expr
	Loc   Location
}

// UnaryExpr is unary minus applied to a non-literal operand; negative
// numeric constants fold into Literal at lexing time.
type UnaryExpr struct {
	Op      TokenType
	Operand Expr
	Loc     Location
}

// PropertyAccess chains via nesting: widget.pos.x is
// PropertyAccess{PropertyAccess{Variable{widget}, pos}, x}.
type PropertyAccess struct {
	Object   Expr
	Property string
	Loc      Location
}

type IndexExpr struct {
	Object Expr
	Index  Expr
	Loc    Location
}

type CallExpr struct {
	Func string
	Args []Expr
	Loc  Location
}

type TupleExpr struct {
	Elements []Expr
	Loc      Location
}

// TernaryExpr is the single trailing `cond ? then : else` an expression
// may end with.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Loc  Location
}

func (*Literal) node()        {}
func (*Literal) expr()        {}
func (*Variable) node()       {}
func (*Variable) expr()       {}
func (*BinaryExpr) node()     {}
func (*BinaryExpr) expr()     {}
func (*UnaryExpr) node()      {}
func (*UnaryExpr) expr()      {}
func (*PropertyAccess) node() {}
func (*PropertyAccess) expr() {}
func (*IndexExpr) node()      {}
func (*IndexExpr) expr()      {}
func (*CallExpr) node()       {}
func (*CallExpr) expr()       {}
func (*TupleExpr) node()      {}
func (*TupleExpr) expr()      {}
func (*TernaryExpr) node()    {}
func (*TernaryExpr) expr()    {}

func (e *Literal) Pos() Location        { return e.Loc }
func (e *Variable) Pos() Location       { return e.Loc }
func (e *BinaryExpr) Pos() Location     { return e.Loc }
func (e *UnaryExpr) Pos() Location      { return e.Loc }
func (e *PropertyAccess) Pos() Location { return e.Loc }
func (e *IndexExpr) Pos() Location      { return e.Loc }
func (e *CallExpr) Pos() Location       { return e.Loc }
func (e *TupleExpr) Pos() Location      { return e.Loc }
func (e *TernaryExpr) Pos() Location    { return e.Loc }

// Condition is exactly one comparison, not a general boolean tree.
type Condition struct {
	Left  Expr
	Op    TokenType // EQ, NE, LT, LE, GT, GE
	Right Expr
	Loc   Location
}

// LoopCount is either a finite expression or unbounded. Closed pair of
// variants so no string sentinel is needed.
type LoopCount interface {
	loopCount()
}

type FiniteCount struct {
	Value Expr
}

type InfiniteCount struct{}

func (*FiniteCount) loopCount()   {}
func (*InfiniteCount) loopCount() {}

// Options is an order-preserving name → Expr map for `{ name=value, ... }`
// trailers. Duplicate keys are last-wins: the value is replaced in place and
// the key keeps its original position.
type Options struct {
	Keys   []string
	Values map[string]Expr
}

func NewOptions() *Options {
	return &Options{Values: make(map[string]Expr)}
}

func (o *Options) Set(name string, value Expr) {
	if _, ok := o.Values[name]; !ok {
		o.Keys = append(o.Keys, name)
	}
	o.Values[name] = value
}

func (o *Options) Get(name string) (Expr, bool) {
	v, ok := o.Values[name]
	return v, ok
}

func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Keys)
}

// Statements

type Block struct {
	Statements []Stmt
	Loc        Location
}

// MoveStatement has two mutually exclusive forms. The direction form sets
// Direction and Distance; the coordinate form sets StartX/EndX and
// optionally StartY/EndY (both or neither).
type MoveStatement struct {
	Direction TokenType // LEFT/RIGHT/UP/DOWN, zero value EOF when coordinate form
	Distance  Expr
	StartX    Expr
	EndX      Expr
	StartY    Expr
	EndY      Expr
	Options   *Options
	Loc       Location
}

type PauseStatement struct {
	Duration Expr
	Loc      Location
}

type ResetPositionStatement struct {
	Options *Options
	Loc     Location
}

type LoopStatement struct {
	Count LoopCount
	Name  string // optional AS name, "" when absent
	Body  *Block
	Loc   Location
}

type ElseIfBranch struct {
	Cond Condition
	Body *Block
}

type IfStatement struct {
	Cond     Condition
	Then     *Block
	ElseIfs  []ElseIfBranch
	ElseBody *Block // nil when absent
	Loc      Location
}

type BreakStatement struct {
	Loc Location
}

type ContinueStatement struct {
	Loc Location
}

type SyncStatement struct {
	Event string
	Loc   Location
}

type WaitForStatement struct {
	Event string
	Ticks Expr
	Loc   Location
}

type PeriodStatement struct {
	Ticks Expr
	Loc   Location
}

type StartAtStatement struct {
	Tick Expr
	Loc  Location
}

type SegmentStatement struct {
	Name      string
	StartTick Expr
	EndTick   Expr
	Body      *Block
	Loc       Location
}

type PositionAtStatement struct {
	Tick Expr
	Body *Block
	Loc  Location
}

type ScheduleAtStatement struct {
	Tick Expr
	Body *Block
	Loc  Location
}

type OnVariableChangeStatement struct {
	Variables []string
	Body      *Block
	Loc       Location
}

// High-level commands. These stay distinct node kinds; desugaring into
// primitive movement is the animation engine's business, not the parser's.

type ScrollStatement struct {
	Direction TokenType
	Distance  Expr // nil means continuous
	Options   *Options
	Loc       Location
}

type SlideStatement struct {
	Direction TokenType
	Distance  Expr
	Options   *Options
	Loc       Location
}

type PopUpStatement struct {
	Action  TokenType // SHOW, HIDE, TOGGLE
	Options *Options
	Loc     Location
}

func (*Block) node()                     {}
func (*Block) stmt()                     {}
func (*MoveStatement) node()             {}
func (*MoveStatement) stmt()             {}
func (*PauseStatement) node()            {}
func (*PauseStatement) stmt()            {}
func (*ResetPositionStatement) node()    {}
func (*ResetPositionStatement) stmt()    {}
func (*LoopStatement) node()             {}
func (*LoopStatement) stmt()             {}
func (*IfStatement) node()               {}
func (*IfStatement) stmt()               {}
func (*BreakStatement) node()            {}
func (*BreakStatement) stmt()            {}
func (*ContinueStatement) node()         {}
func (*ContinueStatement) stmt()         {}
func (*SyncStatement) node()             {}
func (*SyncStatement) stmt()             {}
func (*WaitForStatement) node()          {}
func (*WaitForStatement) stmt()          {}
func (*PeriodStatement) node()           {}
func (*PeriodStatement) stmt()           {}
func (*StartAtStatement) node()          {}
func (*StartAtStatement) stmt()          {}
func (*SegmentStatement) node()          {}
func (*SegmentStatement) stmt()          {}
func (*PositionAtStatement) node()       {}
func (*PositionAtStatement) stmt()       {}
func (*ScheduleAtStatement) node()       {}
func (*ScheduleAtStatement) stmt()       {}
func (*OnVariableChangeStatement) node() {}
func (*OnVariableChangeStatement) stmt() {}
func (*ScrollStatement) node()           {}
func (*ScrollStatement) stmt()           {}
func (*PopUpStatement) node()            {}
func (*PopUpStatement) stmt()            {}
func (*SlideStatement) node()            {}
func (*SlideStatement) stmt()            {}

func (s *Block) Pos() Location                     { return s.Loc }
func (s *MoveStatement) Pos() Location             { return s.Loc }
func (s *PauseStatement) Pos() Location            { return s.Loc }
func (s *ResetPositionStatement) Pos() Location    { return s.Loc }
func (s *LoopStatement) Pos() Location             { return s.Loc }
func (s *IfStatement) Pos() Location               { return s.Loc }
func (s *BreakStatement) Pos() Location            { return s.Loc }
func (s *ContinueStatement) Pos() Location         { return s.Loc }
func (s *SyncStatement) Pos() Location             { return s.Loc }
func (s *WaitForStatement) Pos() Location          { return s.Loc }
func (s *PeriodStatement) Pos() Location           { return s.Loc }
func (s *StartAtStatement) Pos() Location          { return s.Loc }
func (s *SegmentStatement) Pos() Location          { return s.Loc }
func (s *PositionAtStatement) Pos() Location       { return s.Loc }
func (s *ScheduleAtStatement) Pos() Location       { return s.Loc }
func (s *OnVariableChangeStatement) Pos() Location { return s.Loc }
func (s *ScrollStatement) Pos() Location           { return s.Loc }
func (s *SlideStatement) Pos() Location            { return s.Loc }
func (s *PopUpStatement) Pos() Location            { return s.Loc }

package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dhrone/tinyDisplay-sub002/pkg/frontend"
)

// dumpValue converts AST nodes into plain maps and slices for YAML output.
// Every variant of the statement and expression sum types is handled here;
// a new node kind fails loudly as kind "unknown" until added.

func dumpProgram(program *frontend.Program) []any {
	stmts := make([]any, 0, len(program.Statements))
	for _, s := range program.Statements {
		stmts = append(stmts, dumpStmt(s))
	}
	return stmts
}

func dumpStmt(s frontend.Stmt) map[string]any {
	m := map[string]any{"at": locString(s.Pos())}
	switch stmt := s.(type) {
	case *frontend.Block:
		m["kind"] = "block"
		m["statements"] = dumpBlock(stmt)
	case *frontend.MoveStatement:
		m["kind"] = "move"
		if stmt.Direction != frontend.EOF {
			m["direction"] = stmt.Direction.String()
			m["distance"] = dumpExpr(stmt.Distance)
		} else {
			m["start_x"] = dumpExpr(stmt.StartX)
			m["end_x"] = dumpExpr(stmt.EndX)
			if stmt.StartY != nil {
				m["start_y"] = dumpExpr(stmt.StartY)
				m["end_y"] = dumpExpr(stmt.EndY)
			}
		}
		addOptions(m, stmt.Options)
	case *frontend.PauseStatement:
		m["kind"] = "pause"
		m["duration"] = dumpExpr(stmt.Duration)
	case *frontend.ResetPositionStatement:
		m["kind"] = "reset_position"
		addOptions(m, stmt.Options)
	case *frontend.LoopStatement:
		m["kind"] = "loop"
		switch count := stmt.Count.(type) {
		case *frontend.FiniteCount:
			m["count"] = dumpExpr(count.Value)
		case *frontend.InfiniteCount:
			m["count"] = "infinite"
		}
		if stmt.Name != "" {
			m["name"] = stmt.Name
		}
		m["body"] = dumpBlock(stmt.Body)
	case *frontend.IfStatement:
		m["kind"] = "if"
		m["condition"] = dumpCondition(stmt.Cond)
		m["then"] = dumpBlock(stmt.Then)
		if len(stmt.ElseIfs) > 0 {
			branches := make([]any, 0, len(stmt.ElseIfs))
			for _, b := range stmt.ElseIfs {
				branches = append(branches, map[string]any{
					"condition": dumpCondition(b.Cond),
					"body":      dumpBlock(b.Body),
				})
			}
			m["elseif"] = branches
		}
		if stmt.ElseBody != nil {
			m["else"] = dumpBlock(stmt.ElseBody)
		}
	case *frontend.BreakStatement:
		m["kind"] = "break"
	case *frontend.ContinueStatement:
		m["kind"] = "continue"
	case *frontend.SyncStatement:
		m["kind"] = "sync"
		m["event"] = stmt.Event
	case *frontend.WaitForStatement:
		m["kind"] = "wait_for"
		m["event"] = stmt.Event
		m["ticks"] = dumpExpr(stmt.Ticks)
	case *frontend.PeriodStatement:
		m["kind"] = "period"
		m["ticks"] = dumpExpr(stmt.Ticks)
	case *frontend.StartAtStatement:
		m["kind"] = "start_at"
		m["tick"] = dumpExpr(stmt.Tick)
	case *frontend.SegmentStatement:
		m["kind"] = "segment"
		m["name"] = stmt.Name
		m["start_tick"] = dumpExpr(stmt.StartTick)
		m["end_tick"] = dumpExpr(stmt.EndTick)
		m["body"] = dumpBlock(stmt.Body)
	case *frontend.PositionAtStatement:
		m["kind"] = "position_at"
		m["tick"] = dumpExpr(stmt.Tick)
		m["body"] = dumpBlock(stmt.Body)
	case *frontend.ScheduleAtStatement:
		m["kind"] = "schedule_at"
		m["tick"] = dumpExpr(stmt.Tick)
		m["body"] = dumpBlock(stmt.Body)
	case *frontend.OnVariableChangeStatement:
		m["kind"] = "on_variable_change"
		m["variables"] = stmt.Variables
		m["body"] = dumpBlock(stmt.Body)
	case *frontend.ScrollStatement:
		m["kind"] = "scroll"
		m["direction"] = stmt.Direction.String()
		if stmt.Distance != nil {
			m["distance"] = dumpExpr(stmt.Distance)
		}
		addOptions(m, stmt.Options)
	case *frontend.SlideStatement:
		m["kind"] = "slide"
		m["direction"] = stmt.Direction.String()
		m["distance"] = dumpExpr(stmt.Distance)
		addOptions(m, stmt.Options)
	case *frontend.PopUpStatement:
		m["kind"] = "popup"
		m["action"] = stmt.Action.String()
		addOptions(m, stmt.Options)
	default:
		m["kind"] = "unknown"
	}
	return m
}

func dumpBlock(b *frontend.Block) []any {
	if b == nil {
		return nil
	}
	stmts := make([]any, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, dumpStmt(s))
	}
	return stmts
}

func dumpCondition(c frontend.Condition) map[string]any {
	return map[string]any{
		"left":  dumpExpr(c.Left),
		"op":    opString(c.Op),
		"right": dumpExpr(c.Right),
	}
}

func dumpExpr(e frontend.Expr) any {
	switch expr := e.(type) {
	case *frontend.Literal:
		return expr.Value
	case *frontend.Variable:
		return expr.Name
	case *frontend.BinaryExpr:
		return map[string]any{
			"left":  dumpExpr(expr.Left),
			"op":    opString(expr.Op),
			"right": dumpExpr(expr.Right),
		}
	case *frontend.UnaryExpr:
		return map[string]any{"neg": dumpExpr(expr.Operand)}
	case *frontend.PropertyAccess:
		return map[string]any{
			"object":   dumpExpr(expr.Object),
			"property": expr.Property,
		}
	case *frontend.IndexExpr:
		return map[string]any{
			"object": dumpExpr(expr.Object),
			"index":  dumpExpr(expr.Index),
		}
	case *frontend.CallExpr:
		args := make([]any, 0, len(expr.Args))
		for _, a := range expr.Args {
			args = append(args, dumpExpr(a))
		}
		return map[string]any{"call": expr.Func, "args": args}
	case *frontend.TupleExpr:
		elems := make([]any, 0, len(expr.Elements))
		for _, el := range expr.Elements {
			elems = append(elems, dumpExpr(el))
		}
		return map[string]any{"tuple": elems}
	case *frontend.TernaryExpr:
		return map[string]any{
			"condition": dumpExpr(expr.Cond),
			"then":      dumpExpr(expr.Then),
			"else":      dumpExpr(expr.Else),
		}
	default:
		return nil
	}
}

func addOptions(m map[string]any, opts *frontend.Options) {
	if opts.Len() == 0 {
		return
	}
	rendered := make(map[string]any, opts.Len())
	for _, name := range opts.Keys {
		rendered[name] = dumpExpr(opts.Values[name])
	}
	m["options"] = rendered
}

func locString(loc frontend.Location) string {
	return fmt.Sprintf("%d:%d", loc.Line, loc.Col)
}

func opString(op frontend.TokenType) string {
	switch op {
	case frontend.PLUS:
		return "+"
	case frontend.MINUS:
		return "-"
	case frontend.STAR:
		return "*"
	case frontend.SLASH:
		return "/"
	case frontend.PERCENT:
		return "%"
	case frontend.EQ:
		return "=="
	case frontend.NE:
		return "!="
	case frontend.LT:
		return "<"
	case frontend.LE:
		return "<="
	case frontend.GT:
		return ">"
	case frontend.GE:
		return ">="
	}
	return op.String()
}

// printTree renders the dump structure as an indented text tree.
func printTree(w io.Writer, value any, indent int) {
	pad := strings.Repeat("  ", indent)
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			printTree(w, item, indent)
		}
	case map[string]any:
		if kind, ok := v["kind"]; ok {
			fmt.Fprintf(w, "%s%s %s\n", pad, kind, locStyle.Render(fmt.Sprintf("(%v)", v["at"])))
		}
		for _, key := range sortedKeys(v) {
			if key == "kind" || key == "at" {
				continue
			}
			switch child := v[key].(type) {
			case map[string]any, []any:
				fmt.Fprintf(w, "%s  %s:\n", pad, key)
				printTree(w, child, indent+2)
			default:
				fmt.Fprintf(w, "%s  %s: %v\n", pad, key, child)
			}
		}
	default:
		fmt.Fprintf(w, "%s%v\n", pad, v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// stable field order for deterministic output
	sort.Strings(keys)
	return keys
}

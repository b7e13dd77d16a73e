// Package frontend - Tests for the semantic validator
package frontend

import (
	"reflect"
	"strings"
	"testing"
)

// validateSource runs the full pipeline, failing the test on syntax errors
// so the validation behavior is isolated.
func validateSource(t *testing.T, source string) []ValidationError {
	t.Helper()
	program, parseErrs := ParseSource(source)
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	return Validate(program)
}

func containsMessage(errs []ValidationError, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateBreakOutsideLoop(t *testing.T) {
	errs := validateSource(t, "BREAK;")
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, "loop") {
		t.Errorf("error should mention the loop-scope violation, got %q", errs[0].Message)
	}
}

func TestValidateContinueOutsideLoop(t *testing.T) {
	errs := validateSource(t, "CONTINUE;")
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "loop") {
		t.Fatalf("expected one loop-scope error, got %v", errs)
	}
}

func TestValidateBreakInsideNestedIf(t *testing.T) {
	// BREAK is legal anywhere inside an enclosing loop, IF nesting included
	errs := validateSource(t, "LOOP(5){MOVE(LEFT,10);IF(widget.x>0){BREAK;}END;}END;")
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateBreakInIfWithoutLoop(t *testing.T) {
	errs := validateSource(t, "IF(x > 0){BREAK;}END;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
}

func TestValidateLoopCount(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		ok      bool
		message string
	}{
		{"positive literal", "LOOP(5){MOVE(LEFT,10);}END;", true, ""},
		{"negative literal", "LOOP(-5){MOVE(LEFT,10);}END;", false, "loop count must be positive"},
		{"zero", "LOOP(0){MOVE(LEFT,10);}END;", false, "loop count must be positive"},
		{"infinite", "LOOP(INFINITE){MOVE(LEFT,10);}END;", true, ""},
		{"expression", "LOOP(n + 1){MOVE(LEFT,10);}END;", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateSource(t, tt.source)
			if tt.ok {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly 1 error, got %v", errs)
			}
			if !strings.Contains(errs[0].Message, tt.message) {
				t.Errorf("expected %q, got %q", tt.message, errs[0].Message)
			}
		})
	}
}

func TestValidateLoopCountMissing(t *testing.T) {
	// A hand-built loop with neither variant is the illegal third shape
	program := &Program{Statements: []Stmt{
		&LoopStatement{Body: &Block{}, Loc: Location{Line: 1, Col: 1}},
	}}
	errs := Validate(program)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
}

func TestValidatePauseDuration(t *testing.T) {
	if errs := validateSource(t, "PAUSE(0);"); len(errs) != 0 {
		t.Errorf("PAUSE(0) is legal, got %v", errs)
	}
	errs := validateSource(t, "PAUSE(-1);")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error for negative duration, got %v", errs)
	}
}

func TestValidateSegmentOverlap(t *testing.T) {
	errs := validateSource(t, "SEGMENT(a,0,20){MOVE(LEFT,1);}END; SEGMENT(b,10,30){MOVE(RIGHT,1);}END;")
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, "overlap") {
		t.Errorf("expected overlap error, got %q", errs[0].Message)
	}
}

func TestValidateSegmentsAdjacent(t *testing.T) {
	// Sharing only an endpoint is not an overlap
	errs := validateSource(t, "SEGMENT(a,0,10){PAUSE(1);}END; SEGMENT(b,10,20){PAUSE(1);}END;")
	if len(errs) != 0 {
		t.Fatalf("adjacent segments are legal, got %v", errs)
	}
}

func TestValidateSegmentEndBeforeStart(t *testing.T) {
	errs := validateSource(t, "SEGMENT(a,20,10){PAUSE(1);}END;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
}

func TestValidateUndefinedSyncEvent(t *testing.T) {
	errs := validateSource(t, "WAIT_FOR(never_defined, 10);")
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "never_defined") {
		t.Errorf("error should name the event, got %q", errs[0].Message)
	}
	// The diagnostic points at the referencing statement, not 0:0
	if errs[0].Loc.Line != 1 || errs[0].Loc.Col != 1 {
		t.Errorf("expected location 1:1, got %d:%d", errs[0].Loc.Line, errs[0].Loc.Col)
	}
}

func TestValidateSyncOrderIndependent(t *testing.T) {
	// Forward references are legal regardless of statement order
	for _, source := range []string{
		"SYNC(e); WAIT_FOR(e, 10);",
		"WAIT_FOR(e, 10); SYNC(e);",
	} {
		if errs := validateSource(t, source); len(errs) != 0 {
			t.Errorf("%q: expected no errors, got %v", source, errs)
		}
	}
}

func TestValidateUndefinedEventReportedOnce(t *testing.T) {
	errs := validateSource(t, "WAIT_FOR(ghost, 5); WAIT_FOR(ghost, 7);")
	if len(errs) != 1 {
		t.Fatalf("expected one error per missing event, got %v", errs)
	}
}

func TestValidateWaitForTicks(t *testing.T) {
	errs := validateSource(t, "SYNC(e); WAIT_FOR(e, 0);")
	if len(errs) != 1 {
		t.Fatalf("WAIT_FOR ticks must be positive, got %v", errs)
	}
}

func TestValidateTickRules(t *testing.T) {
	// PERIOD and WAIT_FOR require > 0; the scheduling statements allow 0
	tests := []struct {
		source string
		ok     bool
	}{
		{"PERIOD(0);", false},
		{"PERIOD(1);", true},
		{"START_AT(0);", true},
		{"START_AT(-1);", false},
		{"SEGMENT(s,0,10){PAUSE(1);}END;", true},
		{"SEGMENT(s,-1,10){PAUSE(1);}END;", false},
		{"POSITION_AT(0) => {PAUSE(1);}END;", true},
		{"POSITION_AT(-2) => {PAUSE(1);}END;", false},
		{"SCHEDULE_AT(0){PAUSE(1);}END;", true},
		{"SCHEDULE_AT(-3){PAUSE(1);}END;", false},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			errs := validateSource(t, tt.source)
			if tt.ok && len(errs) != 0 {
				t.Errorf("expected no errors, got %v", errs)
			}
			if !tt.ok && len(errs) != 1 {
				t.Errorf("expected exactly 1 error, got %v", errs)
			}
		})
	}
}

func TestValidateResetPositionMode(t *testing.T) {
	for _, mode := range []string{"seamless", "instant", "fade"} {
		source := `RESET_POSITION({mode="` + mode + `"});`
		if errs := validateSource(t, source); len(errs) != 0 {
			t.Errorf("mode %q is legal, got %v", mode, errs)
		}
	}
	errs := validateSource(t, `RESET_POSITION({mode="invalid"});`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "invalid mode") {
		t.Errorf("expected invalid mode error, got %q", errs[0].Message)
	}
}

func TestValidateMoveOptions(t *testing.T) {
	tests := []struct {
		name   string
		source string
		ok     bool
	}{
		{"all allowed", `MOVE(LEFT,10) {step=2, interval=1, easing="linear", gap=3};`, true},
		{"unknown option", "MOVE(LEFT,10) {velocity=5};", false},
		{"type mismatch int", `MOVE(LEFT,10) {step="fast"};`, false},
		{"type mismatch string", "MOVE(LEFT,10) {easing=3};", false},
		{"fractional int option", "MOVE(LEFT,10) {step=1.5};", false},
		{"non-literal passes", "MOVE(LEFT,10) {step=n*2};", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateSource(t, tt.source)
			if tt.ok && len(errs) != 0 {
				t.Errorf("expected no errors, got %v", errs)
			}
			if !tt.ok && len(errs) != 1 {
				t.Errorf("expected exactly 1 error, got %v", errs)
			}
		})
	}
}

func TestValidateMoveCoordinateAsymmetry(t *testing.T) {
	// A hand-built MOVE with only one Y coordinate is rejected
	program := &Program{Statements: []Stmt{
		&MoveStatement{
			StartX: &Literal{Value: float64(0)},
			EndX:   &Literal{Value: float64(10)},
			StartY: &Literal{Value: float64(5)},
			Loc:    Location{Line: 1, Col: 1},
		},
	}}
	errs := Validate(program)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "start_y and end_y") {
		t.Errorf("unexpected message %q", errs[0].Message)
	}
}

func TestValidateHighLevelCommandOptions(t *testing.T) {
	if errs := validateSource(t, "SCROLL(LEFT) {step=1, gap=2};"); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	if errs := validateSource(t, "SCROLL(LEFT) {easing=\"linear\"};"); len(errs) != 1 {
		t.Errorf("easing is not a SCROLL option, got %v", errs)
	}
	if errs := validateSource(t, "SLIDE(UP, 10) {duration=5, easing=\"ease_in\"};"); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	if errs := validateSource(t, "POPUP(SHOW) {speed=2};"); len(errs) != 1 {
		t.Errorf("speed is not a POPUP option, got %v", errs)
	}
}

func TestValidateTimelineNesting(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"segment in position_at", "POSITION_AT(0) => {SEGMENT(s,0,10){PAUSE(1);}END;}END;"},
		{"period in segment", "SEGMENT(s,0,10){PERIOD(5);}END;"},
		{"start_at in loop", "LOOP(2){START_AT(0);}END;"},
		{"schedule_at in if", "IF(x > 0){SCHEDULE_AT(5){PAUSE(1);}END;}END;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateSource(t, tt.source)
			if !containsMessage(errs, "top level") {
				t.Errorf("expected a top-level placement error, got %v", errs)
			}
		})
	}
}

func TestValidateTimelineTopLevelLegal(t *testing.T) {
	errs := validateSource(t, "PERIOD(100); START_AT(0); SEGMENT(s,0,10){PAUSE(1);}END;")
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateLoopNameShadowing(t *testing.T) {
	errs := validateSource(t, "LOOP(2 AS outer){LOOP(3 AS outer){PAUSE(1);}END;}END;")
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "shadows") {
		t.Fatalf("expected a shadowing error, got %v", errs)
	}
	errs = validateSource(t, "LOOP(2 AS a){LOOP(3 AS b){PAUSE(1);}END;}END;")
	if len(errs) != 0 {
		t.Fatalf("distinct names are legal, got %v", errs)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	// Multiple independent violations are all reported in one pass
	source := `BREAK;
PAUSE(-1);
LOOP(0){MOVE(LEFT,1);}END;
WAIT_FOR(ghost, 10);`
	errs := validateSource(t, source)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	program, _ := ParseSource("LOOP(-5){BREAK; SEGMENT(s,5,2){PAUSE(-1);}END;}END;")
	before1, _ := ParseSource("LOOP(-5){BREAK; SEGMENT(s,5,2){PAUSE(-1);}END;}END;")
	Validate(program)
	if !reflect.DeepEqual(program, before1) {
		t.Error("validation must not mutate the tree")
	}
}

func TestValidateNilAndEmpty(t *testing.T) {
	if errs := Validate(nil); errs != nil {
		t.Errorf("nil program: expected nil, got %v", errs)
	}
	if errs := Validate(&Program{}); len(errs) != 0 {
		t.Errorf("empty program: expected no errors, got %v", errs)
	}
}

func TestValidationErrorFormat(t *testing.T) {
	errs := validateSource(t, "BREAK;")
	if len(errs) != 1 {
		t.Fatal("expected 1 error")
	}
	rendered := errs[0].Error()
	if !strings.HasPrefix(rendered, "1:1: ") {
		t.Errorf("expected line:column: message, got %q", rendered)
	}
}

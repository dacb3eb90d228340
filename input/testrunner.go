package input

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/anima/internal/logging"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string      `json:"action"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	FromX  int         `json:"fromX,omitempty"`
	FromY  int         `json:"fromY,omitempty"`
	ToX    int         `json:"toX,omitempty"`
	ToY    int         `json:"toY,omitempty"`
	Frames int         `json:"frames,omitempty"`
	Button MouseButton `json:"button,omitempty"`
	Phase  TouchPhase  `json:"phase,omitempty"`
	ID     uint64      `json:"id,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click":   true,
	"press":   true,
	"release": true,
	"move":    true,
	"drag":    true,
	"touch":   true,
	"wait":    true,
}

// TestRunner sequences injected input across frames for automated testing.
// It is a Source: each Poll advances the script by one frame and returns the
// batch its Injector produces.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	inj       *Injector
}

// LoadTestScript parses a JSON test script such as
//
//	{"steps": [{"action": "click", "x": 10, "y": 20}, {"action": "wait", "frames": 3}]}
//
// Unknown actions are rejected here rather than skipped at run time.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, inj: NewInjector()}, nil
}

// Injector returns the injector the runner drives.
func (r *TestRunner) Injector() *Injector {
	return r.inj
}

// Done reports whether all steps have run and every injected frame has been
// polled.
func (r *TestRunner) Done() bool {
	return r.done
}

// Poll implements Source.
func (r *TestRunner) Poll() []Event {
	r.Step()
	events := r.inj.Poll()
	if !r.done && r.exhausted() {
		r.finish()
	}
	return events
}

// Step advances the script by one frame without polling the injector.
func (r *TestRunner) Step() {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.inj.Len() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.finish()
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	x, y := int(st.X), int(st.Y)
	switch st.Action {
	case "click":
		r.inj.InjectClick(x, y, st.Button)
	case "press":
		r.inj.InjectPress(x, y, st.Button)
	case "release":
		r.inj.InjectRelease(x, y, st.Button)
	case "move":
		r.inj.InjectMove(x, y)
	case "drag":
		r.inj.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "touch":
		r.inj.InjectTouch(st.Phase, st.X, st.Y, st.ID)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.exhausted() {
		r.finish()
	}
}

// exhausted reports whether every step has run and nothing is pending.
func (r *TestRunner) exhausted() bool {
	return r.cursor >= len(r.steps) && r.waitCount == 0 && r.inj.Len() == 0
}

func (r *TestRunner) finish() {
	r.done = true
	logging.Logger().Info("input: test script finished", "steps", len(r.steps))
}

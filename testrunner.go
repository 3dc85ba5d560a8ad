package vitrine

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click":      true,
	"move":       true,
	"drag":       true,
	"wait":       true,
	"screenshot": true,
}

// TestRunner sequences injected pointer input and screenshots across frames
// for automated visual testing. Attach to a Gallery via SetTestRunner.
//
// Coordinates in a script are device pixels.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//	  {"action": "move", "x": 200, "y": 150},
//	  {"action": "wait", "frames": 30},
//	  {"action": "click", "x": 200, "y": 150},
//	  {"action": "drag", "fromX": 400, "fromY": 300, "toX": 200, "toY": 300, "frames": 20},
//	  {"action": "screenshot", "label": "after-drag"}
//	]}
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
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether every step has run and all injected input has been
// consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame, feeding q and requesting
// screenshots through shot.
func (r *TestRunner) step(q *InputQueue, shot func(label string)) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if q.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		shot(st.Label)
	case "click":
		q.InjectClick(st.X, st.Y)
	case "move":
		q.InjectMove(st.X, st.Y)
	case "drag":
		q.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && q.Len() == 0 {
		r.done = true
	}
}

package vitrine

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "move", "x": 40, "y": 50},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 10, "fromY": 10, "toX": 90, "toY": 10, "frames": 5}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "move" || runner.steps[1].X != 40 || runner.steps[1].Y != 50 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[4].ToX != 90 || runner.steps[4].Frames != 5 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{"steps": [{"action": "jump"}]}`)); err == nil {
		t.Error("expected error for an unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := NewInputQueue()
	shot := func(string) { t.Error("unexpected screenshot") }

	runner.step(q, shot)
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}
	if runner.Done() {
		t.Error("runner should not be done while the queue has events")
	}

	// The runner waits for the queue to drain.
	runner.step(q, shot)
	if q.Len() != 2 {
		t.Errorf("runner advanced with pending input: Len = %d", q.Len())
	}
	q.Poll()
	q.Poll()
	runner.step(q, shot)
	if !runner.Done() {
		t.Error("runner should be done after the queue drains")
	}
}

func TestRunnerStep_WaitAndScreenshot(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := NewInputQueue()
	var shots []string
	shot := func(label string) { shots = append(shots, label) }

	// Frame 1 starts the wait, frames 2 and 3 finish it.
	for i := 0; i < 3; i++ {
		runner.step(q, shot)
		if len(shots) != 0 {
			t.Fatalf("screenshot taken during wait frame %d", i+1)
		}
	}
	runner.step(q, shot)
	if len(shots) != 1 || shots[0] != "done" {
		t.Errorf("shots = %v, want [done]", shots)
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "drag", "fromX": 0, "fromY": 0, "toX": 10, "toY": 0}]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := NewInputQueue()
	runner.step(q, func(string) {})
	if q.Len() != 2 {
		t.Errorf("drag without frames should queue press and release, got %d", q.Len())
	}
}

func TestRunnerStep_Move(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "move", "x": 7, "y": 8}]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := NewInputQueue()
	log := &pointerLog{}
	q.Attach(log)
	runner.step(q, func(string) {})
	q.Poll()
	if log.String() != "move 7,8" {
		t.Errorf("calls = %q, want %q", log.String(), "move 7,8")
	}
}

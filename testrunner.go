package coverflow

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
	DX     float64 `json:"dx,omitempty"`
	Index  int     `json:"index,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted sequence of input, navigation and screenshots
// across frames for automated visual testing. Attach it to a Carousel with
// SetTestRunner.
//
// Actions:
//
//	screenshot  queue a capture named label
//	click       click at (x, y)
//	drag        drag from (fromX, fromY) to (toX, toY) over frames updates
//	scroll      scroll by dx pixels, like a mouse wheel
//	select      center item index immediately
//	scroll_to   animate item index into the center
//	wait        do nothing for frames updates
//	settle      wait until the list stops aligning
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "scroll", "select", "scroll_to", "wait", "settle":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. The runner advances at the start of
// every Update. nil detaches it.
func (c *Carousel) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps of the script have run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(c *Carousel) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling {
		if c.State() == TouchAligning {
			return
		}
		r.settling = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		c.ScrollBy(st.DX)
	case "select":
		c.SetSelection(st.Index)
	case "scroll_to":
		c.ScrollToItem(st.Index)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = c.State() == TouchAligning
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && len(c.injectQueue) == 0 {
		r.done = true
	}
}

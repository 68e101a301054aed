package pixelterm

// BlinkTiming is the timing of a single blink pattern. Visibility is a pure
// function of the frame counter and the configured rate: blinking is driven
// by the caller's render loop, not by a wall clock, which keeps it
// deterministic and testable
type BlinkTiming struct {
	// ToggleHz is how many times per second the element toggles. Zero
	// means the element never hides
	ToggleHz uint16
	// DutyPercent is the percentage of each cycle spent hidden (0-100)
	DutyPercent uint16

	hidden bool
}

// IsHidden reports whether the element is hidden on the current frame
func (t BlinkTiming) IsHidden() bool {
	return t.hidden
}

func (t *BlinkTiming) update(frame uint16, fps uint16) {
	if t.ToggleHz == 0 || fps == 0 {
		t.hidden = false
		return
	}
	cycle := fps / t.ToggleHz
	if cycle == 0 {
		t.hidden = false
		return
	}
	pos := int(frame % cycle)
	hidden := (int(t.DutyPercent)*int(cycle) + 50) / 100
	if hidden < 1 {
		hidden = 1
	}
	if hidden > int(cycle) {
		hidden = int(cycle)
	}
	t.hidden = pos >= int(cycle)-hidden
}

// BlinkConfig owns all blink state for a backend: one timing for slow blink
// (also used by the cursor) and one for rapid blink. Tick it once per draw
// call
type BlinkConfig struct {
	// FPS is the render loop's frame rate. It converts frame counts to
	// time
	FPS uint16
	// Slow is the timing for AttrSlowBlink and cursor blink
	Slow BlinkTiming
	// Fast is the timing for AttrRapidBlink
	Fast BlinkTiming

	prev [2]bool
}

// DefaultBlinkConfig returns the default timings: 30 frames per second,
// slow blink at 1 Hz hidden 15% of the cycle, rapid blink at 3 Hz hidden
// half of the cycle
func DefaultBlinkConfig() BlinkConfig {
	return BlinkConfig{
		FPS:  30,
		Slow: BlinkTiming{ToggleHz: 1, DutyPercent: 15},
		Fast: BlinkTiming{ToggleHz: 3, DutyPercent: 50},
	}
}

// Tick advances blink state to the given frame. It reports whether the
// visibility of either category changed since the previous tick, in which
// case tracked blinking cells must be redrawn even though their content is
// unchanged
func (c *BlinkConfig) Tick(frame uint16) bool {
	c.Slow.update(frame, c.FPS)
	c.Fast.update(frame, c.FPS)
	state := [2]bool{c.Slow.hidden, c.Fast.hidden}
	toggled := state != c.prev
	c.prev = state
	return toggled
}

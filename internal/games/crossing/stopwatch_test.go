package crossing

import "testing"

type fakeClock struct {
	now int64
}

func (c *fakeClock) NowMillis() int64 { return c.now }

func TestStopwatchAccumulates(t *testing.T) {
	clock := &fakeClock{}
	sw := NewStopwatch(clock)

	clock.now = 500
	if sw.ElapsedMillis() != 0 {
		t.Errorf("stopped stopwatch ElapsedMillis() = %d, expected 0", sw.ElapsedMillis())
	}

	sw.Start()
	clock.now = 1700
	if sw.ElapsedSeconds() != 1 {
		t.Errorf("ElapsedSeconds() = %d, expected 1", sw.ElapsedSeconds())
	}

	// Second Start must not move the segment origin.
	sw.Start()
	clock.now = 2600
	if sw.ElapsedMillis() != 2100 {
		t.Errorf("ElapsedMillis() = %d, expected 2100", sw.ElapsedMillis())
	}

	sw.Stop()
	clock.now = 9000
	if sw.ElapsedMillis() != 2100 {
		t.Errorf("ElapsedMillis() after Stop = %d, expected 2100", sw.ElapsedMillis())
	}

	sw.Start()
	clock.now = 10000
	if sw.ElapsedSeconds() != 3 {
		t.Errorf("ElapsedSeconds() = %d, expected 3", sw.ElapsedSeconds())
	}

	sw.Reset()
	if sw.Running() || sw.ElapsedMillis() != 0 {
		t.Errorf("Reset() left running=%v elapsed=%d", sw.Running(), sw.ElapsedMillis())
	}
}

func TestTickClockExact(t *testing.T) {
	clock := NewTickClock(60)
	sw := NewStopwatch(clock)
	clock.Advance()
	sw.Start()

	for i := 0; i < 7199; i++ {
		clock.Advance()
	}
	if sw.ElapsedSeconds() != 119 {
		t.Errorf("ElapsedSeconds() after 7199 ticks = %d, expected 119", sw.ElapsedSeconds())
	}

	clock.Advance()
	if sw.ElapsedSeconds() != 120 {
		t.Errorf("ElapsedSeconds() after 7200 ticks = %d, expected 120", sw.ElapsedSeconds())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.NowMillis()
	b := c.NowMillis()
	if b < a {
		t.Errorf("NowMillis() went backwards: %d then %d", a, b)
	}
}

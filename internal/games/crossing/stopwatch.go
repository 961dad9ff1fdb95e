package crossing

import "time"

// ClockSource supplies monotonic time in milliseconds.
type ClockSource interface {
	NowMillis() int64
}

// TickClock derives time from a simulation tick counter.
// Integer arithmetic keeps it exact: 60 ticks at 60fps is one second.
type TickClock struct {
	ticks int64
	rate  int64
}

// NewTickClock creates a clock for the given tick rate.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{rate: int64(tickRate)}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks since creation.
func (c *TickClock) Ticks() int64 {
	return c.ticks
}

// NowMillis implements ClockSource.
func (c *TickClock) NowMillis() int64 {
	return c.ticks * 1000 / c.rate
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a wall clock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// NowMillis implements ClockSource.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.origin).Milliseconds()
}

// Stopwatch accumulates elapsed time across start/stop cycles.
type Stopwatch struct {
	clock       ClockSource
	running     bool
	startedAt   int64
	accumulated int64
}

// NewStopwatch creates a stopped stopwatch reading from clock.
func NewStopwatch(clock ClockSource) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Start begins timing. Calling Start while running does nothing.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.startedAt = s.clock.NowMillis()
}

// Stop folds the running segment into the total.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.accumulated += s.clock.NowMillis() - s.startedAt
	s.running = false
}

// Reset zeroes the total and stops the stopwatch.
func (s *Stopwatch) Reset() {
	s.running = false
	s.accumulated = 0
	s.startedAt = 0
}

// Running reports whether the stopwatch is timing.
func (s *Stopwatch) Running() bool {
	return s.running
}

// ElapsedMillis includes the running segment.
func (s *Stopwatch) ElapsedMillis() int64 {
	total := s.accumulated
	if s.running {
		total += s.clock.NowMillis() - s.startedAt
	}
	return total
}

// ElapsedSeconds returns whole elapsed seconds, rounded down.
func (s *Stopwatch) ElapsedSeconds() int {
	return int(s.ElapsedMillis() / 1000)
}

package inspector

// SyntheticClock is a video.Clock driven by explicit Advance calls rather
// than wall time, so the inspector can single-step the core deterministically.
type SyntheticClock struct {
	now uint64
}

// Now reports the clock's current master-tick reading.
func (c *SyntheticClock) Now() uint64 { return c.now }

// Advance moves the clock forward by ticks master-clock ticks.
func (c *SyntheticClock) Advance(ticks uint64) { c.now += ticks }

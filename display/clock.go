// Package display drives a video.Lcd from a real wall clock inside an
// ebiten window, the way bdwalton-gintendo's console.Bus drives its PPU.
package display

import "time"

// masterClockHz is the GBA's real master clock rate; video.CLOCK_PER_DOT
// master ticks make up one dot at this rate.
const masterClockHz = 16777216

// WallClock is a video.Clock backed by the host's monotonic clock,
// converting elapsed wall time into master-clock ticks.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a WallClock at the current instant; its first Now()
// call therefore returns a value near zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now reports elapsed master-clock ticks since the WallClock was created.
func (w *WallClock) Now() uint64 {
	elapsed := time.Since(w.start)
	return uint64(elapsed.Seconds() * masterClockHz)
}

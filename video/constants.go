// Package video implements the per-dot LCD rendering pipeline: background
// and object rasterizers, the priority compositor, the cycle-driven timing
// engine, and the memory-mapped register file.
package video

// Screen and raster timing constants for the hosted hardware. These mirror
// the fixed hardware constants named by the Clock collaborator interface.
const (
	SCREEN_WIDTH  = 240
	SCREEN_HEIGHT = 160

	DOTS_PER_LINE   = 308
	LINES_PER_FRAME = 228

	CLOCK_PER_DOT = 4
)

// Backing memory sizes.
const (
	VRAM_SIZE    = 96 * 1024
	OAM_SIZE     = 1024
	PALETTE_SIZE = 1024

	OBJ_BASE_ADDR = 0x10000
)

// TransparentMarker is the reserved bit-15 flag in a line-buffer slot that
// marks the slot as holding no opaque color.
const TransparentMarker = 0x8000

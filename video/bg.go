package video

// bg holds one background layer's register-mapped control state plus the
// affine working copy that mutates per scanline.
type bg struct {
	priority      uint8
	charBaseBlock uint8
	mosaic        bool
	colorMode     bool // false: 4bpp x 16 palettes, true: 8bpp x 1 palette
	screenBase    uint8
	areaOverflow  bool // false: transparent, true: wraparound (affine only)
	screenSize    uint8

	hofs uint16
	vofs uint16

	dx, dmx, dy, dmy uint16 // signed 8.8 fixed point

	x, y   uint32 // 28-bit reference points, register-mapped
	cx, cy uint32 // working copy, mutates per scanline
}

// frameStart relatches the working affine reference point from the
// register-mapped reference point, as happens at the y==0 transition.
func (b *bg) frameStart() {
	b.cx = b.x
	b.cy = b.y
}

// window is one rectangular window region, inclusive on all four sides.
type window struct {
	l, r, u, d uint8
}

// windowCtrl is an interior/exterior/obj-window control mask: per-bg
// enable, obj enable, color-effect enable.
type windowCtrl struct {
	displayBg          [4]bool
	displayObj         bool
	colorSpecialEffect bool
}

// blendCtrl is the color special effect configuration (BLDCNT/BLDALPHA/BLDY).
type blendCtrl struct {
	effect uint8 // 0 none, 1 alpha, 2 brightness up, 3 brightness down
	target [2]uint8
	eva    uint8
	evb    uint8
	evy    uint8
}

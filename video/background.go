package video

// bgSizeTable maps an affine background's 2-bit screen-size code to the
// side length, in pixels, of its square tile map.
var bgSizeTable = [4]uint32{128, 256, 512, 1024}

// renderTextBg implements mode 0/1 text background rendering: tile-map
// lookup with horizontal/vertical mosaic, scroll, flip and 4bpp/8bpp
// character decode.
func (l *Lcd) renderTextBg(i int) {
	if !l.displayBg[i] {
		return
	}
	b := &l.bg[i]

	hscrs := uint32(1 + b.screenSize%2)
	vscrs := uint32(1 + b.screenSize/2)

	screenBaseAddr := int(b.screenBase) * 0x800
	charBaseAddr := int(b.charBaseBlock) * 0x4000

	scry := l.y
	if b.mosaic {
		mh := uint32(l.bgMosaicV) + 1
		scry = l.y / mh * mh
	}

	cy := uint32(b.vofs) + scry
	oy := cy % 8
	by := cy / 8

	scryBlk := by / 32 % vscrs
	by %= 32

	for x := uint32(0); x < SCREEN_WIDTH; x++ {
		relx := x
		if b.mosaic {
			mw := uint32(l.bgMosaicH) + 1
			relx = x / mw * mw
		}

		cx := uint32(b.hofs) + relx
		ox := cx % 8
		bx := cx / 8

		scrx := bx / 32 % hscrs
		bx %= 32

		scrid := scryBlk*hscrs + scrx
		blockAddr := screenBaseAddr + int(scrid)*0x800 + int(by)*64 + int(bx)*2

		b0 := l.Vram[blockAddr]
		b1 := l.Vram[blockAddr+1]

		char := int(b0) + (int(b1&3) << 8)
		hflip := (b1>>2)&1 != 0
		vflip := (b1>>3)&1 != 0
		palette := b1 >> 4

		fox, foy := ox, oy
		if hflip {
			fox = 7 - ox
		}
		if vflip {
			foy = 7 - oy
		}

		if !b.colorMode {
			row := l.row4bpp(charBaseAddr, char, int(foy))
			col := row[fox]
			if col != 0 {
				l.line.bg[i][x] = l.bgPalette16(int(palette), int(col))
			}
		} else {
			row := l.row8bpp(charBaseAddr, char, int(foy))
			col := row[fox]
			if col != 0 {
				l.line.bg[i][x] = l.bgPalette256(int(col))
			}
		}
	}
}

// renderAffineBg implements mode 1/2 affine background rendering: a
// rotated/scaled square tile map, 8bpp only, wrap-or-transparent overflow.
func (l *Lcd) renderAffineBg(i int) {
	if !l.displayBg[i] {
		return
	}
	b := &l.bg[i]

	size := bgSizeTable[b.screenSize]
	bw := int(size) / 8

	screenBaseAddr := int(b.screenBase) * 0x800
	charBaseAddr := int(b.charBaseBlock) * 0x4000

	cx, cy := l.calcLeftForLine(i)

	for x := uint32(0); x < SCREEN_WIDTH; x++ {
		rx, ry, ok := l.calcRefpointForX(i, size, size, b.areaOverflow, x, cx, cy)
		if !ok {
			continue
		}
		bx := rx / 8
		by := ry / 8
		ox := rx % 8
		oy := ry % 8

		char := int(l.Vram[screenBaseAddr+by*bw+bx])
		row := l.row8bpp(charBaseAddr, char, oy)
		col := row[ox]
		if col != 0 {
			l.line.bg[i][x] = l.bgPalette256(int(col))
		}
	}
}

// renderMode3Bg renders the mode-3 16bpp direct-color bitmap background.
func (l *Lcd) renderMode3Bg() {
	const i = 2
	if !l.displayBg[i] {
		return
	}
	cx, cy := l.calcLeftForLine(i)
	for x := uint32(0); x < SCREEN_WIDTH; x++ {
		rx, ry, ok := l.calcRefpointForX(i, 240, 160, false, x, cx, cy)
		if !ok {
			continue
		}
		addr := (ry*240 + rx) * 2
		col := l.read16(l.Vram, addr)
		l.line.bg[i][x] = col & 0x7FFF
	}
}

// renderMode4Bg renders the mode-4 8bpp indexed bitmap, frame-selectable.
func (l *Lcd) renderMode4Bg() {
	const i = 2
	if !l.displayBg[i] {
		return
	}
	base := l.frameAddr()
	cx, cy := l.calcLeftForLine(i)
	for x := uint32(0); x < SCREEN_WIDTH; x++ {
		rx, ry, ok := l.calcRefpointForX(i, 240, 160, false, x, cx, cy)
		if !ok {
			continue
		}
		col := l.Vram[base+(ry*240+rx)]
		if col != 0 {
			l.line.bg[i][x] = l.bgPalette256(int(col))
		}
	}
}

// renderMode5Bg renders the mode-5 16bpp direct-color 160x128 bitmap,
// frame-selectable.
func (l *Lcd) renderMode5Bg() {
	const i = 2
	if !l.displayBg[i] {
		return
	}
	base := l.frameAddr()
	cx, cy := l.calcLeftForLine(i)
	for x := uint32(0); x < SCREEN_WIDTH; x++ {
		rx, ry, ok := l.calcRefpointForX(i, 160, 128, false, x, cx, cy)
		if !ok {
			continue
		}
		addr := base + (ry*160+rx)*2
		col := l.read16(l.Vram, addr)
		l.line.bg[i][x] = col & 0x7FFF
	}
}

// calcLeftForLine advances a background's working affine reference point
// by (dmx, dmy) for this scanline and returns the reference point to use
// at x=0, backing out the mosaic skew when vertical mosaic is active.
func (l *Lcd) calcLeftForLine(i int) (int32, int32) {
	b := &l.bg[i]

	dmx := int32(int16(b.dmx))
	dmy := int32(int16(b.dmy))

	cx := signExtend(b.cx, 27)
	cy := signExtend(b.cy, 27)

	b.cx = uint32(cx+dmx) & 0x0FFFFFFF
	b.cy = uint32(cy+dmy) & 0x0FFFFFFF

	if b.mosaic {
		mh := int32(l.bgMosaicV) + 1
		mody := int32(l.y) % mh
		return cx - dmx*mody, cy - dmy*mody
	}
	return cx, cy
}

// calcRefpointForX derives the (rx, ry) source-bitmap coordinate for
// column x of an affine or bitmap background, applying horizontal mosaic
// and either wrapping or discarding out-of-range samples.
func (l *Lcd) calcRefpointForX(i int, w, h uint32, wrapping bool, x uint32, cx, cy int32) (int, int, bool) {
	b := &l.bg[i]

	relx := x
	if b.mosaic {
		mw := uint32(l.bgMosaicH) + 1
		relx = x / mw * mw
	}

	dx := int32(int16(b.dx))
	dy := int32(int16(b.dy))

	rx := (cx + dx*int32(relx)) >> 8
	ry := (cy + dy*int32(relx)) >> 8

	if wrapping {
		return int(uint32(rx) % w), int(uint32(ry) % h), true
	}
	if rx >= 0 && rx < int32(w) && ry >= 0 && ry < int32(h) {
		return int(rx), int(ry), true
	}
	return 0, 0, false
}

func (l *Lcd) frameAddr() int {
	if !l.displayFrameSelect {
		return 0
	}
	return 0xA000
}

func (l *Lcd) read16(mem []uint8, addr int) uint16 {
	return uint16(mem[addr]) | uint16(mem[addr+1])<<8
}

func (l *Lcd) bgPalette256(i int) uint16 {
	return l.read16(l.Palette, i*2) & 0x7FFF
}

func (l *Lcd) bgPalette16(i, j int) uint16 {
	return l.bgPalette256(i*16 + j)
}

func (l *Lcd) objPalette256(i int) uint16 {
	return l.bgPalette256(256 + i)
}

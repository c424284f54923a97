package video

// objSizeTable maps [shape][size] to the source sprite's (width, height)
// in pixels, shape in {square, wide, tall}; shape==3 is prohibited.
var objSizeTable = [3][4][2]uint32{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// renderObj iterates the 128 OAM entries under a per-scanline cycle
// budget, culling invisible entries and rasterizing each visible sprite
// as either a flipped normal sprite or a rotated/scaled affine sprite.
func (l *Lcd) renderObj() {
	if !l.displayObj {
		return
	}

	numOfHdots := uint32(DOTS_PER_LINE)
	if l.hblankObjProcess {
		numOfHdots = SCREEN_WIDTH
	}

	availCycle := numOfHdots*4 - 6

	for i := 0; i < 128; i++ {
		oam := l.Oam[i*8 : i*8+6]

		rot := oam[1]&1 != 0
		double := oam[1]&2 != 0

		if double && !rot {
			continue
		}

		y := uint32(oam[0])

		mode := (oam[1] >> 2) & 3
		if mode == 3 {
			continue
		}

		shape := (oam[1] >> 6) & 3
		if shape == 3 {
			continue
		}

		x := uint32(oam[2]) | uint32(oam[3]&1)<<8

		size := (oam[3] >> 6) & 3

		ow, oh := objSizeTable[shape][size][0], objSizeTable[shape][size][1]
		w, h := ow, oh
		if double {
			w *= 2
			h *= 2
		}

		charName := uint32(oam[4]) | uint32(oam[5]&3)<<8

		// On bitmap BG modes, OBJ char RAM is halved; names below 512 are
		// disabled.
		if l.bgMode >= 3 && charName < 512 {
			continue
		}

		priority := (oam[5] >> 2) & 3
		color256 := oam[1]&0x20 != 0
		mosaic := oam[1]&0x10 != 0

		scry := l.y
		if mosaic {
			mh := uint32(l.objMosaicV) + 1
			scry = l.y / mh * mh
		}

		var rely uint32
		if y+h > 256 {
			if !(scry < y+h-256 && l.y < y+h-256) {
				continue
			}
			rely = 256 + scry - y
		} else {
			if !(y <= scry && scry < y+h && y <= l.y && l.y < y+h) {
				continue
			}
			rely = scry - y
		}

		mosaicW := uint32(1)
		if mosaic {
			mosaicW = uint32(l.objMosaicH) + 1
		}

		if !rot {
			hflip := oam[3]&0x10 != 0
			vflip := oam[3]&0x20 != 0
			paletteNum := oam[5] >> 4

			l.renderNormalObj(hflip, vflip, color256, paletteNum, mode, mosaicW, priority, charName, w, h, x, rely)
		} else {
			rotParamNum := (oam[3] >> 1) & 0x1F
			paletteNum := oam[5] >> 4

			l.renderRotateObj(rotParamNum, color256, paletteNum, mode, mosaicW, priority, charName, ow, oh, w, h, x, rely)
		}

		cost := numOfRenderCycle(w, rot)
		if cost > availCycle {
			cost = availCycle
		}
		availCycle -= cost

		if availCycle == 0 {
			break
		}
	}
}

func (l *Lcd) renderNormalObj(hflip, vflip, color256 bool, paletteNum, mode uint8, mosaicW uint32, priority uint8, charName, w, h, x, rely uint32) {
	dim2 := !l.objFormat
	dy := rely
	if vflip {
		dy = h - 1 - rely
	}

	for relx := uint32(0); relx < w; relx++ {
		sx := (x + relx) % 512
		if sx >= 240 {
			continue
		}
		scrx := sx / mosaicW * mosaicW
		var adjRelx uint32
		if scrx < x {
			adjRelx = scrx + 512 - x
		} else {
			adjRelx = scrx - x
		}
		if adjRelx >= w {
			continue
		}

		dx := adjRelx
		if hflip {
			dx = w - 1 - adjRelx
		}

		var colNum uint8
		if !color256 {
			c := l.getObjPixel16(charName, dx, dy, w, dim2)
			if c != 0 {
				colNum = paletteNum*16 + c
			}
		} else {
			colNum = l.getObjPixel256(charName, dx, dy, w, dim2)
		}
		l.putObjPixel(int(sx), colNum, mode, priority)
	}
}

func (l *Lcd) renderRotateObj(rotParamNum uint8, color256 bool, paletteNum, mode uint8, mosaicW uint32, priority uint8, charName, ow, oh, w, h, x, rely uint32) {
	dim2 := !l.objFormat

	base := int(rotParamNum) * 32
	rotParam := l.Oam[base : base+32]
	dx := int32(int16(uint16(rotParam[6]) | uint16(rotParam[7])<<8))
	dmx := int32(int16(uint16(rotParam[14]) | uint16(rotParam[15])<<8))
	dy := int32(int16(uint16(rotParam[22]) | uint16(rotParam[23])<<8))
	dmy := int32(int16(uint16(rotParam[30]) | uint16(rotParam[31])<<8))

	rx := int32(ow/2) << 8
	ry := int32(oh/2) << 8

	rdx := -int32(w / 2)
	rx += dx * rdx
	ry += dy * rdx

	rdy := int32(rely) - int32(h/2)
	rx += dmx * rdy
	ry += dmy * rdy

	for i := uint32(0); i < w; i++ {
		sx := (x + i) % 512
		if sx >= 240 {
			continue
		}
		scrx := sx / mosaicW * mosaicW
		var relx int32
		if scrx < x {
			relx = int32(scrx + 512 - x)
		} else {
			relx = int32(scrx - x)
		}

		rx2 := (rx + dx*relx) >> 8
		ry2 := (ry + dy*relx) >> 8

		if !(rx2 >= 0 && rx2 < int32(ow) && ry2 >= 0 && ry2 < int32(oh)) {
			continue
		}

		urx, ury := uint32(rx2), uint32(ry2)

		var colNum uint8
		if !color256 {
			c := l.getObjPixel16(charName, urx, ury, ow, dim2)
			if c != 0 {
				colNum = paletteNum*16 + c
			}
		} else {
			colNum = l.getObjPixel256(charName, urx, ury, ow, dim2)
		}
		l.putObjPixel(int(sx), colNum, mode, priority)
	}
}

func (l *Lcd) getObjPixel16(charName, x, y, w uint32, dim2 bool) uint8 {
	var tileNum uint32
	if dim2 {
		tileNum = charName + (y/8)*32 + x/8
	} else {
		tileNum = charName + (y/8)*(w/8) + x/8
	}
	addr := tileNum*32 + (y%8)*4 + x%8/2
	return (l.Vram[OBJ_BASE_ADDR+addr] >> ((x % 2) * 4)) & 0xF
}

func (l *Lcd) getObjPixel256(charName, x, y, w uint32, dim2 bool) uint8 {
	var tileNum uint32
	if dim2 {
		// On 256-color and 2-dimensional mode, char name must be even.
		tileNum = (charName &^ 1) + (y/8)*32 + x/8*2
	} else {
		tileNum = charName + ((y/8)*(w/8)+x/8)*2
	}
	addr := tileNum*32 + (y%8)*8 + x%8
	return l.Vram[OBJ_BASE_ADDR+addr]
}

// putObjPixel writes at most one color into the object line buffer per
// pixel; the first non-transparent write wins.
func (l *Lcd) putObjPixel(x int, colNum uint8, mode, priority uint8) {
	if colNum == 0 {
		return
	}

	col := l.objPalette256(int(colNum))
	switch mode {
	case 0: // normal
		if l.line.obj[x]&TransparentMarker != 0 {
			l.line.obj[x] = col
			l.line.objAttr[x] = l.line.objAttr[x].withPriority(priority).withSemiTransparent(false)
		}
	case 1: // semi-transparent
		if l.line.obj[x]&TransparentMarker != 0 {
			l.line.obj[x] = col
			l.line.objAttr[x] = l.line.objAttr[x].withPriority(priority).withSemiTransparent(true)
		}
	case 2: // obj-window
		l.line.objAttr[x] = l.line.objAttr[x].withWindow(true)
	default:
		logInvalidConfig("render_obj: reserved obj mode %d", mode)
	}
}

func numOfRenderCycle(width uint32, rot bool) uint32 {
	if !rot {
		return width
	}
	return width*2 + 10
}

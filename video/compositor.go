package video

// renderLine rasterizes one visible scanline: it clears the line buffers,
// renders objects and the mode-appropriate set of backgrounds, evaluates
// window membership and per-pixel layer priority, applies the configured
// color special effect, and writes the result into the framebuffer.
func (l *Lcd) renderLine() {
	if l.forceBlank {
		for x := uint32(0); x < SCREEN_WIDTH; x++ {
			l.frameBuf.Set(int(x), int(l.y), Pixel{R: 0xFF, G: 0xFF, B: 0xFF})
		}
		return
	}

	l.tiles.invalidate()

	backdrop := l.bgPalette256(0)
	l.line.clear(backdrop, l.effectTagFor(5))

	l.renderObj()

	switch l.bgMode {
	case 0:
		for i := 0; i < 4; i++ {
			l.renderTextBg(i)
		}
	case 1:
		l.renderTextBg(0)
		l.renderTextBg(1)
		l.renderAffineBg(2)
	case 2:
		l.renderAffineBg(2)
		l.renderAffineBg(3)
	case 3:
		l.renderMode3Bg()
	case 4:
		l.renderMode4Bg()
	case 5:
		l.renderMode5Bg()
	default:
		logInvalidConfig("render_line: reserved bg mode %d", l.bgMode)
	}

	anyWindow := l.displayWindow[0] || l.displayWindow[1] || l.displayObjWindow

	for x := uint32(0); x < SCREEN_WIDTH; x++ {
		ctrl := l.windowAt(x, anyWindow)
		l.evalPriority(x, ctrl)
	}

	for x := uint32(0); x < SCREEN_WIDTH; x++ {
		ctrl := l.windowAt(x, anyWindow)
		l.colorSpecialEffect(x, ctrl)
		l.frameBuf.Set(int(x), int(l.y), bgr555ToPixel(l.line.finished[x]))
	}
}

// windowAt returns the control mask in effect for column x: the first
// enabled window (win0, then win1, then obj-window) that contains (x, y),
// winout if windows are enabled but none contains the pixel, or nil if no
// window is enabled at all (every layer and effect is then unconditionally
// visible).
func (l *Lcd) windowAt(x uint32, anyWindow bool) *windowCtrl {
	if !anyWindow {
		return nil
	}
	for i := 0; i < 2; i++ {
		if l.displayWindow[i] && l.inWindow(l.window[i], x) {
			return &l.winin[i]
		}
	}
	if l.displayObjWindow && l.line.objAttr[x].window() {
		return &l.objwin
	}
	return &l.winout
}

func (l *Lcd) inWindow(w window, x uint32) bool {
	return inWindowRange(uint8(x), w.l, w.r) && inWindowRange(uint8(l.y), w.u, w.d)
}

// inWindowRange reports whether v falls within [lo, hi], inclusive on
// both edges.
func inWindowRange(v, lo, hi uint8) bool {
	return lo <= v && v <= hi
}

// evalPriority inserts every enabled layer's pixel at column x into the
// two-deep surface stack in priority order, nearest surviving into
// line.surface[0].
func (l *Lcd) evalPriority(x uint32, ctrl *windowCtrl) {
	type cand struct {
		kind     uint8
		priority uint8
		color    uint16
	}

	var cands []cand
	for i := 0; i < 4; i++ {
		if !l.layerVisible(ctrl, uint8(i)) {
			continue
		}
		c := l.line.bg[i][x]
		if c&TransparentMarker != 0 {
			continue
		}
		cands = append(cands, cand{kind: uint8(i), priority: l.bg[i].priority, color: c})
	}

	if ctrl == nil || ctrl.displayObj {
		c := l.line.obj[x]
		if c&TransparentMarker == 0 {
			cands = append(cands, cand{kind: 4, priority: l.line.objAttr[x].priority(), color: c})
		}
	}

	// Insertion-sort candidates by ascending priority, keeping OBJ ahead of
	// a BG of equal priority value (GBA tie-break rule).
	less := func(p, q cand) bool {
		if p.priority != q.priority {
			return p.priority < q.priority
		}
		return p.kind == 4 && q.kind != 4
	}
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && less(cands[j], cands[j-1]); j-- {
			cands[j-1], cands[j] = cands[j], cands[j-1]
		}
	}

	slot := 0
	for _, c := range cands {
		if slot >= 2 {
			break
		}
		l.line.surface[slot][x] = c.color
		l.line.surfaceAttr[slot][x] = newSurfaceAttr(c.priority, c.kind, l.effectTagFor(c.kind))
		slot++
	}
}

func (l *Lcd) layerVisible(ctrl *windowCtrl, kind uint8) bool {
	if !l.displayBg[kind] {
		return false
	}
	if ctrl == nil {
		return true
	}
	return ctrl.displayBg[kind]
}

// effectTagFor reports whether layer kind is configured as a first-target
// (bit 0) or second-target (bit 1) surface for the active blend effect.
func (l *Lcd) effectTagFor(kind uint8) uint8 {
	var tag uint8
	if l.blend.target[0]&(1<<kind) != 0 {
		tag |= 1
	}
	if l.blend.target[1]&(1<<kind) != 0 {
		tag |= 2
	}
	return tag
}

// colorSpecialEffect applies the configured blend/brightness effect to the
// top surface at column x, using the second surface as the alpha-blend
// partner when applicable, and writes the result to line.finished.
//
// A semi-transparent OBJ top surface unconditionally forces alpha
// blending against the second surface, as long as that window's effect
// gate is open; otherwise the active effect only applies when BLDCNT
// designates the top surface as a first-target and, for alpha blend, the
// second surface as a second-target.
func (l *Lcd) colorSpecialEffect(x uint32, ctrl *windowCtrl) {
	top := l.line.surface[0][x]
	topAttr := l.line.surfaceAttr[0][x]
	bottom := l.line.surface[1][x]
	bottomAttr := l.line.surfaceAttr[1][x]

	effectEnabled := ctrl == nil || ctrl.colorSpecialEffect
	topIsOBJ := topAttr.kind() == 4
	forcedAlpha := effectEnabled && topIsOBJ && l.line.objAttr[x].semiTransparent()

	if forcedAlpha {
		l.line.finished[x] = alphaBlend(top, l.blend.eva, bottom, l.blend.evb)
		return
	}

	if !effectEnabled || l.blend.effect == 0 || topAttr.effect()&1 == 0 {
		l.line.finished[x] = top
		return
	}

	switch l.blend.effect {
	case 1:
		if bottomAttr.effect()&2 != 0 {
			l.line.finished[x] = alphaBlend(top, l.blend.eva, bottom, l.blend.evb)
		} else {
			l.line.finished[x] = top
		}
	case 2:
		l.line.finished[x] = brightnessIncrease(top, l.blend.evy)
	case 3:
		l.line.finished[x] = brightnessDecrease(top, l.blend.evy)
	}
}

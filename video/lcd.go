package video

import "log"

// Lcd is the video core: the per-dot timing engine, the memory-mapped
// register file, the background/object rasterizers, and the priority
// compositor, driven entirely by Tick and register reads/writes.
type Lcd struct {
	Vram    []uint8
	Oam     []uint8
	Palette []uint8

	bgMode               uint8
	displayFrameSelect   bool
	hblankObjProcess     bool // false: enabled, true: disabled
	objFormat            bool // false: 2-dim, true: 1-dim
	forceBlank           bool
	displayBg            [4]bool
	displayObj           bool
	displayWindow        [2]bool
	displayObjWindow     bool

	vblankIrqEnable bool
	hblankIrqEnable bool
	vcountIrqEnable bool
	vcountCompare   uint8

	bg         [4]bg
	window     [2]window
	winin      [2]windowCtrl
	winout     windowCtrl
	objwin     windowCtrl

	bgMosaicH, bgMosaicV   uint8
	objMosaicH, objMosaicV uint8

	blend blendCtrl

	prevClock uint64
	fraction  uint64
	x, y      uint32
	frame     uint64

	line  lineBuf
	tiles *tileCache

	frameBuf *FrameBuf
}

// New constructs an Lcd with zeroed VRAM/OAM/palette and register state.
func New() *Lcd {
	return &Lcd{
		Vram:     make([]uint8, VRAM_SIZE),
		Oam:      make([]uint8, OAM_SIZE),
		Palette:  make([]uint8, PALETTE_SIZE),
		tiles:    newTileCache(),
		frameBuf: NewFrameBuf(SCREEN_WIDTH, SCREEN_HEIGHT),
	}
}

func (l *Lcd) Frame() uint64      { return l.frame }
func (l *Lcd) Line() uint32       { return l.y }
func (l *Lcd) FrameBuf() *FrameBuf { return l.frameBuf }

func (l *Lcd) Vblank() bool { return l.y >= SCREEN_HEIGHT }
func (l *Lcd) Hblank() bool { return l.y < SCREEN_HEIGHT && l.x >= SCREEN_WIDTH }

func (l *Lcd) vcountMatch() bool { return l.y == uint32(l.vcountCompare) }

// WriteVRAM8 writes a single byte of VRAM from the outside (the CPU bus
// emulator). It purges the tile decode cache, since the cached rows may
// now be stale.
func (l *Lcd) WriteVRAM8(addr uint32, v uint8) {
	l.Vram[addr] = v
	l.tiles.invalidate()
}

// Tick advances the LCD to the current master-clock reading, consuming
// whole CLOCK_PER_DOT quanta and firing interrupts through sink.
func (l *Lcd) Tick(now uint64, sink InterruptSink) {
	elapsed := now - l.prevClock
	l.prevClock = now

	l.fraction += elapsed

	for l.fraction >= CLOCK_PER_DOT {
		l.fraction -= CLOCK_PER_DOT
		l.tickDot(sink)
	}
}

func (l *Lcd) tickDot(sink InterruptSink) {
	l.x++

	if l.y < SCREEN_HEIGHT && l.x == SCREEN_WIDTH {
		l.renderLine()
		if l.hblankIrqEnable {
			sink.SetInterrupt(HBlank)
		}
	}

	if l.x >= DOTS_PER_LINE {
		l.x -= DOTS_PER_LINE
		l.y++

		if l.y == SCREEN_HEIGHT && l.vblankIrqEnable {
			sink.SetInterrupt(VBlank)
		}

		if l.y == uint32(l.vcountCompare) && l.vcountIrqEnable {
			sink.SetInterrupt(VCount)
		}

		if l.y >= LINES_PER_FRAME {
			l.y -= LINES_PER_FRAME
			l.frame++

			if l.y == 0 {
				for i := range l.bg {
					l.bg[i].frameStart()
				}
			}
		}
	}
}

func logInvalidConfig(format string, args ...any) {
	log.Printf("video: "+format, args...)
}

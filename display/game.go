package display

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nullrouted/tinyadvance/backup"
	"github.com/nullrouted/tinyadvance/video"
)

// Game is an ebiten.Game that drives a video.Lcd from a WallClock and
// blits its framebuffer every frame, playing the role bdwalton-gintendo's
// console.Bus plays for its PPU.
type Game struct {
	lcd   *video.Lcd
	flash *backup.Flash
	clock *WallClock
}

// New constructs a Game around a fresh video core and a 128KiB flash
// backup chip, and configures the ebiten window to the GBA's native
// resolution.
func New() *Game {
	g := &Game{
		lcd:   video.New(),
		flash: backup.New(128 * 1024),
		clock: NewWallClock(),
	}

	ebiten.SetWindowSize(video.SCREEN_WIDTH*3, video.SCREEN_HEIGHT*3)
	ebiten.SetWindowTitle("tinyadvance")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return g
}

// Layout returns the LCD's fixed native resolution, so ebiten scales the
// window rather than the emulator's pixel grid.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return video.SCREEN_WIDTH, video.SCREEN_HEIGHT
}

// Update advances the video core to the wall clock's current reading.
// Interrupts raised during the advance are only logged: the outer
// emulator loop that would route them to a CPU is out of scope here.
func (g *Game) Update() error {
	g.lcd.Tick(g.clock.Now(), logSink{})
	return nil
}

// Draw copies the LCD's framebuffer into the ebiten screen image.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.lcd.FrameBuf()
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			p := fb.At(x, y)
			screen.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
}

// Lcd exposes the underlying video core for register pokes from a host
// harness (the outer emulator loop this package does not implement).
func (g *Game) Lcd() *video.Lcd { return g.lcd }

// Flash exposes the underlying backup chip.
func (g *Game) Flash() *backup.Flash { return g.flash }

type logSink struct{}

func (logSink) SetInterrupt(kind video.InterruptKind) {
	log.Printf("display: interrupt %s (no CPU attached)", kind)
}

// Command tinyadvance runs the video core in a window, stepping it from
// the wall clock. It exists to exercise display.Game; it is not a full
// emulator, since the CPU bus, cartridge loading, and input are all out
// of the core's scope.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nullrouted/tinyadvance/display"
)

var snapshotPath = flag.String("snapshot", "", "If set, write one PNG snapshot of the framebuffer to this path after 2 seconds and exit.")

func main() {
	flag.Parse()

	game := display.New()

	if *snapshotPath != "" {
		go runSnapshotAfterDelay(game, *snapshotPath)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("tinyadvance: %v", err)
	}
}

func runSnapshotAfterDelay(game *display.Game, path string) {
	time.Sleep(2 * time.Second)
	if err := display.SnapshotPNG(game.Lcd().FrameBuf(), path, 2); err != nil {
		log.Fatalf("tinyadvance: snapshot failed: %v", err)
	}
	os.Exit(0)
}

package display

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/nullrouted/tinyadvance/video"
)

// SnapshotPNG renders fb to a PNG file at path, scaled up by factor with
// nearest-neighbor interpolation so GBA-native pixels stay crisp — useful
// for visually diffing renders across runs.
func SnapshotPNG(fb *video.FrameBuf, path string, factor int) error {
	if factor < 1 {
		factor = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			p := fb.At(x, y)
			src.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}

	dst := src
	if factor > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, fb.Width()*factor, fb.Height()*factor))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Over, nil)
		dst = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, dst)
}

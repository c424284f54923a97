package video

import lru "github.com/hashicorp/golang-lru/v2"

// tileCacheSize covers a full scanline's worst case: 32 tile columns times
// the four background layers is 128 rows, and the cache holds twice that.
const tileCacheSize = 256

// tileRowKey identifies one decoded row of 8 pixel-index samples from a
// tile's character data.
type tileRowKey struct {
	charBase int
	tile     int
	row      int
	color256 bool
}

type tileRow [8]uint8

// tileCache is a read-through cache over VRAM tile decode, keyed by
// (character base, tile index, tile row). It changes no rendering
// semantics: a miss falls through to the same byte-level VRAM reads the
// uncached path would perform, the cache is purged at the start of every
// rendered line (so direct writes to Lcd.Vram between lines are seen), and
// every Lcd.WriteVRAM8 purges it as well.
type tileCache struct {
	c *lru.Cache[tileRowKey, tileRow]
}

func newTileCache() *tileCache {
	c, err := lru.New[tileRowKey, tileRow](tileCacheSize)
	if err != nil {
		panic(err)
	}
	return &tileCache{c: c}
}

func (tc *tileCache) invalidate() {
	tc.c.Purge()
}

// row4bpp returns the 8 nibble color indices for one row of a 4bpp tile,
// decoding from vram and caching the result.
func (l *Lcd) row4bpp(charBase, tile, row int) tileRow {
	key := tileRowKey{charBase: charBase, tile: tile, row: row, color256: false}
	if v, ok := l.tiles.c.Get(key); ok {
		return v
	}
	var r tileRow
	base := charBase + tile*32 + row*4
	for ox := 0; ox < 8; ox++ {
		b := l.Vram[base+ox/2]
		r[ox] = (b >> ((ox & 1) * 4)) & 0xF
	}
	l.tiles.c.Add(key, r)
	return r
}

// row8bpp returns the 8 byte color indices for one row of an 8bpp tile.
func (l *Lcd) row8bpp(charBase, tile, row int) tileRow {
	key := tileRowKey{charBase: charBase, tile: tile, row: row, color256: true}
	if v, ok := l.tiles.c.Get(key); ok {
		return v
	}
	var r tileRow
	base := charBase + tile*64 + row*8
	for ox := 0; ox < 8; ox++ {
		r[ox] = l.Vram[base+ox]
	}
	l.tiles.c.Add(key, r)
	return r
}

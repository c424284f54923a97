package video

// alphaBlend performs 15-bit BGR alpha blending: each 5-bit channel is
// combined independently as min(31, (a*eva + b*evb) / 16).
func alphaBlend(a uint16, eva uint8, b uint16, evb uint8) uint16 {
	ar, ag, ab := splitBGR(a)
	br, bg, bb := splitBGR(b)
	cr := alphaBlendMono(ar, eva, br, evb)
	cg := alphaBlendMono(ag, eva, bg, evb)
	cb := alphaBlendMono(ab, eva, bb, evb)
	return joinBGR(cr, cg, cb)
}

func alphaBlendMono(a uint16, eva uint8, b uint16, evb uint8) uint16 {
	v := (a*uint16(eva) + b*uint16(evb)) / 16
	if v > 31 {
		return 31
	}
	return v
}

// brightnessIncrease moves every channel toward white by evy/16ths of the
// remaining headroom: y + (31-y)*evy/16.
func brightnessIncrease(c uint16, evy uint8) uint16 {
	r, g, b := splitBGR(c)
	return joinBGR(
		brightnessIncreaseMono(r, evy),
		brightnessIncreaseMono(g, evy),
		brightnessIncreaseMono(b, evy),
	)
}

func brightnessIncreaseMono(y uint16, evy uint8) uint16 {
	return y + (31-y)*uint16(evy)/16
}

// brightnessDecrease moves every channel toward black by evy/16ths of its
// own value: y - y*evy/16.
func brightnessDecrease(c uint16, evy uint8) uint16 {
	r, g, b := splitBGR(c)
	return joinBGR(
		brightnessDecreaseMono(r, evy),
		brightnessDecreaseMono(g, evy),
		brightnessDecreaseMono(b, evy),
	)
}

func brightnessDecreaseMono(y uint16, evy uint8) uint16 {
	return y - y*uint16(evy)/16
}

func splitBGR(c uint16) (r, g, b uint16) {
	return c & 0x1F, (c >> 5) & 0x1F, (c >> 10) & 0x1F
}

func joinBGR(r, g, b uint16) uint16 {
	return (b << 10) | (g << 5) | r
}

// signExtend interprets the low sign+1 bits of x as a two's-complement
// integer and sign-extends it to a full int32. sign is the zero-based bit
// index of the sign bit (27 for the 28-bit affine reference points).
func signExtend(x uint32, sign uint) int32 {
	shift := 31 - sign
	return int32(x<<shift) >> shift
}

package video

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphaBlendSaturatesAtClampedInput(t *testing.T) {
	require.EqualValues(t, 0x7FFF, alphaBlend(0x7FFF, 16, 0, 0))
}

func TestAlphaBlendCommutesOnlyWhenCoefficientsMatch(t *testing.T) {
	a, b := uint16(joinBGR(10, 20, 5)), uint16(joinBGR(2, 2, 2))
	require.Equal(t, alphaBlend(a, 8, b, 8), alphaBlend(b, 8, a, 8))
	require.NotEqual(t, alphaBlend(a, 12, b, 4), alphaBlend(b, 12, a, 4))
}

func TestBrightnessIncreaseIdentityAndSaturation(t *testing.T) {
	c := joinBGR(10, 3, 31)
	require.Equal(t, c, brightnessIncrease(c, 0))
	require.EqualValues(t, 0x7FFF, brightnessIncrease(c, 16))
}

func TestBrightnessDecreaseIdentityAndZero(t *testing.T) {
	c := joinBGR(10, 3, 31)
	require.Equal(t, c, brightnessDecrease(c, 0))
	require.EqualValues(t, 0, brightnessDecrease(c, 16))
}

func TestSignExtendIdentityWithinRange(t *testing.T) {
	require.EqualValues(t, 100, signExtend(100, 27))
	require.EqualValues(t, -1, signExtend(0x0FFFFFFF, 27))
}

func TestBGR555ToPixelReplicatesTopBits(t *testing.T) {
	p := bgr555ToPixel(0x7FFF)
	require.Equal(t, Pixel{R: 0xFF, G: 0xFF, B: 0xFF}, p)
}

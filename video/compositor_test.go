package video

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInWindowInclusiveEdges(t *testing.T) {
	l := New()
	w := window{l: 10, r: 20, u: 5, d: 15}

	l.y = 5
	require.True(t, l.inWindow(w, 10))
	require.True(t, l.inWindow(w, 20))
	require.False(t, l.inWindow(w, 9))
	require.False(t, l.inWindow(w, 21))

	l.y = 15
	require.True(t, l.inWindow(w, 15))
	l.y = 4
	require.False(t, l.inWindow(w, 15))
	l.y = 16
	require.False(t, l.inWindow(w, 15))
}

func TestWindowAtReturnsNilWhenNoWindowEnabled(t *testing.T) {
	l := New()
	require.Nil(t, l.windowAt(50, false))
}

func TestWindowAtTieBreaksWin0BeforeWin1(t *testing.T) {
	l := New()
	l.displayWindow[0] = true
	l.displayWindow[1] = true
	l.window[0] = window{l: 0, r: 239, u: 0, d: 159}
	l.window[1] = window{l: 0, r: 239, u: 0, d: 159}

	ctrl := l.windowAt(100, true)
	require.Same(t, &l.winin[0], ctrl)
}

func TestWindowAtFallsBackToWin1WhenWin0DoesNotContainPixel(t *testing.T) {
	l := New()
	l.displayWindow[0] = true
	l.displayWindow[1] = true
	l.window[0] = window{l: 200, r: 210, u: 0, d: 159}
	l.window[1] = window{l: 0, r: 239, u: 0, d: 159}

	ctrl := l.windowAt(100, true)
	require.Same(t, &l.winin[1], ctrl)
}

func TestWindowAtTieBreaksObjWindowBeforeWinout(t *testing.T) {
	l := New()
	l.displayObjWindow = true
	l.line.objAttr[50] = l.line.objAttr[50].withWindow(true)

	ctrl := l.windowAt(50, true)
	require.Same(t, &l.objwin, ctrl)
}

func TestWindowAtReturnsWinoutWhenNoWindowContainsPixel(t *testing.T) {
	l := New()
	l.displayWindow[0] = true
	l.window[0] = window{l: 200, r: 210, u: 0, d: 159}

	ctrl := l.windowAt(50, true)
	require.Same(t, &l.winout, ctrl)
}

func TestColorSpecialEffectForcedAlphaIgnoresTargetMask(t *testing.T) {
	l := New()
	x := uint32(0)
	l.blend.eva = 16
	l.blend.evb = 16

	top := uint16(0x001F)    // red only
	bottom := uint16(0x03E0) // green only

	l.line.surface[0][x] = top
	l.line.surface[1][x] = bottom
	l.line.surfaceAttr[0][x] = newSurfaceAttr(0, 4, 0) // top: OBJ, no BLDCNT target bits
	l.line.surfaceAttr[1][x] = newSurfaceAttr(1, 0, 0) // bottom: BG0, not a second-target
	l.line.objAttr[x] = l.line.objAttr[x].withSemiTransparent(true)

	l.colorSpecialEffect(x, nil)

	want := alphaBlend(top, l.blend.eva, bottom, l.blend.evb)
	require.Equal(t, want, l.line.finished[x])
	require.NotEqual(t, top, l.line.finished[x])
}

func TestColorSpecialEffectDisabledByWindowGate(t *testing.T) {
	l := New()
	x := uint32(0)
	l.blend.eva = 16
	l.blend.evb = 0

	top := uint16(0x001F)
	l.line.surface[0][x] = top
	l.line.surface[1][x] = uint16(0x03E0)
	l.line.surfaceAttr[0][x] = newSurfaceAttr(0, 4, 0)
	l.line.objAttr[x] = l.line.objAttr[x].withSemiTransparent(true)

	ctrl := &windowCtrl{colorSpecialEffect: false}
	l.colorSpecialEffect(x, ctrl)

	require.Equal(t, top, l.line.finished[x])
}

func TestColorSpecialEffectNoneReturnsTopUnchanged(t *testing.T) {
	l := New()
	x := uint32(0)
	l.blend.effect = 0

	top := uint16(0x1234 & 0x7FFF)
	l.line.surface[0][x] = top
	l.line.surfaceAttr[0][x] = newSurfaceAttr(0, 0, 1)

	l.colorSpecialEffect(x, nil)
	require.Equal(t, top, l.line.finished[x])
}

func TestColorSpecialEffectAlphaRequiresBothTargets(t *testing.T) {
	l := New()
	x := uint32(0)
	l.blend.effect = 1
	l.blend.eva = 16
	l.blend.evb = 0

	top := uint16(0x001F)
	bottom := uint16(0x03E0)
	l.line.surface[0][x] = top
	l.line.surface[1][x] = bottom
	l.line.surfaceAttr[0][x] = newSurfaceAttr(0, 0, 1) // first-target
	l.line.surfaceAttr[1][x] = newSurfaceAttr(1, 1, 2) // second-target

	l.colorSpecialEffect(x, nil)
	want := alphaBlend(top, 16, bottom, 0)
	require.Equal(t, want, l.line.finished[x])
}

func TestColorSpecialEffectAlphaSkippedWhenBottomNotSecondTarget(t *testing.T) {
	l := New()
	x := uint32(0)
	l.blend.effect = 1
	l.blend.eva = 16
	l.blend.evb = 16

	top := uint16(0x001F)
	l.line.surface[0][x] = top
	l.line.surface[1][x] = uint16(0x03E0)
	l.line.surfaceAttr[0][x] = newSurfaceAttr(0, 0, 1) // first-target
	l.line.surfaceAttr[1][x] = newSurfaceAttr(1, 1, 0) // not a second-target

	l.colorSpecialEffect(x, nil)
	require.Equal(t, top, l.line.finished[x])
}

func TestColorSpecialEffectBrightnessIncrease(t *testing.T) {
	l := New()
	x := uint32(0)
	l.blend.effect = 2
	l.blend.evy = 8

	top := uint16(0x0000)
	l.line.surface[0][x] = top
	l.line.surfaceAttr[0][x] = newSurfaceAttr(0, 0, 1)

	l.colorSpecialEffect(x, nil)
	want := brightnessIncrease(top, 8)
	require.Equal(t, want, l.line.finished[x])
	require.NotEqual(t, top, l.line.finished[x])
}

func TestColorSpecialEffectBrightnessDecrease(t *testing.T) {
	l := New()
	x := uint32(0)
	l.blend.effect = 3
	l.blend.evy = 8

	top := uint16(0x7FFF)
	l.line.surface[0][x] = top
	l.line.surfaceAttr[0][x] = newSurfaceAttr(0, 0, 1)

	l.colorSpecialEffect(x, nil)
	want := brightnessDecrease(top, 8)
	require.Equal(t, want, l.line.finished[x])
	require.NotEqual(t, top, l.line.finished[x])
}

package ui

import (
	"testing"

	"navmenu/placement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle steps t until it stops and returns the number of frames taken.
func settle(t *testing.T, tr *Transition) int {
	t.Helper()
	frames := 0
	for tr.Active() {
		tr.Step()
		frames++
		require.Less(t, frames, 100, "transition never settled")
	}
	return frames
}

func TestTransitionFirstTargetSnaps(t *testing.T) {
	tr := NewTransition(true)
	assert.False(t, tr.Placed())

	r := placement.Rect{X: 10, Y: 7, Width: 34, Height: 10}
	tr.SetTarget(r)
	assert.True(t, tr.Placed())
	assert.Equal(t, r, tr.Bounds())
	assert.False(t, tr.Active())
}

func TestTransitionRetargetAnimates(t *testing.T) {
	tr := NewTransition(true)
	from := placement.Rect{X: 10, Y: 7, Width: 34, Height: 10}
	to := placement.Rect{X: 10, Y: 7, Width: 62, Height: 10}
	tr.SetTarget(from)
	tr.SetTarget(to)

	assert.True(t, tr.Active())
	assert.Equal(t, to, tr.Target())

	tr.Step()
	mid := tr.Bounds()
	assert.Greater(t, mid.Width, from.Width)
	assert.Less(t, mid.Width, to.Width)
	assert.Equal(t, from.Height, mid.Height, "unchanged axes stay put")

	frames := settle(t, tr)
	assert.Equal(t, to, tr.Bounds())
	// One frame was already taken above.
	assert.LessOrEqual(t, frames+1, int(GeometryDuration/FrameInterval)+1)
}

func TestTransitionFirstLayerAppearsInstantly(t *testing.T) {
	tr := NewTransition(true)
	tr.Switch("a", 1, "")

	layers := tr.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, "a", layers[0].ID())
	assert.Equal(t, 1.0, layers[0].Opacity())
	assert.Equal(t, 0.0, layers[0].Offset())
	assert.False(t, tr.Active())
}

func TestTransitionSwitchForward(t *testing.T) {
	tr := NewTransition(true)
	tr.Switch("a", 1, "")
	tr.Switch("b", 1, "view of a")

	layers := tr.Layers()
	require.Len(t, layers, 2)
	out, in := layers[0], layers[1]

	assert.True(t, out.Exiting())
	assert.Equal(t, "view of a", out.Frozen())
	assert.Equal(t, 1.0, out.Opacity())

	assert.Equal(t, "b", in.ID())
	assert.Equal(t, SlideFraction, in.Offset(), "forward content enters from the right")
	assert.Equal(t, 0.0, in.Opacity())

	tr.Step()
	assert.Less(t, out.Offset(), 0.0, "the old content leaves to the left")
	assert.Less(t, in.Offset(), SlideFraction)
	assert.Greater(t, in.Opacity(), 0.0)
	assert.Less(t, out.Opacity(), 1.0)

	settle(t, tr)
	require.Len(t, tr.Layers(), 1, "the exited layer unmounts")
	assert.Equal(t, "b", tr.Layers()[0].ID())
	assert.Equal(t, 0.0, tr.Layers()[0].Offset())
	assert.Equal(t, 1.0, tr.Layers()[0].Opacity())
}

func TestTransitionFadeFinishesBeforeSlide(t *testing.T) {
	tr := NewTransition(true)
	tr.Switch("a", 1, "")
	tr.Switch("b", 1, "view of a")
	out, in := tr.Layers()[0], tr.Layers()[1]

	for i := 0; i < int(FadeDuration/FrameInterval)+1; i++ {
		tr.Step()
	}
	assert.Equal(t, 1.0, in.Opacity())
	assert.Equal(t, 0.0, out.Opacity())
	assert.Len(t, tr.Layers(), 2, "the old layer stays mounted until its slide ends")
	assert.NotEqual(t, 0.0, in.Offset())
}

func TestTransitionInterruptedFadeReverses(t *testing.T) {
	tr := NewTransition(true)
	tr.Switch("a", 1, "")
	tr.Switch("b", 1, "view of a")
	b := tr.Layers()[1]
	tr.Step()
	tr.Step()

	partial := b.Opacity()
	require.Greater(t, partial, 0.0)
	require.Less(t, partial, 1.0)

	tr.Switch("c", 1, "view of b")
	assert.True(t, b.Exiting())
	assert.Equal(t, partial, b.Opacity(), "fading out starts where fading in stopped")

	tr.Step()
	assert.Less(t, b.Opacity(), partial)
}

func TestTransitionSwitchBackward(t *testing.T) {
	tr := NewTransition(true)
	tr.Switch("b", 1, "")
	tr.Switch("a", -1, "view of b")

	in := tr.Layers()[1]
	assert.Equal(t, -SlideFraction, in.Offset(), "backward content enters from the left")

	tr.Step()
	assert.Greater(t, tr.Layers()[0].Offset(), 0.0)
}

func TestTransitionSwitchSameIDIsNoop(t *testing.T) {
	tr := NewTransition(true)
	tr.Switch("a", 1, "")
	tr.Switch("a", 1, "ignored")
	assert.Len(t, tr.Layers(), 1)
}

func TestTransitionRapidSwitches(t *testing.T) {
	tr := NewTransition(true)
	tr.Switch("a", 1, "")
	tr.Switch("b", 1, "a")
	tr.Step()
	tr.Switch("c", 1, "b")

	var entering []string
	for _, l := range tr.Layers() {
		if !l.Exiting() {
			entering = append(entering, l.ID())
		}
	}
	assert.Equal(t, []string{"c"}, entering, "only one layer is ever entering")

	settle(t, tr)
	require.Len(t, tr.Layers(), 1)
	assert.Equal(t, "c", tr.Layers()[0].ID())
}

func TestTransitionWithoutAnimation(t *testing.T) {
	tr := NewTransition(false)
	tr.SetTarget(placement.Rect{X: 1, Y: 1, Width: 10, Height: 5})
	to := placement.Rect{X: 4, Y: 1, Width: 20, Height: 8}
	tr.SetTarget(to)
	assert.Equal(t, to, tr.Bounds())

	tr.Switch("a", 1, "")
	tr.Switch("b", 1, "a")
	require.Len(t, tr.Layers(), 1)
	assert.Equal(t, "b", tr.Layers()[0].ID())
	assert.False(t, tr.Active())
}

func TestTransitionReset(t *testing.T) {
	tr := NewTransition(true)
	tr.SetTarget(placement.Rect{X: 1, Y: 1, Width: 10, Height: 5})
	tr.Switch("a", 1, "")

	tr.Reset()
	assert.False(t, tr.Placed())
	assert.Empty(t, tr.Layers())

	r := placement.Rect{X: 30, Y: 2, Width: 40, Height: 6}
	tr.SetTarget(r)
	assert.Equal(t, r, tr.Bounds(), "the first geometry after a reset snaps")
}

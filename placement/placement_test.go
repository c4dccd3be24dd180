package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 5, Width: 20, Height: 3}

	assert.Equal(t, 10, r.Left())
	assert.Equal(t, 30, r.Right())
	assert.Equal(t, 5, r.Top())
	assert.Equal(t, 8, r.Bottom())

	assert.True(t, r.Contains(10, 5))
	assert.True(t, r.Contains(29, 7))
	assert.False(t, r.Contains(30, 7))
	assert.False(t, r.Contains(10, 8))
	assert.False(t, r.Contains(9, 5))
	assert.True(t, Rect{}.Empty())
}

func TestComputeAlignment(t *testing.T) {
	target := Rect{X: 100, Y: 40, Width: 50, Height: 20}
	size := Size{Width: 30, Height: 80}
	opts := DefaultOptions(1000, 800)

	tests := []struct {
		name      string
		placement Placement
		wantLeft  int
	}{
		{name: "centered", placement: Bottom, wantLeft: 110},
		{name: "bottom left", placement: BottomLeft, wantLeft: 100},
		{name: "start synonym", placement: Start, wantLeft: 100},
		{name: "bottom start", placement: BottomStart, wantLeft: 100},
		{name: "bottom right", placement: BottomRight, wantLeft: 120},
		{name: "end synonym", placement: End, wantLeft: 120},
		{name: "bottom end", placement: BottomEnd, wantLeft: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Compute(target, size, tt.placement, opts)
			assert.Equal(t, tt.wantLeft, pos.Left)
			assert.Equal(t, 72, pos.Top, "top is target bottom plus offset")
		})
	}
}

func TestComputeClampsHorizontally(t *testing.T) {
	opts := DefaultOptions(300, 200)

	t.Run("left edge", func(t *testing.T) {
		pos := Compute(Rect{X: 0, Y: 0, Width: 20, Height: 10}, Size{Width: 100}, Bottom, opts)
		assert.Equal(t, DefaultPadding, pos.Left)
	})

	t.Run("right edge", func(t *testing.T) {
		pos := Compute(Rect{X: 280, Y: 0, Width: 20, Height: 10}, Size{Width: 100}, BottomLeft, opts)
		assert.Equal(t, 300-100-DefaultPadding, pos.Left)
	})

	t.Run("wider than window never goes negative", func(t *testing.T) {
		for _, width := range []int{277, 300, 600} {
			pos := Compute(Rect{X: 150, Width: 10, Height: 10}, Size{Width: width}, BottomRight, opts)
			assert.Equal(t, DefaultPadding, pos.Left, "width %d", width)
		}
	})
}

func TestComputeVerticalOverflowByDefault(t *testing.T) {
	opts := DefaultOptions(300, 100)
	pos := Compute(Rect{Y: 60, Width: 10, Height: 10}, Size{Width: 10, Height: 80}, Bottom, opts)
	assert.Equal(t, 82, pos.Top)
}

func TestComputeVerticalClamp(t *testing.T) {
	opts := DefaultOptions(300, 100)
	opts.ClampVertical = true

	pos := Compute(Rect{Y: 60, Width: 10, Height: 10}, Size{Width: 10, Height: 40}, Bottom, opts)
	assert.Equal(t, 100-40-DefaultPadding, pos.Top)

	// Taller than the window: pinned to the top.
	pos = Compute(Rect{Y: 60, Width: 10, Height: 10}, Size{Width: 10, Height: 150}, Bottom, opts)
	assert.Equal(t, 0, pos.Top)
}

func TestCellOptions(t *testing.T) {
	opts := Options{Offset: 1, Padding: 2, WindowWidth: 80}
	pos := Compute(Rect{X: 10, Y: 3, Width: 40, Height: 3}, Size{Width: 20, Height: 6}, Bottom, opts)
	assert.Equal(t, Position{Top: 7, Left: 20}, pos)
}

func TestParsePlacement(t *testing.T) {
	for _, in := range []string{"bottom", "bottom left", "Bottom  Right", "start", "end", "bottom start", "bottom end"} {
		_, err := ParsePlacement(in)
		require.NoError(t, err, in)
	}

	p, err := ParsePlacement("")
	require.NoError(t, err)
	assert.Equal(t, Bottom, p)

	p, err = ParsePlacement("left")
	assert.Error(t, err)
	assert.Equal(t, Bottom, p)
}

func TestParseAnchor(t *testing.T) {
	a, err := ParseAnchor("trigger")
	require.NoError(t, err)
	assert.Equal(t, AnchorTrigger, a)

	a, err = ParseAnchor("window")
	assert.Error(t, err)
	assert.Equal(t, AnchorContainer, a)
}

// Package placement computes where a floating panel goes relative to an
// anchor rectangle. It only produces target geometry; interpolating towards
// it is left to the renderer.
package placement

import (
	"fmt"
	"strings"
)

const (
	// DefaultOffset is the gap between the anchor's bottom edge and the panel.
	DefaultOffset = 12
	// DefaultPadding is the minimum distance kept from the window edges.
	DefaultPadding = 12
)

// Rect is an axis-aligned box in window coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size is a measured width and height.
type Size struct {
	Width, Height int
}

// Position is the top-left corner of the panel.
type Position struct {
	Top, Left int
}

// Anchor selects the reference rectangle for placement.
type Anchor string

const (
	// AnchorContainer places the panel relative to the whole trigger bar.
	AnchorContainer Anchor = "container"
	// AnchorTrigger places the panel relative to the active trigger.
	AnchorTrigger Anchor = "trigger"
)

// ParseAnchor validates an anchor name.
func ParseAnchor(s string) (Anchor, error) {
	switch a := Anchor(strings.TrimSpace(strings.ToLower(s))); a {
	case AnchorContainer, AnchorTrigger:
		return a, nil
	case "":
		return AnchorContainer, nil
	default:
		return AnchorContainer, fmt.Errorf("unknown anchor %q (want %q or %q)", s, AnchorContainer, AnchorTrigger)
	}
}

// Placement is the preferred side and alignment of the panel.
type Placement string

const (
	Bottom      Placement = "bottom"
	BottomLeft  Placement = "bottom left"
	BottomRight Placement = "bottom right"
	BottomStart Placement = "bottom start"
	BottomEnd   Placement = "bottom end"
	Start       Placement = "start"
	End         Placement = "end"
)

// ParsePlacement validates a placement name. Extra whitespace is collapsed.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.Join(strings.Fields(strings.ToLower(s)), " "))
	switch p {
	case Bottom, BottomLeft, BottomRight, BottomStart, BottomEnd, Start, End:
		return p, nil
	case "":
		return Bottom, nil
	default:
		return Bottom, fmt.Errorf("unknown placement %q", s)
	}
}

// Align is the horizontal alignment derived from a Placement.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

// Align maps left and start to AlignStart, right and end to AlignEnd, and
// everything else to AlignCenter.
func (p Placement) Align() Align {
	s := string(p)
	switch {
	case p == BottomLeft || strings.Contains(s, "start"):
		return AlignStart
	case p == BottomRight || strings.Contains(s, "end"):
		return AlignEnd
	default:
		return AlignCenter
	}
}

// Options carries the window bounds and spacing used by Compute.
type Options struct {
	Offset  int
	Padding int

	WindowWidth  int
	WindowHeight int

	// ClampVertical keeps the panel inside the window height. The panel is
	// otherwise allowed to overflow the bottom edge.
	ClampVertical bool
}

// DefaultOptions returns options with the default offset and padding.
func DefaultOptions(windowWidth, windowHeight int) Options {
	return Options{
		Offset:       DefaultOffset,
		Padding:      DefaultPadding,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
	}
}

// Compute places a panel of the given size below target.
func Compute(target Rect, size Size, p Placement, opts Options) Position {
	top := target.Bottom() + opts.Offset

	var left int
	switch p.Align() {
	case AlignStart:
		left = target.Left()
	case AlignEnd:
		left = target.Right() - size.Width
	default:
		left = target.Left() + target.Width/2 - size.Width/2
	}

	// The lower bound wins when the panel is wider than the window.
	left = max(opts.Padding, min(left, opts.WindowWidth-size.Width-opts.Padding))

	if opts.ClampVertical && opts.WindowHeight > 0 {
		top = clampTop(top, size.Height, opts)
	}

	return Position{Top: top, Left: left}
}

func clampTop(top, height int, opts Options) int {
	minY := opts.Padding
	maxY := opts.WindowHeight - height - opts.Padding
	if maxY < minY {
		minY = 0
		maxY = max(0, opts.WindowHeight-height)
	}
	return max(minY, min(top, maxY))
}

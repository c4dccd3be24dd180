// Package overlay composites floating blocks of styled text onto a background.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetStyle = "\x1b[0m"

// Option tweaks PlaceOverlay.
type Option func(*options)

type options struct {
	center bool
}

// Centered ignores x and y and centers the foreground on the background.
func Centered() Option {
	return func(o *options) {
		o.center = true
	}
}

// PlaceOverlay draws fg on top of bg with its top-left corner at (x, y).
// Anything falling outside bg is clipped, including negative offsets, so a
// block may slide partly off either edge.
func PlaceOverlay(x, y int, fg, bg string, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	bgWidth := widest(bgLines)

	if o.center {
		x = (bgWidth - widest(fgLines)) / 2
		y = (len(bgLines) - len(fgLines)) / 2
	}

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLines[row] = composeLine(bgLines[row], line, x, bgWidth)
	}
	return strings.Join(bgLines, "\n")
}

func composeLine(bgLine, fgLine string, x, bgWidth int) string {
	fgWidth := ansi.StringWidth(fgLine)
	if x < 0 {
		fgLine = ansi.TruncateLeft(fgLine, -x, "")
		fgWidth += x
		x = 0
	}
	if x >= bgWidth || fgWidth <= 0 {
		return bgLine
	}
	if x+fgWidth > bgWidth {
		fgLine = ansi.Truncate(fgLine, bgWidth-x, "")
		fgWidth = bgWidth - x
	}

	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(bgLine, x+fgWidth, "")

	var sb strings.Builder
	sb.WriteString(left)
	sb.WriteString(resetStyle)
	sb.WriteString(fgLine)
	sb.WriteString(resetStyle)
	sb.WriteString(right)
	return sb.String()
}

// Canvas returns a blank block of the given size.
func Canvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Clip cuts a block to at most width columns and height rows, padding
// shorter lines with spaces so the result is exactly width by height.
func Clip(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(block, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

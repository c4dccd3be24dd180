package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the page is designed for.
	MinWidth = 60

	// CompactWidth drops trigger padding in the bar.
	CompactWidth = 80

	// StandardWidth is the threshold for the standard layout.
	StandardWidth = 100
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the page is designed for.
	MinHeight = 20

	// CompactHeight collapses the gaps between menu sections.
	CompactHeight = 30

	// StandardHeight is the threshold for the standard layout.
	StandardHeight = 40
)

// Page rows
const (
	// HeaderHeight is the page title plus a blank line.
	HeaderHeight = 2

	// HeadingHeight is the caption above each menu bar.
	HeadingHeight = 1

	// BarHeight is a bordered, single-line trigger bar.
	BarHeight = 3

	// FooterHeight is the footer link row plus the status line.
	FooterHeight = 2

	// MinSectionGap is the minimum number of blank rows between sections.
	MinSectionGap = 1
)

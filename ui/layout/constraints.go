package layout

// Constraints holds the computed page layout.
type Constraints struct {
	TerminalWidth  int
	TerminalHeight int

	Mode LayoutMode

	// HeadingRows and BarRows hold the first row of each menu section.
	HeadingRows []int
	BarRows     []int

	FooterRow int
	StatusRow int

	ShowMinWarning bool
}

// ComputeConstraints lays out a header, one section per menu and a footer,
// spreading the spare rows evenly between sections so each panel has room
// to drop down below its bar.
func ComputeConstraints(width, height, menus int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		ShowMinWarning: width < MinWidth || height < MinHeight,
	}

	section := HeadingHeight + BarHeight
	used := HeaderHeight + FooterHeight + menus*section
	gap := MinSectionGap
	if menus > 0 {
		gap = max(MinSectionGap, (height-used)/(menus+1))
	}
	if c.Mode == LayoutCompact && height < CompactHeight {
		gap = MinSectionGap
	}

	row := HeaderHeight
	for i := 0; i < menus; i++ {
		if i > 0 {
			row += gap
		}
		c.HeadingRows = append(c.HeadingRows, row)
		c.BarRows = append(c.BarRows, row+HeadingHeight)
		row += section
	}

	c.FooterRow = max(row+MinSectionGap, height-FooterHeight)
	c.StatusRow = c.FooterRow + 1

	return c
}

// PageHeight is the number of rows the page occupies.
func (c Constraints) PageHeight() int {
	return c.StatusRow + 1
}

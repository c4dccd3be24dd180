package ui

import (
	"strings"

	"navmenu/focus"
	"navmenu/menu"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// PanelColumnWidth is the default width of one column of links.
const PanelColumnWidth = 28

const (
	columnGap   = 2
	defaultHref = "#"
)

// LinkPanel is the panel content of an item: its child links laid out in a
// grid of Columns columns.
type LinkPanel struct {
	item             menu.Item
	hideDescriptions bool
}

var _ menu.Content = (*LinkPanel)(nil)

// NewLinkPanel creates the content for item.
func NewLinkPanel(item menu.Item) *LinkPanel {
	return &LinkPanel{item: item}
}

// Label is the accessible name of the panel.
func (p *LinkPanel) Label() string {
	return p.item.Label
}

// Columns returns the effective column count.
func (p *LinkPanel) Columns() int {
	return max(1, p.item.Columns)
}

// SetHideDescriptions drops link descriptions, which shrinks the panel.
func (p *LinkPanel) SetHideDescriptions(hide bool) {
	p.hideDescriptions = hide
}

// Elements lists the links in document order.
func (p *LinkPanel) Elements() []focus.Element {
	els := make([]focus.Element, 0, len(p.item.Children))
	for _, link := range p.item.Children {
		els = append(els, focus.Element{ID: link.ID, Kind: focus.KindLink, Href: Href(link)})
	}
	return els
}

// Link returns the child link with the given id.
func (p *LinkPanel) Link(id string) (menu.Link, bool) {
	for _, link := range p.item.Children {
		if link.ID == id {
			return link, true
		}
	}
	return menu.Link{}, false
}

// Href returns the link target, defaulting to a placeholder.
func Href(link menu.Link) string {
	if link.Href == "" {
		return defaultHref
	}
	return link.Href
}

// View renders the grid at its natural size. Rows are laid out the way a
// CSS grid fills: left to right, then top to bottom.
func (p *LinkPanel) View(focusedID string) string {
	cols := p.Columns()
	width := p.columnWidth(cols)

	var rows []string
	for start := 0; start < len(p.item.Children); start += cols {
		end := min(start+cols, len(p.item.Children))
		cells := make([]string, 0, cols*2)
		for i, link := range p.item.Children[start:end] {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", columnGap))
			}
			cells = append(cells, p.renderEntry(link, width, link.ID == focusedID))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	sep := "\n"
	if !p.hideDescriptions {
		sep = "\n\n"
	}
	grid := strings.Join(rows, sep)
	return lipgloss.NewStyle().Padding(0, 1).Render(grid)
}

func (p *LinkPanel) columnWidth(cols int) int {
	width := PanelColumnWidth
	for _, link := range p.item.Children {
		width = max(width, runewidth.StringWidth(link.Label))
	}
	if p.item.MinWidth > 0 {
		inner := (p.item.MinWidth - columnGap*(cols-1) - 2) / cols
		width = max(width, inner)
	}
	return width
}

func (p *LinkPanel) renderEntry(link menu.Link, width int, focused bool) string {
	labelStyle := EntryStyles.Label
	if focused {
		labelStyle = EntryStyles.Focused
	}
	lines := []string{labelStyle.Render(runewidth.Truncate(link.Label, width, "…"))}

	if !p.hideDescriptions && link.Description != "" {
		wrapped := wordwrap.String(link.Description, width)
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, EntryStyles.Description.Render(runewidth.Truncate(line, width, "…")))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

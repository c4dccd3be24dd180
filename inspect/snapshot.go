package inspect

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"navmenu/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// Focus is the id of the focused element, if any.
	Focus string `json:"focus,omitempty"`

	// Menus contains the state of every menu on the page.
	Menus []MenuInfo `json:"menus"`

	// Layout contains layout configuration.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MenuInfo is the open/close state of one menu.
type MenuInfo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Anchor       string `json:"anchor"`
	Placement    string `json:"placement"`
	IsOpen       bool   `json:"is_open"`
	ActiveID     string `json:"active_id,omitempty"`
	PreviousID   string `json:"previous_id,omitempty"`
	Direction    int    `json:"direction"`
	ClosePending bool   `json:"close_pending"`
	// Width and Height are the measured content size, zero until measured.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	// BarRows are the rows of each menu's trigger bar.
	BarRows []int `json:"bar_rows"`

	// FooterRow is the row of the footer links.
	FooterRow int `json:"footer_row"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideDescriptions bool `json:"hide_descriptions"`
	CompactTriggers  bool `json:"compact_triggers"`
	ShowMinWarning   bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithFocus records the focused element.
func (s *Snapshot) WithFocus(id string) *Snapshot {
	s.Focus = id
	return s
}

// AddMenu appends a menu's state.
func (s *Snapshot) AddMenu(info MenuInfo) *Snapshot {
	s.Menus = append(s.Menus, info)
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:      c.Mode.String(),
		BarRows:   append([]int(nil), c.BarRows...),
		FooterRow: c.FooterRow,
		Degradation: DegradationInfo{
			HideDescriptions: d.HideDescriptions,
			CompactTriggers:  d.CompactTriggers,
			ShowMinWarning:   d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_descriptions_width", Threshold: layout.DescriptionHideWidth, Active: c.TerminalWidth < layout.DescriptionHideWidth, Dimension: "width"},
		{Name: "hide_descriptions_height", Threshold: layout.DescriptionHideHeight, Active: c.TerminalHeight < layout.DescriptionHideHeight, Dimension: "height"},
		{Name: "compact_triggers", Threshold: layout.TriggerCompactWidth, Active: d.CompactTriggers, Dimension: "width"},
		{Name: "min_width", Threshold: layout.MinWidth, Active: c.TerminalWidth < layout.MinWidth, Dimension: "width"},
		{Name: "min_height", Threshold: layout.MinHeight, Active: c.TerminalHeight < layout.MinHeight, Dimension: "height"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	if s.Focus != "" {
		b.WriteString(fmt.Sprintf("Focus: %s\n", s.Focus))
	}

	b.WriteString("\n--- Menus ---\n")
	for _, m := range s.Menus {
		state := "closed"
		if m.IsOpen {
			state = fmt.Sprintf("open(%s) dir=%+d size=%dx%d", m.ActiveID, m.Direction, m.Width, m.Height)
		}
		if m.ClosePending {
			state += " closing"
		}
		b.WriteString(fmt.Sprintf("  %s [%s %s]: %s\n", m.ID, m.Anchor, m.Placement, state))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if !node.Visible {
		b.WriteString(" hidden")
	}

	keys := make([]string, 0, len(node.State))
	for k := range node.State {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", k, node.State[k]))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}

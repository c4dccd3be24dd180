package menu

import (
	"navmenu/focus"
	"navmenu/log"

	tea "github.com/charmbracelet/bubbletea"
)

// Region is the part of a menu a focus or pointer target falls in.
type Region int

const (
	// RegionNone is anywhere outside both the bar and the panel.
	RegionNone Region = iota
	RegionBar
	RegionPanel
)

func (r Region) String() string {
	switch r {
	case RegionBar:
		return "bar"
	case RegionPanel:
		return "panel"
	default:
		return "outside"
	}
}

// Move is a focus change requested by the controller.
type Move struct {
	Region Region
	ID     string
}

// RegionAt returns the region containing the point. The panel only counts
// while shown.
func (m *Menu) RegionAt(x, y int) Region {
	if m.panelShown && m.panel.Contains(x, y) {
		return RegionPanel
	}
	if m.bar.Contains(x, y) {
		return RegionBar
	}
	return RegionNone
}

// PointerDown closes an open menu when the press lands outside both the bar
// and the panel. It reports whether the menu was closed.
func (m *Menu) PointerDown(x, y int) bool {
	if !m.state.IsOpen || m.RegionAt(x, y) != RegionNone {
		return false
	}
	log.InputTrace("%s: pointer down outside at (%d,%d)", m.id, x, y)
	m.CloseImmediately()
	return true
}

// Escape closes an open menu, regardless of any pending close.
func (m *Menu) Escape() bool {
	if !m.state.IsOpen {
		return false
	}
	m.CloseImmediately()
	return true
}

// FocusLeave handles focus leaving the bar or the panel for next. Moving
// between the bar and the panel keeps the menu open; leaving both starts a
// debounced close.
func (m *Menu) FocusLeave(next Region) tea.Cmd {
	if next != RegionNone {
		return nil
	}
	return m.RequestClose()
}

// FocusTrigger handles focus landing on trigger id. Focus reaching a
// different trigger while a panel is open closes it without delay.
func (m *Menu) FocusTrigger(id string) {
	if m.state.IsOpen && m.state.ActiveID != id {
		m.CloseImmediately()
	}
}

// FocusPanel handles focus entering the panel.
func (m *Menu) FocusPanel() {
	m.CancelClose()
}

// PointerEnterTrigger opens id's panel, or schedules a close for a plain link.
func (m *Menu) PointerEnterTrigger(id string) tea.Cmd {
	return m.RequestOpen(id)
}

// PointerLeaveTrigger schedules a close.
func (m *Menu) PointerLeaveTrigger() tea.Cmd {
	return m.RequestClose()
}

// PointerEnterPanel keeps the panel open.
func (m *Menu) PointerEnterPanel() {
	m.CancelClose()
}

// PointerLeavePanel schedules a close.
func (m *Menu) PointerLeavePanel() tea.Cmd {
	return m.RequestClose()
}

// PanelElements returns the focusable entries of the open panel.
func (m *Menu) PanelElements() []focus.Element {
	c, ok := m.ActiveContent()
	if !ok {
		return nil
	}
	return focus.Focusables(c.Elements())
}

// TriggerTab intercepts a forward Tab on the active trigger and moves focus
// to the first entry of the panel. ok is false when default order applies.
func (m *Menu) TriggerTab(id string, shift bool) (Move, bool) {
	if shift || !m.IsActive(id) {
		return Move{}, false
	}
	entries := m.PanelElements()
	if len(entries) == 0 {
		return Move{}, false
	}
	return Move{Region: RegionPanel, ID: entries[0].ID}, true
}

// PanelTab intercepts Tab at the panel boundaries. Shift+Tab on the first
// entry returns to the active trigger; Tab on the last entry moves to the
// bar element after the active trigger. Both close the menu immediately.
func (m *Menu) PanelTab(current string, shift bool) (Move, bool) {
	if !m.state.IsOpen {
		return Move{}, false
	}
	entries := m.PanelElements()
	if len(entries) == 0 {
		return Move{}, false
	}
	active := m.state.ActiveID

	if shift {
		if entries[0].ID != current {
			return Move{}, false
		}
		m.CloseImmediately()
		return Move{Region: RegionBar, ID: active}, true
	}

	if entries[len(entries)-1].ID != current {
		return Move{}, false
	}
	bar := m.BarElements()
	idx := focus.IndexOf(bar, active)
	if idx < 0 || idx+1 >= len(bar) {
		return Move{}, false
	}
	m.CloseImmediately()
	return Move{Region: RegionBar, ID: bar[idx+1].ID}, true
}

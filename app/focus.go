package app

import (
	"navmenu/log"
	"navmenu/menu"

	tea "github.com/charmbracelet/bubbletea"
)

// stop is a position in the document focus order.
type stop struct {
	section int
	region  menu.Region
	id      string
}

// stops lists the focus order of the page: each menu's bar followed by its
// open panel, top to bottom.
func (m *home) stops() []stop {
	var out []stop
	for i, s := range m.sections {
		for _, el := range s.menu.BarElements() {
			out = append(out, stop{section: i, region: menu.RegionBar, id: el.ID})
		}
		for _, el := range s.menu.PanelElements() {
			out = append(out, stop{section: i, region: menu.RegionPanel, id: el.ID})
		}
	}
	return out
}

func indexOfStop(stops []stop, f *stop) int {
	if f == nil {
		return -1
	}
	for i, s := range stops {
		if s == *f {
			return i
		}
	}
	return -1
}

// setFocus moves focus to `to`, or clears it when to is nil, delivering the
// blur to the menu focus left and the focus to the menu it entered.
func (m *home) setFocus(to *stop) tea.Cmd {
	from := m.focus
	if from != nil && to != nil && *from == *to {
		return nil
	}

	var cmd tea.Cmd
	if from != nil {
		next := menu.RegionNone
		if to != nil && to.section == from.section {
			next = to.region
		}
		cmd = m.sections[from.section].menu.FocusLeave(next)
	}

	m.focus = to
	if to == nil {
		log.InputTrace("focus cleared")
		return cmd
	}
	log.InputTrace("focus %s %s %q", m.sections[to.section].menu.ID(), to.region, to.id)

	target := m.sections[to.section].menu
	switch to.region {
	case menu.RegionBar:
		target.FocusTrigger(to.id)
	case menu.RegionPanel:
		m.panelOwner = target.ActiveID()
		target.FocusPanel()
	}
	return cmd
}

// tab moves focus one step. The menu gets the first say at its own
// boundaries; otherwise document order applies, wrapping at the ends.
func (m *home) tab(shift bool) tea.Cmd {
	if f := m.focus; f != nil {
		s := m.sections[f.section]
		var (
			mv menu.Move
			ok bool
		)
		switch f.region {
		case menu.RegionBar:
			mv, ok = s.menu.TriggerTab(f.id, shift)
		case menu.RegionPanel:
			mv, ok = s.menu.PanelTab(f.id, shift)
		}
		if ok {
			return m.setFocus(&stop{section: f.section, region: mv.Region, id: mv.ID})
		}
	}

	stops := m.stops()
	if len(stops) == 0 {
		return m.setFocus(nil)
	}
	idx := indexOfStop(stops, m.focus)
	switch {
	case idx < 0 && shift:
		idx = len(stops) - 1
	case idx < 0:
		idx = 0
	case shift:
		idx = (idx - 1 + len(stops)) % len(stops)
	default:
		idx = (idx + 1) % len(stops)
	}
	next := stops[idx]
	return m.setFocus(&next)
}

// repairFocus returns focus to the trigger that owned a panel entry once the
// panel has closed or the entry is gone. The move goes through setFocus, so
// landing on the owner closes a panel that another item has since opened.
func (m *home) repairFocus() tea.Cmd {
	f := m.focus
	if f == nil || f.region != menu.RegionPanel {
		return nil
	}
	if indexOfStop(m.stops(), f) >= 0 {
		return nil
	}
	owner := m.panelOwner
	s := m.sections[f.section]
	for _, el := range s.menu.BarElements() {
		if el.ID == owner {
			return m.setFocus(&stop{section: f.section, region: menu.RegionBar, id: owner})
		}
	}
	return m.setFocus(nil)
}

// focusedPanelEntry returns the panel entry id under focus in section i.
func (m *home) focusedPanelEntry(i int) string {
	if f := m.focus; f != nil && f.section == i && f.region == menu.RegionPanel {
		return f.id
	}
	return ""
}

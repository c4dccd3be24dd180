package menu

import (
	"time"

	"navmenu/log"
	"navmenu/placement"

	tea "github.com/charmbracelet/bubbletea"
)

// CloseDelay is how long a leave waits before closing. Opening is immediate.
const CloseDelay = 150 * time.Millisecond

// State is the open/close state of a menu. ActiveID is empty while closed.
type State struct {
	IsOpen     bool
	ActiveID   string
	PreviousID string
	// Direction is +1 when the active item comes after the previous one in
	// item order, -1 otherwise.
	Direction int
}

// CloseTimeoutMsg is delivered when a scheduled close fires.
type CloseTimeoutMsg struct {
	MenuID string
	Token  uint64
}

// State returns a copy of the current state.
func (m *Menu) State() State {
	return m.state
}

func (m *Menu) IsOpen() bool       { return m.state.IsOpen }
func (m *Menu) ActiveID() string   { return m.state.ActiveID }
func (m *Menu) PreviousID() string { return m.state.PreviousID }
func (m *Menu) Direction() int     { return m.state.Direction }

// IsActive reports whether id is the open item.
func (m *Menu) IsActive(id string) bool {
	return m.state.IsOpen && id != "" && m.state.ActiveID == id
}

// ClosePending reports whether a close timer is in flight.
func (m *Menu) ClosePending() bool {
	return m.closePending
}

// ContainerSize returns the measured size of the active content.
func (m *Menu) ContainerSize() (placement.Size, bool) {
	if m.size == nil {
		return placement.Size{}, false
	}
	return *m.size, true
}

// RequestOpen opens id immediately and cancels any pending close. An id
// without content is treated as a leave and schedules a close instead.
func (m *Menu) RequestOpen(id string) tea.Cmd {
	if m.disposed {
		return nil
	}
	m.CancelClose()

	if !m.contents.Has(id) {
		return m.RequestClose()
	}

	if m.state.ActiveID != id {
		prev := m.state.ActiveID
		m.state.PreviousID = prev
		m.state.Direction = m.direction(prev, id)
		m.state.ActiveID = id
		m.observer.Observe(id)
		log.StateTrace(m.id, "open %q (prev %q, direction %+d)", id, prev, m.state.Direction)
	}
	m.state.IsOpen = true
	return nil
}

func (m *Menu) direction(prev, next string) int {
	prevIdx := m.indexOf(prev)
	if prevIdx < 0 {
		return 1
	}
	if m.indexOf(next) > prevIdx {
		return 1
	}
	return -1
}

// RequestClose schedules a close after CloseDelay, superseding any earlier
// schedule. The returned command must be run by the caller.
func (m *Menu) RequestClose() tea.Cmd {
	if m.disposed {
		return nil
	}
	m.closeToken++
	m.closePending = true
	msg := CloseTimeoutMsg{MenuID: m.id, Token: m.closeToken}
	return m.tick(m.closeDelay, func(time.Time) tea.Msg {
		return msg
	})
}

// CancelClose drops a pending close. Its message will be ignored when it arrives.
func (m *Menu) CancelClose() {
	m.closePending = false
}

// HandleCloseTimeout applies a fired close timer. It reports whether the
// message belonged to this menu and closed it.
func (m *Menu) HandleCloseTimeout(msg CloseTimeoutMsg) bool {
	if m.disposed || msg.MenuID != m.id || !m.closePending || msg.Token != m.closeToken {
		return false
	}
	m.closePending = false
	log.StateTrace(m.id, "close timer fired")
	m.close()
	return true
}

// CloseImmediately cancels any pending close and closes synchronously.
func (m *Menu) CloseImmediately() {
	m.CancelClose()
	if m.state.IsOpen || m.state.ActiveID != "" {
		log.StateTrace(m.id, "close immediately")
	}
	m.close()
}

func (m *Menu) close() {
	m.state.IsOpen = false
	m.state.ActiveID = ""
	m.size = nil
	m.panelShown = false
	m.observer.Disconnect()
}

// Press toggles id the way a click does: closes it when active, opens it
// otherwise. Items without content ignore presses.
func (m *Menu) Press(id string) tea.Cmd {
	if !m.contents.Has(id) {
		return nil
	}
	if m.IsActive(id) {
		m.CloseImmediately()
		return nil
	}
	return m.RequestOpen(id)
}

// Dispose tears the menu down. Pending timers become no-ops.
func (m *Menu) Dispose() {
	m.CancelClose()
	m.observer.Disconnect()
	m.disposed = true
}

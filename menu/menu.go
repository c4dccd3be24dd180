// Package menu is the interaction core of a dropdown navigation menu: the
// item order, the content registry, trigger handles, the open/close state
// machine, the size observer and the focus and dismissal controller.
//
// A Menu is driven from a bubbletea Update loop. Methods are not safe for
// concurrent use; timers come back as messages (CloseTimeoutMsg) rather than
// running callbacks on other goroutines.
package menu

import (
	"time"

	"navmenu/focus"
	"navmenu/placement"
	"navmenu/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// Link is an entry inside an item's panel.
type Link struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Href        string `json:"href,omitempty" yaml:"href,omitempty"`
}

// Item is a tab in the trigger bar. Items without children are plain links.
type Item struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Children []Link `json:"children,omitempty" yaml:"children,omitempty"`
	// Columns is the layout hint for the panel grid.
	Columns int `json:"columns,omitempty" yaml:"columns,omitempty"`
	// MinWidth is the minimum panel content width in cells.
	MinWidth int `json:"min_width,omitempty" yaml:"min_width,omitempty"`
}

// HasChildren reports whether the item should get a panel.
func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// Content is the renderable body an item registers for its panel.
type Content interface {
	// Label is the accessible name of the panel.
	Label() string
	// Elements lists the panel entries in document order.
	Elements() []focus.Element
	// View renders the content at its natural size, highlighting focusedID.
	View(focusedID string) string
}

// Ticker schedules a message after a delay. tea.Tick satisfies it.
type Ticker func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures a Menu.
type Option func(*Menu)

// WithTicker replaces tea.Tick for the close timer.
func WithTicker(t Ticker) Option {
	return func(m *Menu) {
		m.tick = t
	}
}

// WithCloseDelay overrides CloseDelay. Only tests should need this.
func WithCloseDelay(d time.Duration) Option {
	return func(m *Menu) {
		m.closeDelay = d
	}
}

// Menu is one navigation menu instance. Each instance owns its registry,
// item order and handles; nothing is shared between instances.
type Menu struct {
	id       string
	contents *registry.Registry[Content]

	// order is append-only: ids are never removed, even once unmounted.
	order    []string
	triggers map[string]placement.Rect

	bar         placement.Rect
	barElements []focus.Element
	panel       placement.Rect
	panelShown  bool

	state State
	size  *placement.Size

	observer SizeObserver

	closeDelay   time.Duration
	closeToken   uint64
	closePending bool
	tick         Ticker
	disposed     bool
}

// New creates a menu. id distinguishes its timer messages from other menus.
func New(id string, opts ...Option) *Menu {
	m := &Menu{
		id:         id,
		contents:   registry.New[Content](),
		triggers:   make(map[string]placement.Rect),
		state:      State{Direction: 1},
		closeDelay: CloseDelay,
		tick:       tea.Tick,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the menu id.
func (m *Menu) ID() string {
	return m.id
}

// Contents exposes the content registry for reading and subscribing.
func (m *Menu) Contents() *registry.Registry[Content] {
	return m.contents
}

// HasContent reports whether id has a registered panel.
func (m *Menu) HasContent(id string) bool {
	return m.contents.Has(id)
}

// ActiveContent returns the content of the active item, if any.
func (m *Menu) ActiveContent() (Content, bool) {
	if !m.state.IsOpen || m.state.ActiveID == "" {
		return nil, false
	}
	return m.contents.Get(m.state.ActiveID)
}

// Item returns the scope for item id, appending id to the item order on first use.
func (m *Menu) Item(id string) *ItemScope {
	if m.indexOf(id) < 0 {
		m.order = append(m.order, id)
	}
	return &ItemScope{menu: m, id: id}
}

// Order returns a copy of the item order.
func (m *Menu) Order() []string {
	return append([]string(nil), m.order...)
}

func (m *Menu) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, v := range m.order {
		if v == id {
			return i
		}
	}
	return -1
}

// SetBar records the trigger bar's bounds and its focusable elements in order.
func (m *Menu) SetBar(bounds placement.Rect, elements []focus.Element) {
	m.bar = bounds
	m.barElements = elements
}

// Bar returns the trigger bar's bounds.
func (m *Menu) Bar() placement.Rect {
	return m.bar
}

// BarElements returns the focusable elements of the bar in order.
func (m *Menu) BarElements() []focus.Element {
	return focus.Focusables(m.barElements)
}

// SetPanel records where the panel was drawn. shown is false while the panel
// is hidden or closed, in which case it does not count as a region.
func (m *Menu) SetPanel(bounds placement.Rect, shown bool) {
	m.panel = bounds
	m.panelShown = shown
}

// Panel returns the panel bounds and whether it is currently shown.
func (m *Menu) Panel() (placement.Rect, bool) {
	return m.panel, m.panelShown
}

// TriggerBounds returns the handle recorded for a trigger.
func (m *Menu) TriggerBounds(id string) (placement.Rect, bool) {
	r, ok := m.triggers[id]
	return r, ok
}

// Target returns the reference rectangle for placement. The trigger anchor
// falls back to the bar when the active trigger has no handle.
func (m *Menu) Target(anchor placement.Anchor) (placement.Rect, bool) {
	if anchor == placement.AnchorTrigger && m.state.ActiveID != "" {
		if r, ok := m.triggers[m.state.ActiveID]; ok {
			return r, true
		}
	}
	if m.bar.Empty() {
		return placement.Rect{}, false
	}
	return m.bar, true
}

// ItemScope binds triggers and content to one item of a menu.
type ItemScope struct {
	menu *Menu
	id   string
}

// ID returns the item id.
func (s *ItemScope) ID() string {
	return s.id
}

// Menu returns the owning menu.
func (s *ItemScope) Menu() *Menu {
	return s.menu
}

// SetContent registers the item's panel content.
func (s *ItemScope) SetContent(c Content) {
	s.menu.contents.Register(s.id, c)
}

// RemoveContent unregisters the item's panel content.
func (s *ItemScope) RemoveContent() {
	s.menu.contents.Unregister(s.id)
}

// SetTrigger records the trigger's bounds.
func (s *ItemScope) SetTrigger(bounds placement.Rect) {
	s.menu.triggers[s.id] = bounds
}

// RemoveTrigger drops the trigger handle, as when the trigger unmounts.
func (s *ItemScope) RemoveTrigger() {
	delete(s.menu.triggers, s.id)
}

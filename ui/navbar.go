package ui

import (
	"strings"

	"navmenu/focus"
	"navmenu/inspect"
	"navmenu/log"
	"navmenu/menu"
	"navmenu/placement"
	"navmenu/ui/mouse"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// BarHeight is the rendered height of a trigger bar, borders included.
const BarHeight = 3

const triggerSeparator = " "

// HitTarget is attached to hit map regions so the app can route mouse
// events to the right menu and part.
type HitTarget struct {
	MenuID string
	Part   menu.Region
	// ItemID is the trigger or panel entry under the pointer, if any.
	ItemID string
}

// Trigger is one tab of the bar. Items with a registered panel render a
// chevron and behave as buttons; the rest are plain links.
type Trigger struct {
	scope *menu.ItemScope
	item  menu.Item
}

// NewTrigger creates the trigger for scope. It panics when scope is nil.
func NewTrigger(scope *menu.ItemScope, item menu.Item) *Trigger {
	menu.RequireItem(scope, "Trigger")
	return &Trigger{scope: scope, item: item}
}

// ID returns the item id.
func (t *Trigger) ID() string {
	return t.item.ID
}

// HasContent reports whether the trigger currently has a panel.
func (t *Trigger) HasContent() bool {
	return t.scope.Menu().HasContent(t.item.ID)
}

// Element is the trigger as a focus target.
func (t *Trigger) Element() focus.Element {
	if t.HasContent() {
		return focus.Element{ID: t.item.ID, Kind: focus.KindButton}
	}
	return focus.Element{ID: t.item.ID, Kind: focus.KindLink, Href: defaultHref}
}

func (t *Trigger) label() string {
	if !t.HasContent() {
		return t.item.Label
	}
	chevron := ChevronClosed
	if t.scope.Menu().IsActive(t.item.ID) {
		chevron = ChevronOpen
	}
	return t.item.Label + " " + chevron
}

func (t *Trigger) render(focused, compact bool) string {
	style := TriggerStyles.Default
	switch {
	case focused:
		style = TriggerStyles.Focused
	case t.scope.Menu().IsActive(t.item.ID):
		style = TriggerStyles.Active
	}
	if compact {
		style = style.Padding(0)
	}
	return style.Render(t.label())
}

// NavBar is the trigger bar of one menu. It owns the item scopes, mounts
// panel content for items with children and records the handles placement
// and hit testing need each render.
type NavBar struct {
	menu     *menu.Menu
	triggers []*Trigger
	panels   map[string]*LinkPanel
	bounds   placement.Rect

	compact          bool
	hideDescriptions bool
}

// NewNavBar creates the bar for m. It panics when m is nil.
func NewNavBar(m *menu.Menu, items []menu.Item) *NavBar {
	menu.Require(m, "NavBar")
	b := &NavBar{
		menu:   m,
		panels: make(map[string]*LinkPanel),
	}
	b.SetItems(items)
	return b
}

// Menu returns the menu the bar belongs to.
func (b *NavBar) Menu() *menu.Menu {
	return b.menu
}

// SetItems mounts items in order. Items that disappeared are unmounted:
// their content is unregistered and their trigger handle removed.
func (b *NavBar) SetItems(items []menu.Item) {
	keep := make(map[string]bool, len(items))
	for _, item := range items {
		keep[item.ID] = true
	}
	for _, t := range b.triggers {
		if !keep[t.item.ID] {
			b.unmount(t)
		}
	}

	b.triggers = b.triggers[:0]
	for _, item := range items {
		scope := b.menu.Item(item.ID)
		b.triggers = append(b.triggers, NewTrigger(scope, item))

		if !item.HasChildren() {
			delete(b.panels, item.ID)
			if b.menu.HasContent(item.ID) {
				b.unmountContent(scope)
			}
			continue
		}
		p := NewLinkPanel(item)
		p.SetHideDescriptions(b.hideDescriptions)
		b.panels[item.ID] = p
		scope.SetContent(p)
	}
}

func (b *NavBar) unmount(t *Trigger) {
	log.InfoLog.Printf("menu %s: unmounting item %q", b.menu.ID(), t.item.ID)
	delete(b.panels, t.item.ID)
	b.unmountContent(t.scope)
	t.scope.RemoveTrigger()
}

func (b *NavBar) unmountContent(scope *menu.ItemScope) {
	if b.menu.IsActive(scope.ID()) {
		b.menu.CloseImmediately()
	}
	scope.RemoveContent()
}

// Triggers returns the triggers in bar order.
func (b *NavBar) Triggers() []*Trigger {
	return b.triggers
}

// Panel returns the mounted panel content of item id.
func (b *NavBar) Panel(id string) (*LinkPanel, bool) {
	p, ok := b.panels[id]
	return p, ok
}

// SetCompact drops the padding around triggers.
func (b *NavBar) SetCompact(compact bool) {
	b.compact = compact
}

// SetHideDescriptions toggles link descriptions in every panel. Content is
// re-registered so the viewport measures the new size.
func (b *NavBar) SetHideDescriptions(hide bool) {
	if b.hideDescriptions == hide {
		return
	}
	b.hideDescriptions = hide
	for _, t := range b.triggers {
		p, ok := b.panels[t.item.ID]
		if !ok {
			continue
		}
		p.SetHideDescriptions(hide)
		t.scope.SetContent(p)
	}
}

// Elements returns the bar's focus targets in order.
func (b *NavBar) Elements() []focus.Element {
	els := make([]focus.Element, 0, len(b.triggers))
	for _, t := range b.triggers {
		els = append(els, t.Element())
	}
	return els
}

// Bounds returns the bar rectangle of the last render.
func (b *NavBar) Bounds() placement.Rect {
	return b.bounds
}

// Render draws the bar at (x, y) with the given outer width and records the
// bar and trigger handles on the menu.
func (b *NavBar) Render(x, y, width int, focusedID string) string {
	inner := max(0, width-2)

	parts := make([]string, 0, len(b.triggers))
	cursor := x + 1
	for i, t := range b.triggers {
		if i > 0 {
			cursor += runewidth.StringWidth(triggerSeparator)
		}
		s := t.render(t.item.ID == focusedID, b.compact)
		w := lipgloss.Width(s)

		visible := min(w, x+1+inner-cursor)
		if visible > 0 {
			t.scope.SetTrigger(placement.Rect{X: cursor, Y: y + 1, Width: visible, Height: 1})
		} else {
			t.scope.RemoveTrigger()
		}
		cursor += w
		parts = append(parts, s)
	}

	row := strings.Join(parts, triggerSeparator)
	if lipgloss.Width(row) > inner {
		row = ansi.Truncate(row, inner, "…")
	}

	b.bounds = placement.Rect{X: x, Y: y, Width: width, Height: BarHeight}
	b.menu.SetBar(b.bounds, b.Elements())

	return BarStyle().Width(inner).Render(row)
}

// AddRegions registers the bar and its triggers on hm. Call after Render.
func (b *NavBar) AddRegions(hm *mouse.HitMap) {
	id := b.menu.ID()
	hm.Add(id+"/bar", b.bounds, HitTarget{MenuID: id, Part: menu.RegionBar})
	for _, t := range b.triggers {
		r, ok := b.menu.TriggerBounds(t.item.ID)
		if !ok {
			continue
		}
		hm.Add(id+"/trigger/"+t.item.ID, r, HitTarget{MenuID: id, Part: menu.RegionBar, ItemID: t.item.ID})
	}
}

// InspectNode reports the bar with ARIA state on triggers that have panels.
func (b *NavBar) InspectNode() *inspect.Node {
	node := inspect.NewNode("NavBar").
		WithID(b.menu.ID()).
		WithBounds(b.bounds.X, b.bounds.Y, b.bounds.Width, b.bounds.Height)

	for _, t := range b.triggers {
		child := inspect.NewNode("Link").WithID(t.item.ID).WithContent(t.item.Label)
		if r, ok := b.menu.TriggerBounds(t.item.ID); ok {
			child.WithBounds(r.X, r.Y, r.Width, r.Height)
		} else {
			child.WithVisible(false)
		}
		if t.HasContent() {
			child.Type = "Trigger"
			child.WithState(inspect.AriaHasPopup, "true").
				WithState(inspect.AriaExpanded, b.menu.IsActive(t.item.ID))
		}
		node.AddChild(child)
	}
	return node
}

package ui

import (
	"math"
	"strings"
	"time"

	"navmenu/inspect"
	"navmenu/log"
	"navmenu/menu"
	"navmenu/placement"
	"navmenu/ui/mouse"
	"navmenu/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// panelChrome is the border around the content on each axis.
const panelChrome = 2

// MeasureMsg asks the viewport to measure the active content after the
// frame that rendered it. Gen ties it to one observation.
type MeasureMsg struct {
	MenuID string
	Gen    uint64
}

// FrameMsg advances a running transition by one frame.
type FrameMsg struct {
	MenuID string
}

// ViewportConfig selects how the panel is placed and animated.
type ViewportConfig struct {
	Anchor    placement.Anchor
	Placement placement.Placement
	// Offset, Padding and ClampVertical are passed to placement.Compute.
	Offset        int
	Padding       int
	ClampVertical bool
	Animate       bool
}

// Viewport is the floating panel of a menu. It measures the active content,
// places the box relative to the bar or the active trigger and drives the
// transition between items.
type Viewport struct {
	menu *menu.Menu
	cfg  ViewportConfig

	windowWidth  int
	windowHeight int

	transition *Transition
	lastActive string
	focusedID  string

	dirty        bool
	framePending bool
	unsubscribe  func()
	tick         menu.Ticker
}

// NewViewport creates the panel for m. It panics when m is nil.
func NewViewport(m *menu.Menu, cfg ViewportConfig) *Viewport {
	menu.Require(m, "Viewport")
	v := &Viewport{
		menu:       m,
		cfg:        cfg,
		transition: NewTransition(cfg.Animate),
		tick:       tea.Tick,
	}
	v.unsubscribe = m.Contents().Subscribe(func() {
		v.dirty = true
	})
	return v
}

// SetTicker replaces tea.Tick for frame scheduling.
func (v *Viewport) SetTicker(t menu.Ticker) {
	v.tick = t
}

// Config returns the placement configuration.
func (v *Viewport) Config() ViewportConfig {
	return v.cfg
}

// Transition exposes the transition state.
func (v *Viewport) Transition() *Transition {
	return v.transition
}

// SetWindowSize records the terminal size used for clamping and schedules
// a re-measure, since degradation may have changed the content.
func (v *Viewport) SetWindowSize(width, height int) {
	v.windowWidth = width
	v.windowHeight = height
	v.dirty = true
}

// SetFocus highlights the panel entry id.
func (v *Viewport) SetFocus(id string) {
	v.focusedID = id
}

// Close stops listening to the registry.
func (v *Viewport) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// Sync brings the viewport in line with the menu state. It must be called
// after every update that may have changed the menu, and returns the
// measurement and frame commands that follow from the change.
func (v *Viewport) Sync() tea.Cmd {
	if !v.menu.IsOpen() {
		if v.lastActive != "" || v.transition.Placed() {
			log.RenderTrace("%s: panel closed", v.menu.ID())
			v.transition.Reset()
			v.lastActive = ""
		}
		v.recordPanel()
		return nil
	}

	var cmds []tea.Cmd
	if active := v.menu.ActiveID(); active != v.lastActive {
		v.transition.Switch(active, v.menu.Direction(), v.outgoingView())
		v.lastActive = active
		v.dirty = true
	}
	if v.dirty {
		v.dirty = false
		cmds = append(cmds, v.measure())
	}

	v.place()
	v.recordPanel()
	cmds = append(cmds, v.scheduleFrame())
	return tea.Batch(cmds...)
}

// recordPanel stores the current panel box on the menu, where outside
// dismissal and hit testing read it.
func (v *Viewport) recordPanel() {
	if !v.Visible() {
		v.menu.SetPanel(placement.Rect{}, false)
		return
	}
	v.menu.SetPanel(v.transition.Bounds(), true)
}

func (v *Viewport) measure() tea.Cmd {
	_, gen, ok := v.menu.Observation()
	if !ok {
		return nil
	}
	id := v.menu.ID()
	return func() tea.Msg {
		return MeasureMsg{MenuID: id, Gen: gen}
	}
}

// HandleMeasure measures the active content at its natural size. Reports
// for an observation that has since been replaced are dropped.
func (v *Viewport) HandleMeasure(msg MeasureMsg) tea.Cmd {
	if msg.MenuID != v.menu.ID() {
		return nil
	}
	content, ok := v.menu.ActiveContent()
	if !ok {
		return nil
	}
	view := content.View(v.focusedID)
	size := placement.Size{Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
	if !v.menu.ReportSize(msg.Gen, size) {
		return nil
	}
	return v.Sync()
}

// place computes the target box once a size exists. Without a size the
// panel stays hidden rather than appearing at the origin.
func (v *Viewport) place() {
	size, ok := v.menu.ContainerSize()
	if !ok {
		return
	}
	target, ok := v.menu.Target(v.cfg.Anchor)
	if !ok {
		return
	}
	outer := placement.Size{Width: size.Width + panelChrome, Height: size.Height + panelChrome}
	pos := placement.Compute(target, outer, v.cfg.Placement, placement.Options{
		Offset:        v.cfg.Offset,
		Padding:       v.cfg.Padding,
		WindowWidth:   v.windowWidth,
		WindowHeight:  v.windowHeight,
		ClampVertical: v.cfg.ClampVertical,
	})
	box := placement.Rect{X: pos.Left, Y: pos.Top, Width: outer.Width, Height: outer.Height}
	if box != v.transition.Target() || !v.transition.Placed() {
		log.LayoutTrace("%s: place %q at (%d,%d) %dx%d", v.menu.ID(), v.lastActive, box.X, box.Y, box.Width, box.Height)
	}
	v.transition.SetTarget(box)
}

func (v *Viewport) scheduleFrame() tea.Cmd {
	if v.framePending || !v.transition.Active() {
		return nil
	}
	v.framePending = true
	id := v.menu.ID()
	return v.tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{MenuID: id}
	})
}

// HandleFrame steps the transition and schedules the next frame while it
// is still running.
func (v *Viewport) HandleFrame(msg FrameMsg) tea.Cmd {
	if msg.MenuID != v.menu.ID() {
		return nil
	}
	v.framePending = false
	if !v.menu.IsOpen() {
		return nil
	}
	v.transition.Step()
	v.recordPanel()
	return v.scheduleFrame()
}

// Visible reports whether the panel is drawn: open with both a position
// and a size.
func (v *Viewport) Visible() bool {
	if !v.menu.IsOpen() || !v.transition.Placed() {
		return false
	}
	_, ok := v.menu.ContainerSize()
	return ok
}

// outgoingView renders the item that was active before the switch so its
// layer can keep showing while it exits.
func (v *Viewport) outgoingView() string {
	if v.lastActive == "" {
		return ""
	}
	c, ok := v.menu.Contents().Get(v.lastActive)
	if !ok {
		return ""
	}
	return c.View(v.focusedID)
}

func (v *Viewport) layerView(l *Layer) string {
	if l.Exiting() {
		return l.Frozen()
	}
	c, ok := v.menu.Contents().Get(l.ID())
	if !ok {
		return ""
	}
	return c.View(v.focusedID)
}

// Render composites the panel onto bg at its current animated box.
func (v *Viewport) Render(bg string) string {
	if !v.Visible() {
		return bg
	}
	box := v.transition.Bounds()
	innerW := max(0, box.Width-panelChrome)
	innerH := max(0, box.Height-panelChrome)

	canvas := overlay.Canvas(innerW, innerH)
	for _, l := range v.transition.Layers() {
		view := fade(v.layerView(l), l.Opacity())
		if view == "" {
			continue
		}
		x := int(math.Round(l.Offset() * float64(innerW)))
		canvas = overlay.PlaceOverlay(x, 0, view, canvas)
	}

	panel := PanelStyle().Render(overlay.Clip(canvas, innerW, innerH))
	return overlay.PlaceOverlay(box.X, box.Y, panel, bg)
}

// fade approximates opacity in a terminal: full style above one half,
// muted plain text below, nothing at zero.
func fade(view string, opacity float64) string {
	switch {
	case view == "" || opacity <= 0:
		return ""
	case opacity >= 0.5:
		return view
	}
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, line := range lines {
		lines[i] = TextStyles.Muted.Render(line)
	}
	return strings.Join(lines, "\n")
}

// AddRegions registers the panel on hm. Call after the bars so the panel
// sits above everything registered before it.
func (v *Viewport) AddRegions(hm *mouse.HitMap) {
	box, shown := v.menu.Panel()
	if !shown {
		return
	}
	id := v.menu.ID()
	hm.Add(id+"/panel", box, HitTarget{MenuID: id, Part: menu.RegionPanel})
}

// InspectNode reports the panel as a menu of menuitems.
func (v *Viewport) InspectNode() *inspect.Node {
	node := inspect.NewNode("Viewport").WithID(v.menu.ID()).WithVisible(v.Visible())
	box, _ := v.menu.Panel()
	node.WithBounds(box.X, box.Y, box.Width, box.Height)

	content, ok := v.menu.ActiveContent()
	if !ok {
		node.Visible = false
		return node
	}
	node.WithState(inspect.Role, inspect.RoleMenu).
		WithState(inspect.AriaLabel, content.Label()).
		WithState("direction", v.menu.Direction())
	if size, ok := v.menu.ContainerSize(); ok {
		node.WithState("width", size.Width).WithState("height", size.Height)
	}
	if g, ok := content.(interface{ Columns() int }); ok {
		node.WithState("columns", g.Columns())
	}
	for _, el := range content.Elements() {
		entry := inspect.NewNode("Entry").WithID(el.ID).WithState(inspect.Role, inspect.RoleMenuItem)
		if el.ID == v.focusedID {
			entry.WithState("focused", true)
		}
		node.AddChild(entry)
	}
	return node
}

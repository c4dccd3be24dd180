package app

import (
	"context"
	"fmt"
	"time"

	"navmenu/config"
	"navmenu/inspect"
	"navmenu/keys"
	"navmenu/log"
	"navmenu/menu"
	"navmenu/ui"
	"navmenu/ui/layout"
	"navmenu/ui/mouse"
	"navmenu/ui/overlay"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// statusDuration is how long a status or error message stays up.
	statusDuration = 3 * time.Second
	// keyHighlightDuration is how long a pressed key stays underlined in the help line.
	keyHighlightDuration = 500 * time.Millisecond
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, items []menu.Item) error {
	p := tea.NewProgram(
		newHome(ctx, Options{Config: cfg, Items: items}),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover opens panels
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// Options configures the page. Zero values fall back to the defaults.
type Options struct {
	Config *config.Config
	Items  []menu.Item
	// Ticker replaces tea.Tick for every timer on the page.
	Ticker menu.Ticker
	// Clipboard replaces clipboard.WriteAll.
	Clipboard func(string) error
}

type home struct {
	ctx context.Context

	// -- Configuration --

	appConfig *config.Config
	tick      menu.Ticker
	copyText  func(string) error

	// -- State --

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	// focus is the focused element, nil when nothing has focus.
	focus *stop
	// panelOwner is the trigger that was active when focus entered a panel.
	panelOwner string

	status        string
	statusIsError bool
	// statusToken ties a hideErrMsg to the message it should clear.
	statusToken uint64

	// -- UI Components --

	sections []*section
	// help displays the key hints at the bottom
	help    *ui.Help
	tracker *mouse.Tracker
	// recorder writes inspect snapshots, nil unless inspection is enabled.
	recorder *inspect.Recorder
}

func newHome(ctx context.Context, opts Options) *home {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	items := opts.Items
	if items == nil {
		items = config.DefaultItems()
	}
	tick := opts.Ticker
	if tick == nil {
		tick = tea.Tick
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		tick:      tick,
		copyText:  copyText,
		help:      ui.NewHelp(),
		tracker:   mouse.NewTracker(),
	}
	if inspect.IsEnabled() {
		h.recorder = inspect.NewRecorder(inspect.DefaultPath())
		log.InfoLog.Printf("writing inspect snapshots to %s", h.recorder.Path())
	}
	for i, vc := range cfg.Viewports {
		h.sections = append(h.sections, newSection(i, vc, cfg, items, tick))
	}
	return h
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case hideErrMsg:
		if msg.token == m.statusToken {
			m.status, m.statusIsError = "", false
		}
	case keyupMsg:
		m.help.ClearKeydown()
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
	case menu.CloseTimeoutMsg:
		if _, s := m.sectionByID(msg.MenuID); s != nil {
			s.menu.HandleCloseTimeout(msg)
		}
	case ui.MeasureMsg:
		if _, s := m.sectionByID(msg.MenuID); s != nil {
			cmds = append(cmds, s.viewport.HandleMeasure(msg))
		}
	case ui.FrameMsg:
		if _, s := m.sectionByID(msg.MenuID); s != nil {
			cmds = append(cmds, s.viewport.HandleFrame(msg))
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case tea.KeyMsg:
		if name, ok := keys.Lookup(msg.String()); ok && name == keys.KeyQuit {
			return m.handleQuit()
		}
		cmds = append(cmds, m.handleKeyPress(msg))
	}

	cmds = append(cmds, m.refresh())
	return m, tea.Batch(cmds...)
}

// updateHandleWindowSizeEvent sets the sizes of the components.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.help.SetWidth(msg.Width)
	for _, s := range m.sections {
		s.viewport.SetWindowSize(msg.Width, msg.Height)
	}
	// Regions moved; the next motion event re-derives the hover.
	m.tracker.Reset()
}

// refresh brings focus, bars, panels and the hit map in line with the menu
// state after every message, and returns the measurement and frame commands
// that follow. View only draws what refresh left behind.
func (m *home) refresh() tea.Cmd {
	cmds := []tea.Cmd{m.repairFocus()}
	if f := m.focus; f != nil && f.region == menu.RegionPanel {
		m.help.SetState(ui.HelpPanel)
	} else {
		m.help.SetState(ui.HelpBar)
	}

	if m.width > 0 && m.height > 0 {
		m.layoutSections()
	}

	for i, s := range m.sections {
		s.viewport.SetFocus(m.focusedPanelEntry(i))
		cmds = append(cmds, s.viewport.Sync())
	}

	m.addRegions(m.tracker.HitMap)
	m.writeSnapshot()
	return tea.Batch(cmds...)
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	for _, s := range m.sections {
		s.menu.Dispose()
		s.viewport.Close()
	}
	return m, tea.Quit
}

// handleMenuHighlighting returns a command to highlight the pressed key in the help line.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	name, ok := keys.Lookup(msg.String())
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	highlightCmd := m.handleMenuHighlighting(msg)

	name, ok := keys.Lookup(msg.String())
	if !ok {
		return nil
	}
	log.InputTrace("key %q", msg.String())

	var cmd tea.Cmd
	switch name {
	case keys.KeyTab:
		cmd = m.tab(false)
	case keys.KeyShiftTab:
		cmd = m.tab(true)
	case keys.KeyEsc:
		for _, s := range m.sections {
			if s.menu.Escape() {
				log.InfoLog.Printf("%s: closed by escape", s.menu.ID())
			}
		}
	case keys.KeyEnter:
		cmd = m.activate(true)
	case keys.KeySpace:
		cmd = m.activate(false)
	case keys.KeyCopy:
		cmd = m.copyFocusedLink()
	}
	return tea.Batch(highlightCmd, cmd)
}

// activate presses the focused element. Triggers toggle their panel;
// enter on a panel entry selects it and closes the menu.
func (m *home) activate(enter bool) tea.Cmd {
	f := m.focus
	if f == nil {
		return nil
	}
	s := m.sections[f.section]
	switch f.region {
	case menu.RegionBar:
		if !s.menu.HasContent(f.id) {
			if enter {
				return m.showStatus(fmt.Sprintf("%s: plain link", f.id))
			}
			return nil
		}
		return s.menu.Press(f.id)
	case menu.RegionPanel:
		if !enter {
			return nil
		}
		link, ok := m.focusedLink()
		if !ok {
			return nil
		}
		s.menu.CloseImmediately()
		return m.showStatus(fmt.Sprintf("selected %s (%s)", link.Label, ui.Href(link)))
	}
	return nil
}

// focusedLink returns the panel entry under focus.
func (m *home) focusedLink() (menu.Link, bool) {
	f := m.focus
	if f == nil || f.region != menu.RegionPanel {
		return menu.Link{}, false
	}
	s := m.sections[f.section]
	p, ok := s.bar.Panel(s.menu.ActiveID())
	if !ok {
		return menu.Link{}, false
	}
	return p.Link(f.id)
}

func (m *home) copyFocusedLink() tea.Cmd {
	link, ok := m.focusedLink()
	if !ok {
		return nil
	}
	href := ui.Href(link)
	if err := m.copyText(href); err != nil {
		return m.handleError(fmt.Errorf("failed to copy %s: %w", href, err))
	}
	return m.showStatus("copied " + href)
}

// handleMouse turns hover transitions into enter/leave callbacks and presses
// into outside dismissal, focus and trigger toggles.
func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	action := m.tracker.HandleMouse(msg)
	if action.Type == mouse.ActionNone {
		return nil
	}

	var cmds []tea.Cmd
	if action.Left != nil {
		cmds = append(cmds, m.pointerLeave(action.Left))
	}
	if action.Entered != nil {
		cmds = append(cmds, m.pointerEnter(action.Entered))
	}
	if action.Type == mouse.ActionPress {
		cmds = append(cmds, m.pointerPress(action))
	}
	return tea.Batch(cmds...)
}

func hitTarget(r *mouse.Region) (ui.HitTarget, bool) {
	if r == nil {
		return ui.HitTarget{}, false
	}
	t, ok := r.Data.(ui.HitTarget)
	return t, ok
}

func (m *home) pointerLeave(r *mouse.Region) tea.Cmd {
	t, ok := hitTarget(r)
	if !ok {
		return nil
	}
	_, s := m.sectionByID(t.MenuID)
	if s == nil {
		return nil
	}
	switch {
	case t.Part == menu.RegionBar && t.ItemID != "":
		return s.menu.PointerLeaveTrigger()
	case t.Part == menu.RegionPanel:
		return s.menu.PointerLeavePanel()
	}
	return nil
}

func (m *home) pointerEnter(r *mouse.Region) tea.Cmd {
	t, ok := hitTarget(r)
	if !ok {
		return nil
	}
	_, s := m.sectionByID(t.MenuID)
	if s == nil {
		return nil
	}
	switch {
	case t.Part == menu.RegionBar && t.ItemID != "":
		return s.menu.PointerEnterTrigger(t.ItemID)
	case t.Part == menu.RegionPanel:
		s.menu.PointerEnterPanel()
	}
	return nil
}

func (m *home) pointerPress(action mouse.Action) tea.Cmd {
	for _, s := range m.sections {
		s.menu.PointerDown(action.X, action.Y)
	}

	t, ok := hitTarget(action.Region)
	if !ok {
		return m.setFocus(nil)
	}
	i, s := m.sectionByID(t.MenuID)
	if s == nil || t.Part != menu.RegionBar || t.ItemID == "" {
		return nil
	}

	cmd := m.setFocus(&stop{section: i, region: menu.RegionBar, id: t.ItemID})
	// A press without prior motion already opened the panel on enter.
	if action.Entered == action.Region {
		return cmd
	}
	return tea.Batch(cmd, s.menu.Press(t.ItemID))
}

type keyupMsg struct{}

// keydownCallback clears the help line highlighting after a short delay.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.help.Keydown(name)
	return m.tick(keyHighlightDuration, func(time.Time) tea.Msg {
		return keyupMsg{}
	})
}

// hideErrMsg implements tea.Msg and clears the status line.
type hideErrMsg struct {
	token uint64
}

// showStatus sets the status line and returns a command clearing it later.
func (m *home) showStatus(text string) tea.Cmd {
	m.status, m.statusIsError = text, false
	return m.scheduleHideStatus()
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.status, m.statusIsError = err.Error(), true
	return m.scheduleHideStatus()
}

func (m *home) scheduleHideStatus() tea.Cmd {
	m.statusToken++
	token := m.statusToken
	return m.tick(statusDuration, func(time.Time) tea.Msg {
		return hideErrMsg{token: token}
	})
}

func (m *home) header() string {
	title := ui.TextStyles.Primary.Bold(true).Render("Navigation Menu")
	hint := ui.TextStyles.Muted.Render("hover a trigger or press tab")
	if m.constraints.ShowMinWarning {
		hint = ui.TextStyles.Error.Render(fmt.Sprintf("terminal too small (min %dx%d)", layout.MinWidth, layout.MinHeight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, hint)
}

func (m *home) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsError {
		return ui.TextStyles.Error.Render(m.status)
	}
	return ui.TextStyles.Secondary.Render(m.status)
}

func (m *home) View() string {
	start := time.Now()
	defer func() {
		log.Profiler().RecordFrame(time.Since(start))
	}()

	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	c := m.constraints

	done := log.Profiler().StartRender("page")
	page := overlay.Canvas(m.width, max(m.height, c.PageHeight()))
	page = overlay.PlaceOverlay(pageMargin, 0, m.header(), page)
	for i, s := range m.sections {
		page = overlay.PlaceOverlay(pageMargin, c.HeadingRows[i], ui.HeadingStyle().Render(s.title), page)
		page = overlay.PlaceOverlay(pageMargin, c.BarRows[i], s.barView, page)
	}
	page = overlay.PlaceOverlay(0, c.FooterRow, m.help.String(), page)
	if line := m.statusLine(); line != "" {
		page = overlay.PlaceOverlay(pageMargin, c.StatusRow, line, page)
	}
	done()

	// Panels are composited last so they float above every bar.
	done = log.Profiler().StartRender("viewports")
	for _, s := range m.sections {
		page = s.viewport.Render(page)
	}
	done()

	return overlay.Clip(page, m.width, m.height)
}

// InspectNode reports the page with every menu's bar and panel.
func (m *home) InspectNode() *inspect.Node {
	root := inspect.NewNode("Page").WithBounds(0, 0, m.width, m.height)
	for _, s := range m.sections {
		section := inspect.NewNode("Menu").WithID(s.menu.ID()).WithContent(s.title)
		for _, c := range []inspect.Introspectable{s.bar, s.viewport} {
			section.AddChild(c.InspectNode())
		}
		root.AddChild(section)
	}
	return root
}

func (m *home) snapshot() *inspect.Snapshot {
	snap := inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithLayout(m.constraints, m.degradation).
		WithComponents(m.InspectNode())
	if f := m.focus; f != nil {
		snap.WithFocus(m.sections[f.section].menu.ID() + "/" + f.id)
	}
	for _, s := range m.sections {
		st := s.menu.State()
		info := inspect.MenuInfo{
			ID:           s.menu.ID(),
			Title:        s.title,
			Anchor:       string(s.viewport.Config().Anchor),
			Placement:    string(s.viewport.Config().Placement),
			IsOpen:       st.IsOpen,
			ActiveID:     st.ActiveID,
			PreviousID:   st.PreviousID,
			Direction:    st.Direction,
			ClosePending: s.menu.ClosePending(),
		}
		if size, ok := s.menu.ContainerSize(); ok {
			info.Width, info.Height = size.Width, size.Height
		}
		snap.AddMenu(info)
	}
	return snap
}

func (m *home) writeSnapshot() {
	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.Record(m.snapshot()); err != nil {
		log.WarningLog.Printf("could not write inspect snapshot: %v", err)
	}
}

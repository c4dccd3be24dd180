package app

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"navmenu/config"
	"navmenu/inspect"
	"navmenu/menu"
	"navmenu/placement"
	"navmenu/testing/harness"
	"navmenu/testing/snapshot"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type page struct {
	*harness.Harness
	home   *home
	copied []string
}

func newPage(t *testing.T, width, height int, opts Options) *page {
	t.Helper()
	p := &page{}
	opts.Ticker = harness.ImmediateTick
	if opts.Clipboard == nil {
		opts.Clipboard = func(s string) error {
			p.copied = append(p.copied, s)
			return nil
		}
	}
	p.home = newHome(context.Background(), opts)
	p.Harness = harness.New(t, p.home, width, height)
	p.View()
	return p
}

func (p *page) menu(i int) *menu.Menu {
	return p.home.sections[i].menu
}

func (p *page) trigger(t *testing.T, i int, id string) placement.Rect {
	t.Helper()
	r, ok := p.menu(i).TriggerBounds(id)
	require.True(t, ok, "no handle for %q", id)
	return r
}

// hover moves the pointer onto r and delivers everything that follows,
// including close timers, then repaints.
func (p *page) hover(r placement.Rect) {
	p.Drain(p.Move(r.X, r.Y))
	p.View()
}

func (p *page) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		p.Send(msg)
	}
	p.View()
}

func (p *page) focused() string {
	if p.home.focus == nil {
		return ""
	}
	return p.home.focus.id
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	space    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	copyKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}
)

func TestPageRendersBothMenus(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	view := p.View()

	snap := snapshot.New(t)
	snap.AssertContains(view, "Anchored to Container (Bottom Left)")
	snap.AssertContains(view, "Anchored to Trigger (Bottom Center)")
	snap.AssertContains(view, "Getting Started ▾")
	snap.AssertContains(view, "Docs")
	snap.AssertNotContains(view, "Installation")

	assert.Equal(t, 40, snapshot.Lines(view))
	assert.Equal(t, 120, snapshot.Width(view))
}

func TestPageFitsEveryTerminalSize(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		p := newPage(t, size.Width, size.Height, Options{})
		p.send(tab, enter)
		require.True(t, p.menu(0).IsOpen())

		view := p.View()
		assert.Equal(t, size.Height, snapshot.Lines(view))
		assert.Equal(t, size.Width, snapshot.Width(view))
	})
}

func TestKeyboardOpensAndTabsIntoPanel(t *testing.T) {
	p := newPage(t, 120, 40, Options{})

	p.send(tab)
	assert.Equal(t, "getting-started", p.focused())
	assert.False(t, p.menu(0).IsOpen(), "focus alone does not open")

	p.send(enter)
	require.True(t, p.menu(0).IsActive("getting-started"))
	snapshot.New(t).AssertContains(p.View(), "Installation")

	p.send(tab)
	assert.Equal(t, "installation", p.focused(), "tab from the open trigger enters the panel")
	assert.Equal(t, menu.RegionPanel, p.home.focus.region)
	assert.True(t, p.menu(0).IsOpen())

	p.send(tab)
	assert.Equal(t, "configuration", p.focused())
}

func TestShiftTabFromFirstEntryReturnsToTrigger(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.send(tab, enter, tab)
	require.Equal(t, "installation", p.focused())

	p.send(shiftTab)
	assert.Equal(t, "getting-started", p.focused())
	assert.Equal(t, menu.RegionBar, p.home.focus.region)
	assert.False(t, p.menu(0).IsOpen())
}

func TestTabFromLastEntryMovesToNextTrigger(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.send(tab, enter, tab, tab, tab)
	require.Equal(t, "customization", p.focused())

	p.send(tab)
	assert.Equal(t, "components", p.focused())
	assert.False(t, p.menu(0).IsOpen())
}

func TestFocusOnAnotherTriggerClosesWithoutDelay(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "resources"))
	require.True(t, p.menu(0).IsActive("resources"))

	// Programmatic focus on a different trigger of the same bar.
	p.home.focus = &stop{section: 0, region: menu.RegionBar, id: "getting-started"}
	p.send(tab)
	assert.Equal(t, "components", p.focused())
	assert.False(t, p.menu(0).IsOpen())
	assert.False(t, p.menu(0).ClosePending())
}

func TestSpaceTogglesTrigger(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.send(tab, tab, space)
	assert.True(t, p.menu(0).IsActive("components"))
	p.send(space)
	assert.False(t, p.menu(0).IsOpen())
}

func TestEscapeClosesDespitePendingClose(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.send(tab, enter, tab)
	p.menu(0).RequestClose()
	require.True(t, p.menu(0).ClosePending())

	p.send(esc)
	assert.False(t, p.menu(0).IsOpen())
	assert.Empty(t, p.menu(0).ActiveID())
	assert.False(t, p.menu(0).ClosePending())
	assert.Equal(t, "getting-started", p.focused(), "focus returns to the trigger that owned the panel")
}

func TestEnterOnEntrySelectsAndCloses(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.send(tab, enter, tab)

	p.SendMsg(enter)
	assert.False(t, p.menu(0).IsOpen())
	assert.Equal(t, "selected Installation (#)", p.home.status)
	assert.Equal(t, "getting-started", p.focused())
}

func TestCopyFocusedLink(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.send(tab, enter, tab, tab)

	p.SendMsg(copyKey)
	assert.Equal(t, []string{"#"}, p.copied)
	assert.Equal(t, "copied #", p.home.status)
	assert.False(t, p.home.statusIsError)
	assert.True(t, p.menu(0).IsOpen(), "copying is not navigation")
}

func TestCopyFailureIsShown(t *testing.T) {
	p := newPage(t, 120, 40, Options{Clipboard: func(string) error {
		return errors.New("no clipboard")
	}})
	p.send(tab, enter, tab)

	cmd := p.SendMsg(copyKey)
	assert.True(t, p.home.statusIsError)
	snapshot.New(t).AssertContains(p.View(), "failed to copy #: no clipboard")

	p.Drain(cmd)
	assert.Empty(t, p.home.status, "the error clears itself")
}

func TestHoverOpensImmediatelyAndLeaveCloses(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "components"))
	require.True(t, p.menu(0).IsActive("components"))
	snapshot.New(t).AssertContains(p.View(), "How to use Button component")

	cmd := p.Move(0, 0)
	assert.True(t, p.menu(0).IsOpen(), "leaving waits for the close delay")
	assert.True(t, p.menu(0).ClosePending())

	p.Drain(cmd)
	assert.False(t, p.menu(0).IsOpen())
}

func TestMovingIntoPanelKeepsItOpen(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "getting-started"))

	panel, shown := p.menu(0).Panel()
	require.True(t, shown)

	cmd := p.Move(panel.X+2, panel.Y+1)
	assert.False(t, p.menu(0).ClosePending(), "entering the panel cancels the close")
	p.Drain(cmd)
	assert.True(t, p.menu(0).IsActive("getting-started"))
}

func TestHoverSwitchesDirection(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "resources"))
	p.hover(p.trigger(t, 0, "getting-started"))

	m := p.menu(0)
	assert.True(t, m.IsActive("getting-started"))
	assert.Equal(t, "resources", m.PreviousID())
	assert.Equal(t, -1, m.Direction())

	v := p.home.sections[0].viewport
	assert.Equal(t, v.Transition().Target(), v.Transition().Bounds(), "frames ran to completion")
}

func TestHoverPlainLinkSchedulesClose(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "resources"))

	cmd := p.Move(p.trigger(t, 0, "docs").X, p.trigger(t, 0, "docs").Y)
	assert.True(t, p.menu(0).IsActive("resources"))
	assert.True(t, p.menu(0).ClosePending())
	p.Drain(cmd)
	assert.False(t, p.menu(0).IsOpen())
}

func TestClickOutsideClosesImmediately(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "components"))
	require.True(t, p.menu(0).IsOpen())

	p.Click(0, 0)
	assert.False(t, p.menu(0).IsOpen())
	assert.Nil(t, p.home.focus)
}

func TestClickTogglesTrigger(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	r := p.trigger(t, 0, "components")

	p.Drain(p.Click(r.X, r.Y))
	assert.True(t, p.menu(0).IsActive("components"), "a click without prior motion opens")
	assert.Equal(t, "components", p.focused())

	p.Drain(p.Click(r.X, r.Y))
	assert.False(t, p.menu(0).IsOpen(), "clicking the open trigger closes it")
}

func TestMenusAreIsolated(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "components"))
	require.True(t, p.menu(0).IsOpen())

	// The first menu's leave timer fires while the second one opens.
	p.hover(p.trigger(t, 1, "resources"))
	assert.False(t, p.menu(0).IsOpen())
	assert.True(t, p.menu(1).IsActive("resources"))
	assert.False(t, p.menu(1).HasContent("docs"))

	p.send(esc)
	assert.False(t, p.menu(1).IsOpen())
}

func TestPressInOneMenuIsOutsideTheOther(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.Drain(p.Click(p.trigger(t, 0, "components").X, p.trigger(t, 0, "components").Y))
	require.True(t, p.menu(0).IsOpen())

	// The far end of the second bar, clear of the first menu's panel.
	bar := p.menu(1).Bar()
	p.Click(bar.Right()-1, bar.Y+1)
	assert.False(t, p.menu(1).IsOpen())
	assert.False(t, p.menu(0).IsOpen())
}

func TestHoverElsewhereReturnsFocusToOwner(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.send(tab, enter, tab)
	require.Equal(t, "installation", p.focused())

	p.hover(p.trigger(t, 0, "components"))
	assert.Equal(t, "getting-started", p.focused())
	assert.Equal(t, menu.RegionBar, p.home.focus.region)
	assert.False(t, p.menu(0).IsOpen(), "focus on a different trigger closes the panel")
	assert.False(t, p.menu(0).ClosePending())
}

func TestPointerWorksWithoutRepaint(t *testing.T) {
	model := newHome(context.Background(), Options{Ticker: harness.ImmediateTick})
	h := harness.New(t, model, 120, 40)

	m := model.sections[0].menu
	r, ok := m.TriggerBounds("components")
	require.True(t, ok)
	h.Drain(h.Move(r.X, r.Y))
	require.True(t, m.IsActive("components"))

	panel, shown := m.Panel()
	require.True(t, shown, "panel bounds are recorded by the update")
	h.Drain(h.Move(panel.X+2, panel.Y+1))
	assert.True(t, m.IsOpen(), "the panel is hit-tested before any View")

	h.Click(0, 0)
	assert.False(t, m.IsOpen())
}

func TestTriggerAnchoredPanelIsCentered(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	r := p.trigger(t, 1, "resources")
	p.hover(r)

	panel, shown := p.menu(1).Panel()
	require.True(t, shown)
	assert.Equal(t, r.Bottom()+1, panel.Y)
	assert.Equal(t, r.X+r.Width/2-panel.Width/2, panel.X)

	rows := snapshot.Region(p.View(), panel.X, panel.Y, panel.Width, 2)
	assert.True(t, strings.HasPrefix(rows[0], "╭"))
	assert.Contains(t, rows[1], "Button")
}

func TestNarrowTerminalHidesDescriptions(t *testing.T) {
	p := newPage(t, 65, 24, Options{})
	require.True(t, p.home.degradation.HideDescriptions)

	p.hover(p.trigger(t, 0, "getting-started"))
	size, ok := p.menu(0).ContainerSize()
	require.True(t, ok)
	assert.Equal(t, 3, size.Height)

	p.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	size, _ = p.menu(0).ContainerSize()
	assert.Equal(t, 8, size.Height, "widening re-measures the open panel")
}

func TestCustomItems(t *testing.T) {
	items, err := config.ParseItems([]byte(`
items:
  - id: guides
    label: Guides
    children:
      - {id: intro, label: Introduction}
  - id: blog
    label: Blog
`))
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	cfg.Viewports = cfg.Viewports[:1]
	cfg.Animate = false

	p := newPage(t, 100, 30, Options{Config: cfg, Items: items})
	require.Len(t, p.home.sections, 1)
	p.send(tab, enter)
	assert.True(t, p.menu(0).IsActive("guides"))
	snapshot.New(t).AssertContains(p.View(), "Introduction")
}

func TestInspectTree(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "components"))

	root := p.home.InspectNode()
	trigger := root.Find("Trigger", "components")
	require.NotNil(t, trigger)
	assert.Equal(t, true, trigger.State[inspect.AriaExpanded])
	assert.Len(t, root.FindRole(inspect.RoleMenuItem), 6)

	snap := p.home.snapshot()
	require.Len(t, snap.Menus, 2)
	assert.True(t, snap.Menus[0].IsOpen)
	assert.Equal(t, "components", snap.Menus[0].ActiveID)
	assert.Equal(t, 60, snap.Menus[0].Width)
	assert.False(t, snap.Menus[1].IsOpen)
}

func TestQuitDisposesMenus(t *testing.T) {
	p := newPage(t, 120, 40, Options{})
	p.hover(p.trigger(t, 0, "components"))

	cmd := p.SendKey("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Nil(t, p.menu(0).RequestClose(), "a disposed menu schedules nothing")
}

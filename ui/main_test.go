package ui

import (
	"os"
	"testing"
	"time"

	"navmenu/config"
	"navmenu/menu"
	"navmenu/placement"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// nopTicker returns a command that yields the message immediately.
func nopTicker(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Time{}) }
}

func itemByID(t *testing.T, id string) menu.Item {
	t.Helper()
	for _, item := range config.DefaultItems() {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("no demo item %q", id)
	return menu.Item{}
}

// demoPage mounts the demo items on a menu and renders the bar once.
func demoPage(t *testing.T, cfg ViewportConfig) (*menu.Menu, *NavBar, *Viewport) {
	t.Helper()
	m := menu.New("nav", menu.WithTicker(nopTicker))
	bar := NewNavBar(m, config.DefaultItems())
	bar.Render(10, 3, 80, "")

	v := NewViewport(m, cfg)
	v.SetTicker(nopTicker)
	v.SetWindowSize(120, 40)
	t.Cleanup(v.Close)
	return m, bar, v
}

// openAndMeasure opens id and delivers the measurement the viewport asks for.
func openAndMeasure(t *testing.T, m *menu.Menu, v *Viewport, id string) {
	t.Helper()
	m.RequestOpen(id)
	_, gen, ok := m.Observation()
	if !ok {
		t.Fatalf("no observation after opening %q", id)
	}
	v.Sync()
	v.HandleMeasure(MeasureMsg{MenuID: m.ID(), Gen: gen})
}

func containerBottomLeft() ViewportConfig {
	return ViewportConfig{
		Anchor:    placement.AnchorContainer,
		Placement: placement.BottomLeft,
		Offset:    1,
		Padding:   2,
		Animate:   true,
	}
}

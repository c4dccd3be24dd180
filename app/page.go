package app

import (
	"fmt"

	"navmenu/config"
	"navmenu/log"
	"navmenu/menu"
	"navmenu/placement"
	"navmenu/ui"
	"navmenu/ui/layout"
	"navmenu/ui/mouse"
)

// pageMargin is the column the trigger bars start at.
const pageMargin = ui.SpaceSM

// section is one menu on the page: a caption, its bar and its panel.
type section struct {
	title    string
	cfg      config.ViewportConfig
	menu     *menu.Menu
	bar      *ui.NavBar
	viewport *ui.Viewport

	// barView is the bar as rendered by the last layout pass.
	barView string
}

func newSection(i int, vc config.ViewportConfig, cfg *config.Config, items []menu.Item, tick menu.Ticker) *section {
	anchor, err := placement.ParseAnchor(vc.Anchor)
	if err != nil {
		log.WarningLog.Printf("menu %d: %v", i, err)
	}
	p, err := placement.ParsePlacement(vc.Placement)
	if err != nil {
		log.WarningLog.Printf("menu %d: %v", i, err)
	}

	m := menu.New(fmt.Sprintf("menu-%d", i), menu.WithTicker(tick))
	v := ui.NewViewport(m, ui.ViewportConfig{
		Anchor:        anchor,
		Placement:     p,
		Offset:        cfg.Offset,
		Padding:       cfg.Padding,
		ClampVertical: cfg.ClampVertical,
		Animate:       cfg.Animate,
	})
	v.SetTicker(tick)

	return &section{
		title:    vc.Title,
		cfg:      vc,
		menu:     m,
		bar:      ui.NewNavBar(m, items),
		viewport: v,
	}
}

// layoutSections applies the degradation flags and renders every bar at its
// row, recording the trigger handles placement depends on.
func (m *home) layoutSections() {
	c := layout.ComputeConstraints(m.width, m.height, len(m.sections))
	d := layout.ComputeDegradation(c)
	m.constraints, m.degradation = c, d

	width := max(0, m.width-2*pageMargin)
	for i, s := range m.sections {
		s.bar.SetCompact(d.CompactTriggers)
		s.bar.SetHideDescriptions(d.HideDescriptions)

		focused := ""
		if f := m.focus; f != nil && f.section == i && f.region == menu.RegionBar {
			focused = f.id
		}
		s.barView = s.bar.Render(pageMargin, c.BarRows[i], width, focused)
	}
}

// addRegions rebuilds the hit map. Panels go last so they win over bars.
func (m *home) addRegions(hm *mouse.HitMap) {
	hm.Clear()
	for _, s := range m.sections {
		s.bar.AddRegions(hm)
	}
	for _, s := range m.sections {
		s.viewport.AddRegions(hm)
	}
}

func (m *home) sectionByID(id string) (int, *section) {
	for i, s := range m.sections {
		if s.menu.ID() == id {
			return i, s
		}
	}
	return -1, nil
}

// Package mouse maps terminal coordinates to rendered regions and turns
// motion events into enter and leave transitions.
package mouse

import (
	"navmenu/placement"

	tea "github.com/charmbracelet/bubbletea"
)

// Region is a rectangle registered during render.
type Region struct {
	ID   string
	Rect placement.Rect
	Data interface{}
}

// HitMap holds the regions of the last frame. Regions added later sit on
// top and win hit tests.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region.
func (h *HitMap) Add(id string, r placement.Rect, data interface{}) {
	if r.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect registers a region from its coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int, data interface{}) {
	h.Add(id, placement.Rect{X: x, Y: y, Width: w, Height: height}, data)
}

// Test returns the topmost region containing the point, or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Clear drops all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the registered regions, bottom first.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType describes what a mouse event means for the UI.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionPress
	ActionHover
)

// Action is the result of handling a mouse event.
type Action struct {
	Type ActionType
	X, Y int
	// Region is the region under the pointer, if any.
	Region *Region
	// Left and Entered are set when hovering crossed a region boundary.
	Left    *Region
	Entered *Region
}

// Tracker remembers the hovered region between motion events.
type Tracker struct {
	HitMap  *HitMap
	hovered *Region
}

// NewTracker creates a tracker with an empty hit map.
func NewTracker() *Tracker {
	return &Tracker{HitMap: NewHitMap()}
}

// Hovered returns the region under the pointer as of the last event.
func (t *Tracker) Hovered() *Region {
	return t.hovered
}

// HandleMouse classifies msg. Presses and motion both update hover state so
// a click without prior motion still produces enter events.
func (t *Tracker) HandleMouse(msg tea.MouseMsg) Action {
	region := t.HitMap.Test(msg.X, msg.Y)
	action := Action{X: msg.X, Y: msg.Y, Region: region}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		action.Type = ActionPress
	case msg.Action == tea.MouseActionMotion:
		action.Type = ActionHover
	default:
		return action
	}

	if id(region) != id(t.hovered) {
		action.Left = t.hovered
		action.Entered = region
		t.hovered = region
	}
	return action
}

// Reset forgets the hovered region, e.g. after the layout changed.
func (t *Tracker) Reset() {
	t.hovered = nil
}

func id(r *Region) string {
	if r == nil {
		return ""
	}
	return r.ID
}

package menu

import (
	"navmenu/log"
	"navmenu/placement"
)

// SizeObserver tracks which content is being measured. Each Observe call
// starts a new generation; reports carrying an older generation are stale
// and dropped, which is how a measurement racing an unmount is discarded.
type SizeObserver struct {
	target string
	gen    uint64
	active bool
}

// Observe disconnects from the previous target and attaches to id.
func (o *SizeObserver) Observe(id string) uint64 {
	o.gen++
	o.target = id
	o.active = true
	return o.gen
}

// Disconnect detaches from the current target.
func (o *SizeObserver) Disconnect() {
	if !o.active {
		return
	}
	o.gen++
	o.target = ""
	o.active = false
}

// Current returns the observed id and generation.
func (o *SizeObserver) Current() (id string, gen uint64, ok bool) {
	return o.target, o.gen, o.active
}

// Accepts reports whether a report for gen is still current.
func (o *SizeObserver) Accepts(gen uint64) bool {
	return o.active && gen == o.gen
}

// Observation returns the id being measured and its generation.
func (m *Menu) Observation() (id string, gen uint64, ok bool) {
	return m.observer.Current()
}

// ReportSize publishes a measurement for generation gen. Stale or
// unchanged reports are ignored. It returns true when the size changed.
func (m *Menu) ReportSize(gen uint64, size placement.Size) bool {
	if m.disposed || !m.observer.Accepts(gen) || !m.state.IsOpen {
		return false
	}
	if m.size != nil && *m.size == size {
		return false
	}
	m.size = &size
	log.LayoutTrace("%s: measured %q at %dx%d", m.id, m.observer.target, size.Width, size.Height)
	return true
}

package ui

import (
	"math"
	"time"

	"navmenu/placement"

	"github.com/charmbracelet/harmonica"
)

// Animation timing
const (
	FPS              = 60
	FrameInterval    = time.Second / FPS
	GeometryDuration = 350 * time.Millisecond
	FadeDuration     = 175 * time.Millisecond

	// SlideFraction is how far content slides, as a share of the panel width.
	SlideFraction = 0.5
)

// Critically damped springs. Each one is fast enough to settle well inside
// its time limit.
const (
	springFrequency = 15.0
	fadeFrequency   = 30.0
	springDamping   = 1.0
)

// tween moves one value toward a target on a spring and snaps when its
// time runs out.
type tween struct {
	spring  harmonica.Spring
	limit   time.Duration
	pos     float64
	vel     float64
	target  float64
	elapsed time.Duration
}

func newTween(frequency float64, limit time.Duration) tween {
	return tween{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), frequency, springDamping),
		limit:  limit,
	}
}

// newGeometryTween drives a box edge or a slide offset.
func newGeometryTween() tween {
	return newTween(springFrequency, GeometryDuration)
}

// newFadeTween drives a layer's opacity.
func newFadeTween() tween {
	return newTween(fadeFrequency, FadeDuration)
}

func (t *tween) snap(v float64) {
	t.pos, t.vel, t.target = v, 0, v
	t.elapsed = t.limit
}

func (t *tween) retarget(v float64) {
	if v == t.target {
		return
	}
	t.target = v
	t.elapsed = 0
}

func (t *tween) done() bool {
	return t.pos == t.target
}

func (t *tween) step() {
	if t.done() {
		return
	}
	t.elapsed += FrameInterval
	if t.elapsed >= t.limit {
		t.pos, t.vel = t.target, 0
		return
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
}

// Layer is one mounted content subtree of the panel, keyed by item id.
type Layer struct {
	id      string
	slide   tween
	fade    tween
	exiting bool
	// frozen holds the last view of an exiting layer whose content may be gone.
	frozen string
}

func newLayer(id string) *Layer {
	return &Layer{id: id, slide: newGeometryTween(), fade: newFadeTween()}
}

// ID is the item the layer renders.
func (l *Layer) ID() string {
	return l.id
}

// Exiting reports whether the layer is on its way out.
func (l *Layer) Exiting() bool {
	return l.exiting
}

// Frozen is the view captured when the layer started exiting.
func (l *Layer) Frozen() string {
	return l.frozen
}

// Opacity is the fade progress in [0, 1], 1 for fully visible.
func (l *Layer) Opacity() float64 {
	return math.Max(0, math.Min(1, l.fade.pos))
}

// Offset is the horizontal slide as a share of the panel width.
func (l *Layer) Offset() float64 {
	return l.slide.pos
}

func (l *Layer) settled() bool {
	return l.slide.done() && l.fade.done()
}

func (l *Layer) step() {
	l.slide.step()
	l.fade.step()
}

// Transition drives the panel geometry and the enter/exit pair of content
// layers. It is advanced one frame at a time by Step.
type Transition struct {
	animate bool

	top, left, width, height tween
	placed                   bool

	layers []*Layer
}

// NewTransition creates a transition. With animate false every change
// applies on the next frame.
func NewTransition(animate bool) *Transition {
	return &Transition{
		animate: animate,
		top:     newGeometryTween(),
		left:    newGeometryTween(),
		width:   newGeometryTween(),
		height:  newGeometryTween(),
	}
}

// SetTarget moves the panel box toward r. The first geometry after an open
// is applied without interpolation.
func (t *Transition) SetTarget(r placement.Rect) {
	if !t.placed || !t.animate {
		t.top.snap(float64(r.Y))
		t.left.snap(float64(r.X))
		t.width.snap(float64(r.Width))
		t.height.snap(float64(r.Height))
		t.placed = true
		return
	}
	t.top.retarget(float64(r.Y))
	t.left.retarget(float64(r.X))
	t.width.retarget(float64(r.Width))
	t.height.retarget(float64(r.Height))
}

// Placed reports whether a geometry has been applied since the last Reset.
func (t *Transition) Placed() bool {
	return t.placed
}

// Bounds returns the current animated box.
func (t *Transition) Bounds() placement.Rect {
	return placement.Rect{
		X:      int(math.Round(t.left.pos)),
		Y:      int(math.Round(t.top.pos)),
		Width:  int(math.Round(t.width.pos)),
		Height: int(math.Round(t.height.pos)),
	}
}

// Target returns the box the panel is moving toward.
func (t *Transition) Target() placement.Rect {
	return placement.Rect{
		X:      int(math.Round(t.left.target)),
		Y:      int(math.Round(t.top.target)),
		Width:  int(math.Round(t.width.target)),
		Height: int(math.Round(t.height.target)),
	}
}

// Switch makes id the entering layer. The current layer exits toward
// -direction, freezing its last view, and id slides in from direction.
// The first layer after an open appears without a transition.
func (t *Transition) Switch(id string, direction int, lastView string) {
	if cur := t.entering(); cur != nil && cur.id == id {
		return
	}

	for _, l := range t.layers {
		if l.exiting {
			continue
		}
		l.exiting = true
		l.frozen = lastView
		l.fade.retarget(0)
		l.slide.retarget(-float64(direction) * SlideFraction)
		if !t.animate {
			l.slide.snap(l.slide.target)
			l.fade.snap(0)
		}
	}

	in := newLayer(id)
	if len(t.layers) == 0 || !t.animate {
		in.slide.snap(0)
		in.fade.snap(1)
	} else {
		in.slide.snap(float64(direction) * SlideFraction)
		in.slide.retarget(0)
		in.fade.snap(0)
		in.fade.retarget(1)
	}
	t.layers = append(t.layers, in)
	t.prune()
}

func (t *Transition) entering() *Layer {
	for i := len(t.layers) - 1; i >= 0; i-- {
		if !t.layers[i].exiting {
			return t.layers[i]
		}
	}
	return nil
}

// Layers returns the mounted layers, exiting first.
func (t *Transition) Layers() []*Layer {
	return t.layers
}

// Active reports whether another frame is needed.
func (t *Transition) Active() bool {
	if !t.top.done() || !t.left.done() || !t.width.done() || !t.height.done() {
		return true
	}
	for _, l := range t.layers {
		if !l.settled() {
			return true
		}
	}
	return false
}

// Step advances the transition by one frame.
func (t *Transition) Step() {
	t.top.step()
	t.left.step()
	t.width.step()
	t.height.step()
	for _, l := range t.layers {
		l.step()
	}
	t.prune()
}

func (t *Transition) prune() {
	kept := t.layers[:0]
	for _, l := range t.layers {
		if l.exiting && l.settled() {
			continue
		}
		kept = append(kept, l)
	}
	t.layers = kept
}

// Reset forgets all geometry and layers, as when the panel closes.
func (t *Transition) Reset() {
	t.placed = false
	t.layers = nil
	t.top, t.left, t.width, t.height = newGeometryTween(), newGeometryTween(), newGeometryTween(), newGeometryTween()
}

package orbitshot

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one with TweenScale and either call Update(dt) each frame or hand it
// to a TweenManager. The group auto-applies values and marks the node dirty. If the target node is
// disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY
// to the target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// RepeatForever makes a Tween loop until stopped.
const RepeatForever = -1

// Tween animates a single value between two endpoints and writes it through
// an apply callback.
// Unlike TweenGroup it can repeat, and its playback speed can be changed while
// it runs through TimeScale.
type Tween struct {
	// TimeScale multiplies every delta passed to Update. 1 is real time.
	TimeScale float64
	// Repeat is the number of extra cycles: 0 plays once, RepeatForever loops.
	Repeat int
	// OnRepeat runs each time a cycle completes and another begins.
	OnRepeat func()
	// OnComplete runs once when the final cycle ends.
	OnComplete func()

	from, to float64
	duration float64 // seconds
	apply    func(float64)
	gt       *gween.Tween

	elapsed float64
	repeats int
	value   float64
	paused  bool
	done    bool
}

// NewTween creates a tween over duration using easing fn. apply receives the
// current value after every update and may be nil.
func NewTween(from, to float64, duration time.Duration, fn ease.TweenFunc, apply func(float64)) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	d := duration.Seconds()
	return &Tween{
		TimeScale: 1,
		from:      from,
		to:        to,
		duration:  d,
		apply:     apply,
		gt:        gween.New(float32(from), float32(to), float32(d), fn),
		value:     from,
	}
}

// Update advances the tween by dt seconds of real time, scaled by TimeScale.
// Time left over at the end of a cycle carries into the next one.
func (t *Tween) Update(dt float64) {
	if t.done || t.paused {
		return
	}
	if t.duration <= 0 {
		t.finish()
		return
	}

	t.elapsed += dt * t.TimeScale
	for t.elapsed >= t.duration {
		if t.Repeat != RepeatForever && t.repeats >= t.Repeat {
			t.elapsed = t.duration
			t.write()
			t.finish()
			return
		}
		t.elapsed -= t.duration
		t.repeats++
		if t.OnRepeat != nil {
			t.OnRepeat()
		}
	}
	t.write()
}

func (t *Tween) write() {
	v, _ := t.gt.Set(float32(t.elapsed))
	t.value = float64(v)
	if t.apply != nil {
		t.apply(t.value)
	}
}

func (t *Tween) finish() {
	if t.done {
		return
	}
	t.done = true
	t.value = t.to
	if t.apply != nil {
		t.apply(t.value)
	}
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

// Seek jumps to fraction p of the current cycle without firing callbacks.
// p wraps into [0, 1).
func (t *Tween) Seek(p float64) {
	if t.done {
		return
	}
	t.elapsed = (p - math.Floor(p)) * t.duration
	t.write()
}

// Value returns the most recently applied value.
func (t *Tween) Value() float64 { return t.value }

// Progress returns the fraction of the current cycle that has elapsed.
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return t.elapsed / t.duration
}

// Repeats returns how many cycles have completed so far.
func (t *Tween) Repeats() int { return t.repeats }

// Pause freezes the tween until Resume.
func (t *Tween) Pause() { t.paused = true }

// Resume continues a paused tween.
func (t *Tween) Resume() { t.paused = false }

// Stop ends the tween where it is without calling OnComplete.
func (t *Tween) Stop() { t.done = true }

// Done reports whether the tween has finished or been stopped.
func (t *Tween) Done() bool { return t.done }

// TweenManager advances a set of tweens each frame and forgets them once they
// are done. Every Scene owns one.
type TweenManager struct {
	tweens []*Tween
	groups []*TweenGroup
}

// Add registers t and returns it.
func (m *TweenManager) Add(t *Tween) *Tween {
	m.tweens = append(m.tweens, t)
	return t
}

// AddGroup registers g and returns it.
func (m *TweenManager) AddGroup(g *TweenGroup) *TweenGroup {
	m.groups = append(m.groups, g)
	return g
}

// Len returns the number of live tweens and groups.
func (m *TweenManager) Len() int {
	return len(m.tweens) + len(m.groups)
}

// Update advances every live tween by dt seconds. Tweens added by callbacks
// during the update start on the next frame.
func (m *TweenManager) Update(dt float64) {
	n := len(m.tweens)
	for i := 0; i < n; i++ {
		m.tweens[i].Update(dt)
	}
	live := m.tweens[:0]
	for _, t := range m.tweens {
		if !t.done {
			live = append(live, t)
		}
	}
	clear(m.tweens[len(live):])
	m.tweens = live

	ng := len(m.groups)
	for i := 0; i < ng; i++ {
		m.groups[i].Update(float32(dt))
	}
	liveGroups := m.groups[:0]
	for _, g := range m.groups {
		if !g.Done {
			liveGroups = append(liveGroups, g)
		}
	}
	clear(m.groups[len(liveGroups):])
	m.groups = liveGroups
}

package orbitshot

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, pointer events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge. EntityID is 0
// when the pointer hit no entity.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
}

// Scene is the top-level object that owns the node tree, timers, tweens and
// input state.
type Scene struct {
	// ClearColor fills the screen before each Draw.
	ClearColor Color
	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string
	// ExitOnScriptEnd makes Update return ebiten.Termination once an attached
	// TestRunner has finished and its screenshots are written.
	ExitOnScriptEnd bool

	root       *Node
	store      EntityStore
	debug      bool
	debugFrame int
	updateFunc func() error
	tweens     TweenManager
	clock      *Clock

	// Input state
	handlers  handlerRegistry
	pointers  [maxPointers]pointerState
	hitBuf    []*Node
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchBuf  []ebiten.TouchID

	// Scripted runs
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
	screenshotCount int

	lastUpdate time.Duration
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		ClearColor:    Color{0, 0, 0, 1},
		ScreenshotDir: DefaultScreenshotDir,
		root:          root,
		clock:         NewClock(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Tweens returns the scene's tween manager.
func (s *Scene) Tweens() *TweenManager {
	return &s.tweens
}

// Clock returns the scene's timer clock.
func (s *Scene) Clock() *Clock {
	return s.clock
}

// SetUpdateFunc sets a callback that runs at the end of every Update. A
// non-nil error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported, and frame stats are logged to
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// frameDuration is the length of one tick at the current TPS.
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Update advances the scene by one tick.
func (s *Scene) Update() error {
	return s.advance(frameDuration(), true)
}

// Step advances the scene by one tick without reading the mouse or touch
// screen. Injected input and an attached TestRunner still apply, which makes
// Step suitable for headless runs.
func (s *Scene) Step() error {
	return s.advance(frameDuration(), false)
}

// advance runs one frame of length dt. pollDevices reads the real mouse and
// touch screen; tests leave it off and drive input through injection.
//
// Order: scripted steps, input, clock, tweens, node OnUpdate callbacks,
// particles, update func.
func (s *Scene) advance(dt time.Duration, pollDevices bool) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		if s.ExitOnScriptEnd && s.testRunner.Done() && len(s.screenshotQueue) == 0 {
			return ebiten.Termination
		}
		s.testRunner.step(s)
	}

	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput(pollDevices)

	sec := dt.Seconds()
	s.clock.Update(dt)
	s.tweens.Update(sec)
	updateNodes(s.root, sec)

	updateWorldTransform(s.root, identityTransform, 1.0, false)
	updateParticles(s.root, sec)

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	if s.debug {
		s.lastUpdate = time.Since(t0)
	}
	return nil
}

// updateNodes runs OnUpdate callbacks depth-first. Children added by a
// callback run from the next frame.
func updateNodes(n *Node, dt float64) {
	count := len(n.children)
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for i := 0; i < count && i < len(n.children); i++ {
		updateNodes(n.children[i], dt)
	}
}

// Draw clears the screen and paints the scene tree onto it.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.toRGBA())
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	draws := s.drawNode(screen, s.root)
	s.flushScreenshots(screen)

	if s.debug {
		s.debugLog(debugStats{
			updateTime: s.lastUpdate,
			drawTime:   time.Since(t0),
			nodeCount:  countNodes(s.root),
			drawCount:  draws,
			tweenCount: s.tweens.Len(),
			timerCount: s.clock.Len(),
		})
	}
}

func countNodes(n *Node) int {
	c := 1
	for _, child := range n.children {
		c += countNodes(child)
	}
	return c
}

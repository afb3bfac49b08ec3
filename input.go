package orbitshot

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	hitNode *Node
	button  MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch event {
	case EventPointerDown:
		r.pointerDown = append(r.pointerDown, h)
	case EventPointerUp:
		r.pointerUp = append(r.pointerUp, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// OnPointerDown registers a scene-level callback for pointer down events. It
// fires for every press, whether or not a node was hit.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerUp, fn)
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's unscaled image rectangle.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := n.imageSize()
	if w == 0 && h == 0 {
		return false
	}
	if n.Type == NodeTypeMesh {
		return n.meshAABB.Contains(lx, ly)
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes to buf. Skips invisible or non-interactable subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range sortedChildren(n) {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Reverse painter order: topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput handles injected input, then mouse and touch input when
// pollDevices is set. A frame that consumes an injected event skips the
// devices.
func (s *Scene) processInput(pollDevices bool) {
	if s.processInjectedInput() || !pollDevices {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	// Releases first so a slot freed this tick can be reused by a new touch.
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			continue
		}
		tid := s.touchMap[i]
		if inpututil.IsTouchJustReleased(tid) {
			x, y := inpututil.TouchPositionInPreviousTick(tid)
			s.processPointer(i, float64(x), float64(y), false, MouseButtonLeft)
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}

	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	for _, tid := range s.touchBuf {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		x, y := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(x), float64(y), true, MouseButtonLeft)
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		target := s.hitTest(wx, wy)
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.firePointer(EventPointerDown, target, pointerID, wx, wy, button)
	case !pressed && ps.down:
		target := s.hitTest(wx, wy)
		s.firePointer(EventPointerUp, target, pointerID, wx, wy, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX = wx
	ps.lastY = wy
}

// --- Event dispatch ---

// firePointer runs scene handlers, then the hit node's callback, then the ECS
// bridge.
func (s *Scene) firePointer(event EventType, node *Node, pointerID int, wx, wy float64, button MouseButton) {
	var lx, ly float64
	var entityID uint32
	var userData any
	if node != nil {
		lx, ly = node.WorldToLocal(wx, wy)
		entityID = node.EntityID
		userData = node.UserData
	}
	ctx := PointerContext{
		Node: node, EntityID: entityID, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	}

	handlers := s.handlers.pointerDown
	if event == EventPointerUp {
		handlers = s.handlers.pointerUp
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	if node != nil {
		if event == EventPointerDown && node.OnPointerDown != nil {
			node.OnPointerDown(ctx)
		} else if event == EventPointerUp && node.OnPointerUp != nil {
			node.OnPointerUp(ctx)
		}
	}
	s.emitInteractionEvent(event, ctx)
}

// --- ECS bridge ---

// emitInteractionEvent forwards a pointer event to the entity store. Presses
// that hit no entity are still forwarded with EntityID 0 so systems can react
// to global input.
func (s *Scene) emitInteractionEvent(event EventType, ctx PointerContext) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:      event,
		EntityID:  ctx.EntityID,
		GlobalX:   ctx.GlobalX,
		GlobalY:   ctx.GlobalY,
		LocalX:    ctx.LocalX,
		LocalY:    ctx.LocalY,
		Button:    ctx.Button,
		PointerID: ctx.PointerID,
	})
}

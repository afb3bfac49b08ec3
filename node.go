package orbitshot

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	EntityID  uint32
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
}

// nodeIDCounter is a plain counter (no atomic, the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation is in radians; pivot is in image pixels.
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64
	FlipY    bool

	// Computed during traversal
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any
	EntityID uint32

	// Sprite fields (NodeTypeSprite). A nil Image draws WhitePixel.
	Image *ebiten.Image
	Color Color

	// Mesh fields (NodeTypeMesh)
	Vertices         []ebiten.Vertex
	Indices          []uint16
	MeshImage        *ebiten.Image
	transformedVerts []ebiten.Vertex
	meshAABB         Rect
	meshAABBDirty    bool

	// Particle fields (NodeTypeParticleEmitter)
	Emitter *ParticleEmitter

	// Text fields (NodeTypeText)
	TextBlock *TextBlock

	// Hit testing
	HitShape HitShape

	// Per-node callbacks (nil by default)
	OnPointerDown func(PointerContext)
	OnPointerUp   func(PointerContext)
	OnUpdate      func(dt float64)

	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that renders img. A nil img renders a
// solid Color quad one pixel square, sized through ScaleX and ScaleY.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	return n
}

// NewMesh creates a mesh node that uses DrawTriangles for rendering.
func NewMesh(name string, img *ebiten.Image, vertices []ebiten.Vertex, indices []uint16) *Node {
	n := &Node{
		Name:          name,
		Type:          NodeTypeMesh,
		MeshImage:     img,
		Vertices:      vertices,
		Indices:       indices,
		meshAABBDirty: true,
	}
	nodeDefaults(n)
	return n
}

// NewParticleEmitter creates a particle emitter node with a preallocated pool.
func NewParticleEmitter(name string, cfg EmitterConfig) *Node {
	n := &Node{
		Name:    name,
		Type:    NodeTypeParticleEmitter,
		Emitter: newParticleEmitter(cfg),
	}
	nodeDefaults(n)
	return n
}

// imageSize returns the unscaled pixel size of the quad a node draws.
func (n *Node) imageSize() (float64, float64) {
	switch n.Type {
	case NodeTypeSprite:
		if n.Image == nil {
			return 1, 1
		}
		b := n.Image.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	case NodeTypeText:
		if n.TextBlock == nil {
			return 0, 0
		}
		return n.TextBlock.Measure()
	case NodeTypeMesh:
		if n.meshAABBDirty {
			n.recomputeMeshAABB()
		}
		return n.meshAABB.Width, n.meshAABB.Height
	}
	return 0, 0
}

// SetOrigin places the pivot at a fraction of the image size, so (0.5, 0.5)
// rotates and positions the sprite around its centre.
func (n *Node) SetOrigin(ox, oy float64) {
	w, h := n.imageSize()
	n.PivotX = w * ox
	n.PivotY = h * oy
	n.transformDirty = true
}

// SetDisplaySize scales the node so its image is drawn w by h pixels.
func (n *Node) SetDisplaySize(w, h float64) {
	n.SetDisplayWidth(w)
	n.SetDisplayHeight(h)
}

// SetDisplayWidth scales the node horizontally so it is drawn w pixels wide.
func (n *Node) SetDisplayWidth(w float64) {
	iw, _ := n.imageSize()
	if iw == 0 {
		return
	}
	n.ScaleX = w / iw
	n.transformDirty = true
}

// SetDisplayHeight scales the node vertically so it is drawn h pixels tall.
func (n *Node) SetDisplayHeight(h float64) {
	_, ih := n.imageSize()
	if ih == 0 {
		return
	}
	n.ScaleY = h / ih
	n.transformDirty = true
}

// DisplayWidth returns the drawn width in local units of the parent.
func (n *Node) DisplayWidth() float64 {
	w, _ := n.imageSize()
	return w * n.ScaleX
}

// DisplayHeight returns the drawn height in local units of the parent.
func (n *Node) DisplayHeight() float64 {
	_, h := n.imageSize()
	return h * n.ScaleY
}

// AngleDegrees returns the rotation in degrees wrapped into [-180, 180).
func (n *Node) AngleDegrees() float64 {
	return WrapDegrees(RadToDeg(n.Rotation))
}

// SetAngleDegrees sets the rotation from degrees.
func (n *Node) SetAngleDegrees(deg float64) {
	n.SetRotation(DegToRad(deg))
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("orbitshot: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("orbitshot: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("orbitshot: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.Image = nil
	n.MeshImage = nil
	n.transformedVerts = nil
	n.Emitter = nil
	n.TextBlock = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

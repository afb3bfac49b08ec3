package orbitshot

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// geoM converts an affine matrix [a, b, c, d, tx, ty] into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// applyColorScale multiplies cs by c, premultiplying by alpha.
func applyColorScale(cs *ebiten.ColorScale, c Color) {
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

// sortedChildren returns n's children in paint order: ascending ZIndex,
// insertion order among equals.
func sortedChildren(n *Node) []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		return n.sortedChildren
	}
	return n.children
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// drawNode paints n and its subtree onto dst. World transforms must be current.
// Returns the number of draw calls issued.
func (s *Scene) drawNode(dst *ebiten.Image, n *Node) int {
	if !n.Visible {
		return 0
	}
	draws := 0
	switch n.Type {
	case NodeTypeSprite:
		draws += drawSprite(dst, n)
	case NodeTypeMesh:
		draws += drawMesh(dst, n)
	case NodeTypeParticleEmitter:
		draws += drawParticles(dst, n)
	case NodeTypeText:
		drawText(dst, n)
		draws++
	}
	for _, child := range sortedChildren(n) {
		draws += s.drawNode(dst, child)
	}
	return draws
}

func drawSprite(dst *ebiten.Image, n *Node) int {
	img := n.Image
	if img == nil {
		img = WhitePixel
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(n.worldTransform)
	applyColorScale(&op.ColorScale, Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha})
	dst.DrawImage(img, op)
	return 1
}

func drawMesh(dst *ebiten.Image, n *Node) int {
	if len(n.Vertices) == 0 || len(n.Indices) == 0 {
		return 0
	}
	img := n.MeshImage
	if img == nil {
		img = WhitePixel
	}
	tint := Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha}
	verts := ensureTransformedVerts(n)
	transformVertices(n.Vertices, verts, n.worldTransform, tint)
	dst.DrawTriangles(verts, n.Indices, img, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
	return 1
}

func drawParticles(dst *ebiten.Image, n *Node) int {
	e := n.Emitter
	if e == nil || e.alive == 0 {
		return 0
	}
	img := e.config.Image
	base := 1.0
	if img == nil {
		img = WhitePixel
		base = e.config.Size
	}
	b := img.Bounds()
	hw, hh := float64(b.Dx())/2, float64(b.Dy())/2

	op := &ebiten.DrawImageOptions{}
	for i := 0; i < e.alive; i++ {
		p := &e.particles[i]
		sc := base * float64(p.scale)
		op.GeoM.Reset()
		op.GeoM.Translate(-hw, -hh)
		op.GeoM.Scale(sc, sc)
		op.GeoM.Translate(p.x, p.y)
		op.ColorScale.Reset()
		applyColorScale(&op.ColorScale, Color{
			R: float64(p.colorR) * n.Color.R,
			G: float64(p.colorG) * n.Color.G,
			B: float64(p.colorB) * n.Color.B,
			A: float64(p.alpha) * n.Color.A * n.worldAlpha,
		})
		dst.DrawImage(img, op)
	}
	return e.alive
}

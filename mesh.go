package orbitshot

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxMiterScale caps how far a miter join may extend at sharp corners.
const maxMiterScale = 2.0

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Colors are written premultiplied. The tint's alpha already has worldAlpha
// baked in.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		alpha := s.ColorA * ca
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * alpha,
			ColorG: s.ColorG * cg * alpha,
			ColorB: s.ColorB * cb * alpha,
			ColorA: alpha,
		}
	}
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box in local space.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX, maxY := minX, minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ensureTransformedVerts grows the node's transformedVerts buffer to fit
// len(n.Vertices), never shrinking it. Returns the resliced buffer.
func ensureTransformedVerts(n *Node) []ebiten.Vertex {
	need := len(n.Vertices)
	if cap(n.transformedVerts) < need {
		n.transformedVerts = make([]ebiten.Vertex, need)
	}
	n.transformedVerts = n.transformedVerts[:need]
	return n.transformedVerts
}

// InvalidateMeshAABB marks the mesh's cached AABB as needing recomputation.
// Call this after modifying Vertices.
func (n *Node) InvalidateMeshAABB() {
	n.meshAABBDirty = true
}

func (n *Node) recomputeMeshAABB() {
	if !n.meshAABBDirty {
		return
	}
	n.meshAABB = computeMeshAABB(n.Vertices)
	n.meshAABBDirty = false
}

// NewStroke creates an untextured mesh that draws a ribbon of the given width
// along points, with miter joins. When closed is true the last point joins
// back to the first. Tint the ribbon through Node.Color.
func NewStroke(name string, points []Vec2, width float64, closed bool) *Node {
	n := NewMesh(name, WhitePixel, nil, nil)
	SetStrokePoints(n, points, width, closed)
	return n
}

// SetStrokePoints rebuilds a stroke mesh. For N points an open stroke has 2N
// vertices and 6(N-1) indices; a closed stroke repeats the first pair.
func SetStrokePoints(n *Node, points []Vec2, width float64, closed bool) {
	count := len(points)
	if count < 2 {
		n.Vertices = n.Vertices[:0]
		n.Indices = n.Indices[:0]
		n.InvalidateMeshAABB()
		return
	}

	rows := count
	if closed {
		rows++
	}
	numVerts := rows * 2
	numInds := (rows - 1) * 6
	if cap(n.Vertices) < numVerts {
		n.Vertices = make([]ebiten.Vertex, numVerts)
	}
	n.Vertices = n.Vertices[:numVerts]
	if cap(n.Indices) < numInds {
		n.Indices = make([]uint16, numInds)
	}
	n.Indices = n.Indices[:numInds]

	halfW := width / 2
	for row := 0; row < rows; row++ {
		i := row % count
		var nx, ny float64
		switch {
		case !closed && i == 0:
			nx, ny = perpendicular(points[0], points[1])
		case !closed && i == count-1:
			nx, ny = perpendicular(points[count-2], points[count-1])
		default:
			prev := points[(i-1+count)%count]
			next := points[(i+1)%count]
			nx, ny = miterNormal(prev, points[i], next)
		}

		p := points[i]
		vi := row * 2
		n.Vertices[vi] = ebiten.Vertex{
			DstX: float32(p.X + nx*halfW), DstY: float32(p.Y + ny*halfW),
			SrcX: 0, SrcY: 0,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
		n.Vertices[vi+1] = ebiten.Vertex{
			DstX: float32(p.X - nx*halfW), DstY: float32(p.Y - ny*halfW),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}

	// Two triangles per segment.
	for i := 0; i < rows-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		n.Indices[ii+0] = v
		n.Indices[ii+1] = v + 1
		n.Indices[ii+2] = v + 2
		n.Indices[ii+3] = v + 1
		n.Indices[ii+4] = v + 3
		n.Indices[ii+5] = v + 2
	}
	n.InvalidateMeshAABB()
}

// miterNormal averages the normals of the segments meeting at cur and scales
// the result so the ribbon keeps its width through the corner.
func miterNormal(prev, cur, next Vec2) (float64, float64) {
	nx0, ny0 := perpendicular(prev, cur)
	nx1, ny1 := perpendicular(cur, next)
	nx, ny := nx0+nx1, ny0+ny1
	ln := math.Hypot(nx, ny)
	if ln < 1e-10 {
		return nx0, ny0
	}
	nx /= ln
	ny /= ln
	if dot := nx0*nx + ny0*ny; dot > 0.1 {
		scale := math.Min(1/dot, maxMiterScale)
		nx *= scale
		ny *= scale
	}
	return nx, ny
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Hypot(dx, dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

package orbitshot

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortedChildren(t *testing.T) {
	tests := []struct {
		name string
		zs   []int
		want []string
	}{
		{"insertion order", []int{0, 0, 0}, []string{"a", "b", "c"}},
		{"ascending z", []int{2, 1, 0}, []string{"c", "b", "a"}},
		{"stable among equals", []int{1, 0, 1}, []string{"b", "a", "c"}},
		{"negative z first", []int{0, -1, 5}, []string{"b", "a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := NewContainer("parent")
			for i, z := range tt.zs {
				c := NewContainer(string(rune('a' + i)))
				c.ZIndex = z
				parent.AddChild(c)
			}
			got := names(sortedChildren(parent))
			if !equalNames(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
			// Children keeps insertion order.
			if parent.Children()[0].Name != "a" {
				t.Error("sorting reordered Children()")
			}
		})
	}
}

func TestSortedChildrenEmpty(t *testing.T) {
	if got := sortedChildren(NewContainer("leaf")); got != nil {
		t.Errorf("sortedChildren(leaf) = %v, want nil", got)
	}
}

func TestSortedChildrenResortsOnZChange(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)
	sortedChildren(parent)

	a.SetZIndex(10)
	got := names(sortedChildren(parent))
	if !equalNames(got, []string{"b", "a"}) {
		t.Errorf("order = %v, want [b a]", got)
	}
}

func TestGeoMMatchesAffine(t *testing.T) {
	m := [6]float64{2, 0.5, -0.5, 3, 10, 20}
	g := geoM(m)
	x, y := g.Apply(4, 5)
	wx, wy := transformPoint(m, 4, 5)
	assertNear(t, "x", x, wx)
	assertNear(t, "y", y, wy)
}

func TestDrawNodeCounts(t *testing.T) {
	s := NewScene()
	dst := ebiten.NewImage(64, 64)

	visible := NewSprite("visible", nil)
	hidden := NewSprite("hidden", nil)
	hidden.Visible = false
	hiddenChild := NewSprite("hidden child", nil)
	hidden.AddChild(hiddenChild)
	group := NewContainer("group")
	group.AddChild(NewSprite("nested", nil))
	emptyMesh := NewMesh("empty mesh", nil, nil, nil)
	stroke := NewStroke("stroke", []Vec2{{0, 0}, {10, 0}}, 2, false)
	fx := NewParticleEmitter("fx", defaultTestConfig(8))
	fx.Emitter.Burst(3, 0, 0)
	label := NewText("label", "hi", nil)

	for _, n := range []*Node{visible, hidden, group, emptyMesh, stroke, fx, label} {
		s.Root().AddChild(n)
	}
	updateWorldTransform(s.root, identityTransform, 1, false)

	// visible, nested, stroke, three particles, label.
	if got := s.drawNode(dst, s.root); got != 7 {
		t.Errorf("draw calls = %d, want 7", got)
	}
}

func TestApplyColorScalePremultiplies(t *testing.T) {
	var cs ebiten.ColorScale
	applyColorScale(&cs, Color{1, 0.5, 0, 0.5})
	if cs.R() != 0.5 || cs.G() != 0.25 || cs.B() != 0 || cs.A() != 0.5 {
		t.Errorf("ColorScale = (%v, %v, %v, %v), want (0.5, 0.25, 0, 0.5)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}

func BenchmarkDraw1000(b *testing.B) {
	s := NewScene()
	for i := 0; i < 1000; i++ {
		sp := NewSprite("", nil)
		sp.SetPosition(float64(i%32), float64(i/32))
		s.Root().AddChild(sp)
	}
	screen := ebiten.NewImage(64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Draw(screen)
	}
}

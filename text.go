package orbitshot

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TextAlign controls horizontal alignment of multi-line text.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // lines start at x = 0
	TextAlignCenter                  // lines are centred on the widest line
	TextAlignRight                   // lines end at the widest line
)

var defaultFace text.Face

// DefaultFace returns the built-in 7x13 bitmap face. It is shared; do not
// modify it.
func DefaultFace() text.Face {
	if defaultFace == nil {
		defaultFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return defaultFace
}

// TextBlock holds text content, formatting, and cached measurements.
type TextBlock struct {
	Content string
	Face    text.Face
	Align   TextAlign
	Color   Color
	// LineSpacing overrides the distance between baselines; 0 uses the
	// face's own metrics.
	LineSpacing float64

	measured  bool
	measuredW float64
	measuredH float64
	lastText  string
}

// NewText creates a text node. A nil face uses DefaultFace.
func NewText(name, content string, face text.Face) *Node {
	if face == nil {
		face = DefaultFace()
	}
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content: content,
			Face:    face,
			Color:   ColorWhite,
		},
	}
	nodeDefaults(n)
	return n
}

// SetText replaces the text content of a text node.
func (n *Node) SetText(content string) {
	if n.TextBlock == nil || n.TextBlock.Content == content {
		return
	}
	n.TextBlock.Content = content
	n.transformDirty = true
}

func (tb *TextBlock) lineSpacing() float64 {
	if tb.LineSpacing > 0 {
		return tb.LineSpacing
	}
	if tb.Face == nil {
		return 0
	}
	m := tb.Face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the laid-out width and height of the content. The result
// is cached until Content changes.
func (tb *TextBlock) Measure() (float64, float64) {
	if tb.Face == nil {
		return 0, 0
	}
	if !tb.measured || tb.lastText != tb.Content {
		tb.measuredW, tb.measuredH = text.Measure(tb.Content, tb.Face, tb.lineSpacing())
		tb.lastText = tb.Content
		tb.measured = true
	}
	return tb.measuredW, tb.measuredH
}

func (tb *TextBlock) primaryAlign() text.Align {
	switch tb.Align {
	case TextAlignCenter:
		return text.AlignCenter
	case TextAlignRight:
		return text.AlignEnd
	}
	return text.AlignStart
}

// drawText renders a text node with its world transform and alpha.
func drawText(dst *ebiten.Image, n *Node) {
	tb := n.TextBlock
	if tb == nil || tb.Face == nil || tb.Content == "" {
		return
	}
	w, _ := tb.Measure()

	op := &text.DrawOptions{}
	op.LineSpacing = tb.lineSpacing()
	op.PrimaryAlign = tb.primaryAlign()
	// Aligned text is anchored at the block's centre or right edge.
	switch tb.Align {
	case TextAlignCenter:
		op.GeoM.Translate(w/2, 0)
	case TextAlignRight:
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Concat(geoM(n.worldTransform))
	tint := Color{tb.Color.R * n.Color.R, tb.Color.G * n.Color.G, tb.Color.B * n.Color.B, tb.Color.A * n.Color.A * n.worldAlpha}
	applyColorScale(&op.ColorScale, tint)
	text.Draw(dst, tb.Content, tb.Face, op)
}

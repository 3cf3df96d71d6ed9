package box

import (
	"fmt"

	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/engine/texmath/atom"
)

// Kind is the kind of a box.
type Kind int8

//go:generate stringer -type=Kind
const (
	SymbolBox Kind = iota // a character or a short string in a single font
	HBox                  // children set side by side
	VBox                  // children each shifted against a common baseline
	VStack                // children stacked top to bottom, with a pinned depth
	DelimInner            // the repeated middle tile of a stacked delimiter
	RuleBox               // a solid rectangle
	KernBox               // empty space
	ScaleBox              // a box laid out at a different size
)

var kindNames = [...]string{"symbol", "hbox", "vbox", "vstack", "inner", "rule", "kern", "scale"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Rect is the extent of a box.
type Rect struct {
	Height dimen.Dimen
	Depth  dimen.Dimen
	Width  dimen.Dimen
}

// Space are the margins of a box.
type Space struct {
	Left   dimen.Dimen
	Right  dimen.Dimen
	Top    dimen.Dimen
	Bottom dimen.Dimen
}

// Box is a node of a box tree.
type Box struct {
	Kind     Kind
	Rect     Rect
	Space    Space
	Atom     atom.ID       // atom the box was generated from, 0 for none
	Text     string        // SymbolBox and DelimInner: characters to set
	Font     string        // SymbolBox and DelimInner
	Italic   dimen.Dimen   // SymbolBox: italic correction, included in the width
	Children []*Box        // HBox, VBox, VStack and ScaleBox
	Shifts   []dimen.Dimen // VBox: baseline shift of each child, upwards
	Repeat   int           // DelimInner: number of tiles
	Path     string        // DelimInner: SVG path of the tiles, in scaled points
	Factor   float64       // ScaleBox: size of the child relative to this box
}

// Option modifies a box under construction.
type Option func(*Box)

// WithAtom associates a box with an atom.
func WithAtom(id atom.ID) Option {
	return func(b *Box) {
		b.Atom = id
	}
}

// WithSpace sets the margins of a box.
func WithSpace(sp Space) Option {
	return func(b *Box) {
		b.Space = sp
	}
}

// WithMargins sets the left and right margins of a box.
func WithMargins(left, right dimen.Dimen) Option {
	return func(b *Box) {
		b.Space.Left, b.Space.Right = left, right
	}
}

func (b *Box) apply(opts []Option) *Box {
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Margined returns a copy of a box with different margins. Children are
// shared with the original, which must not be used afterwards.
func Margined(b *Box, sp Space) *Box {
	c := *b
	c.Space = sp
	return &c
}

// OuterWidth is the width of a box including its horizontal margins.
func (b *Box) OuterWidth() dimen.Dimen {
	return b.Rect.Width + b.Space.Left + b.Space.Right
}

// OuterHeight is the height of a box including its top margin.
func (b *Box) OuterHeight() dimen.Dimen {
	return b.Rect.Height + b.Space.Top
}

// OuterDepth is the depth of a box including its bottom margin.
func (b *Box) OuterDepth() dimen.Dimen {
	return b.Rect.Depth + b.Space.Bottom
}

// Total is height plus depth.
func (r Rect) Total() dimen.Dimen {
	return r.Height + r.Depth
}

// --- Constructors ----------------------------------------------------------

// NewSymbol creates a box for a string set in a single font. The italic
// correction is included in the width.
func NewSymbol(text, font string, r Rect, italic dimen.Dimen, opts ...Option) *Box {
	b := &Box{
		Kind:   SymbolBox,
		Rect:   Rect{Height: r.Height, Depth: r.Depth, Width: r.Width + italic},
		Text:   text,
		Font:   font,
		Italic: italic,
	}
	return b.apply(opts)
}

// NewHBox creates a box setting children side by side. Its width is the sum
// of the children's outer widths, height and depth are the maxima of the
// children's, but not negative.
func NewHBox(children []*Box, opts ...Option) *Box {
	b := &Box{Kind: HBox, Children: children}
	for _, ch := range children {
		b.Rect.Width += ch.OuterWidth()
		b.Rect.Height = dimen.Max(b.Rect.Height, ch.OuterHeight())
		b.Rect.Depth = dimen.Max(b.Rect.Depth, ch.OuterDepth())
	}
	return b.apply(opts)
}

// NewVBox creates a box from children sharing a common left edge, each moved
// up by its shift. Height and depth are the extremes of the children.
func NewVBox(children []*Box, shifts []dimen.Dimen, opts ...Option) *Box {
	if len(shifts) != len(children) {
		tracer().Errorf("vbox with mismatched shifts")
		panic(fmt.Sprintf("vbox with %d children and %d shifts", len(children), len(shifts)))
	}
	b := &Box{Kind: VBox, Children: children, Shifts: shifts}
	for i, ch := range children {
		h := ch.OuterHeight() + shifts[i]
		d := ch.OuterDepth() - shifts[i]
		if i == 0 {
			b.Rect.Height, b.Rect.Depth = h, d
		} else {
			b.Rect.Height = dimen.Max(b.Rect.Height, h)
			b.Rect.Depth = dimen.Max(b.Rect.Depth, d)
		}
		b.Rect.Width = dimen.Max(b.Rect.Width, ch.OuterWidth())
	}
	return b.apply(opts)
}

// NewVStack creates a box stacking children from top to bottom, each child
// directly below the previous one. The baseline of the stack is placed such
// that the stack's depth equals depth.
func NewVStack(children []*Box, depth dimen.Dimen, opts ...Option) *Box {
	b := &Box{Kind: VStack, Children: children}
	var total dimen.Dimen
	for _, ch := range children {
		total += ch.OuterHeight() + ch.OuterDepth()
		b.Rect.Width = dimen.Max(b.Rect.Width, ch.OuterWidth())
	}
	b.Rect.Depth = depth
	b.Rect.Height = total - depth
	return b.apply(opts)
}

// Baselines returns the position of each child's baseline in a stack,
// measured downwards from the top of the stack.
func (b *Box) Baselines() []dimen.Dimen {
	if b.Kind != VStack {
		return nil
	}
	pos := make([]dimen.Dimen, len(b.Children))
	var y dimen.Dimen
	for i, ch := range b.Children {
		pos[i] = y + ch.OuterHeight()
		y += ch.OuterHeight() + ch.OuterDepth()
	}
	return pos
}

// NewDelimInner creates n copies of a tile stacked vertically. The tile's
// metrics are given by r; the box has the width of the tile and a height of
// n times the tile's height plus depth, with zero depth.
func NewDelimInner(text, font string, r Rect, n int, opts ...Option) *Box {
	if n < 0 {
		n = 0
	}
	h := r.Total() * dimen.Dimen(n)
	b := &Box{
		Kind:   DelimInner,
		Rect:   Rect{Height: h, Width: r.Width},
		Text:   text,
		Font:   font,
		Repeat: n,
		Path:   fmt.Sprintf("M%d 0V%d", int32(r.Width/2), int32(h)),
	}
	return b.apply(opts)
}

// NewRule creates a solid rectangle sitting on the baseline.
func NewRule(width, thickness dimen.Dimen, opts ...Option) *Box {
	b := &Box{Kind: RuleBox, Rect: Rect{Height: thickness, Width: width}}
	return b.apply(opts)
}

// NewKern creates empty horizontal space.
func NewKern(width dimen.Dimen, opts ...Option) *Box {
	b := &Box{Kind: KernBox, Rect: Rect{Width: width}}
	return b.apply(opts)
}

// NewVKern creates empty vertical space, for use in stacks.
func NewVKern(height dimen.Dimen, opts ...Option) *Box {
	b := &Box{Kind: KernBox, Rect: Rect{Height: height}}
	return b.apply(opts)
}

// NewScale embeds a box of a different size. The child's dimensions are
// multiplied by factor; its margins are carried over, scaled, to the wrapper.
func NewScale(child *Box, factor float64, opts ...Option) *Box {
	if factor == 1 {
		c := *child
		return c.apply(opts)
	}
	b := &Box{
		Kind:     ScaleBox,
		Children: []*Box{child},
		Factor:   factor,
		Atom:     child.Atom,
		Rect: Rect{
			Height: child.Rect.Height.Scale(factor),
			Depth:  child.Rect.Depth.Scale(factor),
			Width:  child.Rect.Width.Scale(factor),
		},
		Space: Space{
			Left:   child.Space.Left.Scale(factor),
			Right:  child.Space.Right.Scale(factor),
			Top:    child.Space.Top.Scale(factor),
			Bottom: child.Space.Bottom.Scale(factor),
		},
	}
	b.Children[0] = Margined(child, Space{})
	return b.apply(opts)
}

// --- Helpers ---------------------------------------------------------------

// Walk visits a box tree in pre-order. If f returns false, the children of a
// box are skipped.
func Walk(b *Box, f func(b *Box, depth int) bool) {
	var walk func(b *Box, depth int)
	walk = func(b *Box, depth int) {
		if b == nil || !f(b, depth) {
			return
		}
		for _, ch := range b.Children {
			walk(ch, depth+1)
		}
	}
	walk(b, 0)
}

// DebugString returns a one-line description of a box, for debugging.
func (b *Box) DebugString() string {
	s := fmt.Sprintf("%s h=%.2fpt d=%.2fpt w=%.2fpt", b.Kind, pt(b.Rect.Height), pt(b.Rect.Depth), pt(b.Rect.Width))
	if b.Text != "" {
		s = fmt.Sprintf("%s %q", s, b.Text)
	}
	if b.Space != (Space{}) {
		s += fmt.Sprintf(" m=(%.2f,%.2f,%.2f,%.2f)", pt(b.Space.Left), pt(b.Space.Right), pt(b.Space.Top), pt(b.Space.Bottom))
	}
	if b.Kind == ScaleBox {
		s += fmt.Sprintf(" ×%.3f", b.Factor)
	}
	if b.Kind == DelimInner {
		s += fmt.Sprintf(" ×%d", b.Repeat)
	}
	return s
}

func pt(d dimen.Dimen) float64 {
	return float64(d) / float64(dimen.PT)
}

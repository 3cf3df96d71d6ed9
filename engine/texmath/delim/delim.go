package delim

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	"github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/mathfont"
	"github.com/npillmayer/tymath/engine/texmath/style"
)

// Class is the class of a delimiter variant.
type Class int8

const (
	Null    Class = iota // the empty delimiter “.”
	Small                // a glyph of the text font, possibly at a smaller style
	Large                // a glyph of one of the large delimiter fonts
	Stacked              // pieces stacked on top of each other
)

func (c Class) String() string {
	switch c {
	case Null:
		return "null"
	case Small:
		return "small"
	case Large:
		return "large"
	case Stacked:
		return "stacked"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Choice describes the variant chosen for a delimiter.
type Choice struct {
	Class  Class
	Rank   int         // position in the full variant sequence, -1 for null
	Font   string      // font of the glyph or of the pieces
	Repeat int         // stacked: number of repeated tiles, per extender
	Total  dimen.Dimen // height plus depth of the delimiter
}

type variant struct {
	class Class
	style *style.Style // small variants only
	font  string
	rank  int
}

var (
	smallVariants = []variant{
		{Small, style.SS, atom.MainRegular, 0},
		{Small, style.S, atom.MainRegular, 1},
		{Small, style.T, atom.MainRegular, 2},
	}
	largeVariants = []variant{
		{Large, nil, atom.Size1, 3},
		{Large, nil, atom.Size2, 4},
		{Large, nil, atom.Size3, 5},
		{Large, nil, atom.Size4, 6},
	}
	stackVariant = variant{class: Stacked, rank: 7}
)

var (
	stackLarge  = concat(smallVariants, largeVariants, []variant{stackVariant})
	stackNever  = concat(smallVariants, largeVariants)
	stackAlways = concat(smallVariants, []variant{stackVariant})
)

func concat(seqs ...[]variant) []variant {
	var all []variant
	for _, s := range seqs {
		all = append(all, s...)
	}
	return all
}

// pieces of a stacked delimiter. middle is 0 for delimiters without a
// middle piece.
type pieces struct {
	top, repeat, middle, bottom rune
	font                        string
}

var stackPieces = map[rune]pieces{
	'(': {'⎛', '⎜', 0, '⎝', atom.Size4},
	')': {'⎞', '⎟', 0, '⎠', atom.Size4},
	'[': {'⎡', '⎢', 0, '⎣', atom.Size4},
	']': {'⎤', '⎥', 0, '⎦', atom.Size4},
	'⌊': {'⎢', '⎢', 0, '⎣', atom.Size4},
	'⌋': {'⎥', '⎥', 0, '⎦', atom.Size4},
	'⌈': {'⎡', '⎢', 0, '⎢', atom.Size4},
	'⌉': {'⎤', '⎥', 0, '⎥', atom.Size4},
	'{': {'⎧', '⎪', '⎨', '⎩', atom.Size4},
	'}': {'⎫', '⎪', '⎬', '⎭', atom.Size4},
	'|': {'∣', '∣', 0, '∣', atom.Size1},
	'‖': {'∥', '∥', 0, '∥', atom.Size1},
}

func sequenceFor(d rune) []variant {
	if _, ok := stackPieces[d]; !ok {
		return stackNever
	}
	// bars have no large sizes
	if d == '|' || d == '‖' {
		return stackAlways
	}
	return stackLarge
}

// --- Sizer -----------------------------------------------------------------

// Sizer builds delimiters from the glyphs of a font set. A sizer holds no
// mutable state.
type Sizer struct {
	fonts *mathfont.Fonts
}

// New creates a sizer for a font set.
func New(fonts *mathfont.Fonts) *Sizer {
	if fonts == nil {
		fonts = mathfont.New(nil)
	}
	return &Sizer{fonts: fonts}
}

// Required returns the total height a delimiter has to reach to enclose a
// body of the given height and depth, both in the coordinates of opts.
// It follows TeX: the delimiter must cover a per-mille fraction (the
// delimiter factor) of twice the body's largest distance from the axis,
// and may fall short of it by at most the delimiter shortfall.
func (sz *Sizer) Required(height, depth dimen.Dimen, opts style.Options,
	regs *parameters.TypesettingRegisters) dimen.Dimen {
	//
	axis := sz.fonts.Sigma(metrics.AxisHeight, opts.Size())
	maxDist := dimen.Max(height-axis, depth+axis)
	byFactor := dimen.Dimen(int64(maxDist) * 2 * int64(regs.N(parameters.P_DELIMITERFACTOR)) / 1000)
	byShortfall := 2*maxDist - regs.D(parameters.P_DELIMITERSHORTFALL)
	return dimen.Max(byFactor, byShortfall)
}

// LeftRight builds a delimiter enclosing a body of the given height and depth.
// d = 0 is the null delimiter.
func (sz *Sizer) LeftRight(d rune, height, depth dimen.Dimen, opts style.Options,
	regs *parameters.TypesettingRegisters, id atom.ID) (*box.Box, Choice, error) {
	//
	if d == 0 {
		return NullDelimiter(regs, id), Choice{Class: Null, Rank: -1}, nil
	}
	return sz.Sized(d, sz.Required(height, depth, opts, regs), opts, id)
}

// NullDelimiter returns the empty delimiter: a kern of the null delimiter space.
func NullDelimiter(regs *parameters.TypesettingRegisters, id atom.ID) *box.Box {
	return box.NewKern(regs.D(parameters.P_NULLDELIMITERSPACE), box.WithAtom(id))
}

// Sized builds a delimiter with a total height exceeding required, in the
// coordinates of opts. The delimiter is centered on the math axis.
func (sz *Sizer) Sized(d rune, required dimen.Dimen, opts style.Options, id atom.ID) (*box.Box, Choice, error) {
	if d == 0 {
		return nil, Choice{}, core.Error(core.EINVALID, "null delimiter cannot be sized")
	}
	axis := sz.fonts.Sigma(metrics.AxisHeight, opts.Size())
	b, choice, err := sz.choose(d, required, opts, axis, id)
	if err != nil || choice.Class == Stacked {
		return b, choice, err
	}
	return centered(b, axis, id), choice, nil
}

// Radical builds a radical sign with a total height exceeding required.
// Unlike delimiters, radicals keep their vertical position: the top of the
// glyph is where the rule over the radicand starts.
func (sz *Sizer) Radical(required dimen.Dimen, opts style.Options, id atom.ID) (*box.Box, Choice, error) {
	b, choice, err := sz.choose('√', required, opts, 0, id)
	if err != nil {
		return nil, Choice{}, err
	}
	return box.NewHBox([]*box.Box{b}, box.WithAtom(id)), choice, nil
}

// choose walks the variant sequence of a delimiter. Single glyphs are
// returned as is, stacks are built centered on axis.
func (sz *Sizer) choose(d rune, required dimen.Dimen, opts style.Options, axis dimen.Dimen,
	id atom.ID) (*box.Box, Choice, error) {
	//
	var last *box.Box
	var lastChoice Choice
	for _, v := range sequenceFor(d) {
		if v.class == Stacked {
			return sz.stack(d, required, axis, id)
		}
		b, err := sz.glyph(d, v, opts)
		if err != nil {
			if v.class == Large && errors.Is(err, metrics.ErrNotFound) {
				continue
			}
			return nil, Choice{}, err
		}
		last = b
		lastChoice = Choice{Class: v.class, Rank: v.rank, Font: v.font, Total: b.Rect.Total()}
		if b.Rect.Total() > required {
			break
		}
	}
	if last == nil {
		return nil, Choice{}, core.Error(core.EMISSING, "no glyph for delimiter %q", d)
	}
	tracer().Debugf("delimiter %q: %s variant #%d for %.2fbp", d, lastChoice.Class, lastChoice.Rank, required.Points())
	return last, lastChoice, nil
}

// glyph creates a box for a single-glyph variant, in the coordinates of opts.
func (sz *Sizer) glyph(d rune, v variant, opts style.Options) (*box.Box, error) {
	c, err := sz.fonts.Char(v.font, d)
	if err != nil {
		return nil, err
	}
	b := box.NewSymbol(string(d), v.font, box.Rect{Height: c.Height, Depth: c.Depth, Width: c.Width}, 0)
	if v.class == Small {
		factor := opts.WithStyle(v.style).Multiplier() / opts.Multiplier()
		b = box.NewScale(b, factor)
	}
	return b, nil
}

func centered(b *box.Box, axis dimen.Dimen, id atom.ID) *box.Box {
	shift := axis - (b.Rect.Height - b.Rect.Depth).Half()
	return box.NewVBox([]*box.Box{b}, []dimen.Dimen{shift}, box.WithAtom(id))
}

// stack builds a delimiter from pieces: top, extender, optional middle and
// extender, bottom. Extenders repeat a tile as often as needed.
func (sz *Sizer) stack(d rune, required, axis dimen.Dimen, id atom.ID) (*box.Box, Choice, error) {
	p := stackPieces[d]
	piece := func(r rune) (mathfont.Char, error) {
		return sz.fonts.Char(p.font, r)
	}
	top, err := piece(p.top)
	if err != nil {
		return nil, Choice{}, err
	}
	bottom, err := piece(p.bottom)
	if err != nil {
		return nil, Choice{}, err
	}
	repeat, err := piece(p.repeat)
	if err != nil {
		return nil, Choice{}, err
	}
	var middle mathfont.Char
	extenders := 1
	if p.middle != 0 {
		if middle, err = piece(p.middle); err != nil {
			return nil, Choice{}, err
		}
		extenders = 2
	}
	minTotal := total(top) + total(bottom) + total(middle)
	tile := total(repeat)
	n := 0
	if required > minTotal && tile > 0 {
		n = int(math.Ceil(float64(required-minTotal) / float64(tile*dimen.Dimen(extenders))))
	}
	realTotal := minTotal + dimen.Dimen(n*extenders)*tile
	children := []*box.Box{
		sz.piece(p.top, p.font, top),
		box.NewDelimInner(string(p.repeat), p.font, rect(repeat), n),
	}
	if p.middle != 0 {
		children = append(children,
			sz.piece(p.middle, p.font, middle),
			box.NewDelimInner(string(p.repeat), p.font, rect(repeat), n))
	}
	children = append(children, sz.piece(p.bottom, p.font, bottom))
	b := box.NewVStack(children, realTotal.Half()-axis, box.WithAtom(id))
	tracer().Debugf("delimiter %q: stacked, %d tiles, %.2fbp for %.2fbp", d, n, realTotal.Points(), required.Points())
	return b, Choice{Class: Stacked, Rank: stackVariant.rank, Font: p.font, Repeat: n, Total: b.Rect.Total()}, nil
}

func (sz *Sizer) piece(r rune, font string, c mathfont.Char) *box.Box {
	return box.NewSymbol(string(r), font, rect(c), 0)
}

func rect(c mathfont.Char) box.Rect {
	return box.Rect{Height: c.Height, Depth: c.Depth, Width: c.Width}
}

func total(c mathfont.Char) dimen.Dimen {
	return c.Height + c.Depth
}

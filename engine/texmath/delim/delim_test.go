package delim

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	"github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/mathfont"
	"github.com/npillmayer/tymath/engine/texmath/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOptions() style.Options {
	return style.NewOptions(style.T, style.NormalSize)
}

func TestSmallDelimiterForShortBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	sz := New(fonts)
	regs := parameters.NewTypesettingRegisters()
	x, err := fonts.Char(atom.MathItalic, 'x')
	require.NoError(t, err)
	for _, d := range []rune{'(', ')'} {
		b, choice, err := sz.LeftRight(d, x.Height, x.Depth, textOptions(), regs, 7)
		require.NoError(t, err)
		assert.Equal(t, Small, choice.Class)
		assert.Equal(t, atom.ID(7), b.Atom)
		assert.GreaterOrEqual(t, int32(b.Rect.Height), int32(x.Height), "delimiter must reach body height")
		assert.GreaterOrEqual(t, int32(b.Rect.Depth), int32(x.Depth), "delimiter must reach body depth")
	}
}

func TestLargeVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	sz := New(fonts)
	_, choice, err := sz.Sized('(', fonts.FromEm(1.1), textOptions(), 0)
	require.NoError(t, err)
	assert.Equal(t, Large, choice.Class)
	assert.Equal(t, atom.Size1, choice.Font)
	_, choice, err = sz.Sized('[', fonts.FromEm(2.0), textOptions(), 0)
	require.NoError(t, err)
	assert.Equal(t, Large, choice.Class)
	assert.Equal(t, atom.Size3, choice.Font)
	assert.Equal(t, 5, choice.Rank)
}

func TestStackedDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	sz := New(fonts)
	required := fonts.FromEm(5)
	b, choice, err := sz.Sized('(', required, textOptions(), 3)
	require.NoError(t, err)
	assert.Equal(t, Stacked, choice.Class)
	assert.Equal(t, 3, choice.Repeat)
	assert.Equal(t, box.VStack, b.Kind)
	assert.Len(t, b.Children, 3)
	assert.Equal(t, box.DelimInner, b.Children[1].Kind)
	assert.GreaterOrEqual(t, int32(b.Rect.Total()), int32(required))
	// centered on the axis
	axis := fonts.Sigma(metrics.AxisHeight, style.NormalSize)
	assert.InDelta(t, float64(2*axis), float64(b.Rect.Height-b.Rect.Depth), 2)
}

func TestBraceHasMiddlePiece(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	b, choice, err := New(fonts).Sized('{', fonts.FromEm(8), textOptions(), 0)
	require.NoError(t, err)
	assert.Equal(t, Stacked, choice.Class)
	require.Len(t, b.Children, 5)
	assert.Equal(t, "⎨", b.Children[2].Text)
	assert.Equal(t, choice.Repeat, b.Children[1].Repeat)
	assert.Equal(t, choice.Repeat, b.Children[3].Repeat)
	assert.Greater(t, int32(b.Rect.Total()), int32(fonts.FromEm(8))-1)
}

func TestBarsStackFromSmallVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	sz := New(fonts)
	_, choice, err := sz.Sized('|', fonts.FromEm(0.9), textOptions(), 0)
	require.NoError(t, err)
	assert.Equal(t, Small, choice.Class)
	_, choice, err = sz.Sized('‖', fonts.FromEm(3), textOptions(), 0)
	require.NoError(t, err)
	assert.Equal(t, Stacked, choice.Class)
	assert.Equal(t, atom.Size1, choice.Font)
}

func TestAngleBracketsNeverStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	for _, d := range []rune{'⟨', '⟩', '/'} {
		_, choice, err := New(fonts).Sized(d, fonts.FromEm(10), textOptions(), 0)
		require.NoError(t, err)
		assert.Equal(t, Large, choice.Class)
		assert.Equal(t, atom.Size4, choice.Font)
	}
}

func TestSizingIsMonotonic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	sz := New(fonts)
	for _, d := range []rune{'(', ']', '{', '|', '⌈', '⟩'} {
		var prev Choice
		for i := 0; i <= 200; i++ {
			required := fonts.FromEm(0.05 * float64(i))
			_, choice, err := sz.Sized(d, required, textOptions(), 0)
			require.NoError(t, err)
			if i > 0 {
				assert.GreaterOrEqual(t, choice.Rank, prev.Rank, "%q at %s", d, required)
				assert.GreaterOrEqual(t, int32(choice.Total), int32(prev.Total), "%q at %s", d, required)
				if prev.Class == Stacked {
					assert.Equal(t, Stacked, choice.Class)
					assert.GreaterOrEqual(t, choice.Repeat, prev.Repeat)
				}
			}
			prev = choice
		}
	}
}

func TestNullDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	regs := parameters.NewTypesettingRegisters()
	b, choice, err := New(nil).LeftRight(0, dimen.PT, dimen.PT, textOptions(), regs, 2)
	require.NoError(t, err)
	assert.Equal(t, Null, choice.Class)
	assert.Equal(t, box.KernBox, b.Kind)
	assert.Equal(t, dimen.PT.Scale(1.2), b.Rect.Width)
	_, _, err = New(nil).Sized(0, dimen.PT, textOptions(), 2)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestRequiredHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	sz := New(fonts)
	regs := parameters.NewTypesettingRegisters()
	axis := fonts.Sigma(metrics.AxisHeight, style.NormalSize)
	h, d := fonts.FromEm(2.25), fonts.FromEm(1.0)
	maxDist := h - axis
	assert.Equal(t, 2*maxDist, sz.Required(h, d, textOptions(), regs))
	regs.Begingroup()
	regs.Push(parameters.P_DELIMITERFACTOR, 901)
	regs.Push(parameters.P_DELIMITERSHORTFALL, 5*dimen.PT)
	expected := dimen.Dimen(int64(maxDist) * 2 * 901 / 1000)
	assert.Equal(t, expected, sz.Required(h, d, textOptions(), regs))
	regs.Endgroup()
}

func TestRadicalSign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.delim")
	defer teardown()
	//
	fonts := mathfont.New(nil)
	sz := New(fonts)
	b, choice, err := sz.Radical(fonts.FromEm(0.9), textOptions(), 3)
	require.NoError(t, err)
	assert.Equal(t, Small, choice.Class)
	assert.Equal(t, atom.MainRegular, choice.Font)
	assert.Equal(t, atom.ID(3), b.Atom)
	assert.Greater(t, int32(b.Rect.Total()), int32(fonts.FromEm(0.9)))
	_, choice, err = sz.Radical(fonts.FromEm(2.5), textOptions(), 3)
	require.NoError(t, err)
	assert.Equal(t, Large, choice.Class)
	assert.Equal(t, atom.Size4, choice.Font)
	b, choice, err = sz.Radical(fonts.FromEm(10), textOptions(), 3)
	require.NoError(t, err)
	assert.Equal(t, atom.Size4, choice.Font, "radicals do not stack")
	assert.Less(t, int32(b.Rect.Total()), int32(fonts.FromEm(10)))
}

package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/font/metrics"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/mathfont"
	"github.com/npillmayer/tymath/engine/texmath/parser"
	"github.com/npillmayer/tymath/engine/texmath/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fonts = mathfont.New(nil)

func layoutOf(t *testing.T, src string, st *style.Style) *box.Box {
	t.Helper()
	tree, err := parser.ParseMath(src)
	require.NoError(t, err, src)
	b, err := New(fonts, nil).Layout(tree.Root, style.NewOptions(st, style.NormalSize))
	require.NoError(t, err, src)
	require.NotNil(t, b)
	return b
}

func sigma(s metrics.Sigma) dimen.Dimen {
	return fonts.Sigma(s, style.NormalSize)
}

func glyphWidth(t *testing.T, font string, ch rune) dimen.Dimen {
	c, err := fonts.Char(font, ch)
	require.NoError(t, err)
	return c.Width + c.Italic
}

func TestSpacingBetweenAtoms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, "a+b", style.T)
	require.Len(t, b.Children, 3)
	medium := fonts.Mu(4, style.NormalSize)
	wa := glyphWidth(t, atom.MathItalic, 'a')
	wplus := glyphWidth(t, atom.MainRegular, '+')
	wb := glyphWidth(t, atom.MathItalic, 'b')
	assert.Equal(t, wa+wplus+wb+2*medium, b.Rect.Width)
	assert.Equal(t, dimen.Dimen(0), b.Children[0].Space.Left, "no space at start of list")
	assert.Equal(t, medium, b.Children[1].Space.Left)
	assert.Equal(t, medium, b.Children[2].Space.Left)
	//
	b = layoutOf(t, "a+b", style.S)
	assert.Equal(t, wa+wplus+wb, b.Rect.Width, "no medium space in script style")
	//
	b = layoutOf(t, `\times a`, style.T)
	assert.Equal(t, glyphWidth(t, atom.MainRegular, '×')+wa, b.Rect.Width, "leading bin becomes ord")
}

func TestRelationSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, "x=y", style.T)
	thick := fonts.Mu(5, style.NormalSize)
	assert.Equal(t, thick, b.Children[1].Space.Left)
	assert.Equal(t, thick, b.Children[2].Space.Left)
	b = layoutOf(t, `x\,y`, style.T)
	require.Len(t, b.Children, 3)
	assert.Equal(t, box.KernBox, b.Children[1].Kind)
	assert.Equal(t, fonts.Mu(3, style.NormalSize), b.Children[1].Rect.Width)
}

func TestFractionInDisplayStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\frac{a}{b}`, style.D)
	require.Len(t, b.Children, 1)
	frac := b.Children[0]
	require.Equal(t, box.VBox, frac.Kind)
	require.Len(t, frac.Shifts, 3)
	theta := sigma(metrics.DefaultRuleThickness)
	axis := sigma(metrics.AxisHeight)
	assert.Equal(t, axis-theta.Half(), frac.Shifts[1], "rule sits on the axis")
	assert.Equal(t, box.RuleBox, frac.Children[1].Kind)
	assert.Equal(t, theta, frac.Children[1].Rect.Height)
	assert.GreaterOrEqual(t, int32(frac.Shifts[0]), int32(sigma(metrics.Num1)))
	assert.Equal(t, dimen.PT.Scale(1.2), frac.Space.Left)
	assert.Equal(t, dimen.PT.Scale(1.2), frac.Space.Right)
}

func TestFractionClearance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	theta := sigma(metrics.DefaultRuleThickness)
	inputs := []string{
		`\frac{a}{b}`, `\frac{x^2}{y_3}`, `\frac{\frac{a}{b}}{c}`,
		`\frac{1}{\frac{a}{b}}`, `\frac{\sum}{\int}`, `\frac{}{}`, `\frac{g}{h}`,
	}
	for _, st := range []*style.Style{style.D, style.T} {
		clearance := theta
		if st.IsDisplay() {
			clearance = 3 * theta
		}
		for _, src := range inputs {
			frac := layoutOf(t, src, st).Children[0]
			num, rule, den := frac.Children[0], frac.Children[1], frac.Children[2]
			ruleBottom := frac.Shifts[1]
			ruleTop := ruleBottom + rule.Rect.Height
			numGap := frac.Shifts[0] - num.OuterDepth() - ruleTop
			denGap := ruleBottom - (frac.Shifts[2] + den.OuterHeight())
			assert.GreaterOrEqual(t, int32(numGap), int32(clearance), "%s in %s", src, st)
			assert.GreaterOrEqual(t, int32(denGap), int32(clearance), "%s in %s", src, st)
		}
	}
}

func TestScriptsInEitherOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b1 := layoutOf(t, "a^{b}_{c}", style.T)
	b2 := layoutOf(t, "a_{c}^{b}", style.T)
	assert.Equal(t, b1, b2)
	supsub := b1.Children[0]
	require.Len(t, supsub.Children, 2)
	scripts := supsub.Children[1]
	require.Len(t, scripts.Children, 2)
	sup, sub := scripts.Children[0], scripts.Children[1]
	gap := (scripts.Shifts[0] - sup.Rect.Depth) - (sub.Rect.Height + scripts.Shifts[1])
	assert.GreaterOrEqual(t, int32(gap), int32(4*sigma(metrics.DefaultRuleThickness)))
	assert.Equal(t, dimen.PT.Scale(0.5), sup.Space.Right, "script space")
}

func TestSuperscriptShift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	for _, st := range []*style.Style{style.D, style.T} {
		b := layoutOf(t, "x^2", st)
		scripts := b.Children[0].Children[1]
		assert.Equal(t, sigma(metrics.Sup1), scripts.Shifts[0], "x^2 in style %s", st)
	}
	b := layoutOf(t, "x^2", style.Tc)
	scripts := b.Children[0].Children[1]
	assert.Equal(t, sigma(metrics.Sup3), scripts.Shifts[0], "cramped")
	b = layoutOf(t, "x_2", style.T)
	scripts = b.Children[0].Children[1]
	assert.Equal(t, -sigma(metrics.Sub1), scripts.Shifts[0])
	sub := scripts.Children[0]
	assert.Less(t, int32(sub.Rect.Width), int32(glyphWidth(t, atom.MainRegular, '2')))
}

func TestSubscriptFloorWithSuperscript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, "x^{a}_{c}", style.T)
	scripts := b.Children[0].Children[1]
	require.Len(t, scripts.Children, 2)
	assert.Equal(t, sigma(metrics.Sup1), scripts.Shifts[0])
	assert.Equal(t, -sigma(metrics.Sub1), scripts.Shifts[1], "low scripts keep the sub1 floor")
	//
	b = layoutOf(t, "x^2_3", style.T)
	scripts = b.Children[0].Children[1]
	sup, sub := scripts.Children[0], scripts.Children[1]
	assert.Equal(t, sigma(metrics.Sup1), scripts.Shifts[0])
	gap := (scripts.Shifts[0] - sup.Rect.Depth) - (sub.Rect.Height + scripts.Shifts[1])
	assert.Equal(t, 4*sigma(metrics.DefaultRuleThickness), gap, "digits are pushed apart by the minimum gap")
	assert.Less(t, int32(-scripts.Shifts[1]), int32(sigma(metrics.Sub2)))
	assert.Greater(t, int32(-scripts.Shifts[1]), int32(sigma(metrics.Sub1)))
}

func TestSubscriptTucksUnderItalic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	c, err := fonts.Char(atom.MathItalic, 'f')
	require.NoError(t, err)
	require.Greater(t, int32(c.Italic), int32(0))
	b := layoutOf(t, "f_i", style.T)
	sub := b.Children[0].Children[1].Children[0]
	assert.Equal(t, -c.Italic, sub.Space.Left)
}

func TestLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\sum_{i=1}^{n} i`, style.D)
	op := b.Children[0]
	assert.Equal(t, box.VStack, op.Kind)
	require.Len(t, op.Children, 7)
	base := op.Children[3]
	assert.Equal(t, op.Rect.Height, op.Baselines()[3], "baseline of the stack is the baseline of the operator")
	assert.Greater(t, int32(op.Rect.Depth), int32(base.Rect.Depth), "lower limit below the operator")
	assert.Equal(t, atom.Size2, findFont(base))
	//
	b = layoutOf(t, `\sum_{i=1}^{n} i`, style.T)
	text := b.Children[0]
	assert.Equal(t, box.VStack, text.Kind, "limits in text style")
	require.Len(t, text.Children, 7)
	assert.Equal(t, atom.Size1, findFont(text.Children[3]))
	assert.Less(t, int32(text.Rect.Total()), int32(op.Rect.Total()))
	//
	b = layoutOf(t, `\lim_{n} x`, style.S)
	assert.Equal(t, box.VStack, b.Children[0].Kind, "limits in script style")
	//
	b = layoutOf(t, `\int_0^1 x`, style.D)
	assert.Equal(t, box.HBox, b.Children[0].Kind, "integrals take no limits")
}

func findFont(b *box.Box) string {
	var font string
	box.Walk(b, func(b *box.Box, depth int) bool {
		if font == "" && b.Kind == box.SymbolBox {
			font = b.Font
		}
		return font == ""
	})
	return font
}

func TestLeftRightEnclosesBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\left(a\right)`, style.T)
	lr := b.Children[0]
	require.Len(t, lr.Children, 3)
	body := lr.Children[1]
	for _, d := range []*box.Box{lr.Children[0], lr.Children[2]} {
		assert.GreaterOrEqual(t, int32(d.Rect.Height), int32(body.Rect.Height))
		assert.GreaterOrEqual(t, int32(d.Rect.Depth), int32(body.Rect.Depth))
		assert.Equal(t, atom.MainRegular, findFont(d), "short body gets a small delimiter")
	}
	b = layoutOf(t, `\left(\frac{\frac{a}{b}}{\frac{c}{d}}\right.`, style.D)
	lr = b.Children[0]
	body = lr.Children[1]
	assert.GreaterOrEqual(t, int32(lr.Children[0].Rect.Total()), int32(body.Rect.Total()))
	assert.Equal(t, box.KernBox, lr.Children[2].Kind, "null delimiter")
}

func TestMatrixColumnsAndRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\begin{pmatrix}a&a\\a&a\end{pmatrix}`, style.T)
	m := b.Children[0]
	require.Len(t, m.Children, 3, "delimiters and array")
	array := m.Children[1]
	require.Len(t, array.Children, 3, "two columns and a strut")
	col0, col1 := array.Children[0], array.Children[1]
	wa := glyphWidth(t, atom.MathItalic, 'a')
	assert.Equal(t, wa, col0.Rect.Width)
	assert.Equal(t, wa, col1.Rect.Width)
	assert.Equal(t, fonts.FromEm(1.0), col1.Space.Left, "column gap")
	assert.Equal(t, col0.Shifts, col1.Shifts)
	// rows are symmetric around the axis
	axis := sigma(metrics.AxisHeight)
	assert.InDelta(t, float64(array.Rect.Height-axis), float64(array.Rect.Depth+axis), 2)
	pitch := col0.Shifts[0] - col0.Shifts[1]
	assert.InDelta(t, float64(fonts.FromEm(1.2)), float64(pitch), 2)
	for _, d := range []*box.Box{m.Children[0], m.Children[2]} {
		assert.GreaterOrEqual(t, int32(d.Rect.Total()), int32(array.Rect.Total()))
	}
}

func TestCasesAreStretched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	tree, err := parser.ParseMath(`\begin{cases}a&b\\c&d\end{cases}`)
	require.NoError(t, err)
	l := New(fonts, nil)
	b, err := l.Layout(tree.Root, style.NewOptions(style.D, style.NormalSize))
	require.NoError(t, err)
	m := b.Children[0]
	require.Len(t, m.Children, 3)
	assert.Equal(t, box.KernBox, m.Children[2].Kind, "cases have no right delimiter")
	col0 := m.Children[1].Children[0]
	pitch := col0.Shifts[0] - col0.Shifts[1]
	assert.InDelta(t, float64(fonts.FromEm(1.2*1.2)), float64(pitch), 2)
	assert.Equal(t, 1.0, l.Registers().F(params.P_ARRAYSTRETCH), "array stretch is restored")
}

func TestAlignedSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\begin{aligned}x&=1\\y&=2\end{aligned}`, style.D)
	array := b.Children[0]
	require.Len(t, array.Children, 3)
	col1 := array.Children[1]
	assert.Equal(t, dimen.Dimen(0), col1.Space.Left, "no column gap inside an equation")
	thick := fonts.Mu(5, style.NormalSize)
	for _, cell := range col1.Children {
		assert.Equal(t, thick, cell.Space.Left, "relation spacing in front of '='")
	}
}

func TestRadical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\sqrt{x}`, style.T)
	sq := b.Children[0]
	require.Len(t, sq.Children, 2)
	radical, body := sq.Children[0], sq.Children[1]
	inner, rule := body.Children[0], body.Children[1]
	theta := sigma(metrics.DefaultRuleThickness)
	assert.Equal(t, box.RuleBox, rule.Kind)
	assert.Equal(t, inner.Rect.Width, rule.Rect.Width)
	assert.GreaterOrEqual(t, int32(body.Shifts[1]-inner.Rect.Height), int32(theta+theta.Scale(0.25)))
	assert.Equal(t, body.Shifts[1]+theta, radical.Rect.Height, "sign and rule are flush")
	assert.Equal(t, theta, rule.Space.Top)
	//
	b = layoutOf(t, `\sqrt{}`, style.T)
	assert.Equal(t, dimen.Dimen(0), b.Children[0].Children[1].Rect.Width)
}

func TestOverlineAndAccent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	theta := sigma(metrics.DefaultRuleThickness)
	b := layoutOf(t, `\overline{x}`, style.T)
	ov := b.Children[0]
	assert.Equal(t, ov.Children[0].Rect.Height+3*theta, ov.Shifts[1])
	assert.Equal(t, ov.Shifts[1]+2*theta, ov.Rect.Height)
	//
	b = layoutOf(t, `\hat{a}`, style.T)
	acc := b.Children[0]
	require.Len(t, acc.Children, 2)
	assert.Equal(t, "^", acc.Children[1].Text)
	assert.Equal(t, dimen.Dimen(0), acc.Shifts[1], "accent over x-height letter is not raised")
	b = layoutOf(t, `\hat{b}`, style.T)
	acc = b.Children[0]
	assert.Greater(t, int32(acc.Shifts[1]), int32(0), "accent over tall letter is raised")
}

func TestGroupsAndText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\text{if }x`, style.T)
	assert.Greater(t, int32(b.Rect.Width), int32(0))
	tree, err := parser.ParseDocument(`Let $x=1$ hold, \[ y \]`)
	require.NoError(t, err)
	b, err = New(fonts, nil).Layout(tree.Root, style.NewOptions(style.T, style.NormalSize))
	require.NoError(t, err)
	assert.Greater(t, int32(b.Rect.Width), int32(0))
	var kerns int
	box.Walk(b, func(b *box.Box, depth int) bool {
		if b.Kind == box.KernBox && b.Rect.Width == sigma(metrics.Space) {
			kerns++
		}
		return true
	})
	assert.GreaterOrEqual(t, kerns, 2, "inter-word spaces")
}

func TestRuleAndReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	b := layoutOf(t, `\rule{2pt}{1pt}`, style.T)
	r := b.Children[0]
	assert.Equal(t, box.RuleBox, r.Kind)
	assert.Equal(t, 2*dimen.PT, r.Rect.Width)
	assert.Equal(t, dimen.PT, r.Rect.Height)
	b = layoutOf(t, `\ref{eq1}`, style.T)
	assert.Equal(t, "(eq1)", b.Children[0].Text)
}

func TestMetricsNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	sym := &atom.Symbol{Class: atom.Ord, Text: "ℵ", Fonts: []string{atom.MainRegular}}
	_, err := New(fonts, nil).Layout([]atom.Atom{sym}, style.NewOptions(style.T, style.NormalSize))
	require.Error(t, err)
	assert.True(t, errors.Is(err, metrics.ErrNotFound))
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.True(t, strings.Contains(err.Error(), atom.MainRegular), "error names the font")
}

func TestScriptsRequired(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.layout")
	defer teardown()
	//
	a := &atom.SupSub{Nucleus: &atom.Symbol{Class: atom.Ord, Text: "x", Fonts: []string{atom.MathItalic}}}
	_, err := New(fonts, nil).Atom(a, style.NewOptions(style.T, style.NormalSize))
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

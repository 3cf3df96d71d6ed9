package atom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letter(s string) *Symbol {
	return &Symbol{Class: Ord, Text: s, Fonts: []string{MathItalic}, Flags: Italic}
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.atom")
	defer teardown()
	//
	assert.Equal(t, "bin", Bin.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	sum, ok := LookupCommand("sum")
	require.True(t, ok)
	ss := &SupSub{Nucleus: sum.NewSymbol(), Sup: []Atom{letter("n")}}
	assert.Equal(t, Op, ss.Kind())
	assert.True(t, ss.Nucleus.(*Symbol).IsLargeOp())
	assert.Equal(t, Inner, (&Matrix{Env: "pmatrix"}).Kind())
	assert.Equal(t, Ord, (&Matrix{Env: "matrix"}).Kind())
	assert.Equal(t, Inner, (&Fraction{}).Kind())
	assert.True(t, (Composite | Limits).Has(Limits))
	assert.False(t, Composite.Has(Composite|Limits))
}

func TestTreeNumbering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.atom")
	defer teardown()
	//
	a, b, c := letter("a"), letter("b"), letter("c")
	frac := &Fraction{Num: []Atom{a}, Den: []Atom{b}}
	tree := NewTree([]Atom{frac, c})
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, ID(1), frac.ID)
	assert.Equal(t, ID(2), a.ID)
	assert.Equal(t, ID(3), b.ID)
	assert.Equal(t, ID(4), c.ID)
	p, ok := tree.Parent(b.ID)
	assert.True(t, ok)
	assert.Same(t, frac, p)
	_, ok = tree.Parent(c.ID)
	assert.False(t, ok, "top-level atoms have no parent")
	assert.Nil(t, tree.Atom(0))
	assert.Same(t, c, tree.Atom(4))
	depths := []int{}
	tree.Walk(func(a Atom, depth int) bool {
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []int{0, 1, 1, 0}, depths)
}

func TestMatrixCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.atom")
	defer teardown()
	//
	m := &Matrix{Env: "matrix", Rows: [][][]Atom{
		{{letter("a")}, {letter("b")}},
		{{letter("c")}},
	}}
	assert.Equal(t, 2, m.Columns())
	assert.Nil(t, m.Cell(1, 1), "short rows are padded")
	assert.Len(t, Children(m), 3)
}

func TestSerialize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.atom")
	defer teardown()
	//
	alpha, _ := LookupCommand("alpha")
	seq := []Atom{
		&SupSub{Nucleus: alpha.NewSymbol(), Sup: []Atom{letter("b")}, Sub: []Atom{letter("c")}},
		&Symbol{Class: Bin, Text: "−", Fonts: []string{MainRegular}, Source: "-"},
		&Fraction{Num: []Atom{alpha.NewSymbol(), letter("x")}, Den: []Atom{}},
	}
	assert.Equal(t, `\alpha^{b}_{c}-\frac{\alpha x}{}`, Serialize(seq))
	lr := &LeftRight{Left: '{', Right: 0, Body: []Atom{letter("x")}}
	assert.Equal(t, `\left\{x\right.`, SerializeAtom(lr))
	m := &Matrix{Env: "pmatrix", Rows: [][][]Atom{
		{{letter("a")}, {alpha.NewSymbol()}},
		{{letter("c")}, {letter("d")}},
	}}
	assert.Equal(t, `\begin{pmatrix}a&\alpha\\c&d\end{pmatrix}`, SerializeAtom(m))
	r := &Rule{Width: 2 * dimen.PT, Thickness: dimen.PT}
	assert.Equal(t, `\rule{130582sp}{65291sp}`, SerializeAtom(r))
	bold := &Symbol{Class: Ord, Text: "x", Fonts: []string{MainBold}, Flags: Bold}
	upright := &Symbol{Class: Ord, Text: "d", Fonts: []string{MainRegular}}
	assert.Equal(t, `\mathbf{x}\mathrm{d}`, Serialize([]Atom{bold, upright}))
	text := &Group{Mode: TextRun, Body: []Atom{
		&Symbol{Text: "a", Fonts: []string{MainRegular}, Flags: Text},
		&Space{},
		&Symbol{Text: "%", Fonts: []string{MainRegular}, Flags: Text},
	}}
	assert.Equal(t, `\text{a \%}`, SerializeAtom(text))
	quad := &Space{Mu: 18, Source: `\quad`}
	assert.Equal(t, `\quad x`, Serialize([]Atom{quad, letter("x")}))
	spaced := &Group{Mode: TextRun, Body: []Atom{
		&Symbol{Text: "a", Fonts: []string{MainRegular}, Flags: Text},
		quad,
		&Symbol{Text: "b", Fonts: []string{MainRegular}, Flags: Text},
	}}
	assert.Equal(t, `\text{a\quad{}b}`, SerializeAtom(spaced), "no blank after a command in text")
	boldSeq := &Group{Mode: Braced, Env: "mathbf", Body: []Atom{
		bold,
		&Symbol{Class: Bin, Text: "−", Fonts: []string{MainBold}, Flags: Bold, Source: "-"},
		&Symbol{Class: Ord, Text: "y", Fonts: []string{MainBold}, Flags: Bold},
	}}
	assert.Equal(t, `\mathbf{x-y}`, SerializeAtom(boldSeq))
	uprightSeq := &Group{Mode: Braced, Env: "mathrm", Body: []Atom{upright, alpha.NewSymbol()}}
	assert.Equal(t, `\mathrm{d\alpha}`, SerializeAtom(uprightSeq))
}

func TestCommandLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.atom")
	defer teardown()
	//
	cmd, ok := LookupCommand("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{MathItalic}, cmd.Fonts)
	assert.True(t, cmd.Flags.Has(Italic))
	cmd, ok = LookupCommand("leq")
	require.True(t, ok)
	assert.Equal(t, Rel, cmd.Kind)
	cmd, ok = LookupCommand(";")
	require.True(t, ok)
	assert.Equal(t, SpaceCmd, cmd.Class)
	assert.Equal(t, 5, cmd.Mu)
	_, ok = LookupCommand("alph")
	assert.False(t, ok, "prefixes are not commands")
	_, ok = LookupCommand("")
	assert.False(t, ok)
	assert.Contains(t, Suggest("alph", 3), "alpha")
	assert.Contains(t, Suggest("fracc", 3), "frac")
	assert.LessOrEqual(t, len(Suggest("s", 3)), 3)
}

func TestDelimitersAndEnvironments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.atom")
	defer teardown()
	//
	r, ok := Delimiter(`\langle`)
	assert.True(t, ok)
	assert.Equal(t, '⟨', r)
	r, ok = Delimiter(".")
	assert.True(t, ok)
	assert.Equal(t, rune(0), r)
	_, ok = Delimiter("x")
	assert.False(t, ok)
	assert.Equal(t, `\|`, DelimiterSource('‖'))
	assert.True(t, IsEnvironment("align*"))
	assert.False(t, IsEnvironment("tabular"))
	l, rr := EnvDelimiters("cases")
	assert.Equal(t, '{', l)
	assert.Equal(t, rune(0), rr)
	assert.True(t, IsAlignEnv("aligned"))
	assert.False(t, IsDisplayEnv("aligned"))
	assert.True(t, IsDisplayEnv("equation*"))
	assert.False(t, IsTabular("equation"))
}

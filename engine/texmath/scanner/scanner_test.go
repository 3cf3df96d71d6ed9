package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func kinds(s *Scanner) []Kind {
	var kk []Kind
	for t := s.Next(); t.Kind != EOF; t = s.Next() {
		kk = append(kk, t.Kind)
	}
	return kk
}

func TestScanSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.scanner")
	defer teardown()
	//
	s := New(`a + \frac{1}{x_2}`)
	assert.Equal(t, []Kind{Char, Char, Command, GroupOpen, Char, GroupClose,
		GroupOpen, Char, Sub, Char, GroupClose}, kinds(s))
}

func TestScanCommandNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.scanner")
	defer teardown()
	//
	s := New(`\alpha2\{\,\align*`)
	tok := s.Next()
	assert.Equal(t, Command, tok.Kind)
	assert.Equal(t, "alpha", tok.Text)
	tok = s.Next()
	assert.True(t, tok.Is(Char, "2"))
	assert.True(t, s.Next().Is(Command, "{"))
	assert.True(t, s.Next().Is(Command, ","))
	assert.True(t, s.Next().Is(Command, "align*"))
	assert.Equal(t, EOF, s.Next().Kind)
	assert.Equal(t, EOF, s.Next().Kind, "EOF is sticky")
}

func TestScanStructural(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.scanner")
	defer teardown()
	//
	s := New(`\[\left( a & b \\ c \right)\]$\begin{x}\end{x}`)
	assert.Equal(t, []Kind{DisplayOpen, Left, Char, Char, AlignSep, Char, RowSep, Char,
		Right, Char, DisplayClose, MathShift, Begin, GroupOpen, Char, GroupClose,
		End, GroupOpen, Char, GroupClose}, kinds(s))
}

func TestScanSpacesAndComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.scanner")
	defer teardown()
	//
	s := New("x % a comment\n  y")
	assert.True(t, s.Peek().Is(Char, "x"))
	assert.True(t, s.Next().Is(Char, "x"))
	assert.True(t, s.Next().Is(Char, "y"))
	assert.Equal(t, EOF, s.Next().Kind)
	//
	s = New("a b")
	assert.True(t, s.NextRaw().Is(Char, "a"))
	assert.Equal(t, Space, s.PeekRaw().Kind)
	assert.Equal(t, Space, s.NextRaw().Kind)
	assert.True(t, s.NextRaw().Is(Char, "b"))
}

func TestScanNormalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.scanner")
	defer teardown()
	//
	s := New("e\u0301") // decomposed
	tok := s.Next()
	assert.Equal(t, "\u00e9", tok.Text)
	assert.Equal(t, EOF, s.Next().Kind)
}

func TestTokenSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.scanner")
	defer teardown()
	//
	s := New(`\frac\\`)
	assert.Equal(t, `\frac`, s.Next().Source())
	tok := s.Next()
	assert.Equal(t, RowSep, tok.Kind)
	assert.Equal(t, `\\`, tok.Source())
	assert.Equal(t, 1, tok.Pos.Line)
	assert.Equal(t, 6, tok.Pos.Column)
	assert.Equal(t, "end of input", EOF.String())
}

package atom

import (
	"github.com/npillmayer/tymath/core/dimen"
)

// ID identifies an atom within a Tree. The zero ID denotes an atom not yet
// numbered.
type ID int32

// Atom is a node of the atom tree. The set of implementations is closed.
type Atom interface {
	Kind() Kind
	Ident() ID
	setIdent(ID)
}

// Symbol is a single character, or a short string set as a unit.
type Symbol struct {
	ID     ID
	Class  Kind
	Text   string   // characters to set
	Fonts  []string // fonts to choose from, text-style font first
	Flags  Flags
	Source string // source spelling, if different from Text
}

// Accent is a body with an accent character centered above it.
type Accent struct {
	ID     ID
	Body   []Atom
	Accent rune
	Source string // command name of the accent
}

// Overline is a body with a rule above it.
type Overline struct {
	ID   ID
	Body []Atom
}

// Rule is a solid rectangle sitting on the baseline. A zero width denotes
// a rule spanning its container.
type Rule struct {
	ID        ID
	Width     dimen.Dimen
	Thickness dimen.Dimen
}

// LeftRight is a body enclosed in delimiters which are sized to the body.
// A zero delimiter is the null delimiter.
type LeftRight struct {
	ID    ID
	Left  rune
	Right rune
	Body  []Atom
}

// Sqrt is a radical over a radicand.
type Sqrt struct {
	ID       ID
	Radicand []Atom
}

// Fraction is a numerator over a denominator, separated by a rule.
type Fraction struct {
	ID  ID
	Num []Atom
	Den []Atom
}

// SupSub is a nucleus with a superscript and/or subscript. At least one of
// Sup and Sub is non-nil.
type SupSub struct {
	ID      ID
	Nucleus Atom
	Sup     []Atom
	Sub     []Atom
}

// Matrix is a tabular environment. Rows may have differing numbers of cells.
type Matrix struct {
	ID   ID
	Env  string
	Rows [][][]Atom
}

// GroupMode tells how a group came into existence.
type GroupMode int8

const (
	Braced  GroupMode = iota // {…} in math mode
	TextRun                  // \text{…}
	Inline                   // $…$
	Display                  // \[…\] or a display environment
)

// Group is a sequence of atoms treated as a unit.
type Group struct {
	ID   ID
	Mode GroupMode
	Env  string // display environment, or mathbf/mathrm for a braced group
	Body []Atom
}

// Space is explicit horizontal space, given in math units (1/18 em).
// Inter-word space of text mode has Mu = 0 and Source = "".
type Space struct {
	ID     ID
	Mu     int
	Source string
}

// --- Kinds -----------------------------------------------------------------

func (a *Symbol) Kind() Kind    { return a.Class }
func (a *Accent) Kind() Kind    { return Ord }
func (a *Overline) Kind() Kind  { return Ord }
func (a *Rule) Kind() Kind      { return Ord }
func (a *LeftRight) Kind() Kind { return Inner }
func (a *Sqrt) Kind() Kind      { return Ord }
func (a *Fraction) Kind() Kind  { return Inner }

// Kind of a SupSub is the kind of its nucleus.
func (a *SupSub) Kind() Kind {
	if a.Nucleus == nil {
		return Ord
	}
	return a.Nucleus.Kind()
}

// Kind of a matrix is inner if it is enclosed in delimiters.
func (a *Matrix) Kind() Kind {
	if l, r := EnvDelimiters(a.Env); l != 0 || r != 0 {
		return Inner
	}
	return Ord
}

func (a *Group) Kind() Kind { return Ord }
func (a *Space) Kind() Kind { return Ord }

// --- Identity --------------------------------------------------------------

func (a *Symbol) Ident() ID    { return a.ID }
func (a *Accent) Ident() ID    { return a.ID }
func (a *Overline) Ident() ID  { return a.ID }
func (a *Rule) Ident() ID      { return a.ID }
func (a *LeftRight) Ident() ID { return a.ID }
func (a *Sqrt) Ident() ID      { return a.ID }
func (a *Fraction) Ident() ID  { return a.ID }
func (a *SupSub) Ident() ID    { return a.ID }
func (a *Matrix) Ident() ID    { return a.ID }
func (a *Group) Ident() ID     { return a.ID }
func (a *Space) Ident() ID     { return a.ID }

func (a *Symbol) setIdent(id ID)    { a.ID = id }
func (a *Accent) setIdent(id ID)    { a.ID = id }
func (a *Overline) setIdent(id ID)  { a.ID = id }
func (a *Rule) setIdent(id ID)      { a.ID = id }
func (a *LeftRight) setIdent(id ID) { a.ID = id }
func (a *Sqrt) setIdent(id ID)      { a.ID = id }
func (a *Fraction) setIdent(id ID)  { a.ID = id }
func (a *SupSub) setIdent(id ID)    { a.ID = id }
func (a *Matrix) setIdent(id ID)    { a.ID = id }
func (a *Group) setIdent(id ID)     { a.ID = id }
func (a *Space) setIdent(id ID)     { a.ID = id }

// Children returns the child atoms of an atom in source order.
func Children(a Atom) []Atom {
	switch a := a.(type) {
	case *Symbol, *Rule, *Space:
		return nil
	case *Accent:
		return a.Body
	case *Overline:
		return a.Body
	case *LeftRight:
		return a.Body
	case *Sqrt:
		return a.Radicand
	case *Fraction:
		return concat(a.Num, a.Den)
	case *SupSub:
		var ch []Atom
		if a.Nucleus != nil {
			ch = append(ch, a.Nucleus)
		}
		return append(concat(ch, a.Sup), a.Sub...)
	case *Matrix:
		var ch []Atom
		for _, row := range a.Rows {
			for _, cell := range row {
				ch = append(ch, cell...)
			}
		}
		return ch
	case *Group:
		return a.Body
	}
	tracer().Errorf("unknown atom type %T", a)
	return nil
}

func concat(a, b []Atom) []Atom {
	r := make([]Atom, 0, len(a)+len(b))
	return append(append(r, a...), b...)
}

// Columns returns the maximum number of cells across the rows of a matrix.
func (a *Matrix) Columns() int {
	n := 0
	for _, row := range a.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Cell returns the cell at (row, col), or nil for cells missing in short rows.
func (a *Matrix) Cell(row, col int) []Atom {
	if row < 0 || row >= len(a.Rows) || col < 0 || col >= len(a.Rows[row]) {
		return nil
	}
	return a.Rows[row][col]
}

// IsLargeOp checks if a symbol is a large operator, set in one font for text
// style and in a bigger one for display style.
func (a *Symbol) IsLargeOp() bool {
	return a.Class == Op && len(a.Fonts) > 1
}

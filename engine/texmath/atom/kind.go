package atom

import "fmt"

// Kind is the TeX atom class of an atom.
type Kind int8

//go:generate stringer -type=Kind
const (
	Ord Kind = iota
	Op
	Bin
	Rel
	Open
	Close
	Punct
	Inner
	NumKinds // number of atom classes, not a class itself
)

var kindNames = [NumKinds]string{"ord", "op", "bin", "rel", "open", "close", "punct", "inner"}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Flags are style flags of a symbol.
type Flags uint8

const (
	Italic    Flags = 1 << iota // set in an italic font
	Bold                        // set in a bold font
	Composite                   // more than one character, e.g. an operator name
	Reference                   // a cross reference, rendered as “(label)”
	Text                        // a text-mode character
	Limits                      // an operator taking its scripts above and below
)

// Has checks if all flags of f2 are set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Font names as understood by the built-in metrics tables.
const (
	MainRegular = "Main-Regular"
	MainBold    = "Main-Bold"
	MathItalic  = "Math-Italic"
	Size1       = "Size1-Regular"
	Size2       = "Size2-Regular"
	Size3       = "Size3-Regular"
	Size4       = "Size4-Regular"
)

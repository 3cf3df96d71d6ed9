package style

import "fmt"

// Style is one of TeX's 8 math styles. Clients use the pre-defined styles
// D, Dc, T, Tc, S, Sc, SS, SSc.
type Style struct {
	id      int
	size    int // 0 = display, 1 = text, 2 = script, 3 = scriptscript
	cramped bool
	name    string
}

const (
	idD int = iota
	idDc
	idT
	idTc
	idS
	idSc
	idSS
	idSSc
)

var styles = [8]*Style{
	{idD, 0, false, "D"},
	{idDc, 0, true, "D'"},
	{idT, 1, false, "T"},
	{idTc, 1, true, "T'"},
	{idS, 2, false, "S"},
	{idSc, 2, true, "S'"},
	{idSS, 3, false, "SS"},
	{idSSc, 3, true, "SS'"},
}

// The 8 math styles.
var (
	D   = styles[idD]   // display
	Dc  = styles[idDc]  // display, cramped
	T   = styles[idT]   // text
	Tc  = styles[idTc]  // text, cramped
	S   = styles[idS]   // script
	Sc  = styles[idSc]  // script, cramped
	SS  = styles[idSS]  // scriptscript
	SSc = styles[idSSc] // scriptscript, cramped
)

// Transition tables, indexed by style id.
var (
	supTab     = [8]int{idS, idSc, idS, idSc, idSS, idSSc, idSS, idSSc}
	subTab     = [8]int{idSc, idSc, idSc, idSc, idSSc, idSSc, idSSc, idSSc}
	fracNumTab = [8]int{idT, idTc, idS, idSc, idSS, idSSc, idSS, idSSc}
	fracDenTab = [8]int{idTc, idTc, idSc, idSc, idSSc, idSSc, idSSc, idSSc}
	crampTab   = [8]int{idDc, idDc, idTc, idTc, idSc, idSc, idSSc, idSSc}
	textTab    = [8]int{idD, idDc, idT, idTc, idT, idTc, idT, idTc}
)

// Sup returns the style of a superscript.
func (s *Style) Sup() *Style { return styles[supTab[s.id]] }

// Sub returns the style of a subscript.
func (s *Style) Sub() *Style { return styles[subTab[s.id]] }

// FracNum returns the style of a fraction's numerator.
func (s *Style) FracNum() *Style { return styles[fracNumTab[s.id]] }

// FracDen returns the style of a fraction's denominator.
func (s *Style) FracDen() *Style { return styles[fracDenTab[s.id]] }

// Cramp returns the cramped version of s.
func (s *Style) Cramp() *Style { return styles[crampTab[s.id]] }

// Text returns display style or text style, keeping crampedness.
func (s *Style) Text() *Style { return styles[textTab[s.id]] }

// IsCramped is true for cramped styles.
func (s *Style) IsCramped() bool { return s.cramped }

// IsDisplay is true for display styles.
func (s *Style) IsDisplay() bool { return s.size == 0 }

// IsTight is true for script and scriptscript styles, where TeX suppresses
// most inter-atom spacing.
func (s *Style) IsTight() bool { return s.size >= 2 }

// SizeClass returns 0 for display and text, 1 for script and 2 for scriptscript.
func (s *Style) SizeClass() int {
	if s.size < 2 {
		return 0
	}
	return s.size - 1
}

func (s *Style) String() string {
	if s == nil {
		return "<nil style>"
	}
	return s.name
}

// ParseStyle returns a style given its name as produced by String.
func ParseStyle(name string) (*Style, error) {
	for _, s := range styles {
		if s.name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown math style %q", name)
}

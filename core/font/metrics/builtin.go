package metrics

// Pre-generated metrics of the Computer Modern–style math fonts, in em.
// Values for the Main-Bold font are derived from Main-Regular.

// c creates metrics in the order height, depth, italic correction, skew, width.
func c(h, d, i, s, w float64) CharMetrics {
	return CharMetrics{Height: h, Depth: d, Italic: i, Skew: s, Width: w}
}

func loadBuiltin() *Table {
	t := &Table{
		Name: "builtin",
		Chars: map[string]map[rune]CharMetrics{
			"Main-Regular":  mainRegular(),
			"Math-Italic":   mathItalic(),
			"Size1-Regular": size1Regular(),
			"Size2-Regular": size2Regular(),
			"Size3-Regular": size3Regular(),
			"Size4-Regular": size4Regular(),
		},
		Fonts: map[string]FontInfo{
			"Main-Regular":  {Ascent: 0.75, Descent: 0.25},
			"Main-Bold":     {Ascent: 0.75, Descent: 0.25},
			"Math-Italic":   {Ascent: 0.75, Descent: 0.25},
			"Size1-Regular": {Ascent: 0.85, Descent: 0.35},
			"Size2-Regular": {Ascent: 1.15, Descent: 0.65},
			"Size3-Regular": {Ascent: 1.45, Descent: 0.95},
			"Size4-Regular": {Ascent: 1.75, Descent: 1.25},
		},
		Sigmas: sigmas,
	}
	t.Chars["Main-Bold"] = emboldened(t.Chars["Main-Regular"])
	return t
}

// Columns are text size, script size and scriptscript size.
var sigmas = [NumSigmas][3]float64{
	Slant:                {0.250, 0.250, 0.250},
	Space:                {0.333, 0.333, 0.333},
	Stretch:              {0.167, 0.167, 0.167},
	Shrink:               {0.111, 0.111, 0.111},
	XHeight:              {0.431, 0.431, 0.431},
	Quad:                 {1.000, 1.171, 1.472},
	ExtraSpace:           {0.111, 0.111, 0.111},
	Num1:                 {0.677, 0.732, 0.925},
	Num2:                 {0.394, 0.384, 0.387},
	Num3:                 {0.444, 0.471, 0.504},
	Denom1:               {0.686, 0.752, 1.025},
	Denom2:               {0.345, 0.344, 0.532},
	Sup1:                 {0.413, 0.503, 0.504},
	Sup2:                 {0.363, 0.431, 0.404},
	Sup3:                 {0.289, 0.286, 0.294},
	Sub1:                 {0.150, 0.143, 0.200},
	Sub2:                 {0.247, 0.286, 0.400},
	SupDrop:              {0.386, 0.353, 0.494},
	SubDrop:              {0.050, 0.071, 0.100},
	Delim1:               {2.390, 1.700, 1.980},
	Delim2:               {1.010, 1.157, 1.420},
	AxisHeight:           {0.250, 0.250, 0.250},
	DefaultRuleThickness: {0.040, 0.049, 0.049},
	BigOpSpacing1:        {0.111, 0.111, 0.111},
	BigOpSpacing2:        {0.166, 0.166, 0.166},
	BigOpSpacing3:        {0.200, 0.200, 0.200},
	BigOpSpacing4:        {0.600, 0.611, 0.611},
	BigOpSpacing5:        {0.100, 0.143, 0.143},
	SqrtRuleThickness:    {0.040, 0.040, 0.040},
	PtPerEm:              {10.0, 10.0, 10.0},
	DoubleRuleSep:        {0.200, 0.200, 0.200},
}

func emboldened(regular map[rune]CharMetrics) map[rune]CharMetrics {
	bold := make(map[rune]CharMetrics, len(regular))
	for r, m := range regular {
		m.Width *= 1.15
		m.Italic *= 1.15
		bold[r] = m
	}
	return bold
}

func mainRegular() map[rune]CharMetrics {
	m := map[rune]CharMetrics{
		'(': c(0.75, 0.25, 0, 0, 0.38889),
		')': c(0.75, 0.25, 0, 0, 0.38889),
		'[': c(0.75, 0.25, 0, 0, 0.27778),
		']': c(0.75, 0.25, 0, 0, 0.27778),
		'{': c(0.75, 0.25, 0, 0, 0.5),
		'}': c(0.75, 0.25, 0, 0, 0.5),
		'|': c(0.75, 0.25, 0, 0, 0.27778),
		'/': c(0.75, 0.25, 0, 0, 0.5),
		'+': c(0.58333, 0.08333, 0, 0, 0.77778),
		'=': c(0.36687, -0.13313, 0, 0, 0.77778),
		',': c(0.10556, 0.19444, 0, 0, 0.27778),
		'.': c(0.10556, 0, 0, 0, 0.27778),
		';': c(0.43056, 0.19444, 0, 0, 0.27778),
		':': c(0.43056, 0, 0, 0, 0.27778),
		'!': c(0.69444, 0, 0, 0, 0.27778),
		'?': c(0.69444, 0, 0, 0, 0.47222),
		'<': c(0.5391, 0.0391, 0, 0, 0.77778),
		'>': c(0.5391, 0.0391, 0, 0, 0.77778),
		'\'': c(0.69444, 0, 0, 0, 0.27778),
		'^': c(0.69444, 0, 0, 0, 0.5),
		'~': c(0.66786, 0, 0, 0, 0.5),
		'*': c(0.75, 0, 0, 0, 0.5),
		'-': c(0.43056, 0, 0, 0, 0.33334),
		'#': c(0.69444, 0.19444, 0, 0, 0.83334),
		'$': c(0.75, 0.05556, 0, 0, 0.5),
		'%': c(0.75, 0.05556, 0, 0, 0.83334),
		'&': c(0.69444, 0, 0, 0, 0.77778),
		'@': c(0.69444, 0, 0, 0, 0.77778),
		'_': c(0.31, 0.12, 0, 0, 0.5),
		'−': c(0.58333, 0.08333, 0, 0, 0.77778), // minus
		'‖': c(0.75, 0.25, 0, 0, 0.5),           // double vertical line
		'∣': c(0.75, 0.25, 0, 0, 0.27778),       // divides
		'∥': c(0.75, 0.25, 0, 0, 0.5),           // parallel
		'⟨': c(0.75, 0.25, 0, 0, 0.38889),       // langle
		'⟩': c(0.75, 0.25, 0, 0, 0.38889),       // rangle
		'⌈': c(0.75, 0.25, 0, 0, 0.44445),       // lceil
		'⌉': c(0.75, 0.25, 0, 0, 0.44445),       // rceil
		'⌊': c(0.75, 0.25, 0, 0, 0.44445),       // lfloor
		'⌋': c(0.75, 0.25, 0, 0, 0.44445),       // rfloor
		'√': c(0.8, 0.2, 0, 0, 0.83334),         // radical
		'∞': c(0.43056, 0, 0, 0, 1.0),           // infty
		'∂': c(0.69444, 0, 0.05556, 0.08334, 0.5309),
		'∇': c(0.68333, 0, 0, 0, 0.83334),
		'±': c(0.58333, 0.08333, 0, 0, 0.77778),
		'×': c(0.58333, 0.08333, 0, 0, 0.77778),
		'÷': c(0.58333, 0.08333, 0, 0, 0.77778),
		'⋅': c(0.31087, -0.05555, 0, 0, 0.27778), // cdot
		'≤': c(0.63597, 0.13597, 0, 0, 0.77778),
		'≥': c(0.63597, 0.13597, 0, 0, 0.77778),
		'≠': c(0.69444, 0.19444, 0, 0, 0.77778),
		'≈': c(0.48312, -0.01688, 0, 0, 0.77778),
		'≡': c(0.46375, -0.03625, 0, 0, 0.77778),
		'→': c(0.36687, -0.13313, 0, 0, 1.0),
		'←': c(0.36687, -0.13313, 0, 0, 1.0),
		'⇒': c(0.36687, -0.13313, 0, 0, 1.0),
		'∈': c(0.5391, 0.0391, 0, 0, 0.66667),
		'∉': c(0.69444, 0.19444, 0, 0, 0.66667),
		'⊂': c(0.5391, 0.0391, 0, 0, 0.77778),
		'⊆': c(0.63597, 0.13597, 0, 0, 0.77778),
		'∪': c(0.55556, 0, 0, 0, 0.66667),
		'∩': c(0.55556, 0, 0, 0, 0.66667),
		'∀': c(0.69444, 0, 0, 0, 0.55556),
		'∃': c(0.69444, 0, 0, 0, 0.55556),
		'…': c(0.12, 0, 0, 0, 1.172), // ldots
		'⋯': c(0.31, -0.06, 0, 0, 1.172),
		// upright Greek capitals
		'Γ': c(0.68333, 0, 0, 0, 0.625),
		'Δ': c(0.68333, 0, 0, 0, 0.83334),
		'Θ': c(0.68333, 0, 0, 0, 0.77778),
		'Λ': c(0.68333, 0, 0, 0, 0.69445),
		'Ξ': c(0.68333, 0, 0, 0, 0.66667),
		'Π': c(0.68333, 0, 0, 0, 0.75),
		'Σ': c(0.68333, 0, 0, 0, 0.72222),
		'Υ': c(0.68333, 0, 0, 0, 0.77778),
		'Φ': c(0.68333, 0, 0, 0, 0.72222),
		'Ψ': c(0.68333, 0, 0, 0, 0.77778),
		'Ω': c(0.68333, 0, 0, 0, 0.72222),
	}
	for d := '0'; d <= '9'; d++ {
		m[d] = c(0.64444, 0, 0, 0, 0.5)
	}
	lower := map[rune]CharMetrics{
		'a': c(0.43056, 0, 0, 0, 0.5), 'b': c(0.69444, 0, 0, 0, 0.55556),
		'c': c(0.43056, 0, 0, 0, 0.44445), 'd': c(0.69444, 0, 0, 0, 0.55556),
		'e': c(0.43056, 0, 0, 0, 0.44445), 'f': c(0.69444, 0, 0.07778, 0, 0.30556),
		'g': c(0.43056, 0.19444, 0.01389, 0, 0.5), 'h': c(0.69444, 0, 0, 0, 0.55556),
		'i': c(0.66786, 0, 0, 0, 0.27778), 'j': c(0.66786, 0.19444, 0, 0, 0.30556),
		'k': c(0.69444, 0, 0, 0, 0.52778), 'l': c(0.69444, 0, 0, 0, 0.27778),
		'm': c(0.43056, 0, 0, 0, 0.83334), 'n': c(0.43056, 0, 0, 0, 0.55556),
		'o': c(0.43056, 0, 0, 0, 0.5), 'p': c(0.43056, 0.19444, 0, 0, 0.55556),
		'q': c(0.43056, 0.19444, 0, 0, 0.52778), 'r': c(0.43056, 0, 0, 0, 0.39167),
		's': c(0.43056, 0, 0, 0, 0.39445), 't': c(0.61508, 0, 0, 0, 0.38889),
		'u': c(0.43056, 0, 0, 0, 0.55556), 'v': c(0.43056, 0, 0.01389, 0, 0.52778),
		'w': c(0.43056, 0, 0.01389, 0, 0.72222), 'x': c(0.43056, 0, 0, 0, 0.52778),
		'y': c(0.43056, 0.19444, 0.01389, 0, 0.52778), 'z': c(0.43056, 0, 0, 0, 0.44445),
	}
	for r, cm := range lower {
		m[r] = cm
	}
	upperWidths := []float64{0.75, 0.70834, 0.72222, 0.76389, 0.68056, 0.65278,
		0.78472, 0.75, 0.36111, 0.51389, 0.77778, 0.625, 0.91667, 0.75, 0.77778,
		0.68056, 0.77778, 0.73611, 0.55556, 0.72222, 0.75, 0.75, 1.02778, 0.75,
		0.75, 0.61111}
	for i, w := range upperWidths {
		r := 'A' + rune(i)
		m[r] = c(0.68333, 0, 0, 0, w)
	}
	m['Q'] = c(0.68333, 0.19444, 0, 0, 0.77778)
	return m
}

func mathItalic() map[rune]CharMetrics {
	return map[rune]CharMetrics{
		'A': c(0.68333, 0, 0, 0.13889, 0.75),
		'B': c(0.68333, 0, 0.05017, 0.08334, 0.75851),
		'C': c(0.68333, 0, 0.07153, 0.08334, 0.71472),
		'D': c(0.68333, 0, 0.02778, 0.05556, 0.82792),
		'E': c(0.68333, 0, 0.05764, 0.08334, 0.7382),
		'F': c(0.68333, 0, 0.13889, 0.08334, 0.64306),
		'G': c(0.68333, 0, 0, 0.08334, 0.78625),
		'H': c(0.68333, 0, 0.08125, 0.05556, 0.83125),
		'I': c(0.68333, 0, 0.07847, 0.11111, 0.43958),
		'J': c(0.68333, 0, 0.09618, 0.16667, 0.55451),
		'K': c(0.68333, 0, 0.07153, 0.05556, 0.84931),
		'L': c(0.68333, 0, 0, 0.02778, 0.68056),
		'M': c(0.68333, 0, 0.10903, 0.08334, 0.97014),
		'N': c(0.68333, 0, 0.10903, 0.08334, 0.80347),
		'O': c(0.68333, 0, 0.02778, 0.08334, 0.76278),
		'P': c(0.68333, 0, 0.13889, 0.08334, 0.64201),
		'Q': c(0.68333, 0.19444, 0, 0.08334, 0.79056),
		'R': c(0.68333, 0, 0.00773, 0.08334, 0.75929),
		'S': c(0.68333, 0, 0.05764, 0.08334, 0.6132),
		'T': c(0.68333, 0, 0.13889, 0.08334, 0.58438),
		'U': c(0.68333, 0, 0.10903, 0.02778, 0.68278),
		'V': c(0.68333, 0, 0.22222, 0, 0.58333),
		'W': c(0.68333, 0, 0.13889, 0, 0.94445),
		'X': c(0.68333, 0, 0.07847, 0.08334, 0.82847),
		'Y': c(0.68333, 0, 0.22222, 0, 0.58056),
		'Z': c(0.68333, 0, 0.07153, 0.08334, 0.68264),
		'a': c(0.43056, 0, 0, 0, 0.52859),
		'b': c(0.69444, 0, 0, 0, 0.42917),
		'c': c(0.43056, 0, 0, 0.05556, 0.43276),
		'd': c(0.69444, 0, 0, 0.16667, 0.52049),
		'e': c(0.43056, 0, 0, 0.05556, 0.46563),
		'f': c(0.69444, 0.19444, 0.10764, 0.16667, 0.48959),
		'g': c(0.43056, 0.19444, 0.03588, 0.02778, 0.47697),
		'h': c(0.69444, 0, 0, 0, 0.57616),
		'i': c(0.65952, 0, 0, 0, 0.34451),
		'j': c(0.65952, 0.19444, 0.05724, 0, 0.41181),
		'k': c(0.69444, 0, 0.03148, 0, 0.5206),
		'l': c(0.69444, 0, 0.01968, 0.08334, 0.29838),
		'm': c(0.43056, 0, 0, 0, 0.87801),
		'n': c(0.43056, 0, 0, 0, 0.60023),
		'o': c(0.43056, 0, 0, 0.05556, 0.48472),
		'p': c(0.43056, 0.19444, 0, 0.08334, 0.50313),
		'q': c(0.43056, 0.19444, 0.03588, 0.08334, 0.44641),
		'r': c(0.43056, 0, 0.02778, 0.05556, 0.45116),
		's': c(0.43056, 0, 0, 0.05556, 0.46875),
		't': c(0.61508, 0, 0, 0.08334, 0.36111),
		'u': c(0.43056, 0, 0, 0.02778, 0.57246),
		'v': c(0.43056, 0, 0.03588, 0.02778, 0.48472),
		'w': c(0.43056, 0, 0.02691, 0.08334, 0.71592),
		'x': c(0.43056, 0, 0, 0.02778, 0.57153),
		'y': c(0.43056, 0.19444, 0.03588, 0.05556, 0.49028),
		'z': c(0.43056, 0, 0.04398, 0.05556, 0.46505),
		'α': c(0.43056, 0, 0.0037, 0.02778, 0.6397),  // alpha
		'β': c(0.69444, 0.19444, 0.05278, 0.08334, 0.56563),
		'γ': c(0.43056, 0.19444, 0.05556, 0, 0.51773),
		'δ': c(0.69444, 0, 0.03785, 0.05556, 0.44444),
		'ε': c(0.43056, 0, 0, 0.08334, 0.46632),
		'ζ': c(0.69444, 0.19444, 0.07378, 0.08334, 0.4375),
		'η': c(0.43056, 0.19444, 0.03588, 0.05556, 0.49653),
		'θ': c(0.69444, 0, 0.02778, 0.08334, 0.46944),
		'ι': c(0.43056, 0, 0, 0.05556, 0.35394),
		'κ': c(0.43056, 0, 0, 0, 0.57616),
		'λ': c(0.69444, 0, 0, 0, 0.58334),
		'μ': c(0.43056, 0.19444, 0, 0.02778, 0.60255),
		'ν': c(0.43056, 0, 0.06366, 0.02778, 0.49398),
		'ξ': c(0.69444, 0.19444, 0.04601, 0.11111, 0.4375),
		'π': c(0.43056, 0, 0.03588, 0, 0.57003),
		'ρ': c(0.43056, 0.19444, 0, 0.08334, 0.51702),
		'σ': c(0.43056, 0, 0.03588, 0, 0.57141),
		'τ': c(0.43056, 0, 0.1132, 0.02778, 0.43715),
		'υ': c(0.43056, 0, 0.03588, 0.02778, 0.54028),
		'φ': c(0.43056, 0.19444, 0, 0.08334, 0.65417),
		'χ': c(0.43056, 0.19444, 0, 0.05556, 0.62569),
		'ψ': c(0.69444, 0.19444, 0.03588, 0.11111, 0.65139),
		'ω': c(0.43056, 0, 0.03588, 0, 0.62245), // omega
	}
}

// big operators in text style
func size1Regular() map[rune]CharMetrics {
	return map[rune]CharMetrics{
		'(': c(0.85, 0.35001, 0, 0, 0.45834),
		')': c(0.85, 0.35001, 0, 0, 0.45834),
		'[': c(0.85, 0.35001, 0, 0, 0.41667),
		']': c(0.85, 0.35001, 0, 0, 0.41667),
		'{': c(0.85, 0.35001, 0, 0, 0.58334),
		'}': c(0.85, 0.35001, 0, 0, 0.58334),
		'/': c(0.85, 0.35001, 0, 0, 0.57778),
		'√': c(0.85, 0.35001, 0, 0, 1.0),
		'⟨': c(0.85, 0.35001, 0, 0, 0.47222),
		'⟩': c(0.85, 0.35001, 0, 0, 0.47222),
		'⌈': c(0.85, 0.35001, 0, 0, 0.47222),
		'⌉': c(0.85, 0.35001, 0, 0, 0.47222),
		'⌊': c(0.85, 0.35001, 0, 0, 0.47222),
		'⌋': c(0.85, 0.35001, 0, 0, 0.47222),
		'∣': c(0.601, -0.00099, 0, 0, 0.33333), // repeatable bar
		'∥': c(0.601, -0.00099, 0, 0, 0.55556),
		'∑': c(0.75, 0.25001, 0, 0, 1.05556), // sum
		'∏': c(0.75, 0.25001, 0, 0, 0.94445),
		'∐': c(0.75, 0.25001, 0, 0, 0.94445),
		'⋃': c(0.75, 0.25001, 0, 0, 0.83334),
		'⋂': c(0.75, 0.25001, 0, 0, 0.83334),
		'⨁': c(0.75, 0.25001, 0, 0, 1.11111),
		'⨂': c(0.75, 0.25001, 0, 0, 1.11111),
		'⋁': c(0.75, 0.25001, 0, 0, 0.83334),
		'⋀': c(0.75, 0.25001, 0, 0, 0.83334),
		'∫': c(0.805, 0.30612, 0.19445, 0, 0.47222), // int
		'∮': c(0.805, 0.30612, 0.19445, 0, 0.47222),
	}
}

// big operators in display style
func size2Regular() map[rune]CharMetrics {
	return map[rune]CharMetrics{
		'(': c(1.15, 0.65002, 0, 0, 0.59722),
		')': c(1.15, 0.65002, 0, 0, 0.59722),
		'[': c(1.15, 0.65002, 0, 0, 0.47222),
		']': c(1.15, 0.65002, 0, 0, 0.47222),
		'{': c(1.15, 0.65002, 0, 0, 0.66667),
		'}': c(1.15, 0.65002, 0, 0, 0.66667),
		'/': c(1.15, 0.65002, 0, 0, 0.81111),
		'√': c(1.15, 0.65002, 0, 0, 1.0),
		'⟨': c(1.15, 0.65002, 0, 0, 0.52778),
		'⟩': c(1.15, 0.65002, 0, 0, 0.52778),
		'⌈': c(1.15, 0.65002, 0, 0, 0.52778),
		'⌉': c(1.15, 0.65002, 0, 0, 0.52778),
		'⌊': c(1.15, 0.65002, 0, 0, 0.52778),
		'⌋': c(1.15, 0.65002, 0, 0, 0.52778),
		'∑': c(1.05, 0.55001, 0, 0, 1.44445),
		'∏': c(1.05, 0.55001, 0, 0, 1.27778),
		'∐': c(1.05, 0.55001, 0, 0, 1.27778),
		'⋃': c(1.05, 0.55001, 0, 0, 1.11111),
		'⋂': c(1.05, 0.55001, 0, 0, 1.11111),
		'⨁': c(1.05, 0.55001, 0, 0, 1.51112),
		'⨂': c(1.05, 0.55001, 0, 0, 1.51112),
		'⋁': c(1.05, 0.55001, 0, 0, 1.11111),
		'⋀': c(1.05, 0.55001, 0, 0, 1.11111),
		'∫': c(1.36, 0.86225, 0.44445, 0, 0.55556),
		'∮': c(1.36, 0.86225, 0.44445, 0, 0.55556),
	}
}

func size3Regular() map[rune]CharMetrics {
	return map[rune]CharMetrics{
		'(': c(1.45, 0.95003, 0, 0, 0.73611),
		')': c(1.45, 0.95003, 0, 0, 0.73611),
		'[': c(1.45, 0.95003, 0, 0, 0.52778),
		']': c(1.45, 0.95003, 0, 0, 0.52778),
		'{': c(1.45, 0.95003, 0, 0, 0.75),
		'}': c(1.45, 0.95003, 0, 0, 0.75),
		'/': c(1.45, 0.95003, 0, 0, 1.04445),
		'√': c(1.45, 0.95003, 0, 0, 1.0),
		'⟨': c(1.45, 0.95003, 0, 0, 0.61111),
		'⟩': c(1.45, 0.95003, 0, 0, 0.61111),
		'⌈': c(1.45, 0.95003, 0, 0, 0.58334),
		'⌉': c(1.45, 0.95003, 0, 0, 0.58334),
		'⌊': c(1.45, 0.95003, 0, 0, 0.58334),
		'⌋': c(1.45, 0.95003, 0, 0, 0.58334),
	}
}

// largest delimiters and the pieces of stacked delimiters
func size4Regular() map[rune]CharMetrics {
	m := map[rune]CharMetrics{
		'(': c(1.75, 1.25003, 0, 0, 0.79167),
		')': c(1.75, 1.25003, 0, 0, 0.79167),
		'[': c(1.75, 1.25003, 0, 0, 0.58334),
		']': c(1.75, 1.25003, 0, 0, 0.58334),
		'{': c(1.75, 1.25003, 0, 0, 0.80556),
		'}': c(1.75, 1.25003, 0, 0, 0.80556),
		'/': c(1.75, 1.25003, 0, 0, 1.27778),
		'√': c(1.75, 1.25003, 0, 0, 1.0),
		'⟨': c(1.75, 1.25003, 0, 0, 0.68056),
		'⟩': c(1.75, 1.25003, 0, 0, 0.68056),
		'⌈': c(1.75, 1.25003, 0, 0, 0.63889),
		'⌉': c(1.75, 1.25003, 0, 0, 0.63889),
		'⌊': c(1.75, 1.25003, 0, 0, 0.63889),
		'⌋': c(1.75, 1.25003, 0, 0, 0.63889),
	}
	for _, r := range []rune{'⎛', '⎝', '⎞', '⎠'} { // paren caps
		m[r] = c(1.155, 0.64502, 0, 0, 0.875)
	}
	for _, r := range []rune{'⎜', '⎟'} { // paren extenders
		m[r] = c(0.6, 0.00001, 0, 0, 0.875)
	}
	for _, r := range []rune{'⎡', '⎣', '⎤', '⎦'} { // bracket caps
		m[r] = c(1.155, 0.64502, 0, 0, 0.66667)
	}
	for _, r := range []rune{'⎢', '⎥'} { // bracket extenders
		m[r] = c(0.601, -0.00099, 0, 0, 0.66667)
	}
	m['⎧'] = c(0.9, 0.00001, 0, 0, 0.88889) // brace top
	m['⎫'] = c(0.9, 0.00001, 0, 0, 0.88889)
	m['⎨'] = c(1.15, 0.65002, 0, 0, 0.88889) // brace middle
	m['⎬'] = c(1.15, 0.65002, 0, 0, 0.88889)
	m['⎩'] = c(0, 0.90001, 0, 0, 0.88889) // brace bottom
	m['⎭'] = c(0, 0.90001, 0, 0, 0.88889)
	m['⎪'] = c(0.3, 0, 0, 0, 0.88889) // brace extender
	return m
}

package style

// sizeMultipliers are the scale factors of the size levels 1…11, relative to
// size level 6 (normal size).
var sizeMultipliers = [11]float64{
	0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.2, 1.44, 1.728, 2.074, 2.488,
}

// sizeStyleMap maps a text size level to the size levels of
// {text, script, scriptscript} style.
var sizeStyleMap = [11][3]int{
	{1, 1, 1},
	{2, 1, 1},
	{3, 1, 1},
	{4, 2, 1},
	{5, 2, 1},
	{6, 3, 1},
	{7, 4, 2},
	{8, 6, 3},
	{9, 7, 6},
	{10, 8, 7},
	{11, 10, 9},
}

// NormalSize is the text size level with multiplier 1.
const NormalSize = 6

// Options carry the current style and text size through layout. Options are
// values; deriving options for a sub-formula never changes the parent's options.
type Options struct {
	style    *Style
	textSize int
}

// NewOptions creates options for a style and a text size level.
// Out-of-range sizes are clamped to 1…11, a nil style means text style.
func NewOptions(st *Style, textSize int) Options {
	if st == nil {
		st = T
	}
	if textSize < 1 {
		textSize = 1
	} else if textSize > 11 {
		textSize = 11
	}
	return Options{style: st, textSize: textSize}
}

// Style returns the current style.
func (o Options) Style() *Style {
	return o.style
}

// TextSize returns the text size level the options started from.
func (o Options) TextSize() int {
	return o.textSize
}

// WithStyle returns options for a different style at the same text size.
func (o Options) WithStyle(st *Style) Options {
	tracer().Debugf("options %s -> %s", o.style, st)
	return Options{style: st, textSize: o.textSize}
}

// Size returns the effective size level, compressed by style.
func (o Options) Size() int {
	return sizeStyleMap[o.textSize-1][o.style.SizeClass()]
}

// Multiplier returns the scale factor for the effective size level.
func (o Options) Multiplier() float64 {
	return SizeMultiplier(o.Size())
}

// SizeMultiplier returns the scale factor of a size level.
func SizeMultiplier(size int) float64 {
	if size < 1 {
		size = 1
	} else if size > 11 {
		size = 11
	}
	return sizeMultipliers[size-1]
}

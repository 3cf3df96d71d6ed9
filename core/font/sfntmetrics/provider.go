package sfntmetrics

import (
	"fmt"
	"sync"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/font/metrics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Provider serves character metrics read from sfnt fonts. Logical font names
// as used by math layout (e.g., "Math-Italic") are mapped to scalable fonts,
// optionally scaled (the large delimiter fonts are scaled-up variants of a
// single design).
//
// A Provider is safe for concurrent use.
type Provider struct {
	sync.Mutex
	fonts  map[string]registered
	params metrics.Provider
	buf    sfnt.Buffer
	cache  map[cacheKey]metrics.CharMetrics
}

type registered struct {
	font  *ScalableFont
	scale float64
}

type cacheKey struct {
	font string
	ch   rune
}

// NewProvider creates an empty provider. Design parameters are delegated to
// params, which must not be nil.
func NewProvider(params metrics.Provider) *Provider {
	return &Provider{
		fonts:  make(map[string]registered),
		params: params,
		cache:  make(map[cacheKey]metrics.CharMetrics),
	}
}

// NewGoFontsProvider creates a provider backed by the Go fonts:
// Go Regular for the upright fonts, Go Italic for math italic, Go Bold for bold.
func NewGoFontsProvider(params metrics.Provider) *Provider {
	p := NewProvider(params)
	p.Register("Main-Regular", FallbackFont(), 1.0)
	if it, err := ParseOpenTypeFont(goitalic.TTF); err == nil {
		p.Register("Math-Italic", it, 1.0)
	}
	if bd, err := ParseOpenTypeFont(gobold.TTF); err == nil {
		p.Register("Main-Bold", bd, 1.0)
	}
	for i, scale := range []float64{1.2, 1.8, 2.4, 3.0} {
		p.Register(fmt.Sprintf("Size%d-Regular", i+1), FallbackFont(), scale)
	}
	return p
}

// Register maps a logical font name to a scalable font. Metrics of the font
// are multiplied by scale.
func (p *Provider) Register(logical string, f *ScalableFont, scale float64) {
	if f == nil {
		tracer().Errorf("provider cannot register null font for %s", logical)
		return
	}
	p.Lock()
	defer p.Unlock()
	tracer().Debugf("provider maps %s to %s (scale %.2f)", logical, f.Fontname, scale)
	p.fonts[logical] = registered{font: f, scale: scale}
}

// MetricsOf is part of interface metrics.Provider.
func (p *Provider) MetricsOf(fontname string, ch rune) (metrics.CharMetrics, error) {
	p.Lock()
	defer p.Unlock()
	key := cacheKey{fontname, ch}
	if m, ok := p.cache[key]; ok {
		return m, nil
	}
	reg, ok := p.fonts[fontname]
	if !ok {
		return metrics.CharMetrics{}, metrics.NotFound(fontname, ch)
	}
	f := reg.font.SFNT
	gid, err := f.GlyphIndex(&p.buf, ch)
	if err != nil || gid == 0 {
		return metrics.CharMetrics{}, metrics.NotFound(fontname, ch)
	}
	upem := f.UnitsPerEm()
	bounds, adv, err := f.GlyphBounds(&p.buf, gid, fixed.Int26_6(upem), font.HintingNone)
	if err != nil {
		return metrics.CharMetrics{}, core.WrapError(err, core.EINTERNAL,
			"cannot read glyph bounds for %q in %s", ch, fontname)
	}
	em := float64(upem) / reg.scale
	m := metrics.CharMetrics{ // sfnt's y-axis points downwards
		Height: float64(-bounds.Min.Y) / em,
		Depth:  float64(bounds.Max.Y) / em,
		Width:  float64(adv) / em,
	}
	if overhang := bounds.Max.X - adv; overhang > 0 {
		m.Italic = float64(overhang) / em
	}
	p.cache[key] = m
	return m, nil
}

// DesignParam is part of interface metrics.Provider.
func (p *Provider) DesignParam(s metrics.Sigma, size int) float64 {
	return p.params.DesignParam(s, size)
}

// FontInfo is part of interface metrics.Provider.
func (p *Provider) FontInfo(fontname string) (metrics.FontInfo, error) {
	p.Lock()
	defer p.Unlock()
	reg, ok := p.fonts[fontname]
	if !ok {
		return metrics.FontInfo{}, core.Error(core.EMISSING, "font %s not registered", fontname)
	}
	upem := reg.font.SFNT.UnitsPerEm()
	fm, err := reg.font.SFNT.Metrics(&p.buf, fixed.Int26_6(upem), font.HintingNone)
	if err != nil {
		return metrics.FontInfo{}, core.WrapError(err, core.EINTERNAL, "cannot read metrics of %s", fontname)
	}
	em := float64(upem) / reg.scale
	return metrics.FontInfo{
		Ascent:  float64(fm.Ascent) / em,
		Descent: float64(fm.Descent) / em,
	}, nil
}

var _ metrics.Provider = &Provider{}

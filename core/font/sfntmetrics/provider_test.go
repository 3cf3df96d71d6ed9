package sfntmetrics

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/font/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoFontsMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.font")
	defer teardown()
	//
	p := NewGoFontsProvider(metrics.Builtin())
	x, err := p.MetricsOf("Main-Regular", 'x')
	require.NoError(t, err)
	assert.Greater(t, x.Width, 0.0)
	assert.Greater(t, x.Height, 0.0)
	assert.InDelta(t, 0.0, x.Depth, 0.05)
	bx, err := p.MetricsOf("Main-Regular", 'b')
	require.NoError(t, err)
	assert.Greater(t, bx.Height, x.Height, "ascender is taller than x-height")
	g, err := p.MetricsOf("Main-Regular", 'g')
	require.NoError(t, err)
	assert.Greater(t, g.Depth, 0.0, "descender has depth")
}

func TestScaledAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.font")
	defer teardown()
	//
	p := NewGoFontsProvider(metrics.Builtin())
	small, err := p.MetricsOf("Main-Regular", '(')
	require.NoError(t, err)
	large, err := p.MetricsOf("Size2-Regular", '(')
	require.NoError(t, err)
	assert.InDelta(t, small.Width*1.8, large.Width, 1e-9)
	fi, err := p.FontInfo("Size2-Regular")
	require.NoError(t, err)
	assert.Greater(t, fi.Ascent, 1.0)
}

func TestGoFontsMissingGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.font")
	defer teardown()
	//
	p := NewGoFontsProvider(metrics.Builtin())
	_, err := p.MetricsOf("Size4-Regular", '𝐀')
	assert.True(t, errors.Is(err, metrics.ErrNotFound))
	_, err = p.MetricsOf("Fraktur", 'a')
	assert.True(t, errors.Is(err, metrics.ErrNotFound))
	assert.Equal(t, 0.25, p.DesignParam(metrics.AxisHeight, 6))
}

func TestFontLoading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.font")
	defer teardown()
	//
	assert.Contains(t, FallbackFont().Fontname, "Go")
	assert.Same(t, FallbackFont(), FallbackFont())
	_, err := ParseOpenTypeFont([]byte("no font"))
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = LoadOpenTypeFont("/does/not/exist.otf")
	assert.Equal(t, core.EMISSING, core.Code(err))
}

package spacing

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/stretchr/testify/assert"
)

func TestSpacingPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.spacing")
	defer teardown()
	//
	assert.Equal(t, Medium, Between(atom.Ord, atom.Bin, false))
	assert.Equal(t, Medium, Between(atom.Bin, atom.Ord, false))
	assert.Equal(t, Thick, Between(atom.Ord, atom.Rel, false))
	assert.Equal(t, Thick, Between(atom.Rel, atom.Ord, false))
	assert.Equal(t, None, Between(atom.Ord, atom.Ord, false))
	assert.Equal(t, None, Between(atom.Ord, atom.Open, false))
	assert.Equal(t, Thin, Between(atom.Ord, atom.Op, false))
	assert.Equal(t, Thin, Between(atom.Punct, atom.Close, false))
	assert.Equal(t, None, Between(atom.Open, atom.Inner, false))
	assert.Equal(t, None, Between(atom.Close, atom.Ord, false))
	assert.Equal(t, None, Between(atom.Rel, atom.Rel, false))
	assert.Equal(t, Thin, Between(atom.Inner, atom.Punct, false))
	assert.Equal(t, None, Between(atom.Kind(42), atom.Ord, false))
}

func TestAsymmetricPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.spacing")
	defer teardown()
	//
	assert.Equal(t, Medium, Between(atom.Bin, atom.Open, false))
	assert.Equal(t, None, Between(atom.Open, atom.Bin, false))
	assert.Equal(t, Thin, Between(atom.Punct, atom.Ord, false))
	assert.Equal(t, None, Between(atom.Ord, atom.Punct, false))
	assert.Equal(t, Medium, Between(atom.Close, atom.Bin, false))
	assert.Equal(t, None, Between(atom.Bin, atom.Close, false))
}

func TestTightSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.spacing")
	defer teardown()
	//
	assert.Equal(t, None, Between(atom.Ord, atom.Bin, true))
	assert.Equal(t, None, Between(atom.Rel, atom.Ord, true))
	assert.Equal(t, Thin, Between(atom.Ord, atom.Op, true))
	assert.Equal(t, Thin, Between(atom.Op, atom.Op, true))
	assert.Equal(t, Thin, Between(atom.Inner, atom.Op, true))
	for l := atom.Kind(0); l < atom.NumKinds; l++ {
		for r := atom.Kind(0); r < atom.NumKinds; r++ {
			assert.LessOrEqual(t, Between(l, r, true), Between(l, r, false))
		}
	}
}

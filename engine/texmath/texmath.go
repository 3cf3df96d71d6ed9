package texmath

import (
	"github.com/npillmayer/tymath/core"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/texmath/atom"
	"github.com/npillmayer/tymath/engine/texmath/box"
	"github.com/npillmayer/tymath/engine/texmath/layout"
	"github.com/npillmayer/tymath/engine/texmath/mathfont"
	"github.com/npillmayer/tymath/engine/texmath/parser"
)

// ParseMath parses a formula in math mode.
func ParseMath(src string) (*atom.Tree, error) {
	tracer().Infof("parse formula of length %d", len(src))
	return parser.ParseMath(src)
}

// ParseDocument parses text containing inline and display formulas.
func ParseDocument(src string) (*atom.Tree, error) {
	tracer().Infof("parse document of length %d", len(src))
	return parser.ParseDocument(src)
}

// Layout creates a box tree for a parsed atom tree. Each call uses a fresh
// set of typesetting registers.
func Layout(tree *atom.Tree, cfg Config) (*box.Box, error) {
	if tree == nil {
		return nil, core.Error(core.EINVALID, "cannot lay out nil atom tree")
	}
	fonts := mathfont.New(cfg.Metrics)
	regs := params.NewTypesettingRegisters()
	if cfg.BaselineSkip > 0 {
		regs.Push(params.P_BASELINESKIP, float64(cfg.BaselineSkip)/float64(fonts.Em()))
	}
	opts := cfg.options()
	tracer().Infof("layout of %d atoms in style %s", tree.Len(), opts.Style())
	return layout.New(fonts, regs).Layout(tree.Root, opts)
}

// Typeset parses a formula and lays it out.
func Typeset(src string, cfg Config) (*box.Box, error) {
	tree, err := ParseMath(src)
	if err != nil {
		return nil, err
	}
	return Layout(tree, cfg)
}

/*
Package mathdebug renders box trees for debugging, either as a Graphviz
DOT graph or as an indented tree for the terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathdebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"

	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/engine/texmath/box"
)

// tracer traces with key 'tymath.debug'.
func tracer() tracing.Trace {
	return tracing.Select("tymath.debug")
}

// maxNodes guards against runaway output for malformed trees.
const maxNodes = 5000

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// ToGraphViz creates a graphical representation of a box tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root *box.Box, w io.Writer) error {
	header, err := template.New("boxTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label": label,
			"fill":  fillColor,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*box.Box]string, 64)
	if err = boxes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func boxes(b *box.Box, w io.Writer, dict map[*box.Box]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt > maxNodes {
		tracer().Errorf("box tree exceeds %d nodes, output truncated", maxNodes)
		return nil
	}
	if err := node(b, w, dict, gparams); err != nil {
		return err
	}
	for _, child := range b.Children {
		if err := boxes(child, w, dict, gparams); err != nil {
			return err
		}
		e := cedge{dict[b], dict[child]}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func node(b *box.Box, w io.Writer, dict map[*box.Box]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[b] = name
	return gparams.BoxTmpl.Execute(w, &cbox{B: b, Name: name})
}

// Helper structs
type cbox struct {
	B    *box.Box
	Name string
}

type cedge struct {
	N1, N2 string
}

// ---------------------------------------------------------------------------

func label(b *box.Box) string {
	s := b.Kind.String()
	if b.Text != "" {
		s += " " + b.Text
	}
	s += fmt.Sprintf("\\n%s↑ %s↓ %s↔", bp(b.Rect.Height), bp(b.Rect.Depth), bp(b.Rect.Width))
	if b.Atom != 0 {
		s += fmt.Sprintf("\\natom %d", b.Atom)
	}
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func fillColor(b *box.Box) string {
	switch b.Kind {
	case box.SymbolBox, box.DelimInner:
		return "grey95"
	case box.RuleBox:
		return "grey40"
	case box.KernBox:
		return "white"
	case box.ScaleBox:
		return "lightyellow"
	}
	return "lightblue3"
}

func bp(d dimen.Dimen) string {
	return fmt.Sprintf("%.2fbp", d.Points())
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ .Name }}	[ label={{ label .B }} shape=box style=filled fillcolor={{ fill .B }} ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

// --- Terminal output -------------------------------------------------------

// Sprint renders a box tree as an indented tree, one line per box. Children
// of vertical boxes are annotated with their shift.
func Sprint(root *box.Box) string {
	if root == nil {
		return "<nil>"
	}
	s, err := pterm.DefaultTree.WithRoot(treeNode(root, 0)).Srender()
	if err != nil {
		tracer().Errorf("rendering box tree: %v", err)
		return root.DebugString()
	}
	return s
}

func treeNode(b *box.Box, depth int) pterm.TreeNode {
	n := pterm.TreeNode{Text: b.DebugString()}
	if depth > maxDepth {
		return n
	}
	for i, ch := range b.Children {
		child := treeNode(ch, depth+1)
		if b.Kind == box.VBox && i < len(b.Shifts) && b.Shifts[i] != 0 {
			child.Text = fmt.Sprintf("%s ↕%.2fpt", child.Text, float64(b.Shifts[i])/float64(dimen.PT))
		}
		n.Children = append(n.Children, child)
	}
	return n
}

const maxDepth = 100

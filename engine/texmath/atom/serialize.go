package atom

import (
	"fmt"
	"strings"
	"unicode"
)

// Serialize writes a sequence of atoms back to source text. Parsing the
// result yields an equal atom tree.
func Serialize(atoms []Atom) string {
	w := &writer{}
	w.seq(atoms)
	return w.String()
}

// SerializeAtom writes a single atom back to source text.
func SerializeAtom(a Atom) string {
	return Serialize([]Atom{a})
}

type writer struct {
	strings.Builder
	afterWord bool   // last output was a command name ending in a letter
	text      bool   // inside a text run, where blanks are significant
	font      string // font command enclosing the current output, if any
}

func (w *writer) put(s string) {
	if s == "" {
		return
	}
	if w.afterWord {
		r := []rune(s)[0]
		if unicode.IsLetter(r) || r == '*' || r == '&' || r == '#' {
			if w.text {
				w.WriteString("{}")
			} else {
				w.WriteByte(' ')
			}
		}
	}
	w.WriteString(s)
	w.afterWord = false
}

// within writes atoms in text or math mode and under a font command,
// restoring the enclosing context afterwards.
func (w *writer) within(text bool, font string, f func()) {
	t, fnt := w.text, w.font
	w.text, w.font = text, font
	f()
	w.text, w.font = t, fnt
}

func (w *writer) cmd(name string) {
	w.put(`\` + name)
	r := []rune(name)
	w.afterWord = len(r) > 0 && unicode.IsLetter(r[len(r)-1])
}

func (w *writer) braced(atoms []Atom) {
	w.put("{")
	w.seq(atoms)
	w.put("}")
}

func (w *writer) seq(atoms []Atom) {
	for _, a := range atoms {
		w.atom(a)
	}
}

func (w *writer) atom(a Atom) {
	switch a := a.(type) {
	case *Symbol:
		w.symbol(a)
	case *Accent:
		w.cmd(strings.TrimPrefix(a.Source, `\`))
		w.braced(a.Body)
	case *Overline:
		w.cmd("overline")
		w.braced(a.Body)
	case *Rule:
		w.cmd("rule")
		w.put(fmt.Sprintf("{%dsp}{%dsp}", int32(a.Width), int32(a.Thickness)))
	case *LeftRight:
		w.cmd("left")
		w.delimiter(a.Left)
		w.seq(a.Body)
		w.cmd("right")
		w.delimiter(a.Right)
	case *Sqrt:
		w.cmd("sqrt")
		w.braced(a.Radicand)
	case *Fraction:
		w.cmd("frac")
		w.braced(a.Num)
		w.braced(a.Den)
	case *SupSub:
		w.atom(a.Nucleus)
		if a.Sup != nil {
			w.put("^")
			w.braced(a.Sup)
		}
		if a.Sub != nil {
			w.put("_")
			w.braced(a.Sub)
		}
	case *Matrix:
		w.matrix(a)
	case *Group:
		w.group(a)
	case *Space:
		if a.Source == "" {
			w.put(" ")
		} else {
			w.cmd(strings.TrimPrefix(a.Source, `\`))
		}
	default:
		tracer().Errorf("cannot serialize atom of type %T", a)
	}
}

func (w *writer) symbol(a *Symbol) {
	src := a.Source
	if src == "" {
		src = a.Text
	}
	if a.Flags.Has(Reference) {
		w.cmd("ref")
		w.put("{" + a.Text + "}")
		return
	}
	if a.Flags.Has(Text) {
		w.put(escapeText(src))
		return
	}
	if w.font != "" {
		w.source(src)
		return
	}
	upright := !a.Flags.Has(Italic) && !a.Flags.Has(Bold) && isLetter(a.Text) && italicByDefault(a.Source)
	if a.Flags.Has(Bold) {
		w.cmd("mathbf")
		w.put("{")
	} else if upright {
		w.cmd("mathrm")
		w.put("{")
	}
	w.source(src)
	if a.Flags.Has(Bold) || upright {
		w.put("}")
	}
}

func (w *writer) source(src string) {
	if strings.HasPrefix(src, `\`) {
		w.cmd(src[1:])
	} else {
		w.put(src)
	}
}

func (w *writer) delimiter(r rune) {
	src := DelimiterSource(r)
	if strings.HasPrefix(src, `\`) {
		w.cmd(src[1:])
	} else {
		w.put(src)
	}
}

func (w *writer) matrix(m *Matrix) {
	w.cmd("begin")
	w.put("{" + m.Env + "}")
	for i, row := range m.Rows {
		if i > 0 {
			w.cmd(`\`)
		}
		for j, cell := range row {
			if j > 0 {
				w.put("&")
			}
			w.seq(cell)
		}
	}
	w.cmd("end")
	w.put("{" + m.Env + "}")
}

func (w *writer) group(g *Group) {
	switch g.Mode {
	case Braced:
		if g.Env == "" {
			w.braced(g.Body)
			return
		}
		w.cmd(g.Env)
		w.within(false, g.Env, func() { w.braced(g.Body) })
	case TextRun:
		w.cmd("text")
		w.within(true, "", func() { w.braced(g.Body) })
	case Inline:
		w.within(false, "", func() {
			w.put("$")
			w.seq(g.Body)
			w.put("$")
		})
	case Display:
		w.within(false, "", func() { w.display(g) })
	}
}

func (w *writer) display(g *Group) {
	switch {
	case g.Env == "":
		w.cmd("[")
		w.seq(g.Body)
		w.cmd("]")
	case IsTabular(g.Env):
		w.seq(g.Body)
	default:
		w.cmd("begin")
		w.put("{" + g.Env + "}")
		w.seq(g.Body)
		w.cmd("end")
		w.put("{" + g.Env + "}")
	}
}

// italicByDefault checks if a symbol spelled as src is set in italics unless
// requested otherwise.
func italicByDefault(src string) bool {
	if !strings.HasPrefix(src, `\`) {
		return true
	}
	cmd, ok := LookupCommand(src[1:])
	return ok && cmd.Flags.Has(Italic)
}

func isLetter(s string) bool {
	r := []rune(s)
	return len(r) == 1 && unicode.IsLetter(r[0])
}

func escapeText(s string) string {
	switch s {
	case "{", "}", "$", "&", "%", "#", "_":
		return `\` + s
	}
	return s
}

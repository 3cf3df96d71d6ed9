package scanner

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind is the kind of a token.
type Kind int

//go:generate stringer -type=Kind
const (
	EOF          Kind = iota // end of input
	Char                     // a single visible character
	Command                  // a control sequence, e.g. \frac or \{
	GroupOpen                // {
	GroupClose               // }
	Sup                      // ^
	Sub                      // _
	Left                     // \left
	Right                    // \right
	Begin                    // \begin
	End                      // \end
	AlignSep                 // &
	RowSep                   // \\
	DisplayOpen              // \[
	DisplayClose             // \]
	MathShift                // $
	Space                    // white space, reported by raw reads only
)

var kindNames = [...]string{
	"end of input", "character", "command", "{", "}", "^", "_", `\left`, `\right`,
	`\begin`, `\end`, "&", `\\`, `\[`, `\]`, "$", "space",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a token of math source text.
type Token struct {
	Kind Kind
	Text string // character, or command name without the backslash
	Pos  lexer.Position
}

// Is checks if a token is of kind k with text s. For kinds other than Char
// and Command, s is ignored.
func (t Token) Is(k Kind, s string) bool {
	if t.Kind != k {
		return false
	}
	if k == Char || k == Command {
		return t.Text == s
	}
	return true
}

// Source returns the token as it appeared in the source text.
func (t Token) Source() string {
	switch t.Kind {
	case Char:
		return t.Text
	case Command, Left, Right, Begin, End, RowSep, DisplayOpen, DisplayClose:
		return `\` + t.Text
	case EOF:
		return ""
	case Space:
		return " "
	}
	return t.Kind.String()
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q@%d:%d", t.Source(), t.Pos.Line, t.Pos.Column)
}

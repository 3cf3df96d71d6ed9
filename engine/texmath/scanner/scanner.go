package scanner

import (
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/text/unicode/norm"
)

var mathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `%[^\n]*\n?`},
	{Name: "Command", Pattern: `\\(?:[A-Za-z*&#]+|.)`},
	{Name: "GroupOpen", Pattern: `\{`},
	{Name: "GroupClose", Pattern: `\}`},
	{Name: "Sup", Pattern: `\^`},
	{Name: "Sub", Pattern: `_`},
	{Name: "AlignSep", Pattern: `&`},
	{Name: "MathShift", Pattern: `\$`},
	{Name: "Char", Pattern: `.`},
})

var tokenTypes = mathLexer.Symbols()

var ruleKinds = map[lexer.TokenType]Kind{
	tokenTypes["Whitespace"]: Space,
	tokenTypes["Command"]:    Command,
	tokenTypes["GroupOpen"]:  GroupOpen,
	tokenTypes["GroupClose"]: GroupClose,
	tokenTypes["Sup"]:        Sup,
	tokenTypes["Sub"]:        Sub,
	tokenTypes["AlignSep"]:   AlignSep,
	tokenTypes["MathShift"]:  MathShift,
	tokenTypes["Char"]:       Char,
}

var structural = map[string]Kind{
	"left":  Left,
	"right": Right,
	"begin": Begin,
	"end":   End,
	`\`:     RowSep,
	"[":     DisplayOpen,
	"]":     DisplayClose,
}

// Scanner tokenizes math source text.
type Scanner struct {
	lx        lexer.Lexer
	lookahead *Token
	last      lexer.Position
	done      bool
}

// New creates a scanner for a source text.
func New(src string) *Scanner {
	src = norm.NFC.String(src)
	s := &Scanner{}
	lx, err := mathLexer.LexString("", src)
	if err != nil {
		tracer().Errorf("cannot create lexer: %v", err)
		s.done = true
		return s
	}
	s.lx = lx
	return s
}

// Next returns the next token, skipping white space.
func (s *Scanner) Next() Token {
	for {
		t := s.NextRaw()
		if t.Kind != Space {
			return t
		}
	}
}

// Peek returns the next token without consuming it, skipping white space.
func (s *Scanner) Peek() Token {
	for {
		t := s.PeekRaw()
		if t.Kind != Space {
			return t
		}
		s.lookahead = nil
	}
}

// NextRaw returns the next token, including white space tokens.
func (s *Scanner) NextRaw() Token {
	if s.lookahead != nil {
		t := *s.lookahead
		s.lookahead = nil
		return t
	}
	return s.scan()
}

// PeekRaw returns the next token without consuming it, including white space tokens.
func (s *Scanner) PeekRaw() Token {
	if s.lookahead == nil {
		t := s.scan()
		s.lookahead = &t
	}
	return *s.lookahead
}

func (s *Scanner) scan() Token {
	for !s.done {
		lt, err := s.lx.Next()
		if err != nil {
			tracer().Errorf("scanner: %v", err)
			s.done = true
			break
		}
		if lt.EOF() {
			s.last = lt.Pos
			s.done = true
			break
		}
		s.last = lt.Pos
		kind, ok := ruleKinds[lt.Type]
		if !ok { // comment
			continue
		}
		t := Token{Kind: kind, Text: lt.Value, Pos: lt.Pos}
		if kind == Command {
			t.Text = lt.Value[1:]
			if k, ok := structural[t.Text]; ok {
				t.Kind = k
			}
		}
		tracer().Debugf("token %v", t)
		return t
	}
	return Token{Kind: EOF, Pos: s.last}
}

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/engine/texmath/scanner"
)

// Kinds of parse errors.
var (
	ErrExpected              = errors.New("expected token not found")
	ErrMissingBase           = errors.New("missing base for script")
	ErrDuplicateScript       = errors.New("duplicate script")
	ErrUnknownCommand        = errors.New("unknown command")
	ErrUnknownEnvironment    = errors.New("unknown environment")
	ErrMismatchedEnvironment = errors.New("mismatched environment")
	ErrMissingArgument       = errors.New("missing argument")
	ErrBadDimension          = errors.New("bad dimension")
)

// Error is a parse error, located at an offending token.
type Error struct {
	Kind        error // one of the Err… sentinels
	Token       scanner.Token
	Pos         lexer.Position
	Msg         string
	Suggestions []string // for unknown commands
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean \\%s?)", strings.Join(e.Suggestions, `, \`))
	}
	return msg
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func (p *Parser) errorf(kind error, tok scanner.Token, format string, args ...interface{}) error {
	return wrap(&Error{
		Kind:  kind,
		Token: tok,
		Pos:   tok.Pos,
		Msg:   fmt.Sprintf(format, args...),
	})
}

func wrap(e *Error) error {
	tracer().Debugf("parse error: %v", e)
	return core.WrapError(e, core.ESYNTAX, "%s", e.Error())
}

// Package core holds definitions shared by all packages of tymath.
package core

import (
	"errors"
	"fmt"
)

// Error codes. Errors returned by tymath packages carry one of these, to be
// retrieved with Code.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // font, glyph or metrics not found
	EINVALID  int = 123 // invalid argument or broken invariant
	EINTERNAL int = 125 // internal error
	ESYNTAX   int = 126 // source text is malformed
)

var codeText = map[int]string{
	NOERROR:   "OK",
	EMISSING:  "not found",
	EINVALID:  "invalid",
	EINTERNAL: "internal error",
	ESYNTAX:   "syntax error",
}

func errorText(code int) string {
	if s, ok := codeText[code]; ok {
		return s
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a message suitable
// for users, e.g., for an editor's status line.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError decorates an underlying error, which remains reachable for
// errors.Is and errors.As.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.cause)
}

func (e codedError) Unwrap() error { return e.cause }
func (e codedError) ErrorCode() int { return e.code }
func (e codedError) UserMessage() string { return e.msg }

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return codedError{
		cause: errors.New(errorText(code)),
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// WrapError wraps err, adding an error code and a user message.
// A nil err is replaced by an error describing the code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Code returns the error code of the first AppError in err's chain.
// It is NOERROR for nil and EINTERNAL for errors without a code.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message of the first AppError in err's
// chain, or a generic description of err's code. It is empty for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

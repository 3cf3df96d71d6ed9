package core

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.core")
	defer teardown()
	//
	base := errors.New("expected }")
	err := WrapError(base, ESYNTAX, "missing closing brace at %d", 7)
	assert.Equal(t, ESYNTAX, Code(err))
	assert.Equal(t, "missing closing brace at 7", UserMessage(err))
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(base))
	assert.Equal(t, "not found", UserMessage(WrapError(nil, EMISSING, "not found")))
	assert.Equal(t, "internal error", UserMessage(base))
	err = Error(EINVALID, "script atom %d has no scripts", 3)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "[123] invalid", err.Error())
	assert.Equal(t, "syntax error", errorText(ESYNTAX))
}

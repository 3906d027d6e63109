package classify

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRegistry_RegisterAndGet(t *testing.T) {
	errTimeout := errors.New("timeout")

	reg := NewKindRegistry()
	reg.Register("timeout", errTimeout)

	kind, ok := reg.Get("timeout")
	require.True(t, ok)
	assert.Same(t, errTimeout, kind)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestKindRegistry_IgnoresInvalidEntries(t *testing.T) {
	reg := NewKindRegistry()
	reg.Register("", io.EOF)
	reg.Register("nil", nil)

	_, ok := reg.Get("nil")
	assert.False(t, ok)
}

func TestBuiltinKinds(t *testing.T) {
	reg := BuiltinKinds()

	kind, ok := reg.Get(KindContextCanceled)
	require.True(t, ok)
	assert.ErrorIs(t, context.Canceled, kind)

	kind, ok = reg.Get(KindDeadlineExceeded)
	require.True(t, ok)
	assert.ErrorIs(t, context.DeadlineExceeded, kind)

	kind, ok = reg.Get(KindEOF)
	require.True(t, ok)
	assert.ErrorIs(t, io.EOF, kind)
}

func TestKindRegistry_NilReceiver(t *testing.T) {
	var reg *KindRegistry
	reg.Register("x", io.EOF)

	_, ok := reg.Get("x")
	assert.False(t, ok)
}

package classify

import (
	"context"
	"io"
	"net"
	"strings"
	"sync"
)

// Built-in kind registry names.
const (
	KindContextCanceled  = "context_canceled"
	KindDeadlineExceeded = "deadline_exceeded"
	KindEOF              = "eof"
	KindUnexpectedEOF    = "unexpected_eof"
	KindConnectionClosed = "connection_closed"
)

// KindRegistry is a thread-safe name → failure-kind map. It lets declarative
// configuration refer to error values by name.
type KindRegistry struct {
	mu sync.RWMutex
	m  map[string]error
}

func NewKindRegistry() *KindRegistry {
	return &KindRegistry{m: make(map[string]error)}
}

// Register associates name with kind. Empty names and nil kinds are ignored.
func (r *KindRegistry) Register(name string, kind error) {
	if r == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" || kind == nil {
		return
	}

	r.mu.Lock()
	if r.m == nil {
		r.m = make(map[string]error)
	}
	r.m[name] = kind
	r.mu.Unlock()
}

func (r *KindRegistry) Get(name string) (error, bool) {
	if r == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	r.mu.RLock()
	kind, ok := r.m[name]
	r.mu.RUnlock()
	return kind, ok && kind != nil
}

// RegisterBuiltinKinds registers common failure kinds into reg.
func RegisterBuiltinKinds(reg *KindRegistry) {
	if reg == nil {
		return
	}
	reg.Register(KindContextCanceled, context.Canceled)
	reg.Register(KindDeadlineExceeded, context.DeadlineExceeded)
	reg.Register(KindEOF, io.EOF)
	reg.Register(KindUnexpectedEOF, io.ErrUnexpectedEOF)
	reg.Register(KindConnectionClosed, net.ErrClosed)
}

// BuiltinKinds returns a fresh registry pre-populated with the common kinds.
func BuiltinKinds() *KindRegistry {
	reg := NewKindRegistry()
	RegisterBuiltinKinds(reg)
	return reg
}

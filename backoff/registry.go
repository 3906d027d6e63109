package backoff

import (
	"strings"
	"sync"
)

// Selector names for the built-in strategies.
const (
	SelectorNoWait            = "nowait"
	SelectorFixed             = "fixed"
	SelectorExponential       = "exponential"
	SelectorFibonacci         = "fibonacci"
	SelectorRandom            = "random"
	SelectorRandomExponential = "random_exponential"
)

// Registry is a thread-safe name → Strategy map. It lets declarative
// configuration select a strategy by name.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Strategy
}

func NewRegistry() *Registry {
	return &Registry{m: make(map[string]Strategy)}
}

// Register associates name with s. Empty names and nil strategies are ignored.
func (r *Registry) Register(name string, s Strategy) {
	if r == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" || s == nil {
		return
	}

	r.mu.Lock()
	if r.m == nil {
		r.m = make(map[string]Strategy)
	}
	r.m[name] = s
	r.mu.Unlock()
}

func (r *Registry) Get(name string) (Strategy, bool) {
	if r == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	r.mu.RLock()
	s, ok := r.m[name]
	r.mu.RUnlock()
	return s, ok && s != nil
}

// RegisterBuiltins registers the six core strategies into reg.
func RegisterBuiltins(reg *Registry) {
	if reg == nil {
		return
	}
	reg.Register(SelectorNoWait, NoWait{})
	reg.Register(SelectorFixed, Fixed{})
	reg.Register(SelectorExponential, Exponential{})
	reg.Register(SelectorFibonacci, Fibonacci{})
	reg.Register(SelectorRandom, Random{})
	reg.Register(SelectorRandomExponential, RandomExponential{})
}

// Builtins returns a fresh registry pre-populated with the core strategies.
func Builtins() *Registry {
	reg := NewRegistry()
	RegisterBuiltins(reg)
	return reg
}

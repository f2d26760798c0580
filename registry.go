package modelcheck

import (
	"reflect"
	"sync"

	"github.com/dmitrymomot/modelcheck/pkg/rules"
)

// Registry maps model types to the validators that check them. It is safe
// for concurrent use; registration typically happens once at startup while
// lookups run per request.
type Registry struct {
	mu         sync.RWMutex
	validators map[reflect.Type]rules.Validator
}

// NewRegistry creates an empty validator registry.
func NewRegistry() *Registry {
	return &Registry{
		validators: make(map[reflect.Type]rules.Validator),
	}
}

// Add associates a validator with a model type, replacing any previous
// registration for that type. Pointer types are normalized to their
// element type, matching the adapter's lookup behavior.
func (r *Registry) Add(t reflect.Type, v rules.Validator) {
	if t == nil || v == nil {
		return
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[t] = v
}

// Lookup returns the validator registered for the exact type, if any.
func (r *Registry) Lookup(t reflect.Type) (rules.Validator, bool) {
	if t == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[t]
	return v, ok
}

// Len returns the number of registered validators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.validators)
}

// Register associates a validator with the model type T.
//
//	modelcheck.Register[User](registry, userValidator{})
func Register[T any](r *Registry, v rules.Validator) {
	r.Add(reflect.TypeOf((*T)(nil)).Elem(), v)
}

// RegisterFunc associates a validation function with the model type T.
func RegisterFunc[T any](r *Registry, fn func(*rules.Context) []rules.Failure) {
	Register[T](r, rules.ValidatorFunc(fn))
}

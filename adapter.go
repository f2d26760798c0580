package modelcheck

import (
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/dmitrymomot/modelcheck/pkg/rules"
)

// ModelValidator is the host pipeline's model-validation extension point.
// Implementations validate the bound model under the given prefix and
// record failures in the action context's error map; there is no return
// value.
type ModelValidator interface {
	Validate(actx *ActionContext, state ValidationState, prefix string, model any)
}

// Adapter plugs registered typed validators into the host pipeline's
// model-validation stage. A model with a registered validator is checked
// by it; collection models fall back to an element-wise wrapper; models
// without any registered validator are handed to the default tag
// validation. By default the tag validation also runs after a typed pass,
// so both sources contribute to the same error map.
//
// The adapter holds only immutable collaborator references and is safe
// for concurrent use; per-pass bookkeeping is local to each call.
type Adapter struct {
	registry   *Registry
	visitor    Visitor
	runDefault bool
	log        *slog.Logger
}

// AdapterOption configures the adapter.
type AdapterOption func(*Adapter)

// WithVisitor replaces the default tag-based validation visitor.
func WithVisitor(v Visitor) AdapterOption {
	return func(a *Adapter) {
		if v != nil {
			a.visitor = v
		}
	}
}

// WithoutDefaultValidation disables the tag validation pass that normally
// runs after a successful typed pass. Models without a registered
// validator are still handed to the visitor.
func WithoutDefaultValidation() AdapterOption {
	return func(a *Adapter) {
		a.runDefault = false
	}
}

// WithLogger sets the logger used for pipeline diagnostics, such as
// ambiguous parameter matches. Logging is discarded by default.
func WithLogger(l *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// NewAdapter creates an adapter over the given validator registry. Unless
// WithVisitor overrides it, the default visitor is a TagValidator with
// english messages, and constructing it may fail.
func NewAdapter(registry *Registry, opts ...AdapterOption) (*Adapter, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	a := &Adapter{
		registry:   registry,
		runDefault: true,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.visitor == nil {
		tv, err := NewTagValidator()
		if err != nil {
			return nil, err
		}
		a.visitor = tv
	}

	return a, nil
}

// Validate implements ModelValidator. A nil action context is a
// programming error and panics; every other miss degrades to the default
// validation path.
func (a *Adapter) Validate(actx *ActionContext, state ValidationState, prefix string, model any) {
	if actx == nil {
		panic("modelcheck: Validate called with nil action context")
	}
	if actx.Errors == nil {
		actx.Errors = NewErrors()
	}
	if state.Suppressed(prefix) {
		return
	}

	value, typ, ok := indirect(model)
	if !ok {
		// Absent model: nothing for a typed validator to check.
		a.visitor.Visit(actx, state, prefix, model)
		return
	}

	validator, direct := a.resolve(typ, prefix)
	if validator == nil {
		a.visitor.Visit(actx, state, prefix, model)
		return
	}

	cust := a.customizationFor(actx, prefix, typ)
	vctx := cust.applyBefore(rules.NewContext(value, cust.RuleSets...))
	failures := cust.applyAfter(validator.Validate(vctx))

	// A key holds exactly the failures of this pass: clear it the first
	// time it shows up, then append.
	cleared := make(map[string]struct{}, len(failures))
	for _, f := range failures {
		key := JoinKey(prefix, f.Path)
		if !direct {
			// Synthesized collection validators already encode the prefix
			// (or its placeholder) in the failure path.
			key = strings.ReplaceAll(f.Path, collectionPlaceholder, "")
		}
		if _, done := cleared[key]; !done {
			actx.Errors.Del(key)
			cleared[key] = struct{}{}
		}
		actx.Errors.Add(key, f.Message)
	}

	if a.runDefault {
		a.visitor.Visit(actx, state, prefix, model)
	}
}

// resolve finds a validator for the model type: an exact registration
// first, then a synthesized element-wise wrapper for slices and arrays.
// The second return value reports whether the validator was resolved
// directly.
func (a *Adapter) resolve(typ reflect.Type, prefix string) (rules.Validator, bool) {
	if v, ok := a.registry.Lookup(typ); ok {
		return v, true
	}

	if typ.Kind() == reflect.Slice || typ.Kind() == reflect.Array {
		elem := typ.Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		if ev, ok := a.registry.Lookup(elem); ok {
			return CollectionOf(ev, prefix), false
		}
	}

	return nil, false
}

// customizationFor resolves the per-parameter customization for the
// current prefix. Exactly one matching parameter descriptor is required;
// zero matches or an ambiguous match fall back to the no-op
// customization, the latter with a debug diagnostic.
func (a *Adapter) customizationFor(actx *ActionContext, prefix string, modelType reflect.Type) Customization {
	matched := actx.matchParams(prefix, modelType)
	switch {
	case len(matched) == 1:
		if c := matched[0].Customization; c != nil {
			return *c
		}
	case len(matched) > 1:
		a.log.Debug("ambiguous parameter match, skipping customization",
			slog.String("prefix", prefix),
			slog.String("model_type", modelType.String()),
			slog.Int("matches", len(matched)),
		)
	}
	return Customization{}
}

// indirect unwraps pointers and interfaces around the model and returns
// the underlying value and type. ok is false for nil models and nil
// pointers.
func indirect(model any) (any, reflect.Type, bool) {
	if model == nil {
		return nil, nil, false
	}
	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), rv.Type(), true
}

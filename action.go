package modelcheck

import (
	"context"
	"reflect"
)

// Param describes one declared parameter of the action being validated:
// its name, the optional binding name used as the model prefix, the
// declared Go type, and an optional per-parameter customization. The host
// pipeline supplies these as plain data; no struct-tag reflection is
// involved.
type Param struct {
	Name          string
	BindingName   string
	Type          reflect.Type
	Customization *Customization
}

// ActionContext carries everything the adapter needs about the request
// being validated: the request context, the action's declared parameters,
// and the error map validation failures are written into.
type ActionContext struct {
	Context context.Context
	Params  []Param
	Errors  Errors
}

// NewActionContext builds an action context with an empty error map.
func NewActionContext(ctx context.Context, params ...Param) *ActionContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ActionContext{
		Context: ctx,
		Params:  params,
		Errors:  NewErrors(),
	}
}

// matchParams returns the declared parameters that correspond to the
// current binding prefix and model type. A non-empty prefix matches a
// parameter by binding name or by name; an empty prefix matches
// parameters without an explicit binding name. Parameters with a declared
// type only match models of that type.
func (a *ActionContext) matchParams(prefix string, modelType reflect.Type) []Param {
	var matched []Param
	for _, p := range a.Params {
		if p.Type != nil && modelType != nil && p.Type != modelType {
			continue
		}
		if prefix == "" {
			if p.BindingName == "" {
				matched = append(matched, p)
			}
			continue
		}
		if p.BindingName == prefix || p.Name == prefix {
			matched = append(matched, p)
		}
	}
	return matched
}

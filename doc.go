// Package modelcheck plugs hand-written, typed model validators into an
// HTTP handler pipeline's model-validation stage.
//
// Validators are written against the rule engine in pkg/rules and
// registered per model type. The Adapter implements the pipeline's
// ModelValidator extension point: it resolves a validator for the bound
// model's runtime type, runs it, and records every failure in the
// request's error map under the model's binding prefix. Models without a
// registered validator, and (by default) models that already went through
// a typed pass, are handed to the default struct-tag validation, so both
// sources contribute to the same error map.
//
// Basic Usage:
//
//	type User struct {
//		Name  string `json:"name"`
//		Email string `json:"email" validate:"email"`
//	}
//
//	type userValidator struct{}
//
//	func (userValidator) Validate(ctx *rules.Context) []rules.Failure {
//		u := ctx.Model.(User)
//		return rules.Apply(ctx,
//			rules.RequiredString("name", u.Name),
//			rules.ValidEmail("email", u.Email),
//		)
//	}
//
//	registry := modelcheck.NewRegistry()
//	modelcheck.Register[User](registry, userValidator{})
//
//	adapter, err := modelcheck.NewAdapter(registry)
//	if err != nil {
//		// handle error
//	}
//
//	actx := modelcheck.NewActionContext(r.Context())
//	adapter.Validate(actx, nil, "", user)
//	if !actx.Errors.IsEmpty() {
//		// respond with actx.Errors
//	}
//
// Collection models are covered automatically: when a slice or array has
// no validator of its own but its element type does, the adapter
// synthesizes an element-wise wrapper and reports failures under indexed
// keys ("items[2].name").
//
// Per-parameter behavior is tuned through Customization values attached
// to the action's parameter descriptors: ruleset selection plus optional
// before/after hooks that may substitute the validation context or the
// reported failures.
package modelcheck

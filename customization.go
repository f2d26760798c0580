package modelcheck

import "github.com/dmitrymomot/modelcheck/pkg/rules"

// Customization tunes how the typed validation pass runs for one bound
// parameter. A zero Customization is a no-op: all hooks absent, default
// ruleset selected.
type Customization struct {
	// RuleSets names the rulesets to evaluate. Empty selects the default set.
	RuleSets []string

	// BeforeValidate runs just before the validator and may substitute a
	// different validation context. Returning nil keeps the original.
	BeforeValidate func(*rules.Context) *rules.Context

	// AfterValidate runs on the reported failures and may substitute a
	// different slice. Returning nil keeps the original; returning an
	// empty non-nil slice discards all failures.
	AfterValidate func([]rules.Failure) []rules.Failure
}

// applyBefore passes the context through the before hook, keeping the
// original when the hook is absent or returns nil.
func (c Customization) applyBefore(vctx *rules.Context) *rules.Context {
	if c.BeforeValidate == nil {
		return vctx
	}
	if alt := c.BeforeValidate(vctx); alt != nil {
		return alt
	}
	return vctx
}

// applyAfter passes the failures through the after hook, keeping the
// original slice when the hook is absent or returns nil.
func (c Customization) applyAfter(failures []rules.Failure) []rules.Failure {
	if c.AfterValidate == nil {
		return failures
	}
	if alt := c.AfterValidate(failures); alt != nil {
		return alt
	}
	return failures
}

package rules

import (
	"fmt"
	"strings"
)

// Named rulesets understood by Apply.
const (
	// SetDefault selects rules that were not tagged with any ruleset.
	SetDefault = "default"
	// SetAll selects every rule regardless of its ruleset tags.
	SetAll = "*"
)

// Failure describes a single validation failure as a property path plus a
// human-readable message. Paths use dot notation for nested fields and
// bracketed indices for collection elements ("items[2].name").
type Failure struct {
	Path    string
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

// Validator checks a model carried by a Context and reports failures in
// declaration order. An empty result means the model is valid.
type Validator interface {
	Validate(ctx *Context) []Failure
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(ctx *Context) []Failure

func (f ValidatorFunc) Validate(ctx *Context) []Failure { return f(ctx) }

// Context carries the model under validation together with the rulesets
// selected for this pass. A fresh Context is built per validation pass;
// it holds no state beyond these two values.
type Context struct {
	// Model is the instance being validated.
	Model any

	// Sets names the rulesets to evaluate. Empty means the default set.
	Sets []string
}

// NewContext builds a validation context for the given model and rulesets.
func NewContext(model any, sets ...string) *Context {
	return &Context{Model: model, Sets: sets}
}

// WithModel returns a copy of the context carrying a different model.
// Used by collection wrappers, which validate one element at a time under
// the same ruleset selection.
func (c *Context) WithModel(model any) *Context {
	return &Context{Model: model, Sets: c.Sets}
}

// selected reports whether a rule tagged with the given sets should run
// under this context. Untagged rules belong to the default set.
func (c *Context) selected(sets []string) bool {
	want := c.Sets
	if len(want) == 0 {
		want = []string{SetDefault}
	}
	for _, w := range want {
		if w == SetAll {
			return true
		}
		if len(sets) == 0 {
			if w == SetDefault {
				return true
			}
			continue
		}
		for _, s := range sets {
			if strings.EqualFold(s, w) {
				return true
			}
		}
	}
	return false
}

// Rule represents a single validation rule: a boolean check paired with the
// failure to report when the check does not pass.
type Rule struct {
	Check   func() bool
	Failure Failure

	sets []string
}

// InSets tags the rule with one or more rulesets. A tagged rule runs only
// when one of its sets is selected on the context; untagged rules run in
// the default set.
func (r Rule) InSets(sets ...string) Rule {
	r.sets = append(r.sets, sets...)
	return r
}

// Apply evaluates the rules selected by the context, in order, and returns
// the failures of every rule whose check did not pass. A nil result means
// all selected rules passed.
func Apply(ctx *Context, rules ...Rule) []Failure {
	var failures []Failure
	for _, rule := range rules {
		if !ctx.selected(rule.sets) {
			continue
		}
		if !rule.Check() {
			failures = append(failures, rule.Failure)
		}
	}
	return failures
}

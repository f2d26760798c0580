// Package rules provides a small, composable rule engine for hand-written
// model validators. Each helper constructs a Rule value pairing a boolean
// Check function with the Failure to report when the check does not pass;
// Apply evaluates a list of rules against a Context and returns the
// failures in declaration order.
//
// Rules can be grouped into named rulesets with InSets, and a Context
// selects which sets run for a given pass. Untagged rules belong to the
// default set.
//
// # Usage
//
//	type userValidator struct{}
//
//	func (userValidator) Validate(ctx *rules.Context) []rules.Failure {
//		u := ctx.Model.(User)
//		return rules.Apply(ctx,
//			rules.RequiredString("name", u.Name),
//			rules.ValidEmail("email", u.Email),
//			rules.MinNum("age", u.Age, 0),
//			rules.RequiredString("password", u.Password).InSets("create"),
//		)
//	}
//
// The package holds no global state; rule values are cheap to build per
// pass and safe for concurrent use.
package rules

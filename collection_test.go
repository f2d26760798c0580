package modelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelcheck"
	"github.com/dmitrymomot/modelcheck/pkg/rules"
)

func TestCollectionOf(t *testing.T) {
	t.Run("validates every element with an explicit prefix", func(t *testing.T) {
		v := modelcheck.CollectionOf(itemValidator{}, "items")

		failures := v.Validate(rules.NewContext([]item{{Age: -1}, {Age: 2}, {Age: -3}}))

		assert.Equal(t, []rules.Failure{
			{Path: "items[0].age", Message: "must be at least 0"},
			{Path: "items[2].age", Message: "must be at least 0"},
		}, failures)
	})

	t.Run("valid elements produce no failures", func(t *testing.T) {
		v := modelcheck.CollectionOf(itemValidator{}, "items")

		failures := v.Validate(rules.NewContext([]item{{Age: 1}, {Age: 2}}))
		assert.Empty(t, failures)
	})

	t.Run("works for arrays", func(t *testing.T) {
		v := modelcheck.CollectionOf(itemValidator{}, "items")

		failures := v.Validate(rules.NewContext([2]item{{Age: -1}, {Age: 1}}))

		assert.Equal(t, []rules.Failure{
			{Path: "items[0].age", Message: "must be at least 0"},
		}, failures)
	})

	t.Run("non-collection model is ignored", func(t *testing.T) {
		v := modelcheck.CollectionOf(itemValidator{}, "items")

		assert.Empty(t, v.Validate(rules.NewContext(item{Age: -1})))
	})

	t.Run("ruleset selection propagates to elements", func(t *testing.T) {
		strictOnly := rules.ValidatorFunc(func(ctx *rules.Context) []rules.Failure {
			it := ctx.Model.(item)
			return rules.Apply(ctx,
				rules.MinNum("age", it.Age, 18).InSets("strict"),
			)
		})
		v := modelcheck.CollectionOf(strictOnly, "items")

		assert.Empty(t, v.Validate(rules.NewContext([]item{{Age: 5}})))
		assert.Len(t, v.Validate(rules.NewContext([]item{{Age: 5}}, "strict")), 1)
	})
}

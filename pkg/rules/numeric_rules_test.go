package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelcheck/pkg/rules"
)

func TestMinNum(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, rules.MinNum("age", 18, 18).Check())
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		rule := rules.MinNum("age", -5, 0)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at least 0", rule.Failure.Message)
	})

	t.Run("works with floats", func(t *testing.T) {
		assert.True(t, rules.MinNum("price", 9.99, 0.01).Check())
	})
}

func TestMaxNum(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, rules.MaxNum("age", 120, 120).Check())
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		assert.False(t, rules.MaxNum("age", 121, 120).Check())
	})
}

func TestBetweenNum(t *testing.T) {
	t.Run("passes inside the range", func(t *testing.T) {
		assert.True(t, rules.BetweenNum("age", 30, 18, 120).Check())
	})

	t.Run("range is inclusive", func(t *testing.T) {
		assert.True(t, rules.BetweenNum("age", 18, 18, 120).Check())
		assert.True(t, rules.BetweenNum("age", 120, 18, 120).Check())
	})

	t.Run("fails outside the range", func(t *testing.T) {
		rule := rules.BetweenNum("age", 17, 18, 120)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be between 18 and 120", rule.Failure.Message)
	})
}

func TestPositiveNum(t *testing.T) {
	t.Run("passes for positive values", func(t *testing.T) {
		assert.True(t, rules.PositiveNum("qty", 1).Check())
	})

	t.Run("fails for zero and negatives", func(t *testing.T) {
		assert.False(t, rules.PositiveNum("qty", 0).Check())
		assert.False(t, rules.PositiveNum("qty", -1).Check())
	})
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelcheck/pkg/rules"
)

func TestRequiredSlice(t *testing.T) {
	t.Run("passes for non-empty slice", func(t *testing.T) {
		assert.True(t, rules.RequiredSlice("items", []int{1}).Check())
	})

	t.Run("fails for empty and nil slices", func(t *testing.T) {
		assert.False(t, rules.RequiredSlice("items", []int{}).Check())
		assert.False(t, rules.RequiredSlice[int]("items", nil).Check())
	})
}

func TestMinLenSlice(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, rules.MinLenSlice("items", []int{1, 2}, 2).Check())
	})

	t.Run("fails below the boundary", func(t *testing.T) {
		rule := rules.MinLenSlice("items", []int{1}, 2)
		assert.False(t, rule.Check())
		assert.Equal(t, "must have at least 2 items", rule.Failure.Message)
	})
}

func TestMaxLenSlice(t *testing.T) {
	t.Run("passes at the boundary", func(t *testing.T) {
		assert.True(t, rules.MaxLenSlice("items", []int{1, 2}, 2).Check())
	})

	t.Run("fails above the boundary", func(t *testing.T) {
		assert.False(t, rules.MaxLenSlice("items", []int{1, 2, 3}, 2).Check())
	})
}

func TestRequiredMap(t *testing.T) {
	t.Run("passes for populated map", func(t *testing.T) {
		assert.True(t, rules.RequiredMap("attrs", map[string]int{"a": 1}).Check())
	})

	t.Run("fails for empty map", func(t *testing.T) {
		assert.False(t, rules.RequiredMap("attrs", map[string]int{}).Check())
	})
}

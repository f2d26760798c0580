package rules

import "fmt"

// RequiredSlice fails when the slice has no elements.
func RequiredSlice[T any](path string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Failure: Failure{
			Path:    path,
			Message: "is required",
		},
	}
}

// MinLenSlice fails when the slice has fewer than min elements.
func MinLenSlice[T any](path string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must have at least %d items", min),
		},
	}
}

// MaxLenSlice fails when the slice has more than max elements.
func MaxLenSlice[T any](path string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must have at most %d items", max),
		},
	}
}

// RequiredMap fails when the map has no entries.
func RequiredMap[K comparable, V any](path string, value map[K]V) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Failure: Failure{
			Path:    path,
			Message: "is required",
		},
	}
}

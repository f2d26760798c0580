package rules

import "fmt"

// Numeric is the generic constraint shared by the numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MinNum fails when the value is below min.
func MinNum[T Numeric](path string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// MaxNum fails when the value is above max.
func MaxNum[T Numeric](path string, value, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}

// BetweenNum fails when the value falls outside the inclusive [min, max] range.
func BetweenNum[T Numeric](path string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		},
	}
}

// PositiveNum fails when the value is zero or negative.
func PositiveNum[T Numeric](path string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Failure: Failure{
			Path:    path,
			Message: "must be positive",
		},
	}
}

package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString fails when the value is empty or contains only whitespace.
func RequiredString(path, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Failure: Failure{
			Path:    path,
			Message: "is required",
		},
	}
}

// MinLenString fails when the value is shorter than min runes.
func MinLenString(path, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// MaxLenString fails when the value is longer than max runes.
func MaxLenString(path, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// OneOfString fails when the value is not one of the allowed choices.
func OneOfString(path, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}

// PrefixString fails when the value does not start with the given prefix.
func PrefixString(path, value, prefix string) Rule {
	return Rule{
		Check: func() bool {
			return strings.HasPrefix(value, prefix)
		},
		Failure: Failure{
			Path:    path,
			Message: fmt.Sprintf("must start with %q", prefix),
		},
	}
}

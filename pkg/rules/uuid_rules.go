package rules

import (
	"strings"

	"github.com/google/uuid"
)

// ValidUUID fails when the value is not a canonical 36-character UUID.
func ValidUUID(path, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Fast rejection before handing off to the parser.
			if len(value) != 36 {
				return false
			}
			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
		Failure: Failure{
			Path:    path,
			Message: "must be a valid UUID",
		},
	}
}

// NonNilUUID fails when the value is the zero UUID.
func NonNilUUID(path string, value uuid.UUID) Rule {
	return Rule{
		Check: func() bool {
			return value != uuid.Nil
		},
		Failure: Failure{
			Path:    path,
			Message: "must not be the nil UUID",
		},
	}
}

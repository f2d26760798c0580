package rules

import (
	"net/mail"
	"strings"
)

// ValidEmail fails when the value is not a plausible email address for web
// use: parseable by net/mail, single @, non-empty local part, dotted domain.
func ValidEmail(path, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			local, domain := parts[0], parts[1]
			if local == "" {
				return false
			}

			// mail.ParseAddress accepts bare hostnames; web forms expect a dotted domain.
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
		Failure: Failure{
			Path:    path,
			Message: "must be a valid email address",
		},
	}
}

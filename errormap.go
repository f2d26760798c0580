package modelcheck

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Errors is the host pipeline's field error map: property key to ordered
// error messages. It's based on url.Values to leverage built-in string
// slice handling.
type Errors url.Values

// NewErrors creates an empty error map.
func NewErrors() Errors {
	return make(Errors)
}

// Error implements the error interface.
// Returns a human-readable message summarizing validation failures.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for key, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", key, messages[0]))
		}
	}
	sort.Strings(parts)

	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Add appends an error message under a key.
func (e Errors) Add(key, message string) {
	url.Values(e).Add(key, message)
}

// Set replaces all messages under a key with a single message.
func (e Errors) Set(key, message string) {
	url.Values(e).Set(key, message)
}

// Del removes all messages under a key.
func (e Errors) Del(key string) {
	url.Values(e).Del(key)
}

// Get returns the first error message for a key.
func (e Errors) Get(key string) string {
	return url.Values(e).Get(key)
}

// All returns every message recorded under a key.
func (e Errors) All(key string) []string {
	return e[key]
}

// Has checks if a key has any errors.
func (e Errors) Has(key string) bool {
	return len(e[key]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Keys returns the keys that currently hold errors, sorted.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for key, messages := range e {
		if len(messages) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// JoinKey joins a binding prefix with a property path using the host's
// dot delimiter. Either part may be empty, in which case the other is
// returned as-is. Bracketed index paths attach without a delimiter, so
// JoinKey("items", "[2].name") yields "items[2].name".
func JoinKey(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}

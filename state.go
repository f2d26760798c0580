package modelcheck

// StateEntry controls how a single model key is treated during a
// validation pass.
type StateEntry struct {
	// Suppress excludes the key from both the typed pass and the default
	// tag validation.
	Suppress bool
}

// ValidationState maps model keys (binding prefixes) to their per-pass
// validation treatment. The host pipeline builds a fresh instance per
// request; a nil map is valid and suppresses nothing.
type ValidationState map[string]StateEntry

// Suppressed reports whether validation for the given key is switched off.
func (s ValidationState) Suppressed(key string) bool {
	if s == nil {
		return false
	}
	return s[key].Suppress
}

// Suppress marks a key as excluded from validation.
func (s ValidationState) Suppress(key string) {
	s[key] = StateEntry{Suppress: true}
}

package cache

import "strings"

// Key identifies one cached gateway response. Params must already be
// normalized (trimmed, case-folded) by the caller so that semantically
// identical requests produce identical keys.
type Key struct {
	// Operation is the gateway operation name ("coin", "list", "search",
	// "overview").
	Operation string

	// Params are the normalized request parameters, in a fixed order per
	// operation.
	Params []string
}

// String renders a deterministic key string.
//
// Format: lcw:operation:param1:param2:...
//
// Example:
//
//	lcw:list:USD:20:0
func (k Key) String() string {
	parts := make([]string, 0, len(k.Params)+2)
	parts = append(parts, "lcw", k.Operation)
	parts = append(parts, k.Params...)
	return strings.Join(parts, ":")
}

package figure

import "errors"

// ============================================================================
// ERROR TAXONOMY
// ============================================================================
// All renderer errors are caller/input errors. None are retryable and
// none are recovered internally: Render fails fast before emitting
// anything, so partial or inconsistent specs never leave this package.
// ============================================================================

var (
	// ErrMalformedTrace marks a trace missing a required field, or one
	// whose coordinate payload violates the exactly-one-form invariant
	// for the selected variant.
	ErrMalformedTrace = errors.New("malformed trace")

	// ErrUnknownAxis marks a trace referencing an axis identifier that
	// is absent from the axis list, or an axis whose name cannot be
	// resolved to a layout key or scene role.
	ErrUnknownAxis = errors.New("unknown axis")

	// ErrBadPayload marks array-like data that cannot be converted to
	// nested JSON-compatible numeric arrays.
	ErrBadPayload = errors.New("non-numeric payload")
)

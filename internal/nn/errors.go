package nn

import "errors"

// Error kinds reported by the engine. All engine errors wrap one of these,
// so hosts can classify failures with errors.Is.
var (
	// ErrShapeMismatch reports a topology/container size inconsistency.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrUnknownActivation reports an activation identifier with no
	// registry entry.
	ErrUnknownActivation = errors.New("unknown activation")

	// ErrInvalidUpdatePolicy reports an update-policy value outside the
	// defined variants.
	ErrInvalidUpdatePolicy = errors.New("invalid update policy")
)

package nn

import "fmt"

// UpdatePolicy governs when gradients accumulated by Backward are committed
// to the live weights and biases.
//
// The zero value is Immediate: every Backward call applies its update.
type UpdatePolicy int

// Update policies.
const (
	// Immediate applies the accumulator to the weights on every call.
	Immediate UpdatePolicy = iota

	// Deferred updates the accumulator only, leaving the weights
	// untouched so the host can accumulate gradients over several
	// examples.
	Deferred

	// Flush folds the current call's gradient into the accumulator and
	// then applies the whole accumulated delta to the weights.
	Flush
)

// String returns the policy's name.
func (p UpdatePolicy) String() string {
	switch p {
	case Immediate:
		return "immediate"
	case Deferred:
		return "deferred"
	case Flush:
		return "flush"
	default:
		return fmt.Sprintf("UpdatePolicy(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined policies.
func (p UpdatePolicy) Valid() bool {
	return p >= Immediate && p <= Flush
}

// UpdatePolicyByName resolves a policy name to its enum value.
//
// Besides the canonical names it accepts the legacy learning-type strings
// "online" (Immediate), "" (Deferred) and "batch" (Flush). Anything else is
// an error, never a silent no-op.
func UpdatePolicyByName(name string) (UpdatePolicy, error) {
	switch name {
	case "immediate", "online":
		return Immediate, nil
	case "deferred", "":
		return Deferred, nil
	case "flush", "batch":
		return Flush, nil
	default:
		return 0, fmt.Errorf("UpdatePolicyByName: %q: %w", name, ErrInvalidUpdatePolicy)
	}
}

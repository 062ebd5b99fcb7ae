package types

// MutationResult reports the outcome of a store mutation that validates its
// input. The stores never return errors for invalid input; callers that care
// about why a mutation did nothing inspect the result instead.
type MutationResult string

const (
	// ResultOK means the mutation was applied and persisted.
	ResultOK MutationResult = "ok"
	// ResultRejectedEmpty means the supplied name trimmed to the empty string.
	ResultRejectedEmpty MutationResult = "rejected-empty"
	// ResultRejectedDuplicate means the supplied name collides case-insensitively
	// with a different category.
	ResultRejectedDuplicate MutationResult = "rejected-duplicate"
	// ResultNotFound means no entity with the supplied ID exists.
	ResultNotFound MutationResult = "not-found"
)

// Applied reports whether the mutation changed store state.
func (r MutationResult) Applied() bool { return r == ResultOK }

package knowledge

import "errors"

// Outcome is the closed set of results a Learn call can produce. Conflict
// and duplicate detection are first-class outcomes, not errors.
type Outcome string

const (
	OutcomeLearned              Outcome = "LEARNED"
	OutcomeUpdated              Outcome = "UPDATED"
	OutcomeAlreadyKnown         Outcome = "ALREADY_KNOWN"
	OutcomeConflictWithConstant Outcome = "CONFLICT_WITH_CONSTANT"
)

// Fact provenance tags.
const (
	SourceUser           = "user"
	SourceSystemConstant = "system_constant"
)

// ErrStoreUnavailable wraps any storage failure crossing the store
// boundary. Callers map it to a user-facing fallback reply instead of
// failing the turn loop.
var ErrStoreUnavailable = errors.New("knowledge store unavailable")

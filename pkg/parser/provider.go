package parser

import (
	"context"

	"ai-dialogue-be/pkg/semantics"
)

// Provider defines the contract for any parser backend that turns raw text
// into a core thought. Implementations must populate the schema only; the
// structural contract is validated by the caller via Thought.Validate.
type Provider interface {
	Parse(ctx context.Context, text string) (*semantics.Thought, error)
}

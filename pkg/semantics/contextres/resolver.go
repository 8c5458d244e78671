package contextres

import (
	"strings"

	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/pkg/semantics"
)

// placeholder is the only pronoun the resolver rewrites. Anything else is
// passed through untouched.
const placeholder = "it"

// Resolver rewrites an ambiguous agent reference using the immediately
// preceding turn. It only ever looks at the last history entry.
type Resolver struct {
	logger logger.ILogger
}

func NewResolver(logger logger.ILogger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve substitutes the previous turn's object (or, failing that, its
// agent) for a pronoun agent. The thought is mutated in place and returned.
// No-op when the agent is not the placeholder, history is empty, or the
// previous turn offers no antecedent.
func (r *Resolver) Resolve(thought *semantics.Thought, history []*semantics.Thought) *semantics.Thought {
	if !strings.EqualFold(thought.Agent, placeholder) {
		return thought
	}
	if len(history) == 0 {
		return thought
	}

	last := history[len(history)-1]
	antecedent := last.Object
	if antecedent == "" {
		antecedent = last.Agent
	}
	if antecedent == "" {
		return thought
	}

	if r.logger != nil {
		r.logger.Debug("ContextResolver", "Resolved pronoun reference", map[string]interface{}{
			"pronoun":    thought.Agent,
			"antecedent": antecedent,
		})
	}
	thought.Agent = antecedent
	return thought
}

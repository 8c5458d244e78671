package respond

import (
	"context"
	"errors"

	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/pkg/knowledge"
	"ai-dialogue-be/pkg/semantics"
)

// MsgNotUnderstood is the safe reply for input that failed the parse
// contract. Exposed for the orchestrator, which aborts such turns before
// the decider runs.
const MsgNotUnderstood = msgNotUnderstood

// KnowledgeStore is the slice of the fact store the decider consumes.
type KnowledgeStore interface {
	Learn(ctx context.Context, subject, relationship, fact, source string) (knowledge.Outcome, error)
	Query(ctx context.Context, subject, relationship string) ([]string, error)
}

// Result is the decider's verdict for one enriched thought.
type Result struct {
	Reply   string
	Outcome knowledge.Outcome // set only when a learn ran
	Err     error             // store failure, already mapped to a fallback Reply
}

// Decider is a strictly ordered rule list over the fully enriched
// thought. The first matching rule wins; rules one and two are the only
// ones that touch the fact store.
type Decider struct {
	store  KnowledgeStore
	logger logger.ILogger
}

func NewDecider(store KnowledgeStore, log logger.ILogger) *Decider {
	return &Decider{
		store:  store,
		logger: log,
	}
}

func (d *Decider) Decide(ctx context.Context, thought *semantics.Thought) *Result {
	// Rule 1: factual statement -> learn
	if thought.Mood == semantics.MoodDeclarativeFact && thought.LearningFact != nil {
		return d.decideLearn(ctx, thought.LearningFact)
	}

	// Rule 2: factual question -> query
	if thought.Mood == semantics.MoodInterrogativeFact && thought.QueryFact != nil {
		return d.decideQuery(ctx, thought.QueryFact)
	}

	// Rule 3: sarcasm overrides everything non-factual
	if thought.Tone == semantics.ToneSarcastic {
		return &Result{Reply: msgSarcasm}
	}

	// Rule 4: questions the store can't help with
	if thought.Mood == semantics.MoodInterrogative {
		return &Result{Reply: msgCannotAnswer}
	}

	// Rule 5: observations
	if thought.Attribute != "" {
		return &Result{Reply: observationMessage(thought.Agent, thought.Attribute)}
	}

	// Rule 6: default acknowledgment
	return &Result{Reply: msgDefault}
}

func (d *Decider) decideLearn(ctx context.Context, lf *semantics.FactTriple) *Result {
	outcome, err := d.store.Learn(ctx, lf.Subject, lf.Relationship, lf.Fact, knowledge.SourceUser)
	if err != nil {
		if errors.Is(err, knowledge.ErrStoreUnavailable) {
			d.logger.Error("ResponseDecider", "Learn failed, store unavailable", map[string]interface{}{
				"error": err.Error(),
			})
			return &Result{Reply: msgLearnFallback, Err: err}
		}
		return &Result{Reply: msgLearnFallback, Err: err}
	}

	switch outcome {
	case knowledge.OutcomeLearned:
		return &Result{Reply: learnedMessage(lf.Relationship, lf.Subject, lf.Fact), Outcome: outcome}
	case knowledge.OutcomeUpdated:
		return &Result{Reply: updatedMessage(lf.Relationship, lf.Subject, lf.Fact), Outcome: outcome}
	case knowledge.OutcomeAlreadyKnown:
		return &Result{Reply: alreadyKnownMessage(lf.Relationship, lf.Subject, lf.Fact), Outcome: outcome}
	case knowledge.OutcomeConflictWithConstant:
		known, qerr := d.store.Query(ctx, lf.Subject, lf.Relationship)
		if qerr != nil {
			return &Result{Reply: msgLearnFallback, Outcome: outcome, Err: qerr}
		}
		return &Result{Reply: conflictMessage(lf.Relationship, lf.Subject, known), Outcome: outcome}
	default:
		return &Result{Reply: msgLearnFallback, Outcome: outcome}
	}
}

func (d *Decider) decideQuery(ctx context.Context, qf *semantics.FactQuery) *Result {
	answers, err := d.store.Query(ctx, qf.Subject, qf.Relationship)
	if err != nil {
		if errors.Is(err, knowledge.ErrStoreUnavailable) {
			d.logger.Error("ResponseDecider", "Query failed, store unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return &Result{Reply: msgQueryFallback, Err: err}
	}

	if len(answers) == 0 {
		return &Result{Reply: noInformationMessage(qf.Relationship, qf.Subject)}
	}
	return &Result{Reply: answerMessage(qf.Relationship, qf.Subject, answers)}
}

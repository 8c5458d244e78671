package semantics

import (
	"errors"
	"fmt"
)

// Mood classifies the communicative intent of an utterance.
const (
	MoodIndicative        = "indicative"
	MoodInterrogative     = "interrogative"
	MoodDeclarativeFact   = "declarative_fact"
	MoodInterrogativeFact = "interrogative_fact"
)

// Enrichment defaults and tone values.
const (
	Neutral       = "neutral"
	ToneSarcastic = "sarcastic"
)

// ErrContract marks a thought that does not satisfy the structural
// invariants the pipeline relies on. Produced by Validate, checked with
// errors.Is at the parser boundary.
var ErrContract = errors.New("thought violates parse contract")

// FactTriple is the payload of a declarative factual statement.
type FactTriple struct {
	Subject      string `json:"subject"`
	Relationship string `json:"relationship"`
	Fact         string `json:"fact"`
}

// FactQuery is the payload of a factual question.
type FactQuery struct {
	Subject      string `json:"subject"`
	Relationship string `json:"relationship"`
}

// Thought is the structured representation of a single utterance. It is
// created by a parser provider, enriched in place by the pipeline stages,
// and appended to the session history once the turn completes.
type Thought struct {
	InputText string `json:"input_text"`
	Mood      string `json:"mood"`

	Agent       string `json:"agent,omitempty"`
	Object      string `json:"object,omitempty"`
	Destination string `json:"destination,omitempty"`
	Attribute   string `json:"attribute,omitempty"`
	Action      string `json:"action,omitempty"`

	LearningFact *FactTriple `json:"learning_fact,omitempty"`
	QueryFact    *FactQuery  `json:"query_fact,omitempty"`

	Urgency         string `json:"urgency"`
	MoodConnotation string `json:"mood_connotation"`
	Tone            string `json:"tone"`
}

// NewThought returns a thought with every enrichment tag at its default.
func NewThought(inputText string) *Thought {
	return &Thought{
		InputText:       inputText,
		Mood:            MoodIndicative,
		Urgency:         Neutral,
		MoodConnotation: Neutral,
		Tone:            Neutral,
	}
}

// IsFactual reports whether the mood carries a fact payload.
func (t *Thought) IsFactual() bool {
	return t.Mood == MoodDeclarativeFact || t.Mood == MoodInterrogativeFact
}

// Validate enforces the contract a parser provider must honor: a factual
// mood carries exactly the matching fact field, a non-factual mood carries
// neither. Errors wrap ErrContract.
func (t *Thought) Validate() error {
	switch t.Mood {
	case MoodDeclarativeFact:
		if t.LearningFact == nil {
			return fmt.Errorf("%w: declarative_fact without learning_fact", ErrContract)
		}
		if t.QueryFact != nil {
			return fmt.Errorf("%w: declarative_fact carries query_fact", ErrContract)
		}
	case MoodInterrogativeFact:
		if t.QueryFact == nil {
			return fmt.Errorf("%w: interrogative_fact without query_fact", ErrContract)
		}
		if t.LearningFact != nil {
			return fmt.Errorf("%w: interrogative_fact carries learning_fact", ErrContract)
		}
	case MoodIndicative, MoodInterrogative:
		if t.LearningFact != nil || t.QueryFact != nil {
			return fmt.Errorf("%w: non-factual mood %q carries a fact payload", ErrContract, t.Mood)
		}
	default:
		return fmt.Errorf("%w: unknown mood %q", ErrContract, t.Mood)
	}
	return nil
}

package pattern

import (
	"context"
	"regexp"
	"strings"

	"ai-dialogue-be/pkg/parser"
	"ai-dialogue-be/pkg/semantics"
)

// Provider is a self-contained grammar-pattern parser. It recognizes the
// possessive, "of", and "what" factual sentence shapes plus a verb-driven
// fallback, so the system runs without an external NLP sidecar.
type Provider struct{}

var _ parser.Provider = &Provider{}

func NewProvider() *Provider {
	return &Provider{}
}

// Factual sentence shapes, tried in order. Articles and terminal
// punctuation are tolerated; capture groups are trimmed afterwards.
var (
	rePossessiveQuery = regexp.MustCompile(`(?i)^what(?:'s| is| are) (?:the )?([\w ]+?)'s (\w+)$`)
	reOfQuery         = regexp.MustCompile(`(?i)^what(?:'s| is| are) the (\w+) of (?:a |an |the )?([\w ]+)$`)
	reWhatRelIs       = regexp.MustCompile(`(?i)^what (\w+) is (?:a |an |the )?([\w ]+)$`)
	rePossessiveLearn = regexp.MustCompile(`(?i)^(?:a |an |the )?([\w ]+?)'s (\w+) is ([\w ]+)$`)
	reOfLearn         = regexp.MustCompile(`(?i)^the (\w+) of (?:a |an |the )?([\w ]+?) is ([\w ]+)$`)
	reArticleIs       = regexp.MustCompile(`(?i)^(?:a |an |the )([\w ]+?) is ([\w ]+)$`)
	rePronounIs       = regexp.MustCompile(`(?i)^(it|he|she|that|this) is ([\w ]+)$`)
)

// relationshipKeywords lets the parser infer which relationship a bare
// "the X is Y" statement asserts. Unmatched facts default to "state".
var relationshipKeywords = map[string][]string{
	"shape": {"round", "square", "triangular", "flat", "curved"},
	"color": {"red", "blue", "green", "yellow", "black", "white"},
}

// verbLexicon is the closed set of action lemmas the fallback parse
// recognizes. Inflected forms are reduced before lookup.
var verbLexicon = map[string]bool{
	"race": true, "rush": true, "hurry": true, "walk": true, "stroll": true,
	"wander": true, "chase": true, "write": true, "eat": true,
	"spill": true, "break": true, "lose": true, "forget": true, "drop": true,
	"run": true, "win": true, "throw": true, "catch": true, "see": true,
	"play": true, "jump": true, "drive": true, "read": true, "drink": true,
}

var irregularPast = map[string]string{
	"won": "win", "ran": "run", "broke": "break", "lost": "lose",
	"forgot": "forget", "ate": "eat", "wrote": "write", "threw": "throw",
	"caught": "catch", "saw": "see", "drove": "drive", "drank": "drink",
}

func (p *Provider) Parse(_ context.Context, text string) (*semantics.Thought, error) {
	thought := semantics.NewThought(text)

	sentence := strings.TrimSpace(text)
	isQuestion := strings.HasSuffix(sentence, "?")
	sentence = strings.TrimRight(sentence, ".!? ")

	if m := rePossessiveQuery.FindStringSubmatch(sentence); m != nil {
		return factQuery(thought, m[1], m[2]), nil
	}
	if m := reOfQuery.FindStringSubmatch(sentence); m != nil {
		return factQuery(thought, m[2], m[1]), nil
	}
	if m := reWhatRelIs.FindStringSubmatch(sentence); m != nil {
		return factQuery(thought, m[2], m[1]), nil
	}
	if m := rePossessiveLearn.FindStringSubmatch(sentence); m != nil {
		return factLearn(thought, m[1], m[2], m[3]), nil
	}
	if m := reOfLearn.FindStringSubmatch(sentence); m != nil {
		return factLearn(thought, m[2], m[1], m[3]), nil
	}
	if m := reArticleIs.FindStringSubmatch(sentence); m != nil {
		return factLearn(thought, m[1], inferRelationship(m[2]), m[2]), nil
	}
	if m := rePronounIs.FindStringSubmatch(sentence); m != nil {
		thought.Agent = m[1]
		thought.Attribute = strings.TrimSpace(m[2])
		return thought, nil
	}

	p.parseAction(thought, sentence)

	if isQuestion {
		thought.Mood = semantics.MoodInterrogative
	}
	return thought, nil
}

// parseAction is the fallback for free-form statements: find the first
// recognizable verb, treat what precedes it as the agent and what follows
// as the object.
func (p *Provider) parseAction(thought *semantics.Thought, sentence string) {
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(sentence, ",", " ")))
	for i, word := range words {
		lemma, ok := lemmatize(word)
		if !ok {
			continue
		}
		thought.Action = lemma
		if agent := stripArticle(strings.Join(words[:i], " ")); agent != "" {
			thought.Agent = agent
		}
		if object := stripArticle(strings.Join(words[i+1:], " ")); object != "" {
			thought.Object = object
		}
		return
	}
}

func lemmatize(word string) (string, bool) {
	if verbLexicon[word] {
		return word, true
	}
	if base, ok := irregularPast[word]; ok {
		return base, true
	}
	for _, candidate := range inflectionCandidates(word) {
		if verbLexicon[candidate] {
			return candidate, true
		}
	}
	return "", false
}

func inflectionCandidates(word string) []string {
	var out []string
	add := func(stem string) {
		if stem == "" {
			return
		}
		out = append(out, stem, stem+"e")
		// dropped -> dropp -> drop
		if n := len(stem); n >= 2 && stem[n-1] == stem[n-2] {
			out = append(out, stem[:n-1])
		}
	}
	switch {
	case strings.HasSuffix(word, "ing"):
		add(strings.TrimSuffix(word, "ing"))
	case strings.HasSuffix(word, "ed"):
		add(strings.TrimSuffix(word, "ed"))
		out = append(out, strings.TrimSuffix(word, "d"))
	case strings.HasSuffix(word, "s"):
		out = append(out, strings.TrimSuffix(word, "s"))
	}
	return out
}

func stripArticle(phrase string) string {
	phrase = strings.TrimSpace(phrase)
	lower := strings.ToLower(phrase)
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(lower, article) {
			return strings.TrimSpace(phrase[len(article):])
		}
	}
	return phrase
}

func inferRelationship(fact string) string {
	lower := strings.ToLower(strings.TrimSpace(fact))
	for rel, keywords := range relationshipKeywords {
		for _, kw := range keywords {
			if lower == kw {
				return rel
			}
		}
	}
	return "state"
}

func factQuery(thought *semantics.Thought, subject, relationship string) *semantics.Thought {
	thought.Mood = semantics.MoodInterrogativeFact
	thought.QueryFact = &semantics.FactQuery{
		Subject:      strings.TrimSpace(subject),
		Relationship: strings.TrimSpace(relationship),
	}
	return thought
}

func factLearn(thought *semantics.Thought, subject, relationship, fact string) *semantics.Thought {
	thought.Mood = semantics.MoodDeclarativeFact
	thought.LearningFact = &semantics.FactTriple{
		Subject:      strings.TrimSpace(subject),
		Relationship: strings.TrimSpace(relationship),
		Fact:         strings.TrimSpace(fact),
	}
	return thought
}

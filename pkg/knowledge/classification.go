package knowledge

import "strings"

// Classification decides whether a relationship holds one value per
// subject or many. The singular set is configuration, injected at
// construction so callers (and tests) can extend it without touching
// store logic. Everything outside the set is plural.
type Classification struct {
	singular map[string]bool
}

func NewClassification(singularRelationships ...string) *Classification {
	singular := make(map[string]bool, len(singularRelationships))
	for _, rel := range singularRelationships {
		singular[strings.ToLower(rel)] = true
	}
	return &Classification{singular: singular}
}

// DefaultClassification covers the curated singular relationships.
func DefaultClassification() *Classification {
	return NewClassification("shape", "capital", "state")
}

func (c *Classification) IsSingular(relationship string) bool {
	return c.singular[strings.ToLower(relationship)]
}

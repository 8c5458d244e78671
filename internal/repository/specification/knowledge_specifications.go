package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByFactKey filters knowledge facts by their normalized (subject,
// relationship) key. Keys are stored case-folded, so the match is
// case-insensitive by construction.
type ByFactKey struct {
	Subject      string
	Relationship string
}

func (s ByFactKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ? AND relationship = ?",
		strings.ToLower(s.Subject), strings.ToLower(s.Relationship))
}

// BySubject filters knowledge facts by subject only.
type BySubject struct {
	Subject string
}

func (s BySubject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ?", strings.ToLower(s.Subject))
}

// InsertionOrder sorts facts the way they were stored. The surrogate key
// is monotonic, so it carries the ordering guarantee.
type InsertionOrder struct{}

func (s InsertionOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

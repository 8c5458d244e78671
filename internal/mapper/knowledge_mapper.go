package mapper

import (
	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) FactToEntity(f *model.KnowledgeFact) *entity.KnowledgeFact {
	if f == nil {
		return nil
	}

	e := &entity.KnowledgeFact{
		Id:           f.Id,
		Subject:      f.Subject,
		Relationship: f.Relationship,
		Fact:         f.Fact,
		IsImmutable:  f.IsImmutable,
		Source:       f.Source,
		CreatedAt:    f.CreatedAt,
	}
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		e.UpdatedAt = &t
	}
	return e
}

func (m *KnowledgeMapper) FactToModel(f *entity.KnowledgeFact) *model.KnowledgeFact {
	if f == nil {
		return nil
	}

	mo := &model.KnowledgeFact{
		Id:           f.Id,
		Subject:      f.Subject,
		Relationship: f.Relationship,
		Fact:         f.Fact,
		IsImmutable:  f.IsImmutable,
		Source:       f.Source,
		CreatedAt:    f.CreatedAt,
	}
	if f.UpdatedAt != nil {
		mo.UpdatedAt = *f.UpdatedAt
	}
	return mo
}

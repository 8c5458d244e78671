package mapper

import (
	"encoding/json"
	"time"

	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DialogueMapper struct{}

func NewDialogueMapper() *DialogueMapper {
	return &DialogueMapper{}
}

// Session Mappers

func (m *DialogueMapper) SessionToEntity(s *model.DialogueSession) *entity.DialogueSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.DialogueSession{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: s.DeletedAt.Valid,
	}
}

func (m *DialogueMapper) SessionToModel(s *entity.DialogueSession) *model.DialogueSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.DialogueSession{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

// Turn Mappers

func (m *DialogueMapper) TurnToEntity(t *model.DialogueTurn) *entity.DialogueTurn {
	if t == nil {
		return nil
	}

	var enrichment entity.TurnEnrichment
	if len(t.Enrichment) > 0 {
		// Malformed rows degrade to empty enrichment rather than failing the read
		_ = json.Unmarshal(t.Enrichment, &enrichment)
	}

	return &entity.DialogueTurn{
		Id:                t.Id,
		DialogueSessionId: t.DialogueSessionId,
		InputText:         t.InputText,
		Reply:             t.Reply,
		Mood:              t.Mood,
		Tone:              t.Tone,
		Outcome:           t.Outcome,
		Enrichment:        enrichment,
		CreatedAt:         t.CreatedAt,
	}
}

func (m *DialogueMapper) TurnToModel(t *entity.DialogueTurn) *model.DialogueTurn {
	if t == nil {
		return nil
	}

	enrichment, err := json.Marshal(t.Enrichment)
	if err != nil {
		enrichment = []byte("{}")
	}

	return &model.DialogueTurn{
		Id:                t.Id,
		DialogueSessionId: t.DialogueSessionId,
		InputText:         t.InputText,
		Reply:             t.Reply,
		Mood:              t.Mood,
		Tone:              t.Tone,
		Outcome:           t.Outcome,
		Enrichment:        datatypes.JSON(enrichment),
		CreatedAt:         t.CreatedAt,
	}
}

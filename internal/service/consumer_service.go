package service

import (
	"context"
	"encoding/json"

	"ai-dialogue-be/internal/dto"
	"ai-dialogue-be/internal/entity"
	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains completed turns off the in-process bus and writes
// them to the transcript table, keeping the reply path free of that write.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishTurnCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal turn message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become valid, drop them
		return
	}

	turn := entity.DialogueTurn{
		Id:                payload.TurnId,
		DialogueSessionId: payload.SessionId,
		InputText:         payload.InputText,
		Reply:             payload.Reply,
		Mood:              payload.Mood,
		Tone:              payload.Tone,
		Outcome:           payload.Outcome,
		Enrichment: entity.TurnEnrichment{
			Agent:           payload.Enrichment.Agent,
			Object:          payload.Enrichment.Object,
			Attribute:       payload.Enrichment.Attribute,
			Action:          payload.Enrichment.Action,
			Urgency:         payload.Enrichment.Urgency,
			MoodConnotation: payload.Enrichment.MoodConnotation,
		},
		CreatedAt: payload.OccurredAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DialogueTurnRepository().Create(ctx, &turn); err != nil {
		cs.logger.Error("ConsumerService", "Failed to persist turn", map[string]interface{}{
			"session_id": payload.SessionId,
			"turn_id":    payload.TurnId,
			"error":      err.Error(),
		})
		msg.Nack() // retriable, the DB may come back
		return
	}

	cs.logger.Debug("ConsumerService", "Turn persisted", map[string]interface{}{
		"session_id": payload.SessionId,
		"turn_id":    payload.TurnId,
	})
	msg.Ack()
}

package service

import (
	"context"
	"fmt"

	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/pkg/events"
	pktNats "ai-dialogue-be/pkg/nats"

	"github.com/google/uuid"
)

// EventDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type EventDelivery interface {
	SendToSession(sessionID uuid.UUID, event string, payload map[string]interface{})
	Broadcast(event string, payload map[string]interface{})
}

// NotificationService relays bus events to connected session observers.
// Fact events carry no session and go out to everyone watching the agent.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   EventDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery EventDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("dialogue-notifier", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to event stream", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := event.EventType()
	payload := event.Payload()

	s.logger.Info("NotificationService", fmt.Sprintf("Relaying event: %s", typeCode), map[string]interface{}{"type": typeCode})

	if s.delivery == nil {
		return nil
	}

	if sessionID, ok := sessionIDOf(payload); ok {
		s.delivery.SendToSession(sessionID, typeCode, payload)
		return nil
	}

	s.delivery.Broadcast(typeCode, payload)
	return nil
}

func sessionIDOf(payload map[string]interface{}) (uuid.UUID, bool) {
	raw, ok := payload["session_id"]
	if !ok {
		return uuid.Nil, false
	}
	switch v := raw.(type) {
	case uuid.UUID:
		return v, true
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	default:
		return uuid.Nil, false
	}
}

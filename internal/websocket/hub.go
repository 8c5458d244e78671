package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"ai-dialogue-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Hub struct {
	// Registered observers map: SessionID -> List of Clients (multi-tab)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Observer registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Session has no observers left", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// deliverAll fans data out to every registered observer. Sends happen
// under the read lock so a Send channel cannot be closed mid-send; the
// unregister path in Run is the only place that closes one. Observers
// with a full buffer are detached after the lock is released.
func (h *Hub) deliverAll(data []byte) {
	h.mu.RLock()
	var dropped []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				dropped = append(dropped, client)
			}
		}
	}
	h.mu.RUnlock()
	h.detach(dropped)
}

// deliverToSession fans data out to the observers of one session.
func (h *Hub) deliverToSession(sessionID uuid.UUID, data []byte) {
	h.mu.RLock()
	var dropped []*Client
	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			dropped = append(dropped, client)
		}
	}
	h.mu.RUnlock()
	h.detach(dropped)
}

func (h *Hub) detach(dropped []*Client) {
	for _, client := range dropped {
		h.logger.Warn("Hub", "Observer send buffer full, dropping observer", map[string]interface{}{"session_id": client.SessionID})
		h.unregister <- client
	}
}

// Broadcast pushes an event to every connected observer. Used for global
// knowledge events that are not tied to a single session.
func (h *Hub) Broadcast(event string, payload map[string]interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})

	h.deliverAll(data)

	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_session_id": "*",
			"message":           data,
		}
		jsonEnvelope, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonEnvelope)
	}
}

// SendToSession pushes an event to the observers of one dialogue session.
func (h *Hub) SendToSession(sessionID uuid.UUID, event string, payload map[string]interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})

	h.deliverToSession(sessionID, data)

	// Other instances may hold observers of the same session.
	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_session_id": sessionID.String(),
			"message":           data,
		}
		jsonEnvelope, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonEnvelope)
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to one shared channel carrying
	// {target_session_id, message} envelopes and delivers whatever it
	// holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var envelope struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if envelope.TargetSessionID == "*" {
			h.deliverAll(envelope.Message)
			continue
		}

		sid, err := uuid.Parse(envelope.TargetSessionID)
		if err != nil {
			continue
		}
		h.deliverToSession(sid, envelope.Message)
	}
}

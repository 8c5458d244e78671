package websocket

import (
	"path/filepath"
	"testing"
	"time"

	"ai-dialogue-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "hub.log"))
	h := NewHub(nil, log)
	go h.Run()
	return h
}

func (h *Hub) observerCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func TestHubDropsSlowObserverOnce(t *testing.T) {
	h := newTestHub(t)
	sessionID := uuid.New()

	slow := &Client{Hub: h, SessionID: sessionID, Send: make(chan []byte, 1)}
	h.register <- slow

	require.Eventually(t, func() bool {
		return h.observerCount(sessionID) == 1
	}, time.Second, 10*time.Millisecond)

	// First event fills the buffer, the next two find it full. A second
	// full-buffer hit must not close the channel again.
	h.Broadcast("TURN_COMPLETED", map[string]interface{}{"n": 1})
	h.Broadcast("TURN_COMPLETED", map[string]interface{}{"n": 2})
	h.SendToSession(sessionID, "TURN_COMPLETED", map[string]interface{}{"n": 3})

	require.Eventually(t, func() bool {
		return h.observerCount(sessionID) == 0
	}, time.Second, 10*time.Millisecond)

	_, open := <-slow.Send
	assert.True(t, open, "buffered event should still be readable")
	_, open = <-slow.Send
	assert.False(t, open, "channel should be closed exactly once")
}

func TestHubSendToSessionReachesOnlyItsObservers(t *testing.T) {
	h := newTestHub(t)
	target := uuid.New()
	other := uuid.New()

	observer := &Client{Hub: h, SessionID: target, Send: make(chan []byte, 4)}
	bystander := &Client{Hub: h, SessionID: other, Send: make(chan []byte, 4)}
	h.register <- observer
	h.register <- bystander

	require.Eventually(t, func() bool {
		return h.observerCount(target) == 1 && h.observerCount(other) == 1
	}, time.Second, 10*time.Millisecond)

	h.SendToSession(target, "SESSION_CLOSED", map[string]interface{}{"session_id": target.String()})

	select {
	case msg := <-observer.Send:
		assert.Contains(t, string(msg), "SESSION_CLOSED")
	case <-time.After(time.Second):
		t.Fatal("observer never received the event")
	}
	assert.Empty(t, bystander.Send)
}

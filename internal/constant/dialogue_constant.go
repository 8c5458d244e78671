package constant

const (
	// Async pipeline topics
	TurnCompletedTopicName = "TURN_COMPLETED"

	// WebSocket event names pushed to session observers. Fact events use
	// the codes from pkg/events.
	WsEventTurnCompleted  = "TURN_COMPLETED"
	WsEventSessionClosed  = "SESSION_CLOSED"
	WsEventSessionCreated = "SESSION_CREATED"

	// Default session title until the first turn names it
	DefaultSessionTitle = "New Conversation"
)

package service

// Broadcaster streams diagnostic events to connected observers (avoids
// import cycle with the ws package). Sends are fire-and-forget: a slow or
// absent listener never affects the advisory flow.
type Broadcaster interface {
	BroadcastToSession(advisorID string, msgType string, payload interface{})
}

// noopBroadcaster is used until a real hub is injected
type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastToSession(string, string, interface{}) {}

package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Diagnostic event types streamed to advisory session observers
const (
	MsgFallbackActivated MessageType = "fallback_activated"
	MsgDecisionRecorded  MessageType = "decision_recorded"
	MsgSessionReset      MessageType = "session_reset"
	MsgReportReady       MessageType = "report_ready"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per advisory session. A session may
// have several observers (e.g. the user's app plus a support console); each
// event goes to all of them.
type Hub struct {
	// advisorID -> connection set
	sessionConns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection observing one session
type Connection struct {
	AdvisorID string
	UserID    string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast to a session
type BroadcastMessage struct {
	AdvisorID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		sessionConns: make(map[string]map[*Connection]bool),
		register:     make(chan *Connection),
		unregister:   make(chan *Connection),
		broadcast:    make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.sessionConns[conn.AdvisorID] == nil {
				h.sessionConns[conn.AdvisorID] = make(map[*Connection]bool)
			}
			h.sessionConns[conn.AdvisorID][conn] = true
			log.Printf("User %s observing session %s", conn.UserID, conn.AdvisorID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.sessionConns[conn.AdvisorID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("User %s stopped observing session %s", conn.UserID, conn.AdvisorID)
				}
				if len(conns) == 0 {
					delete(h.sessionConns, conn.AdvisorID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.sessionConns[msg.AdvisorID] {
				select {
				case conn.Send <- data:
				default:
					// drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToSession sends a message to all observers of an advisory
// session (implements service.Broadcaster)
func (h *Hub) BroadcastToSession(advisorID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		AdvisorID: advisorID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

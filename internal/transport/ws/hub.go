package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgCrawlStarted     MessageType = "crawl_started"
	MsgSynsetDiscovered MessageType = "synset_discovered"
	MsgRelationSeen     MessageType = "relation_seen"
	MsgCrawlFinished    MessageType = "crawl_finished"
	MsgCrawlFailed      MessageType = "crawl_failed"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket watchers subscribed to crawl runs
type Hub struct {
	// Run -> connections
	watchers map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	RunID  string
	HostID string
	Send   chan []byte
	Hub    *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	RunID   string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		watchers:   make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.RunID] == nil {
				h.watchers[conn.RunID] = make(map[*Connection]bool)
			}
			h.watchers[conn.RunID][conn] = true
			log.Printf("Watcher %s subscribed to run %s", conn.HostID, conn.RunID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.RunID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("Watcher %s unsubscribed from run %s", conn.HostID, conn.RunID)
				}
				if len(conns) == 0 {
					delete(h.watchers, conn.RunID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.watchers[msg.RunID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
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

// BroadcastToRun sends a message to every watcher of a run
func (h *Hub) BroadcastToRun(runID string, msgType MessageType, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		RunID: runID,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}

package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// MsgError is sent when the server cannot serve a connection
const MsgError MessageType = "error"

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for rooms
type Hub struct {
	// roomCode -> participantID -> conn
	conns map[string]map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one participant's WebSocket
type Connection struct {
	RoomCode      string
	ParticipantID string
	Send          chan []byte
	Hub           *Hub
}

// BroadcastMessage is a message to deliver
type BroadcastMessage struct {
	RoomCode string
	To       string // Empty means everyone in the room
	Message  *Message
	// Close drops every socket of the room once earlier messages are queued
	Close bool
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[string]*Connection),
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
			if h.conns[conn.RoomCode] == nil {
				h.conns[conn.RoomCode] = make(map[string]*Connection)
			}
			// a reconnect replaces the older socket
			if old, ok := h.conns[conn.RoomCode][conn.ParticipantID]; ok && old != conn {
				close(old.Send)
			}
			h.conns[conn.RoomCode][conn.ParticipantID] = conn
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.conns[conn.RoomCode]; ok {
				if existing, ok := room[conn.ParticipantID]; ok && existing == conn {
					delete(room, conn.ParticipantID)
					close(conn.Send)
					if len(room) == 0 {
						delete(h.conns, conn.RoomCode)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			if msg.Close {
				h.mu.Lock()
				for _, conn := range h.conns[msg.RoomCode] {
					close(conn.Send)
				}
				delete(h.conns, msg.RoomCode)
				h.mu.Unlock()
				log.Printf("Disconnected all sockets of room %s", msg.RoomCode)
				continue
			}
			h.mu.RLock()
			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.mu.RUnlock()
				log.Printf("ws: marshal %s: %v", msg.Message.Type, err)
				continue
			}
			room := h.conns[msg.RoomCode]
			if msg.To != "" {
				if conn, ok := room[msg.To]; ok {
					deliver(conn, data)
				}
			} else {
				for _, conn := range room {
					deliver(conn, data)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// deliver drops the message if the connection's buffer is full
func deliver(conn *Connection, data []byte) {
	select {
	case conn.Send <- data:
	default:
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

// Connected returns the number of open sockets in a room
func (h *Hub) Connected(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[roomCode])
}

// SendToParticipant sends a message to one participant (implements service.Broadcaster)
func (h *Hub) SendToParticipant(roomCode, participantID string, msgType string, payload interface{}) {
	h.enqueue(roomCode, participantID, msgType, payload)
}

// BroadcastToRoom sends a message to every participant in a room (implements service.Broadcaster)
func (h *Hub) BroadcastToRoom(roomCode string, msgType string, payload interface{}) {
	h.enqueue(roomCode, "", msgType, payload)
}

// DisconnectRoom closes every socket of a room (implements service.Broadcaster)
func (h *Hub) DisconnectRoom(roomCode string) {
	h.broadcast <- &BroadcastMessage{RoomCode: roomCode, Close: true}
}

func (h *Hub) enqueue(roomCode, to, msgType string, payload interface{}) {
	data, err := encodeMessage(MessageType(msgType), payload)
	if err != nil {
		log.Printf("ws: encode %s: %v", msgType, err)
		return
	}
	h.broadcast <- &BroadcastMessage{RoomCode: roomCode, To: to, Message: data}
}

func encodeMessage(msgType MessageType, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Payload: data}, nil
}

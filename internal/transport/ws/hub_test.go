package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func recv(t *testing.T, conn *Connection) Message {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		if !ok {
			t.Fatalf("connection closed")
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("bad frame: %v", err)
		}
		return msg
	case <-time.After(time.Second):
		t.Fatalf("no message for %s", conn.ParticipantID)
	}
	return Message{}
}

func TestHubRoutesPerParticipant(t *testing.T) {
	hub := NewHub()
	alice := &Connection{RoomCode: "ABC234", ParticipantID: "p_a", Send: make(chan []byte, 4), Hub: hub}
	bob := &Connection{RoomCode: "ABC234", ParticipantID: "p_b", Send: make(chan []byte, 4), Hub: hub}
	other := &Connection{RoomCode: "XYZ789", ParticipantID: "p_c", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(alice)
	hub.Register(bob)
	hub.Register(other)

	hub.SendToParticipant("ABC234", "p_a", "room_update", map[string]string{"you": "p_a"})
	hub.BroadcastToRoom("ABC234", "round_resolved", map[string]int{"round": 1})

	if msg := recv(t, alice); msg.Type != "room_update" || string(msg.Payload) != `{"you":"p_a"}` {
		t.Fatalf("alice got %s %s", msg.Type, msg.Payload)
	}
	if msg := recv(t, alice); msg.Type != "round_resolved" {
		t.Fatalf("alice got %s", msg.Type)
	}
	if msg := recv(t, bob); msg.Type != "round_resolved" {
		t.Fatalf("bob should only see the room broadcast, got %s", msg.Type)
	}
	select {
	case data := <-other.Send:
		t.Fatalf("other room received %s", data)
	case <-time.After(50 * time.Millisecond):
	}
	if hub.Connected("ABC234") != 2 {
		t.Fatalf("connected = %d, want 2", hub.Connected("ABC234"))
	}
}

func TestHubDisconnectRoomClosesSockets(t *testing.T) {
	hub := NewHub()
	conn := &Connection{RoomCode: "ABC234", ParticipantID: "p_a", Send: make(chan []byte, 1), Hub: hub}
	hub.Register(conn)
	hub.DisconnectRoom("ABC234")

	select {
	case _, ok := <-conn.Send:
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("socket not closed")
	}
	if hub.Connected("ABC234") != 0 {
		t.Fatalf("room still tracked")
	}
}

func TestDisconnectRoomAfterQueuedMessages(t *testing.T) {
	hub := NewHub()
	conn := &Connection{RoomCode: "ABC234", ParticipantID: "p_a", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(conn)

	hub.BroadcastToRoom("ABC234", "game_finished", map[string]int{"p_a": 9})
	hub.DisconnectRoom("ABC234")

	if msg := recv(t, conn); msg.Type != "game_finished" {
		t.Fatalf("expected game_finished before close, got %s", msg.Type)
	}
	select {
	case _, ok := <-conn.Send:
		if ok {
			t.Fatalf("expected closed channel after the last message")
		}
	case <-time.After(time.Second):
		t.Fatalf("socket not closed")
	}
}

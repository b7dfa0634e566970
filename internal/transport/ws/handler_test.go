package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"sanguo/internal/catalog"
	"sanguo/internal/config"
	"sanguo/internal/model"
	"sanguo/internal/service"
	"sanguo/internal/store"
)

func readView(t *testing.T, c *websocket.Conn) (MessageType, model.RoomView) {
	t.Helper()
	c.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := c.ReadJSON(&msg); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var view model.RoomView
	if msg.Type == MessageType(service.MsgRoomUpdate) {
		if err := json.Unmarshal(msg.Payload, &view); err != nil {
			t.Fatalf("bad view: %v", err)
		}
	}
	return msg.Type, view
}

func TestRoomWSSendsViewThenUpdates(t *testing.T) {
	auth := service.NewAuthService("test-secret")
	roomSvc := service.NewRoomService(store.NewRoomStore(), catalog.Default(catalog.DefaultStats), config.DefaultGameConfig(), nil, auth, service.NewAuditor(nil))
	hub := NewHub()
	roomSvc.SetBroadcaster(hub)

	r := mux.NewRouter()
	r.HandleFunc("/ws/rooms/{code}", NewHandler(hub, auth, roomSvc).RoomWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx := context.Background()
	code, err := roomSvc.CreateRoom(ctx)
	if err != nil {
		t.Fatalf("CreateRoom err: %v", err)
	}
	joined, err := roomSvc.JoinRoom(ctx, code, "liu_bei")
	if err != nil {
		t.Fatalf("JoinRoom err: %v", err)
	}
	base := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/rooms/"

	c, _, err := websocket.DefaultDialer.Dial(base+code+"?token="+joined.Token, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	typ, view := readView(t, c)
	if typ != MessageType(service.MsgRoomUpdate) || view.Code != code || view.YourFaction != "" {
		t.Fatalf("first frame = %s %+v", typ, view)
	}

	if _, err := roomSvc.AssignFaction(ctx, code, joined.ParticipantID, model.FactionShu); err != nil {
		t.Fatalf("AssignFaction err: %v", err)
	}
	typ, view = readView(t, c)
	if typ != MessageType(service.MsgRoomUpdate) || view.YourFaction != model.FactionShu {
		t.Fatalf("update frame = %s faction=%q", typ, view.YourFaction)
	}

	other, err := roomSvc.CreateRoom(ctx)
	if err != nil {
		t.Fatalf("CreateRoom err: %v", err)
	}
	_, resp, err := websocket.DefaultDialer.Dial(base+other+"?token="+joined.Token, nil)
	if err == nil || resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("token for another room should get 403, err=%v resp=%v", err, resp)
	}
}

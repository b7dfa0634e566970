package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"sanguo/internal/model"
	"sanguo/internal/service"
	"sanguo/internal/transport/rest/middleware"
)

// RoomHandler handles lobby endpoints
type RoomHandler struct {
	roomSvc *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomSvc *service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// Create handles POST /v1/rooms
// @Summary Create a room
// @Tags rooms
// @Produce json
// @Success 201 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	code, err := h.roomSvc.CreateRoom(r.Context())
	if err != nil {
		log.Printf("create room: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"roomCode": code})
}

// JoinRequest is the request body for joining a room
type JoinRequest struct {
	Nickname string `json:"nickname"`
}

// Join handles POST /v1/rooms/{code}/join
// @Summary Join a room in lobby
// @Tags rooms
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param body body JoinRequest true "Nickname"
// @Success 200 {object} model.JoinResponse
// @Router /rooms/{code}/join [post]
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Nickname == "" {
		writeError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	resp, err := h.roomSvc.JoinRoom(r.Context(), code, req.Nickname)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/rooms/{code}
// @Summary Caller's view of the room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {object} model.RoomView
// @Router /rooms/{code} [get]
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	view, err := h.roomSvc.GetView(r.Context(), code, middleware.GetParticipantID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// FactionRequest is the request body for claiming a faction
type FactionRequest struct {
	Faction model.Faction `json:"faction"`
}

// Faction handles POST /v1/rooms/{code}/faction
// @Summary Claim a faction
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Param body body FactionRequest true "Faction"
// @Success 200 {object} service.ActionResult
// @Router /rooms/{code}/faction [post]
func (h *RoomHandler) Faction(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req FactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.roomSvc.AssignFaction(r.Context(), code, middleware.GetParticipantID(r.Context()), req.Faction)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Start handles POST /v1/rooms/{code}/start
// @Summary Start the game
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {object} service.ActionResult
// @Router /rooms/{code}/start [post]
func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	res, err := h.roomSvc.StartGame(r.Context(), code, middleware.GetParticipantID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Leaderboard handles GET /v1/rooms/{code}/leaderboard
// @Summary Room standings
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/leaderboard [get]
func (h *RoomHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	entries, err := h.roomSvc.Leaderboard(r.Context(), code, middleware.GetParticipantID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}

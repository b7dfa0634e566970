package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sanguo/internal/service"
	"sanguo/internal/transport/rest/middleware"
)

// GameHandler handles per-round endpoints
type GameHandler struct {
	roomSvc *service.RoomService
}

// NewGameHandler creates a new game handler
func NewGameHandler(roomSvc *service.RoomService) *GameHandler {
	return &GameHandler{roomSvc: roomSvc}
}

// SelectionRequest is the sealed bid for the current round
type SelectionRequest struct {
	Cards []string `json:"cards"`
}

// Select handles POST /v1/rooms/{code}/selection
// @Summary Submit three characters for the round
// @Tags game
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Param body body SelectionRequest true "Characters"
// @Success 200 {object} service.ActionResult
// @Router /rooms/{code}/selection [post]
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.roomSvc.SubmitSelection(r.Context(), code, middleware.GetParticipantID(r.Context()), req.Cards)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Resolve handles POST /v1/rooms/{code}/resolve
// @Summary Draw the attribute and score the round
// @Tags game
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {object} service.ActionResult
// @Router /rooms/{code}/resolve [post]
func (h *GameHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	res, err := h.roomSvc.ResolveRound(r.Context(), code, middleware.GetParticipantID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Advance handles POST /v1/rooms/{code}/advance
// @Summary Continue to the next round or finish
// @Tags game
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {object} service.ActionResult
// @Router /rooms/{code}/advance [post]
func (h *GameHandler) Advance(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	res, err := h.roomSvc.AdvanceRound(r.Context(), code, middleware.GetParticipantID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

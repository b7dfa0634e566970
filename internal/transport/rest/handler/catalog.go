package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sanguo/internal/model"
	"sanguo/internal/service"
	"sanguo/internal/transport/rest/middleware"
)

// Roster is the part of the catalog the handler lists
type Roster interface {
	ByFaction() map[model.Faction][]model.Character
}

// CatalogHandler serves read-only reference data and the archive
type CatalogHandler struct {
	roster  Roster
	archive *service.ArchiveService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(roster Roster, archive *service.ArchiveService) *CatalogHandler {
	return &CatalogHandler{roster: roster, archive: archive}
}

// Catalog handles GET /v1/catalog
// @Summary Character roster by faction
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]model.Character
// @Router /catalog [get]
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.roster.ByFaction())
}

// RecentGames handles GET /v1/games/recent
// @Summary Recently finished games
// @Tags archive
// @Produce json
// @Param limit query int false "Max games" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /games/recent [get]
func (h *CatalogHandler) RecentGames(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	games, err := h.archive.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("recent games: %v", err)
		writeError(w, http.StatusServiceUnavailable, "archive unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// Game handles GET /v1/games/{id}
// @Summary One archived game
// @Tags archive
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} model.GameRecord
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func (h *CatalogHandler) Game(w http.ResponseWriter, r *http.Request) {
	rec, err := h.archive.Game(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrGameNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("archived game: %v", err)
		writeError(w, http.StatusServiceUnavailable, "archive unavailable")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// RoomHistory handles GET /v1/rooms/{code}/history
// @Summary Finished games of the caller's room
// @Tags archive
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/history [get]
func (h *CatalogHandler) RoomHistory(w http.ResponseWriter, r *http.Request) {
	games, err := h.archive.RoomHistory(r.Context(), middleware.GetRoomCode(r.Context()))
	if err != nil {
		log.Printf("room history: %v", err)
		writeError(w, http.StatusServiceUnavailable, "archive unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sanguo/internal/game"
	"sanguo/internal/service"
	"sanguo/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service errors onto HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrUnknownParticipant):
		writeError(w, http.StatusForbidden, err.Error())
	case game.IsValidation(err), errors.Is(err, service.ErrInvalidNickname):
		writeError(w, http.StatusBadRequest, err.Error())
	case game.IsStateMismatch(err):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/kyotto/catalog-services/internal/catalogsvc/models"
	"github.com/kyotto/catalog-services/internal/catalogsvc/service"
)

type createGameRequest struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// CreateGame persists a new catalog entry.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.catalog.AddGame(r.Context(), models.Game{
		Title:    req.Title,
		Image:    req.Image,
		Platform: req.Platform,
		Link:     req.Link,
	})
	if err != nil {
		if errors.Is(err, service.ErrFieldsRequired) {
			h.writeMessage(w, http.StatusBadRequest, "all fields are required")
			return
		}

		// store errors are logged in full but never echoed to the caller
		log.Errorf("failed to add game: %v", err)
		h.writeMessage(w, http.StatusInternalServerError, "failed to add game")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "game added successfully",
		"game":    game,
	})
}

// SearchGames lists recent games, or the games matching the q query param.
func (h *Handler) SearchGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalog.SearchGames(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Errorf("failed to search games: %v", err)
		h.writeMessage(w, http.StatusInternalServerError, "failed to search games")
		return
	}

	if games == nil {
		games = []models.Game{}
	}

	h.writeJSON(w, http.StatusOK, games)
}

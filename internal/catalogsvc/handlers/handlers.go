package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/kyotto/catalog-services/internal/catalogsvc/models"
)

// GameCatalog is what the handlers need from the service layer.
type GameCatalog interface {
	AddGame(ctx context.Context, game models.Game) (*models.Game, error)
	SearchGames(ctx context.Context, term string) ([]models.Game, error)
}

type Handler struct {
	catalog     GameCatalog
	adminSecret string
}

func NewHandler(catalog GameCatalog, adminSecret string) *Handler {
	return &Handler{
		catalog:     catalog,
		adminSecret: adminSecret,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to write response: %v", err)
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"message": msg})
}

// HealthHandler confirms the service is up.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Kyotto Projects API is up!"))
}

// AdminOnly rejects requests whose x-admin-secret-key header does not match
// the configured secret. The compare is constant-time.
func (h *Handler) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("x-admin-secret-key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(h.adminSecret)) != 1 {
			h.writeMessage(w, http.StatusUnauthorized, "unauthorized: invalid admin key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

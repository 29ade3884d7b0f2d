package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kyotto/catalog-services/internal/catalogsvc/handlers"
	"github.com/kyotto/catalog-services/internal/catalogsvc/models"
	"github.com/kyotto/catalog-services/internal/catalogsvc/service"
)

const testSecret = "test-admin-secret"

// Compile-time check to ensure memGameStore implements service.GameStore
var _ service.GameStore = (*memGameStore)(nil)

// memGameStore is an in-memory stand-in for the Mongo-backed store.
type memGameStore struct {
	games []models.Game
	err   error
}

func (m *memGameStore) Create(ctx context.Context, game models.Game) (*models.Game, error) {
	if m.err != nil {
		return nil, m.err
	}

	game.ID = primitive.NewObjectID()
	game.CreatedAt = time.Now().UTC().Add(time.Duration(len(m.games)) * time.Second)
	game.UpdatedAt = game.CreatedAt
	m.games = append(m.games, game)

	return &game, nil
}

func (m *memGameStore) Recent(ctx context.Context, limit int64) ([]models.Game, error) {
	if m.err != nil {
		return nil, m.err
	}

	recent := []models.Game{}
	for i := len(m.games) - 1; i >= 0 && int64(len(recent)) < limit; i-- {
		recent = append(recent, m.games[i])
	}

	return recent, nil
}

func (m *memGameStore) SearchByTitle(ctx context.Context, term string, limit int64) ([]models.Game, error) {
	if m.err != nil {
		return nil, m.err
	}

	found := []models.Game{}
	for _, g := range m.games {
		if int64(len(found)) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(g.Title), strings.ToLower(term)) {
			found = append(found, g)
		}
	}

	return found, nil
}

func newTestRouter(store *memGameStore) *chi.Mux {
	h := handlers.NewHandler(service.NewGameService(store), testSecret)
	r := chi.NewRouter()
	h.SetRoutes(r)
	return r
}

func postGame(t *testing.T, r http.Handler, secret string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("x-admin-secret-key", secret)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func searchGames(t *testing.T, r http.Handler, query string) (*httptest.ResponseRecorder, []models.Game) {
	t.Helper()

	target := "/api/games/search"
	if query != "" {
		target += "?q=" + query
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	games := []models.Game{}
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	}

	return w, games
}

func validBody() map[string]string {
	return map[string]string{
		"title":    "Chess",
		"image":    "img.png",
		"platform": "PC",
		"link":     "http://x",
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(&memGameStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "up")
}

func TestCreateGame_Success(t *testing.T) {
	store := &memGameStore{}
	r := newTestRouter(store)

	w := postGame(t, r, testSecret, validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string      `json:"message"`
		Game    models.Game `json:"game"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, "Chess", resp.Game.Title)
	assert.False(t, resp.Game.ID.IsZero())
	assert.False(t, resp.Game.CreatedAt.IsZero())
	assert.Len(t, store.games, 1)
}

func TestCreateGame_WrongSecret(t *testing.T) {
	store := &memGameStore{}
	r := newTestRouter(store)

	w := postGame(t, r, "wrong-secret", validBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.games, "no record may be created without a valid key")
}

func TestCreateGame_MissingSecret(t *testing.T) {
	store := &memGameStore{}
	r := newTestRouter(store)

	w := postGame(t, r, "", validBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.games)
}

func TestCreateGame_MissingField(t *testing.T) {
	for _, field := range []string{"title", "image", "platform", "link"} {
		t.Run("no "+field, func(t *testing.T) {
			store := &memGameStore{}
			r := newTestRouter(store)

			body := validBody()
			delete(body, field)

			w := postGame(t, r, testSecret, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, store.games)
		})
	}
}

func TestCreateGame_InvalidBody(t *testing.T) {
	r := newTestRouter(&memGameStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/games", strings.NewReader("not json"))
	req.Header.Set("x-admin-secret-key", testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGame_StoreErrorIsRedacted(t *testing.T) {
	store := &memGameStore{err: fmt.Errorf("dial tcp 10.0.0.1:27017: connection refused")}
	r := newTestRouter(store)

	w := postGame(t, r, testSecret, validBody())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1", "internal error detail must not leak")
}

func TestSearchGames_CreateThenFind(t *testing.T) {
	store := &memGameStore{}
	r := newTestRouter(store)

	w := postGame(t, r, testSecret, validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	resp, games := searchGames(t, r, "chess")
	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, games, 1)
	assert.Equal(t, "Chess", games[0].Title)
}

func TestSearchGames_NoMatchIsEmptyArray(t *testing.T) {
	r := newTestRouter(&memGameStore{})

	resp, games := searchGames(t, r, "zelda")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, games)
	assert.Equal(t, "[]\n", resp.Body.String())
}

func TestSearchGames_NoQueryReturnsNewestSix(t *testing.T) {
	store := &memGameStore{}
	r := newTestRouter(store)

	for i := 0; i < 8; i++ {
		body := validBody()
		body["title"] = fmt.Sprintf("Game %d", i)
		w := postGame(t, r, testSecret, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, games := searchGames(t, r, "")
	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, games, 6)

	// newest first
	assert.Equal(t, "Game 7", games[0].Title)
	assert.Equal(t, "Game 2", games[5].Title)
	for i := 1; i < len(games); i++ {
		assert.False(t, games[i].CreatedAt.After(games[i-1].CreatedAt))
	}
}

func TestSearchGames_ResultCapAtTwenty(t *testing.T) {
	store := &memGameStore{}
	r := newTestRouter(store)

	for i := 0; i < 25; i++ {
		body := validBody()
		body["title"] = fmt.Sprintf("Chess Vol. %d", i)
		w := postGame(t, r, testSecret, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, games := searchGames(t, r, "chess")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, games, 20)
}

func TestSearchGames_StoreError(t *testing.T) {
	store := &memGameStore{err: fmt.Errorf("no reachable servers")}
	r := newTestRouter(store)

	resp, _ := searchGames(t, r, "chess")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

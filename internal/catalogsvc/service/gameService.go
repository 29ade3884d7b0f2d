package service

import (
	"context"
	"errors"

	"github.com/kyotto/catalog-services/internal/catalogsvc/models"
)

const (
	// recentLimit caps the default listing when no search term is given.
	recentLimit = 6
	// searchLimit caps the result set of a text search.
	searchLimit = 20
)

// ErrFieldsRequired is returned when a submitted game misses any required field.
var ErrFieldsRequired = errors.New("all fields are required")

// GameStore is the persistence surface the service needs.
type GameStore interface {
	Create(ctx context.Context, game models.Game) (*models.Game, error)
	Recent(ctx context.Context, limit int64) ([]models.Game, error)
	SearchByTitle(ctx context.Context, term string, limit int64) ([]models.Game, error)
}

type GameService struct {
	gameStore GameStore
}

func NewGameService(gameStore GameStore) *GameService {
	return &GameService{gameStore: gameStore}
}

// AddGame validates the submitted fields and persists a new game. The store is
// not touched unless all four fields are present.
func (s *GameService) AddGame(ctx context.Context, game models.Game) (*models.Game, error) {
	if game.Title == "" || game.Image == "" || game.Platform == "" || game.Link == "" {
		return nil, ErrFieldsRequired
	}

	return s.gameStore.Create(ctx, game)
}

// SearchGames returns the newest games when term is empty, otherwise the games
// whose title contains term, case-insensitively.
func (s *GameService) SearchGames(ctx context.Context, term string) ([]models.Game, error) {
	if term == "" {
		return s.gameStore.Recent(ctx, recentLimit)
	}

	return s.gameStore.SearchByTitle(ctx, term, searchLimit)
}

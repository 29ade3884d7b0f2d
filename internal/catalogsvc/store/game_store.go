package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kyotto/catalog-services/internal/catalogsvc/models"
)

const GamesCollection = "games"

const queryTimeout = 10 * time.Second

type GameStore struct {
	coll *mongo.Collection
}

func NewGameStore(db *mongo.Database) *GameStore {
	return &GameStore{coll: db.Collection(GamesCollection)}
}

// Create inserts a new game with a server-assigned id and timestamps.
func (s *GameStore) Create(ctx context.Context, game models.Game) (*models.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now().UTC()
	game.ID = primitive.NewObjectID()
	game.CreatedAt = now
	game.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to insert game: %w", err)
	}

	return &game, nil
}

// Recent returns the most recently created games, newest first.
func (s *GameStore) Recent(ctx context.Context, limit int64) ([]models.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}

	games := []models.Game{}
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode recent games: %w", err)
	}

	return games, nil
}

// SearchByTitle returns games whose title contains term, case-insensitively,
// in the collection's natural order.
func (s *GameStore) SearchByTitle(ctx context.Context, term string, limit int64) ([]models.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"title": primitive.Regex{Pattern: titlePattern(term), Options: "i"}}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search games: %w", err)
	}

	games := []models.Game{}
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	return games, nil
}

// titlePattern escapes regex metacharacters so user text always matches as a
// literal substring.
func titlePattern(term string) string {
	return regexp.QuoteMeta(term)
}

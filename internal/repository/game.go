package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/gess-backend/internal/apperror"
	"github.com/rocketscienceinc/gess-backend/internal/entity"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// memGame keeps deep copies, so callers never share state with the store.
type memGame struct {
	mu    sync.RWMutex
	games map[string]*entity.Game
}

func NewGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*entity.Game),
	}
}

func (that *memGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to store game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	existingGame, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return existingGame.Clone(), nil
}

func (that *memGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	delete(that.games, id)

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gess-backend/internal/apperror"
	"github.com/rocketscienceinc/gess-backend/internal/entity"
	"github.com/rocketscienceinc/gess-backend/internal/gess"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager applies moves to stored games one at a time.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
	}
}

// CreateGame stores a new game in the opening position under a fresh id.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	newGame := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", newGame.ID)

	return newGame, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

// MakeMove plays from-to for the given color. A rejected move leaves the
// stored game unchanged.
func (that *GameManager) MakeMove(ctx context.Context, gameID string, color entity.Color, from, to string) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "game_id", gameID, "color", color.String(), "from", from, "to", to)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if game.Turn != color {
		return nil, fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, game.Turn)
	}

	if err = gess.MakeMove(game, from, to); err != nil {
		log.Debug("move rejected", "error", err)
		return nil, fmt.Errorf("failed make move: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("move applied")
	that.logFinished(game)

	return game, nil
}

// Resign ends the game in favour of the player not on move.
func (that *GameManager) Resign(ctx context.Context, gameID string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	resigning := game.Turn
	if err = gess.Resign(game); err != nil {
		return nil, fmt.Errorf("failed resign: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("player resigned", "game_id", gameID, "color", resigning.String())
	that.logFinished(game)

	return game, nil
}

// LegalMoves lists the destinations of the current player's piece at from.
func (that *GameManager) LegalMoves(ctx context.Context, gameID, from string) ([]string, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	moves, err := gess.LegalMovesFrom(game, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	return moves, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) logFinished(game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	that.logger.Info("game finished", "game_id", game.ID, "status", string(game.State()))
}

package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/gess-backend/internal/apperror"
	"github.com/rocketscienceinc/gess-backend/internal/config"
	"github.com/rocketscienceinc/gess-backend/internal/entity"
	"github.com/rocketscienceinc/gess-backend/internal/render"
	"github.com/rocketscienceinc/gess-backend/internal/repository"
	"github.com/rocketscienceinc/gess-backend/internal/usecase"
	"github.com/schollz/progressbar/v3"
)

const resignAction = "resign"

// RunApp - replays the configured moves on a new game and prints the final position to out.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager := usecase.NewGameManager(logger, repository.NewGameRepository())
	renderer := render.New(conf.Render.Color)

	game, err := gameManager.CreateGame(ctx)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	bar := newProgressBar(len(conf.Replay.Moves), conf.Replay.Progress)

	game, replayErr := Replay(ctx, log, gameManager, game, conf.Replay.Moves, bar)

	if err = bar.Finish(); err != nil {
		log.Error("could not finish progress bar", "error", err)
	}

	if _, err = fmt.Fprint(out, renderer.Game(game)); err != nil {
		return fmt.Errorf("could not print board: %w", err)
	}

	if replayErr != nil {
		return fmt.Errorf("replay stopped: %w", replayErr)
	}

	log.Info("Replay finished", "game_id", game.ID, "moves", len(conf.Replay.Moves), "status", string(game.State()))

	return nil
}

// Replay applies actions in order, each either "from-to" for the player to
// move or "resign". It stops at the first rejected action and returns the
// game as it stood before it.
func Replay(ctx context.Context, logger *slog.Logger, gameManager *usecase.GameManager, game *entity.Game, actions []string, bar *progressbar.ProgressBar) (*entity.Game, error) {
	for i, action := range actions {
		if err := ctx.Err(); err != nil {
			return game, err
		}

		updated, err := applyAction(ctx, gameManager, game, action)
		if err != nil {
			return game, fmt.Errorf("action %d %q: %w", i+1, action, err)
		}
		game = updated

		if err = bar.Add(1); err != nil {
			logger.Error("could not update progress bar", "error", err)
		}
	}

	return game, nil
}

func applyAction(ctx context.Context, gameManager *usecase.GameManager, game *entity.Game, action string) (*entity.Game, error) {
	action = strings.TrimSpace(action)

	if strings.EqualFold(action, resignAction) {
		return gameManager.Resign(ctx, game.ID)
	}

	from, to, ok := strings.Cut(action, "-")
	if !ok {
		return nil, apperror.ErrUnknownAction
	}

	return gameManager.MakeMove(ctx, game.ID, game.Turn, from, to)
}

func newProgressBar(total int, visible bool) *progressbar.ProgressBar {
	var w io.Writer = io.Discard
	if visible {
		w = os.Stderr
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("replaying moves"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
	)
}

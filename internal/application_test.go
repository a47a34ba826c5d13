package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rocketscienceinc/gess-backend/internal/apperror"
	"github.com/rocketscienceinc/gess-backend/internal/config"
	"github.com/rocketscienceinc/gess-backend/internal/entity"
	"github.com/rocketscienceinc/gess-backend/internal/render"
	"github.com/rocketscienceinc/gess-backend/internal/repository"
	"github.com/rocketscienceinc/gess-backend/internal/usecase"
	"github.com/rocketscienceinc/gess-backend/testing/suite"
	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(moves ...string) *config.Config {
	return &config.Config{
		LogLevel: "debug",
		Replay:   config.Replay{Moves: moves},
	}
}

func TestRunApp(t *testing.T) {
	t.Run("Empty script prints the opening position", func(t *testing.T) {
		_, st := suite.New(t)
		var out bytes.Buffer

		err := RunApp(st.Logger, newConfig(), &out)

		require.NoError(t, err)
		board := entity.StartingBoard()
		assert.Contains(t, out.String(), render.New(false).Board(board.Snapshot()))
		assert.Contains(t, out.String(), "BLACK to move")
	})

	t.Run("Script ending in a win", func(t *testing.T) {
		_, st := suite.New(t)
		var out bytes.Buffer

		err := RunApp(st.Logger, newConfig("l3-l6", "l15-l12", "l6-l9", "l12-l11"), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "WHITE_WON")
	})

	t.Run("Script ending in a resignation", func(t *testing.T) {
		_, st := suite.New(t)
		var out bytes.Buffer

		err := RunApp(st.Logger, newConfig("c6-c7", "Resign"), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "BLACK_WON")
	})

	t.Run("Rejected move stops the replay", func(t *testing.T) {
		_, st := suite.New(t)
		var out bytes.Buffer

		err := RunApp(st.Logger, newConfig("c6-c7", "r15-r15", "r15-r14"), &out)

		// Then: the board before the rejected move is still printed
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Contains(t, err.Error(), `action 2 "r15-r15"`)
		assert.Contains(t, out.String(), "WHITE to move")
	})

	t.Run("Unknown action", func(t *testing.T) {
		_, st := suite.New(t)

		err := RunApp(st.Logger, newConfig("castle"), io.Discard)

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal closed")
}

func TestReplay(t *testing.T) {
	t.Run("Progress errors do not stop the replay", func(t *testing.T) {
		// Given: a progress bar whose output cannot be written
		ctx, st := suite.New(t)
		manager := usecase.NewGameManager(st.Logger, repository.NewGameRepository())
		game, err := manager.CreateGame(ctx)
		require.NoError(t, err)
		bar := progressbar.NewOptions(2, progressbar.OptionSetWriter(failingWriter{}))

		// When: replaying moves
		got, err := Replay(ctx, st.Logger, manager, game, []string{"l3-l6", "l18-l15"}, bar)

		// Then: every move is still applied
		require.NoError(t, err)
		assert.Equal(t, []string{"l6"}, got.Black.Rings.Labels())
		assert.Equal(t, []string{"l15"}, got.White.Rings.Labels())
	})

	t.Run("Canceled context", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := usecase.NewGameManager(st.Logger, repository.NewGameRepository())
		game, err := manager.CreateGame(ctx)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		got, err := Replay(ctx, st.Logger, manager, game, []string{"l3-l6"}, progressbar.NewOptions(1, progressbar.OptionSetWriter(io.Discard)))

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, game, got)
	})

	t.Run("Moves alternate colors", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := usecase.NewGameManager(st.Logger, repository.NewGameRepository())
		game, err := manager.CreateGame(ctx)
		require.NoError(t, err)

		got, err := Replay(ctx, st.Logger, manager, game, []string{" l3-l6 ", "l18-l15", "c6-c7"}, progressbar.NewOptions(3, progressbar.OptionSetWriter(io.Discard)))

		require.NoError(t, err)
		assert.Equal(t, entity.ColorWhite, got.Turn)
		assert.Equal(t, []string{"l6"}, got.Black.Rings.Labels())
		assert.Equal(t, []string{"l15"}, got.White.Rings.Labels())
	})
}

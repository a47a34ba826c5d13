package gess

import (
	"testing"

	"github.com/rocketscienceinc/gess-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(coords []entity.Coord) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.Label()
	}
	return out
}

func TestLegalMoves(t *testing.T) {
	t.Run("Opening ring", func(t *testing.T) {
		// Given: the opening position
		game := entity.NewGame("123")

		// When: generating moves for Black's ring
		moves := LegalMoves(game.Board, entity.MustParseLabel("l3"), &game.Black)

		// Then: every direction is active and travel stops at the first contact
		assert.ElementsMatch(t,
			[]string{"k4", "l4", "l5", "l6", "m4", "k3", "m3", "k2", "l2", "m2"},
			labelsOf(moves),
		)
	})

	t.Run("Empty centre travels at most three squares", func(t *testing.T) {
		game := entity.NewGame("123")

		moves := LegalMoves(game.Board, entity.MustParseLabel("c6"), &game.Black)

		assert.Equal(t, []string{"c7", "c8", "c9"}, labelsOf(moves))
	})

	t.Run("Occupied centre", func(t *testing.T) {
		game := entity.NewGame("123")

		moves := LegalMoves(game.Board, entity.MustParseLabel("c3"), &game.Black)

		// Then: only the four orthogonal slots hold stones
		assert.ElementsMatch(t, []string{"c4", "c5", "c6", "b3", "d3", "c2"}, labelsOf(moves))
	})

	t.Run("Lone stone has no direction", func(t *testing.T) {
		game := entity.NewGame("123")

		moves := LegalMoves(game.Board, entity.MustParseLabel("c7"), &game.Black)

		assert.Empty(t, moves)
	})

	t.Run("Long slide on an open board", func(t *testing.T) {
		// Given: a lone plus-shaped piece in the middle of an empty board
		board := entity.NewBoard()
		center := entity.MustParseLabel("j10")
		entity.WriteFootprint(&board, center, entity.Footprint{
			entity.N: entity.CellBlack,
			entity.C: entity.CellBlack,
		})
		player := entity.NewPlayer(entity.ColorBlack)

		// When: generating moves
		moves := LegalMoves(board, center, &player)

		// Then: the piece may stop on any square up to the bound rank
		want := []string{"j11", "j12", "j13", "j14", "j15", "j16", "j17", "j18", "j19"}
		assert.Equal(t, want, labelsOf(moves))
	})

	t.Run("Board is not modified", func(t *testing.T) {
		game := entity.NewGame("123")
		before := game.Board

		_ = LegalMoves(game.Board, entity.MustParseLabel("l3"), &game.Black)

		require.Equal(t, before, game.Board)
	})

	t.Run("Contact with the last ring is filtered", func(t *testing.T) {
		game := entity.NewGame("123")

		moves := LegalMoves(game.Board, entity.MustParseLabel("o3"), &game.Black)

		assert.NotContains(t, labelsOf(moves), "n4")
	})

	t.Run("Several rings disable the filter", func(t *testing.T) {
		// Given: Black owns a second ring somewhere else
		game := entity.NewGame("123")
		game.Black.Rings.Add(entity.MustParseLabel("c12"))

		moves := LegalMoves(game.Board, entity.MustParseLabel("o3"), &game.Black)

		assert.Contains(t, labelsOf(moves), "n4")
	})
}

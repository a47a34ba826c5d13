package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gess-backend/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Canonical ring centres of the opening position.
var (
	BlackStartRing = MustParseLabel("l3")
	WhiteStartRing = MustParseLabel("l18")
)

type Game struct {
	ID     string
	Board  Board
	Black  Player
	White  Player
	Turn   Color
	Status Status
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  StartingBoard(),
		Black:  NewPlayer(ColorBlack, BlackStartRing),
		White:  NewPlayer(ColorWhite, WhiteStartRing),
		Turn:   ColorBlack,
		Status: StatusUnfinished,
	}
}

func (that *Game) State() Status {
	return that.Status
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusUnfinished
}

func (that *Game) ConfirmOngoingState() error {
	switch that.Status {
	case StatusUnfinished:
		return nil
	case StatusBlackWon, StatusWhiteWon:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Player returns the side playing the given color.
func (that *Game) Player(c Color) *Player {
	if c == ColorWhite {
		return &that.White
	}
	return &that.Black
}

func (that *Game) CurrentPlayer() *Player {
	return that.Player(that.Turn)
}

func (that *Game) Snapshot() [Size][Size]Cell {
	return that.Board.Snapshot()
}

// Clone returns a deep copy sharing no ring sets with the original.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Black = that.Black.Clone()
	clone.White = that.White.Clone()
	return &clone
}

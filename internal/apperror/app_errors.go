package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrGameNotFound  = errors.New("game not found")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrInvalidLabel  = errors.New("invalid square label")
	ErrOutOfBounds   = errors.New("square is out of bounds")
	ErrNotYourPiece  = errors.New("piece contains opponent stones")
	ErrEmptyPiece    = errors.New("piece has no stones")
	ErrLoneStone     = errors.New("piece has only a center stone")
	ErrRingSuicide   = errors.New("move would destroy own last ring")
	ErrIllegalMove   = errors.New("destination is not a legal move")
	ErrUnknownAction = errors.New("unknown replay action")
)

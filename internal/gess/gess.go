package gess

import (
	"fmt"

	"github.com/rocketscienceinc/gess-backend/internal/apperror"
	"github.com/rocketscienceinc/gess-backend/internal/entity"
)

// MakeMove moves the current player's piece centred on from so that it is
// centred on to. A non-nil error means the move was rejected and the game is
// exactly as it was before the call.
func MakeMove(gameInstance *entity.Game, from, to string) error {
	src, dst, err := parseMove(from, to)
	if err != nil {
		return err
	}

	if err = gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if src.IsBorder() || dst.IsBorder() {
		return fmt.Errorf("%w: %s-%s", apperror.ErrOutOfBounds, src, dst)
	}

	mover := gameInstance.CurrentPlayer()
	fp := entity.Extract(&gameInstance.Board, src)

	if err = validatePiece(fp, mover.Color); err != nil {
		return fmt.Errorf("invalid piece at %s: %w", src, err)
	}

	if err = validateRingSafety(mover, src, dst); err != nil {
		return fmt.Errorf("invalid move %s-%s: %w", src, dst, err)
	}

	if !containsCoord(LegalMoves(gameInstance.Board, src, mover), dst) {
		return fmt.Errorf("%w: %s-%s", apperror.ErrIllegalMove, src, dst)
	}

	commitMove(gameInstance, src, dst, fp)

	return nil
}

// LegalMovesFrom lists the destinations available to the current player's
// piece centred on from.
func LegalMovesFrom(gameInstance *entity.Game, from string) ([]string, error) {
	src, err := entity.ParseLabel(from)
	if err != nil {
		return nil, err
	}

	if err = gameInstance.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if src.IsBorder() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, src)
	}

	mover := gameInstance.CurrentPlayer()
	if err = validatePiece(entity.Extract(&gameInstance.Board, src), mover.Color); err != nil {
		return nil, fmt.Errorf("invalid piece at %s: %w", src, err)
	}

	var labels []string
	for _, dst := range LegalMoves(gameInstance.Board, src, mover) {
		if validateRingSafety(mover, src, dst) != nil {
			continue
		}
		labels = append(labels, dst.Label())
	}

	return labels, nil
}

// Resign ends the game in favour of the player not on move.
func Resign(gameInstance *entity.Game) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	gameInstance.Status = entity.WinFor(gameInstance.Turn.Opponent())

	return nil
}

func parseMove(from, to string) (entity.Coord, entity.Coord, error) {
	src, err := entity.ParseLabel(from)
	if err != nil {
		return entity.Coord{}, entity.Coord{}, fmt.Errorf("invalid source: %w", err)
	}

	dst, err := entity.ParseLabel(to)
	if err != nil {
		return entity.Coord{}, entity.Coord{}, fmt.Errorf("invalid destination: %w", err)
	}

	return src, dst, nil
}

// validatePiece - checks the footprint belongs to the mover and can move at all.
func validatePiece(fp entity.Footprint, mover entity.Color) error {
	switch {
	case fp.Contains(mover.Opponent().Stone()):
		return apperror.ErrNotYourPiece
	case !fp.HasStones():
		return apperror.ErrEmptyPiece
	case fp.IsLoneStone():
		return apperror.ErrLoneStone
	default:
		return nil
	}
}

// validateRingSafety - rejects moves that would obviously break the mover's last ring.
func validateRingSafety(mover *entity.Player, src, dst entity.Coord) error {
	ring, ok := mover.Rings.Sole()
	if !ok {
		return nil
	}

	if ring != src && entity.Overlaps(ring, src) {
		return apperror.ErrRingSuicide
	}

	// a ring centred on the bound rank or file loses its outer stones to the border
	if ring == src && dst.IsBound() {
		return apperror.ErrRingSuicide
	}

	return nil
}

// commitMove - applies an already validated move and settles rings, result and turn.
func commitMove(gameInstance *entity.Game, src, dst entity.Coord, fp entity.Footprint) {
	board := gameInstance.Board
	entity.ClearFootprint(&board, src)
	entity.WriteFootprint(&board, dst, fp)

	mover := gameInstance.CurrentPlayer()
	mover.Rings.Move(src, dst)

	Rescan(&board, &gameInstance.Black, &gameInstance.White)
	gameInstance.Board = board

	updateGameStatus(gameInstance)

	gameInstance.Turn = gameInstance.Turn.Opponent()
}

// updateGameStatus - a player without rings has lost. Black is checked
// first, so a move that empties both sides is a White win.
func updateGameStatus(gameInstance *entity.Game) {
	switch {
	case gameInstance.Black.HasNoRings():
		gameInstance.Status = entity.StatusWhiteWon
	case gameInstance.White.HasNoRings():
		gameInstance.Status = entity.StatusBlackWon
	}
}

func containsCoord(coords []entity.Coord, target entity.Coord) bool {
	for _, c := range coords {
		if c == target {
			return true
		}
	}
	return false
}

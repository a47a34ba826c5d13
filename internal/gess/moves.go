package gess

import "github.com/rocketscienceinc/gess-backend/internal/entity"

// shortReach caps travel for a piece whose centre square is empty.
const shortReach = 3

// LegalMoves returns the destination centres available to the piece centred
// on center. The board is taken by value: the piece is lifted off a private
// copy so its own stones never obstruct its path.
func LegalMoves(board entity.Board, center entity.Coord, mover *entity.Player) []entity.Coord {
	fp := entity.Extract(&board, center)

	entity.ClearFootprint(&board, center)

	reach := shortReach
	if fp.Center() != entity.CellEmpty {
		reach = entity.Size
	}

	var moves []entity.Coord
	for dir, step := range entity.Offsets {
		if dir == entity.C || fp[dir] == entity.CellEmpty {
			continue
		}
		moves = append(moves, slide(&board, center, step, reach)...)
	}

	return guardLastRing(moves, center, mover)
}

// slide walks from center along step until it is blocked, hits the edge or
// runs out of reach. A destination whose footprint touches any stone is still
// legal but ends the walk.
func slide(board *entity.Board, center, step entity.Coord, reach int) []entity.Coord {
	var out []entity.Coord

	pos := center
	for i := 0; i < reach; i++ {
		pos = pos.Add(step)
		if pos.IsBorder() {
			break
		}

		out = append(out, pos)
		if entity.Extract(board, pos).HasStones() {
			break
		}
	}

	return out
}

// guardLastRing drops destinations that would bring a non-ring piece into
// contact with the mover's only ring.
func guardLastRing(moves []entity.Coord, center entity.Coord, mover *entity.Player) []entity.Coord {
	if mover == nil {
		return moves
	}

	ring, ok := mover.Rings.Sole()
	if !ok || ring == center {
		return moves
	}

	filtered := make([]entity.Coord, 0, len(moves))
	for _, to := range moves {
		if entity.Overlaps(to, ring) {
			continue
		}
		filtered = append(filtered, to)
	}

	return filtered
}

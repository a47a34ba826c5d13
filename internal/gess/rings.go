package gess

import "github.com/rocketscienceinc/gess-backend/internal/entity"

// IsRing reports whether fp is eight same-colored stones around an empty
// centre, and the color of those stones.
func IsRing(fp entity.Footprint) (entity.Color, bool) {
	if fp.Center() != entity.CellEmpty {
		return entity.ColorBlack, false
	}

	color, ok := entity.ColorOf(fp[entity.NW])
	if !ok || fp.Count(color.Stone()) != 8 {
		return entity.ColorBlack, false
	}

	return color, true
}

// Rescan brings both players' ring sets in line with the board. Any move can
// make or break rings far from the moved piece, so the whole interior is read.
func Rescan(board *entity.Board, black, white *entity.Player) {
	for _, p := range []*entity.Player{black, white} {
		for _, center := range p.Rings.Centers() {
			if color, ok := IsRing(entity.Extract(board, center)); !ok || color != p.Color {
				p.Rings.Remove(center)
			}
		}
	}

	for row := 1; row < entity.Size-1; row++ {
		for col := 1; col < entity.Size-1; col++ {
			center := entity.Coord{Row: row, Col: col}
			if board.At(center) != entity.CellEmpty {
				continue
			}

			color, ok := IsRing(entity.Extract(board, center))
			if !ok {
				continue
			}

			if color == entity.ColorBlack {
				black.Rings.Add(center)
			} else {
				white.Rings.Add(center)
			}
		}
	}
}

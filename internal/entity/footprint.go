package entity

// Footprint indexes, in reading order.
const (
	NW = iota
	N
	NE
	W
	C
	E
	SW
	S
	SE
)

// Offsets maps each footprint index to its displacement from the centre.
// For perimeter indexes it doubles as the unit vector of that compass direction.
var Offsets = [9]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Footprint is the 3x3 block of cells around a centre.
type Footprint [9]Cell

// Extract reads the 3x3 window around center. Border squares read as empty,
// which lets a piece straddle the edge of the board.
func Extract(board *Board, center Coord) Footprint {
	var fp Footprint
	for i, off := range Offsets {
		cell := board.At(center.Add(off))
		if cell == CellBorder {
			cell = CellEmpty
		}
		fp[i] = cell
	}
	return fp
}

// WriteFootprint stores all nine cells around center. Cells that land on the
// border are dropped.
func WriteFootprint(board *Board, center Coord, fp Footprint) {
	for i, off := range Offsets {
		board.Set(center.Add(off), fp[i])
	}
}

// ClearFootprint empties the 3x3 window around center.
func ClearFootprint(board *Board, center Coord) {
	WriteFootprint(board, center, Footprint{})
}

// FootprintCoords lists the nine squares of the window around center.
func FootprintCoords(center Coord) [9]Coord {
	var out [9]Coord
	for i, off := range Offsets {
		out[i] = center.Add(off)
	}
	return out
}

// Overlaps reports whether the windows centred on a and b share a square.
func Overlaps(a, b Coord) bool {
	return abs(a.Row-b.Row) <= 2 && abs(a.Col-b.Col) <= 2
}

func (f Footprint) Center() Cell {
	return f[C]
}

func (f Footprint) Count(cell Cell) int {
	n := 0
	for _, c := range f {
		if c == cell {
			n++
		}
	}
	return n
}

func (f Footprint) Contains(cell Cell) bool {
	return f.Count(cell) > 0
}

func (f Footprint) Stones() int {
	return f.Count(CellBlack) + f.Count(CellWhite)
}

func (f Footprint) HasStones() bool {
	return f.Stones() > 0
}

// IsLoneStone reports a footprint whose only stone is its centre.
func (f Footprint) IsLoneStone() bool {
	return f.Stones() == 1 && f[C].IsStone()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

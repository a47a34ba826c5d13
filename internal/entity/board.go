package entity

import "errors"

var ErrBadLayout = errors.New("board layout must be 18 rows of 18 cells")

// Board is the full grid including the border frame. It is a value type:
// assigning a Board copies it.
type Board struct {
	cells [Size][Size]Cell
}

// NewBoard returns an empty interior surrounded by border cells.
func NewBoard() Board {
	var b Board
	for i := 0; i < Size; i++ {
		b.cells[0][i] = CellBorder
		b.cells[Size-1][i] = CellBorder
		b.cells[i][0] = CellBorder
		b.cells[i][Size-1] = CellBorder
	}
	return b
}

// startingRows holds the interior of the opening position, rank 19 first.
var startingRows = [Size - 2]string{
	"_W_W_WWWWWWWW_W_W_",
	"WWW_W_WWWW_W_W_WWW",
	"_W_W_WWWWWWWW_W_W_",
	"__________________",
	"__________________",
	"_W__W__W__W__W__W_",
	"__________________",
	"__________________",
	"__________________",
	"__________________",
	"__________________",
	"__________________",
	"_B__B__B__B__B__B_",
	"__________________",
	"__________________",
	"_B_B_BBBBBBBB_B_B_",
	"BBB_B_BBBB_B_B_BBB",
	"_B_B_BBBBBBBB_B_B_",
}

// StartingBoard returns the canonical opening layout.
func StartingBoard() Board {
	b, err := BoardFromRows(startingRows[:])
	if err != nil {
		panic(err)
	}
	return b
}

// BoardFromRows builds a board from 18 interior rows of 18 characters each
// ('B', 'W' or '_'), top rank first.
func BoardFromRows(rows []string) (Board, error) {
	b := NewBoard()
	if len(rows) != Size-2 {
		return b, ErrBadLayout
	}
	for i, row := range rows {
		if len(row) != Size-2 {
			return b, ErrBadLayout
		}
		for j := 0; j < len(row); j++ {
			var cell Cell
			switch row[j] {
			case 'B':
				cell = CellBlack
			case 'W':
				cell = CellWhite
			case '_', '.':
				cell = CellEmpty
			default:
				return b, ErrBadLayout
			}
			b.cells[i+1][j+1] = cell
		}
	}
	return b, nil
}

// At returns the cell at c. Squares outside the grid read as border.
func (b *Board) At(c Coord) Cell {
	if !c.InGrid() {
		return CellBorder
	}
	return b.cells[c.Row][c.Col]
}

// Set writes a stone or empty square. Writes landing on the border are
// absorbed: that is how stones fall off the board.
func (b *Board) Set(c Coord, cell Cell) {
	if !c.InGrid() || c.IsBorder() || cell == CellBorder {
		return
	}
	b.cells[c.Row][c.Col] = cell
}

// Count returns the number of squares holding the given cell value.
func (b *Board) Count(cell Cell) int {
	n := 0
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] == cell {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a copy of the raw grid for presentation layers.
func (b *Board) Snapshot() [Size][Size]Cell {
	return b.cells
}

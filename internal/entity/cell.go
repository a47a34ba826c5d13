package entity

// Cell is the content of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
	CellBorder
)

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "B"
	case CellWhite:
		return "W"
	case CellBorder:
		return "*"
	default:
		return "_"
	}
}

// IsStone reports whether the cell holds a stone of either color.
func (c Cell) IsStone() bool {
	return c == CellBlack || c == CellWhite
}

// Color identifies a player.
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
)

func (c Color) String() string {
	if c == ColorWhite {
		return "WHITE"
	}
	return "BLACK"
}

// Stone returns the cell value of this color's stones.
func (c Color) Stone() Cell {
	if c == ColorWhite {
		return CellWhite
	}
	return CellBlack
}

func (c Color) Opponent() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// ColorOf maps a stone cell back to its owner.
func ColorOf(cell Cell) (Color, bool) {
	switch cell {
	case CellBlack:
		return ColorBlack, true
	case CellWhite:
		return ColorWhite, true
	default:
		return ColorBlack, false
	}
}

// Status is the terminal state of a game.
type Status string

const (
	StatusUnfinished Status = "UNFINISHED"
	StatusBlackWon   Status = "BLACK_WON"
	StatusWhiteWon   Status = "WHITE_WON"
)

// WinFor returns the status in which the given color has won.
func WinFor(c Color) Status {
	if c == ColorWhite {
		return StatusWhiteWon
	}
	return StatusBlackWon
}

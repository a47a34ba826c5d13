package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gess-backend/internal/apperror"
)

// Size is the side of the grid including the one-cell border frame.
const Size = 20

const files = "abcdefghijklmnopqrst"

// Coord addresses a grid square. Row 0 is rank 20 and row 19 is rank 1;
// col 0 is file 'a' and col 19 is file 't'.
type Coord struct {
	Row int
	Col int
}

// ParseLabel converts a label such as "l3" into a coordinate.
// Border labels parse successfully; use IsBorder to reject them.
func ParseLabel(label string) (Coord, error) {
	label = strings.ToLower(strings.TrimSpace(label))

	if len(label) < 2 || len(label) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidLabel, label)
	}

	col := strings.IndexByte(files, label[0])
	if col < 0 {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidLabel, label)
	}

	digits := label[1:]
	if digits[0] < '1' || digits[0] > '9' {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidLabel, label)
	}

	rank, err := strconv.Atoi(digits)
	if err != nil || rank < 1 || rank > Size {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrInvalidLabel, label)
	}

	return Coord{Row: Size - rank, Col: col}, nil
}

// MustParseLabel is ParseLabel for literals known to be valid.
func MustParseLabel(label string) Coord {
	c, err := ParseLabel(label)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coord) Label() string {
	if !c.InGrid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", files[c.Col], Size-c.Row)
}

func (c Coord) String() string {
	return c.Label()
}

func (c Coord) InGrid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// IsBorder reports whether the square lies on the frame (files a/t, ranks 1/20).
func (c Coord) IsBorder() bool {
	return c.Row == 0 || c.Col == 0 || c.Row == Size-1 || c.Col == Size-1
}

// IsBound reports whether the square lies on the innermost playable
// file or rank (b/s, 2/19), where a centred piece straddles the border.
func (c Coord) IsBound() bool {
	return c.Row == 1 || c.Col == 1 || c.Row == Size-2 || c.Col == Size-2
}

func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

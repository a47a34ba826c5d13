package render

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/rocketscienceinc/gess-backend/internal/entity"
)

// Renderer draws board snapshots for a terminal.
type Renderer struct {
	au aurora.Aurora
}

// New returns a renderer; with colors disabled the output is plain text.
func New(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors)}
}

// Board draws the grid with file letters on top and ranks on the left.
func (that *Renderer) Board(grid [entity.Size][entity.Size]entity.Cell) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < entity.Size; col++ {
		sb.WriteByte(' ')
		sb.WriteString(entity.Coord{Row: 0, Col: col}.Label()[:1])
	}
	sb.WriteByte('\n')

	for row := 0; row < entity.Size; row++ {
		fmt.Fprintf(&sb, "%2d ", entity.Size-row)
		for col := 0; col < entity.Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(that.cell(grid[row][col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Game draws the board followed by a status line.
func (that *Renderer) Game(game *entity.Game) string {
	var status string
	switch game.State() {
	case entity.StatusUnfinished:
		status = fmt.Sprintf("%s to move", game.Turn)
	default:
		status = that.au.Bold(game.State()).String()
	}

	return fmt.Sprintf("%s\ngame %s: %s\n", that.Board(game.Snapshot()), game.ID, status)
}

func (that *Renderer) cell(c entity.Cell) string {
	switch c {
	case entity.CellBlack:
		return that.au.Yellow(c).String()
	case entity.CellWhite:
		return that.au.Cyan(c).String()
	default:
		return that.au.Faint(c).String()
	}
}

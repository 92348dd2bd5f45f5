package api

import (
	"strconv"
	"strings"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

var cellMarks = map[mb.CellState]string{
	mb.CellStateEmpty:  "O",
	mb.CellStateShip:   "■",
	mb.CellStateMiss:   "T",
	mb.CellStateBuffer: ".",
	mb.CellStateHit:    "X",
}

// RenderGrid draws the grid with 1-indexed column headers and row labels.
// Ships on a hidden grid are drawn as empty water.
func RenderGrid(grid *mb.Grid) string {
	var sb strings.Builder

	header := "   |"
	for x := 1; x <= grid.Size(); x++ {
		header += " " + strconv.Itoa(x) + " |"
	}
	sb.WriteString(header + "\n")
	sb.WriteString(strings.Repeat("-", len(header)) + "\n")

	for y, row := range grid.Snapshot() {
		sb.WriteString(strconv.Itoa(y+1) + "  |")
		for _, state := range row {
			if grid.Hidden() && state == mb.CellStateShip {
				state = mb.CellStateEmpty
			}
			sb.WriteString(" " + cellMarks[state] + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

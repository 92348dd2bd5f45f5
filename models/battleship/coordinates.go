package battleship

import "fmt"

// Relative positions of the 8 cells around a cell.
var around = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Coordinates are 0-indexed; X is the column and Y the row.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Neighbours returns the surrounding cells, including the diagonal ones.
// The result is not clipped to any grid.
func (c Coordinates) Neighbours() []Coordinates {
	neighbours := make([]Coordinates, 0, len(around))
	for _, d := range around {
		neighbours = append(neighbours, NewCoordinates(c.X+d[0], c.Y+d[1]))
	}
	return neighbours
}

// String renders the 1-indexed form a human types in.
func (c Coordinates) String() string {
	return fmt.Sprintf("%d %d", c.X+1, c.Y+1)
}

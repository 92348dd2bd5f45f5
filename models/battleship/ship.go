package battleship

import (
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

type Ship struct {
	length        int
	bow           Coordinates
	orientation   Orientation
	hitsRemaining int
}

func NewShip(length int, bow Coordinates, orientation Orientation) *Ship {
	return &Ship{
		length:        length,
		bow:           bow,
		orientation:   orientation,
		hitsRemaining: length,
	}
}

// Cells returns the coordinates the ship covers, starting at the bow.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, max(sh.length, 0))
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationHorizontal {
			cells = append(cells, NewCoordinates(sh.bow.X+i, sh.bow.Y))
		} else {
			cells = append(cells, NewCoordinates(sh.bow.X, sh.bow.Y+i))
		}
	}
	return cells
}

func (sh *Ship) Contains(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (sh *Ship) GotHit() error {
	if sh.hitsRemaining == 0 {
		return cerr.ErrShipAlreadySunk(sh.length)
	}
	sh.hitsRemaining--
	return nil
}

func (sh *Ship) IsSunk() bool {
	return sh.hitsRemaining == 0
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) HitsRemaining() int {
	return sh.hitsRemaining
}

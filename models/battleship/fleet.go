package battleship

import (
	"log"
	"math/rand"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// Ship lengths placed on every board: 7 ships covering 11 cells.
var DefaultRoster = []int{3, 2, 2, 1, 1, 1, 1}

const (
	maxPlacementAttempts = 1000

	// A 6x6 board almost always fits the roster within a couple of
	// boards; this only stops a broken roster from spinning forever.
	maxBoardAttempts = 100
)

type FleetGenerator struct {
	rng    *rand.Rand
	size   int
	roster []int
}

func NewFleetGenerator(rng *rand.Rand) *FleetGenerator {
	return &FleetGenerator{
		rng:    rng,
		size:   GridSizeDefault,
		roster: DefaultRoster,
	}
}

// Generate places the whole roster at random on a fresh grid. A board that
// used up its placement attempts is thrown away and started over.
func (fg *FleetGenerator) Generate(hidden bool) (*Grid, error) {
	for board := 1; board <= maxBoardAttempts; board++ {
		grid, ok := fg.tryGenerate(hidden)
		if ok {
			grid.ClearPlacementBuffer()
			return grid, nil
		}
		log.Printf("fleet placement exhausted %d attempts, restarting board (%d)", maxPlacementAttempts, board)
	}

	return nil, cerr.ErrFleetNotPlaced(maxBoardAttempts)
}

func (fg *FleetGenerator) tryGenerate(hidden bool) (*Grid, bool) {
	grid := NewGrid(fg.size, hidden)
	attempts := 0

	for _, length := range fg.roster {
		for {
			attempts++
			if attempts > maxPlacementAttempts {
				return nil, false
			}

			if err := grid.PlaceShip(fg.randomShip(length)); err == nil {
				break
			}
		}
	}
	return grid, true
}

func (fg *FleetGenerator) randomShip(length int) *Ship {
	bow := NewCoordinates(fg.rng.Intn(fg.size), fg.rng.Intn(fg.size))
	orientation := OrientationHorizontal
	if fg.rng.Intn(2) == 1 {
		orientation = OrientationVertical
	}
	return NewShip(length, bow, orientation)
}

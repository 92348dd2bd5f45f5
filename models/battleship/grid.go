package battleship

import (
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const GridSizeDefault int = 6

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShip
	CellStateMiss
	CellStateBuffer
	CellStateHit
)

type ShotOutcome uint8

const (
	ShotOutcomeMiss ShotOutcome = iota
	ShotOutcomeHit
	ShotOutcomeSunk
)

// EarnsRepeat reports whether the shooter keeps the turn.
func (o ShotOutcome) EarnsRepeat() bool {
	return o == ShotOutcomeHit || o == ShotOutcomeSunk
}

func (o ShotOutcome) String() string {
	switch o {
	case ShotOutcomeHit:
		return "hit"
	case ShotOutcomeSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// Grid is one side's board. cells is indexed [y][x].
//
// blocked holds the cells a new ship may not use: occupied cells and their
// contour. It only drives placement; shot legality is decided by cell state.
type Grid struct {
	size       int
	hidden     bool
	cells      [][]CellState
	ships      []*Ship
	blocked    map[Coordinates]struct{}
	aliveShips int
}

// Creates a new grid with every cell CellStateEmpty
func NewGrid(size int, hidden bool) *Grid {
	cells := make([][]CellState, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]CellState, size)
	}

	return &Grid{
		size:    size,
		hidden:  hidden,
		cells:   cells,
		ships:   make([]*Ship, 0, len(DefaultRoster)),
		blocked: make(map[Coordinates]struct{}, size*size),
	}
}

func (g *Grid) IsOutOfBounds(c Coordinates) bool {
	return c.X < 0 || c.X >= g.size || c.Y < 0 || c.Y >= g.size
}

// PlaceShip puts the ship on the grid. Nothing changes if any of its cells
// is out of bound or collides with another ship or that ship's contour.
func (g *Grid) PlaceShip(ship *Ship) error {
	if ship.Length() < 1 {
		return cerr.ErrInvalidShipLength(ship.Length())
	}

	cells := ship.Cells()
	for _, c := range cells {
		if g.IsOutOfBounds(c) {
			return cerr.ErrXorYOutOfGridBound(c.X, c.Y)
		}
	}
	for _, c := range cells {
		if _, prs := g.blocked[c]; prs {
			return cerr.ErrPositionOccupied(c.X, c.Y)
		}
	}

	for _, c := range cells {
		g.cells[c.Y][c.X] = CellStateShip
		g.blocked[c] = struct{}{}
	}
	g.renderBuffer(ship, false)
	g.ships = append(g.ships, ship)
	g.aliveShips++

	return nil
}

// renderBuffer blocks the contour of the ship. When visible is set, the
// contour is also marked on the board, leaving hit cells alone.
func (g *Grid) renderBuffer(ship *Ship, visible bool) {
	for _, c := range ship.Cells() {
		for _, n := range c.Neighbours() {
			if g.IsOutOfBounds(n) {
				continue
			}
			g.blocked[n] = struct{}{}

			if visible && g.cells[n.Y][n.X] != CellStateHit {
				g.cells[n.Y][n.X] = CellStateBuffer
			}
		}
	}
}

// ClearPlacementBuffer keeps only occupied cells in the blocked set once
// the fleet is complete.
func (g *Grid) ClearPlacementBuffer() {
	occupied := make(map[Coordinates]struct{}, len(g.blocked))
	for _, ship := range g.ships {
		for _, c := range ship.Cells() {
			occupied[c] = struct{}{}
		}
	}
	g.blocked = occupied
}

// FireAt resolves a shot. Out of bound and already resolved cells are
// rejected without touching the grid.
func (g *Grid) FireAt(c Coordinates) (ShotOutcome, error) {
	if g.IsOutOfBounds(c) {
		return ShotOutcomeMiss, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}

	switch g.cells[c.Y][c.X] {
	case CellStateMiss, CellStateBuffer, CellStateHit:
		return ShotOutcomeMiss, cerr.ErrPositionAlreadyShot(c.X, c.Y)
	}

	ship := g.shipAt(c)
	if ship == nil {
		if g.cells[c.Y][c.X] == CellStateShip {
			return ShotOutcomeMiss, cerr.ErrHitWithoutShip(c.X, c.Y)
		}
		g.cells[c.Y][c.X] = CellStateMiss
		return ShotOutcomeMiss, nil
	}

	if err := ship.GotHit(); err != nil {
		return ShotOutcomeMiss, err
	}
	g.cells[c.Y][c.X] = CellStateHit

	if ship.IsSunk() {
		g.aliveShips--
		g.renderBuffer(ship, true)
		return ShotOutcomeSunk, nil
	}
	return ShotOutcomeHit, nil
}

func (g *Grid) shipAt(c Coordinates) *Ship {
	for _, ship := range g.ships {
		if ship.Contains(c) {
			return ship
		}
	}
	return nil
}

func (g *Grid) Size() int {
	return g.size
}

// Hidden grids show ship cells as empty to the human.
func (g *Grid) Hidden() bool {
	return g.hidden
}

func (g *Grid) SetHidden(hidden bool) {
	g.hidden = hidden
}

func (g *Grid) AliveShips() int {
	return g.aliveShips
}

// Ships returns the placed ships in placement order.
func (g *Grid) Ships() []*Ship {
	ships := make([]*Ship, len(g.ships))
	copy(ships, g.ships)
	return ships
}

// Cell returns the state of an in-bound cell.
func (g *Grid) Cell(c Coordinates) CellState {
	return g.cells[c.Y][c.X]
}

func (g *Grid) IsBlocked(c Coordinates) bool {
	_, prs := g.blocked[c]
	return prs
}

// Snapshot returns a copy of the cell matrix, indexed [y][x].
func (g *Grid) Snapshot() [][]CellState {
	snapshot := make([][]CellState, g.size)
	for y := range g.cells {
		snapshot[y] = make([]CellState, g.size)
		copy(snapshot[y], g.cells[y])
	}
	return snapshot
}

// Occupancy flattens the fleet layout row by row: 1 where a ship lies,
// hit or not, 0 elsewhere.
func (g *Grid) Occupancy() []uint8 {
	occupancy := make([]uint8, g.size*g.size)
	for _, ship := range g.ships {
		for _, c := range ship.Cells() {
			occupancy[c.Y*g.size+c.X] = 1
		}
	}
	return occupancy
}

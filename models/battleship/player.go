package battleship

import (
	"errors"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// ShotReport is the result of one accepted shot.
type ShotReport struct {
	Target  Coordinates
	Outcome ShotOutcome
}

func (sr ShotReport) EarnsRepeat() bool {
	return sr.Outcome.EarnsRepeat()
}

// Player owns its defence grid and attacks the opponent's grid only
// through FireAt.
type Player struct {
	uuid        string
	name        string
	defenceGrid *Grid
	attackGrid  *Grid
	strategy    Strategy
}

func NewPlayer(name string, defenceGrid, attackGrid *Grid, strategy Strategy) *Player {
	return &Player{
		uuid:        uuid.NewString()[:10],
		name:        name,
		defenceGrid: defenceGrid,
		attackGrid:  attackGrid,
		strategy:    strategy,
	}
}

// Move asks the strategy for targets until one is accepted by the enemy
// grid. Out of bound and repeated targets are handed back to the strategy;
// every other error is returned.
func (p *Player) Move() (ShotReport, error) {
	for {
		target, err := p.strategy.NextTarget(p.attackGrid)
		if err != nil {
			return ShotReport{}, err
		}

		outcome, err := p.attackGrid.FireAt(target)
		if err == nil {
			return ShotReport{Target: target, Outcome: outcome}, nil
		}

		if errors.Is(err, cerr.ErrOutOfBounds) || errors.Is(err, cerr.ErrAlreadyShot) {
			p.strategy.Rejected(target, err)
			continue
		}
		return ShotReport{}, err
	}
}

// IsLoser reports whether every ship on the defence grid is sunk.
func (p *Player) IsLoser() bool {
	return p.defenceGrid.AliveShips() == 0
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) DefenceGrid() *Grid {
	return p.defenceGrid
}

func (p *Player) AttackGrid() *Grid {
	return p.attackGrid
}

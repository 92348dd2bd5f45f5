package battleship

import (
	"errors"
	"log"
	"math/rand"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// Strategy picks the next cell to fire at on the enemy grid. Rejected is
// called when the grid refused the target so the strategy can react
// before it is asked again.
type Strategy interface {
	NextTarget(enemy *Grid) (Coordinates, error)
	Rejected(target Coordinates, err error)
}

// MoveReader supplies human moves. A malformed move is reported with an
// error wrapping ErrMalformedInput; anything else ends the match.
type MoveReader interface {
	ReadMove() (Coordinates, error)
}

// Notifier tells the human why a move was not taken.
type Notifier interface {
	NotifyRejected(err error)
}

type RandomStrategy struct {
	rng *rand.Rand
}

var _ Strategy = (*RandomStrategy)(nil)

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (rs *RandomStrategy) NextTarget(enemy *Grid) (Coordinates, error) {
	return NewCoordinates(rs.rng.Intn(enemy.Size()), rs.rng.Intn(enemy.Size())), nil
}

// Random targets are not tracked, so a repeat is expected now and then.
func (rs *RandomStrategy) Rejected(target Coordinates, err error) {}

type HumanStrategy struct {
	reader   MoveReader
	notifier Notifier
}

var _ Strategy = (*HumanStrategy)(nil)

func NewHumanStrategy(reader MoveReader, notifier Notifier) *HumanStrategy {
	return &HumanStrategy{reader: reader, notifier: notifier}
}

func (hs *HumanStrategy) NextTarget(enemy *Grid) (Coordinates, error) {
	for {
		target, err := hs.reader.ReadMove()
		if err == nil {
			return target, nil
		}
		if !errors.Is(err, cerr.ErrMalformedInput) {
			return Coordinates{}, err
		}
		hs.notify(err)
	}
}

func (hs *HumanStrategy) Rejected(target Coordinates, err error) {
	hs.notify(err)
}

func (hs *HumanStrategy) notify(err error) {
	if hs.notifier == nil {
		log.Println(err)
		return
	}
	hs.notifier.NotifyRejected(err)
}

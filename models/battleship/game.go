package battleship

import (
	"log"

	"github.com/google/uuid"
)

type MatchState uint8

const (
	MatchStateInProgress MatchState = iota
	MatchStateSideAWon
	MatchStateSideBWon
)

func (s MatchState) String() string {
	switch s {
	case MatchStateSideAWon:
		return "side A won"
	case MatchStateSideBWon:
		return "side B won"
	default:
		return "in progress"
	}
}

// Match alternates two players on a single thread of control. Side A
// moves first. A hit or a sunk ship keeps the turn with the shooter.
type Match struct {
	uuid    string
	players [2]*Player
	turn    int
	state   MatchState

	onTurn func(*Player)
	onShot func(*Player, ShotReport)
}

func NewMatch(sideA, sideB *Player) *Match {
	return &Match{
		uuid:    uuid.NewString()[:6],
		players: [2]*Player{sideA, sideB},
		state:   MatchStateInProgress,
	}
}

// OnTurn registers a callback run before every move.
func (m *Match) OnTurn(fn func(*Player)) {
	m.onTurn = fn
}

// OnShot registers a callback run after every accepted shot.
func (m *Match) OnShot(fn func(*Player, ShotReport)) {
	m.onShot = fn
}

// Tick lets the active player make one accepted shot and updates the turn
// and the match state.
func (m *Match) Tick() (ShotReport, error) {
	if m.IsFinished() {
		return ShotReport{}, nil
	}

	side := m.turn % 2
	mover := m.players[side]
	if m.onTurn != nil {
		m.onTurn(mover)
	}

	report, err := mover.Move()
	if err != nil {
		return ShotReport{}, err
	}
	if m.onShot != nil {
		m.onShot(mover, report)
	}

	if m.players[1-side].IsLoser() {
		if side == 0 {
			m.state = MatchStateSideAWon
		} else {
			m.state = MatchStateSideBWon
		}
		log.Printf("match %s finished after %d turns: %s", m.uuid, m.turn+1, m.state)
		return report, nil
	}

	if !report.EarnsRepeat() {
		m.turn++
	}
	return report, nil
}

// Run ticks until one side has no ships left.
func (m *Match) Run() (MatchState, error) {
	log.Printf("match %s started", m.uuid)
	for !m.IsFinished() {
		if _, err := m.Tick(); err != nil {
			return m.state, err
		}
	}
	return m.state, nil
}

func (m *Match) IsFinished() bool {
	return m.state != MatchStateInProgress
}

func (m *Match) State() MatchState {
	return m.state
}

func (m *Match) Uuid() string {
	return m.uuid
}

// Turn counts passed turns; it does not grow while a player keeps shooting.
func (m *Match) Turn() int {
	return m.turn
}

func (m *Match) ActivePlayer() *Player {
	return m.players[m.turn%2]
}

// Winner returns nil while the match is in progress.
func (m *Match) Winner() *Player {
	switch m.state {
	case MatchStateSideAWon:
		return m.players[0]
	case MatchStateSideBWon:
		return m.players[1]
	}
	return nil
}

// returns the players in the order of side A then side B.
func (m *Match) GetPlayers() []*Player {
	return []*Player{m.players[0], m.players[1]}
}

package api

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	mrand "math/rand"
	"os"
	"time"

	"github.com/saeidalz13/seabattle/db/sqlc"
	"github.com/saeidalz13/seabattle/internal/config"
	cerr "github.com/saeidalz13/seabattle/internal/error"
	"github.com/saeidalz13/seabattle/internal/merkle"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

const (
	humanPlayerName    = "user"
	computerPlayerName = "computer"
)

// MatchRecorder keeps aggregate counters of played matches.
type MatchRecorder interface {
	RecordMatchStarted(ctx context.Context, hostIpNet pqtype.Inet) error
	RecordMatchResult(ctx context.Context, hostIpNet pqtype.Inet, humanWon bool) error
}

var _ MatchRecorder = (*sqlc.AnalyticsManager)(nil)

// Runner plays one human vs computer match on a console.
type Runner struct {
	stage       string
	seed        int64
	revealFleet bool
	in          io.Reader
	out         io.Writer
	saltSource  io.Reader
	recorder    MatchRecorder
	hostIpNet   pqtype.Inet
}

type Option func(*Runner) error

func NewRunner(optFuncs ...Option) *Runner {
	runner := Runner{
		stage:      config.StageDev,
		seed:       time.Now().UnixNano(),
		in:         os.Stdin,
		out:        os.Stdout,
		saltSource: rand.Reader,
	}
	for _, opt := range optFuncs {
		if err := opt(&runner); err != nil {
			panic(err)
		}
	}

	return &runner
}

func WithStage(stage string) Option {
	return func(r *Runner) error {
		if stage != config.StageProd && stage != config.StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		r.stage = stage
		return nil
	}
}

func WithSeed(seed int64) Option {
	return func(r *Runner) error {
		r.seed = seed
		return nil
	}
}

// WithRevealFleet draws the computer's ships on its board. Off by default.
func WithRevealFleet(reveal bool) Option {
	return func(r *Runner) error {
		r.revealFleet = reveal
		return nil
	}
}

func WithInput(in io.Reader) Option {
	return func(r *Runner) error {
		r.in = in
		return nil
	}
}

func WithOutput(out io.Writer) Option {
	return func(r *Runner) error {
		r.out = out
		return nil
	}
}

// WithSaltSource replaces crypto/rand as the source of the commitment salt.
func WithSaltSource(src io.Reader) Option {
	return func(r *Runner) error {
		r.saltSource = src
		return nil
	}
}

func WithRecorder(recorder MatchRecorder, hostIpNet pqtype.Inet) Option {
	return func(r *Runner) error {
		if recorder == nil {
			return fmt.Errorf("match recorder is nil")
		}
		r.recorder = recorder
		r.hostIpNet = hostIpNet
		return nil
	}
}

// Run sets up both fleets and plays until one side has no ships left.
// The computer's fleet is committed to before the first shot and checked
// against the commitment once the match is over.
func (r *Runner) Run(ctx context.Context) (mb.MatchState, error) {
	if r.stage == config.StageDev {
		log.Printf("match seed: %d", r.seed)
	}
	rng := mrand.New(mrand.NewSource(r.seed))
	fg := mb.NewFleetGenerator(rng)

	humanGrid, err := fg.Generate(false)
	if err != nil {
		return mb.MatchStateInProgress, err
	}
	computerGrid, err := fg.Generate(!r.revealFleet)
	if err != nil {
		return mb.MatchStateInProgress, err
	}

	commitment, err := merkle.CommitOccupancy(computerGrid.Occupancy(), r.saltSource)
	if err != nil {
		return mb.MatchStateInProgress, err
	}

	console := NewConsole(r.in, r.out)
	human := mb.NewPlayer(humanPlayerName, humanGrid, computerGrid, mb.NewHumanStrategy(console, console))
	computer := mb.NewPlayer(computerPlayerName, computerGrid, humanGrid, mb.NewRandomStrategy(rng))

	match := mb.NewMatch(human, computer)
	match.OnTurn(func(p *mb.Player) {
		console.PrintBoards(human, computer)
		console.AnnounceTurn(p == human)
	})
	match.OnShot(func(p *mb.Player, report mb.ShotReport) {
		console.AnnounceShot(p == human, report)
	})

	console.Greet()
	console.AnnounceCommitment(commitment.RootHex())
	r.recordStarted(ctx)

	state, err := match.Run()
	if err != nil {
		return state, err
	}

	humanWon := match.Winner() == human
	console.PrintBoards(human, computer)
	console.AnnounceWinner(humanWon)
	r.recordResult(ctx, humanWon)

	verified, err := merkle.VerifyOccupancy(commitment.RootHex(), commitment.SaltHex(), computerGrid.Occupancy())
	if err != nil {
		return state, err
	}
	console.RevealCommitment(commitment.SaltHex(), verified)
	if !verified {
		return state, cerr.ErrCommitmentMismatch(commitment.RootHex())
	}

	return state, nil
}

// Analytics failures are logged; they never end a match.
func (r *Runner) recordStarted(ctx context.Context) {
	if r.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := r.recorder.RecordMatchStarted(ctx, r.hostIpNet); err != nil {
		log.Println(err)
	}
}

func (r *Runner) recordResult(ctx context.Context, humanWon bool) {
	if r.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := r.recorder.RecordMatchResult(ctx, r.hostIpNet, humanWon); err != nil {
		log.Println(err)
	}
}

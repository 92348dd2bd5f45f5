package api

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const separator = "--------------------"

// Console is the human side of a match: it reads moves line by line and
// prints the boards and what happened.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var (
	_ mb.MoveReader = (*Console)(nil)
	_ mb.Notifier   = (*Console)(nil)
)

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadMove blocks until a line is available. io.EOF means the input is
// closed and the match cannot go on.
func (c *Console) ReadMove() (mb.Coordinates, error) {
	c.printf("Your move: ")
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return mb.Coordinates{}, err
		}
		return mb.Coordinates{}, io.EOF
	}
	return ParseHumanMove(c.scanner.Text())
}

func (c *Console) NotifyRejected(err error) {
	switch {
	case errors.Is(err, cerr.ErrMoveTokenCount):
		c.println("Enter 2 coordinates!")
	case errors.Is(err, cerr.ErrMoveNotNumber):
		c.println("Enter positive numbers!")
	case errors.Is(err, cerr.ErrOutOfBounds):
		c.println("The shot is outside the board!")
	case errors.Is(err, cerr.ErrAlreadyShot):
		c.println("You have already shot there!")
	default:
		c.println(err.Error())
	}
}

func (c *Console) Greet() {
	c.println("Welcome to Sea Battle in the console!")
	c.println("----------------------------------------------------")
	c.println("Input format: 'x y'")
	c.println(` where "x" is the column number`)
	c.println(` and "y" is the row number`)
	c.println("----------------------------------------------------")
	c.println("Have a nice game!")
}

func (c *Console) AnnounceCommitment(rootHex string) {
	c.printf("Computer fleet commitment: %s\n", rootHex)
}

func (c *Console) RevealCommitment(saltHex string, verified bool) {
	c.printf("Computer fleet salt: %s\n", saltHex)
	if verified {
		c.println("Computer fleet matches its commitment.")
	} else {
		c.println("Computer fleet does NOT match its commitment!")
	}
}

func (c *Console) PrintBoards(human, computer *mb.Player) {
	c.println(separator)
	c.println("User board:")
	c.printf("%s", RenderGrid(human.DefenceGrid()))
	c.println(separator)
	c.println("Computer board:")
	c.printf("%s", RenderGrid(computer.DefenceGrid()))
}

func (c *Console) AnnounceTurn(isHuman bool) {
	if isHuman {
		c.println("User's turn!")
	} else {
		c.println("Computer's turn!")
	}
}

func (c *Console) AnnounceShot(isHuman bool, report mb.ShotReport) {
	if !isHuman {
		c.printf("Computer shot at %s\n", report.Target)
	}

	switch report.Outcome {
	case mb.ShotOutcomeSunk:
		c.println("Ship destroyed!")
	case mb.ShotOutcomeHit:
		c.println("Ship hit!")
	default:
		c.println("Miss!")
	}
}

func (c *Console) AnnounceWinner(humanWon bool) {
	c.println(separator)
	if humanWon {
		c.println("User won!")
	} else {
		c.println("Computer won!")
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

package api

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

func TestParseHumanMove(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expected    mb.Coordinates
		expectedErr error
	}{
		{name: "valid", text: "1 1", expected: mb.NewCoordinates(0, 0)},
		{name: "valid with extra spaces", text: "  3\t5 ", expected: mb.NewCoordinates(2, 4)},
		{name: "beyond the grid is left to the grid", text: "7 2", expected: mb.NewCoordinates(6, 1)},
		{name: "empty", text: "", expectedErr: cerr.ErrMoveTokenCount},
		{name: "one token", text: "3", expectedErr: cerr.ErrMoveTokenCount},
		{name: "three tokens", text: "1 2 3", expectedErr: cerr.ErrMoveTokenCount},
		{name: "letters", text: "a b", expectedErr: cerr.ErrMoveNotNumber},
		{name: "zero", text: "0 1", expectedErr: cerr.ErrMoveNotNumber},
		{name: "negative", text: "2 -1", expectedErr: cerr.ErrMoveNotNumber},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := ParseHumanMove(test.text)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error: %v\tgot: %v", test.expectedErr, err)
				}
				if !errors.Is(err, cerr.ErrMalformedInput) {
					t.Fatalf("expected malformed input\tgot: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c != test.expected {
				t.Fatalf("expected: %v\tgot: %v", test.expected, c)
			}
		})
	}
}

func TestRenderGrid(t *testing.T) {
	grid := mb.NewGrid(mb.GridSizeDefault, false)
	if err := grid.PlaceShip(mb.NewShip(2, mb.NewCoordinates(0, 0), mb.OrientationHorizontal)); err != nil {
		t.Fatal(err)
	}
	if err := grid.PlaceShip(mb.NewShip(1, mb.NewCoordinates(5, 5), mb.OrientationHorizontal)); err != nil {
		t.Fatal(err)
	}
	grid.FireAt(mb.NewCoordinates(3, 3))
	grid.FireAt(mb.NewCoordinates(5, 5))

	expected := strings.Join([]string{
		"   | 1 | 2 | 3 | 4 | 5 | 6 |",
		"----------------------------",
		"1  | ■ | ■ | O | O | O | O |",
		"2  | O | O | O | O | O | O |",
		"3  | O | O | O | O | O | O |",
		"4  | O | O | O | T | O | O |",
		"5  | O | O | O | O | . | . |",
		"6  | O | O | O | O | . | X |",
		"",
	}, "\n")

	if got := RenderGrid(grid); got != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, got)
	}

	grid.SetHidden(true)
	if strings.Contains(RenderGrid(grid), "■") {
		t.Fatal("hidden grid must not show ships")
	}
}

func TestConsoleReadMove(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("2 3\nfoo\n"), &out)

	c, err := console.ReadMove()
	if err != nil {
		t.Fatal(err)
	}
	if c != mb.NewCoordinates(1, 2) {
		t.Fatalf("expected: %v\tgot: %v", mb.NewCoordinates(1, 2), c)
	}

	if _, err := console.ReadMove(); !errors.Is(err, cerr.ErrMalformedInput) {
		t.Fatalf("expected malformed input\tgot: %v", err)
	}
	if _, err := console.ReadMove(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF\tgot: %v", err)
	}
	if strings.Count(out.String(), "Your move: ") != 3 {
		t.Fatalf("expected 3 prompts\tgot: %q", out.String())
	}
}

func TestConsoleNotifyRejected(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"token count", cerr.ErrWrongTokenCount(1), "Enter 2 coordinates!"},
		{"not a number", cerr.ErrNotPositiveNumber("x"), "Enter positive numbers!"},
		{"out of bound", cerr.ErrXorYOutOfGridBound(6, 0), "The shot is outside the board!"},
		{"already shot", cerr.ErrPositionAlreadyShot(1, 1), "You have already shot there!"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			NewConsole(strings.NewReader(""), &out).NotifyRejected(test.err)
			if strings.TrimSpace(out.String()) != test.expected {
				t.Fatalf("expected: %q\tgot: %q", test.expected, out.String())
			}
		})
	}
}

package api

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

// ParseHumanMove turns "x y" (1-indexed column and row) into coordinates.
// Range is not checked here; the grid rejects out of bound shots.
func ParseHumanMove(text string) (mb.Coordinates, error) {
	tokens := strings.Fields(text)
	if len(tokens) != 2 {
		return mb.Coordinates{}, cerr.ErrWrongTokenCount(len(tokens))
	}

	values := make([]int, len(tokens))
	for i, token := range tokens {
		value, err := strconv.Atoi(token)
		if err != nil || value < 1 {
			return mb.Coordinates{}, cerr.ErrNotPositiveNumber(token)
		}
		values[i] = value
	}

	return mb.NewCoordinates(values[0]-1, values[1]-1), nil
}

package error

import (
	"errors"
	"fmt"
)

// Recoverable errors are retried by the nearest loop (fleet placement or a
// player's move). ErrInvariantViolation is a bookkeeping bug and is fatal.
var (
	ErrOutOfBounds           = errors.New("position is out of grid bound")
	ErrCellOccupied          = errors.New("position is occupied by a ship or its contour")
	ErrAlreadyShot           = errors.New("position was already shot")
	ErrMalformedInput        = errors.New("malformed move input")
	ErrInvariantViolation    = errors.New("invariant violation")
	ErrFleetGenerationFailed = errors.New("fleet generation failed")

	// Reasons a move is malformed; both come wrapped with ErrMalformedInput.
	ErrMoveTokenCount = errors.New("expected 2 coordinates")
	ErrMoveNotNumber  = errors.New("coordinates must be positive numbers")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrPositionOccupied(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrCellOccupied, x, y)
}

func ErrPositionAlreadyShot(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyShot, x, y)
}

func ErrShipAlreadySunk(length int) error {
	return fmt.Errorf("%w: hit registered on a sunk ship of length %d", ErrInvariantViolation, length)
}

func ErrInvalidShipLength(length int) error {
	return fmt.Errorf("%w: ship length must be positive, got %d", ErrInvariantViolation, length)
}

func ErrHitWithoutShip(x, y int) error {
	return fmt.Errorf("%w: ship cell without a ship\tx: %d\ty: %d", ErrInvariantViolation, x, y)
}

func ErrWrongTokenCount(got int) error {
	return fmt.Errorf("%w: %w, got %d", ErrMalformedInput, ErrMoveTokenCount, got)
}

func ErrNotPositiveNumber(token string) error {
	return fmt.Errorf("%w: %w, got %q", ErrMalformedInput, ErrMoveNotNumber, token)
}

func ErrFleetNotPlaced(boards int) error {
	return fmt.Errorf("%w: no valid board after %d attempts", ErrFleetGenerationFailed, boards)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrInvalidSeed(seed string) error {
	return fmt.Errorf("seed must be an integer, got: %s", seed)
}

func ErrInvalidRevealFleet(value string) error {
	return fmt.Errorf("reveal fleet must be a boolean, got: %s", value)
}

func ErrCommitmentMismatch(rootHex string) error {
	return fmt.Errorf("fleet does not match commitment, root: %s", rootHex)
}

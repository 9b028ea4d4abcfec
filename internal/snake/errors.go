package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBoard is matched by every *ConfigError.
	ErrInvalidBoard = errors.New("invalid board dimensions")

	// ErrNoFreeCell is returned when food cannot be placed because the
	// snake covers the whole board.
	ErrNoFreeCell = errors.New("no free cell for food")

	// ErrCellUnavailable is returned by PlaceFood for cells that are
	// occupied or off the board.
	ErrCellUnavailable = errors.New("cell unavailable")
)

// ConfigError reports board dimensions that cannot host a game.
type ConfigError struct {
	Width  int
	Height int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("snake: invalid board %dx%d: %s", e.Width, e.Height, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidBoard) match.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidBoard
}

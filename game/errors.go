package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid board configuration")
	ErrInvalidLayout = errors.New("invalid board layout")
)

type InvalidConfigError struct {
	Size     int
	NumMines int
}

func (e *InvalidConfigError) Error() string {
	switch {
	case e.Size <= 0:
		return fmt.Sprintf("cannot create a board with size %d", e.Size)
	case e.NumMines < 0:
		return fmt.Sprintf("cannot create a board with a negative amount of mines: %d", e.NumMines)
	default:
		return fmt.Sprintf("not enough space for %d mines on a %dx%d board", e.NumMines, e.Size, e.Size)
	}
}

func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// validate rejects boards where rejection sampling could never finish: at
// least one cell must stay free of mines.
func validate(size, numMines int) error {
	if size <= 0 || numMines < 0 || numMines >= size*size {
		return &InvalidConfigError{Size: size, NumMines: numMines}
	}
	return nil
}

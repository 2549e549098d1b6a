package game

import (
	"fmt"
	"strings"
	"time"
)

// NewBoardFromLayout builds a board from a text layout, one line per row and
// one character per cell:
//
//	*  mine
//	.  covered safe cell
//	F  flagged mine
//	f  flagged safe cell
//	o  revealed safe cell
//
// Size and NumMines in config are ignored; Seed only affects later restarts.
// A layout with every safe cell revealed starts out won.
func NewBoardFromLayout(config Config, layout string) (*Board, error) {
	rows := strings.Fields(layout)
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLayout)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{onGameEnd: config.OnGameEnd}
	board.startGame(size, 0, seed)

	for row, line := range rows {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, row, len(line), size)
		}
		for col := 0; col < size; col++ {
			cell := board.cellAt(row, col)
			if !cell.deserialize(line[col]) {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidLayout, line[col], row, col)
			}
			if cell.isMine {
				board.numMines++
			}
			if cell.isFlagged {
				board.numFlags++
			}
		}
	}

	if err := validate(board.size, board.numMines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	board.countAdjacent()
	board.remaining = 0
	for idx := range board.cells {
		if cell := &board.cells[idx]; !cell.isMine && !cell.isRevealed {
			board.remaining++
		}
	}
	if board.CheckVictory() {
		board.state = Won
	}

	return board, nil
}

// String renders the board in the layout format, marking the detonated mine
// with X.
func (board *Board) String() string {
	var builder strings.Builder
	builder.Grow(board.size * (board.size + 1))

	for row := 0; row < board.size; row++ {
		for col := 0; col < board.size; col++ {
			builder.WriteByte(board.cellAt(row, col).serialize())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

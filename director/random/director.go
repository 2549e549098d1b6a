package random

import (
	"math/rand"

	"github.com/they4kman/sweeper/game"
)

// Director reveals a random covered, unflagged cell each turn.
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Next(board *game.Board) (game.CellAction, bool) {
	if board.IsGameOver() {
		return game.CellAction{}, false
	}

	candidates := make([]game.CellAction, 0, board.Size()*board.Size())
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			if !board.IsRevealed(row, col) && !board.IsFlagged(row, col) {
				candidates = append(candidates, game.RevealAt(row, col))
			}
		}
	}

	if len(candidates) == 0 {
		return game.CellAction{}, false
	}
	return candidates[director.rand.Intn(len(candidates))], true
}

package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweeper/game"
)

func TestNextSkipsRevealedAndFlagged(t *testing.T) {
	board, err := game.NewBoardFromLayout(game.NewConfig(), `
		*f.
		fo.
		...
	`)
	require.NoError(t, err)
	board.ToggleFlag(0, 2)
	board.ToggleFlag(1, 2)
	board.ToggleFlag(2, 0)
	board.ToggleFlag(2, 1)

	director := New(1)
	for i := 0; i < 20; i++ {
		action, ok := director.Next(board)
		require.True(t, ok)
		assert.Contains(t, []game.CellAction{game.RevealAt(0, 0), game.RevealAt(2, 2)}, action)
	}
}

func TestNextStopsWhenGameOver(t *testing.T) {
	board, err := game.NewBoardFromLayout(game.NewConfig(), `
		*.
		..
	`)
	require.NoError(t, err)
	board.Reveal(0, 0)
	require.True(t, board.IsGameOver())

	_, ok := New(1).Next(board)
	assert.False(t, ok)
}

func TestPlayEndsGame(t *testing.T) {
	config := game.NewConfig()
	config.Seed = 7
	board, err := game.NewBoard(config)
	require.NoError(t, err)

	moves := game.Play(board, New(7), board.Size()*board.Size())
	assert.True(t, board.IsGameOver())
	assert.Greater(t, moves, 0)
}

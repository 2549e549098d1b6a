package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweeper/game"
)

func loadBoard(t *testing.T, layout string) *game.Board {
	t.Helper()
	config := game.NewConfig()
	config.Seed = 1
	board, err := game.NewBoardFromLayout(config, layout)
	require.NoError(t, err)
	return board
}

func TestFlagsCertainMine(t *testing.T) {
	board := loadBoard(t, `
		*ooo
		oooo
		oooo
		ooo.
	`)

	action, ok := New(1).Next(board)
	require.True(t, ok)
	assert.Equal(t, game.FlagAt(0, 0), action)
}

func TestChordsSatisfiedNumber(t *testing.T) {
	board := loadBoard(t, `
		Fo..
		oo..
		....
		....
	`)

	action, ok := New(1).Next(board)
	require.True(t, ok)
	assert.Equal(t, game.ChordAt(0, 1), action)
}

func TestRevealsSafeDifference(t *testing.T) {
	board := loadBoard(t, `
		*o.
		oo.
		...
	`)

	action, ok := New(1).Next(board)
	require.True(t, ok)
	assert.Equal(t, game.RevealAt(2, 0), action)
}

func TestPlaysLayoutToWin(t *testing.T) {
	board := loadBoard(t, `
		*ooo
		oooo
		oooo
		ooo.
	`)

	game.Play(board, New(1), 10)
	assert.True(t, board.IsGameOver())
	assert.True(t, board.DidWin())
	assert.True(t, board.IsFlagged(0, 0))
}

func TestOnlyFlagsMines(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		config := game.NewConfig()
		config.Seed = seed
		board, err := game.NewBoard(config)
		require.NoError(t, err)

		game.Play(board, New(seed), 2*board.Size()*board.Size())
		require.True(t, board.IsGameOver(), "seed %d", seed)

		for row := 0; row < board.Size(); row++ {
			for col := 0; col < board.Size(); col++ {
				if board.IsFlagged(row, col) {
					assert.True(t, board.IsMine(row, col), "seed %d: (%d, %d) flagged but safe", seed, row, col)
				}
			}
		}
	}
}

func TestObservationString(t *testing.T) {
	board := loadBoard(t, `
		*o.
		oo.
		...
	`)

	observations := observe(board)
	require.Len(t, observations, 3)
	assert.Equal(t, "Obs[(0, 1), 1 ε (0, 0), (0, 2), (1, 2)]", observations[0].String())
}

package director_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweeper/director"
	"github.com/they4kman/sweeper/director/constraint"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
)

func newBoard(t *testing.T, seed int64) *game.Board {
	t.Helper()
	config := game.NewConfig()
	config.Seed = seed
	board, err := game.NewBoard(config)
	require.NoError(t, err)
	return board
}

func TestPlaySeries(t *testing.T) {
	var ended int
	config := game.NewConfig()
	config.Seed = 11
	config.OnGameEnd = func(*game.Board) { ended++ }
	board, err := game.NewBoard(config)
	require.NoError(t, err)

	summary := director.PlaySeries(board, random.New(11), 25)

	assert.Equal(t, 25, summary.Games)
	assert.Equal(t, 25, ended)
	assert.GreaterOrEqual(t, summary.Moves, 25)
	assert.LessOrEqual(t, summary.Won, summary.Games)
}

func TestConstraintBeatsRandom(t *testing.T) {
	const games = 50

	deliberate := director.PlaySeries(newBoard(t, 3), constraint.New(3), games)
	guessing := director.PlaySeries(newBoard(t, 3), random.New(3), games)

	assert.Greater(t, deliberate.Won, guessing.Won)
}

func TestSummaryString(t *testing.T) {
	assert.Equal(t, "won 0/0 games (0.0%), 0 moves", director.Summary{}.String())
	assert.Equal(t, "won 1/4 games (25.0%), 30 moves", director.Summary{Games: 4, Won: 1, Moves: 30}.String())
}

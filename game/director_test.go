package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedDirector replays a fixed list of actions
type scriptedDirector struct {
	actions []CellAction
}

func (director *scriptedDirector) Next(*Board) (CellAction, bool) {
	if len(director.actions) == 0 {
		return CellAction{}, false
	}
	action := director.actions[0]
	director.actions = director.actions[1:]
	return action, true
}

func TestPlay(t *testing.T) {
	tests := []struct {
		name     string
		actions  []CellAction
		maxMoves int
		moves    int
		state    BoardState
	}{
		{
			name:     "wins",
			actions:  []CellAction{RevealAt(1, 1), FlagAt(0, 0), ChordAt(1, 1), RevealAt(2, 2)},
			maxMoves: 10,
			moves:    3,
			state:    Won,
		},
		{
			name:     "loses",
			actions:  []CellAction{RevealAt(0, 0), RevealAt(2, 2)},
			maxMoves: 10,
			moves:    1,
			state:    Lost,
		},
		{
			name:     "runs out of actions",
			actions:  []CellAction{RevealAt(1, 1)},
			maxMoves: 10,
			moves:    1,
			state:    Ongoing,
		},
		{
			name:     "move limit",
			actions:  []CellAction{FlagAt(0, 0), FlagAt(0, 0), FlagAt(0, 0)},
			maxMoves: 2,
			moves:    2,
			state:    Ongoing,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := loadBoard(t, `
				*..
				...
				...
			`)

			moves := Play(board, &scriptedDirector{actions: test.actions}, test.maxMoves)
			assert.Equal(t, test.moves, moves)
			assert.Equal(t, test.state, board.State())
		})
	}
}

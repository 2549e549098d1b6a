package game

import "fmt"

// CellAction is a player command aimed at one cell, as produced by input
// handling or a Director.
type CellAction struct {
	Row, Col int
	Action   Action
}

func (action CellAction) String() string {
	return fmt.Sprintf("%v(%d, %d)", action.Action, action.Row, action.Col)
}

func RevealAt(row, col int) CellAction {
	return CellAction{Row: row, Col: col, Action: Reveal}
}

func FlagAt(row, col int) CellAction {
	return CellAction{Row: row, Col: col, Action: ToggleFlag}
}

func ChordAt(row, col int) CellAction {
	return CellAction{Row: row, Col: col, Action: Chord}
}

// Apply dispatches action to the matching board operation.
func (board *Board) Apply(action CellAction) {
	switch action.Action {
	case Reveal:
		board.Reveal(action.Row, action.Col)
	case ToggleFlag:
		board.ToggleFlag(action.Row, action.Col)
	case Chord:
		board.ChordReveal(action.Row, action.Col)
	}
}

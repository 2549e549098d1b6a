package game

import "github.com/sirupsen/logrus"

// Director plays the game on the player's behalf, one action at a time.
type Director interface {
	// Next picks the following action, or returns false if it has none
	Next(board *Board) (CellAction, bool)
}

// Play lets director act on board until the game ends, the director gives
// up, or maxMoves actions have been applied. It returns the number of
// actions applied.
func Play(board *Board, director Director, maxMoves int) int {
	moves := 0
	for ; moves < maxMoves && !board.IsGameOver(); moves++ {
		action, ok := director.Next(board)
		if !ok {
			break
		}

		Log.WithFields(logrus.Fields{
			"move":   moves,
			"action": action,
		}).Debug("director acts")
		board.Apply(action)
	}
	return moves
}

package director

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/game"
)

var Log = logrus.New()

type Summary struct {
	Games, Won, Moves int
}

func (summary Summary) WinRate() float64 {
	if summary.Games == 0 {
		return 0
	}
	return float64(summary.Won) / float64(summary.Games)
}

func (summary Summary) String() string {
	return fmt.Sprintf("won %d/%d games (%.1f%%), %d moves",
		summary.Won, summary.Games, 100*summary.WinRate(), summary.Moves)
}

// PlaySeries lets director play numGames consecutive games on board,
// restarting it between games.
func PlaySeries(board *game.Board, director game.Director, numGames int) Summary {
	summary := Summary{}
	// Every action reveals or flags at least one cell
	maxMoves := 2 * board.Size() * board.Size()

	for i := 0; i < numGames; i++ {
		if i > 0 {
			board.Restart()
		}

		moves := game.Play(board, director, maxMoves)
		summary.Games++
		summary.Moves += moves
		if board.DidWin() {
			summary.Won++
		}

		Log.WithFields(logrus.Fields{
			"game":  i + 1,
			"seed":  board.Seed(),
			"state": board.State(),
			"moves": moves,
		}).Debug("game finished")
	}

	return summary
}

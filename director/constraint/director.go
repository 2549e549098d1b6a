package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/util/collections"
)

var Log = logrus.New()

// Director plays deductions it can prove from revealed numbers, and falls
// back to a random reveal when it cannot prove anything.
type Director struct {
	fallback game.Director
}

func New(seed int64) *Director {
	return &Director{fallback: random.New(seed)}
}

type point struct {
	row, col int
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   point
	numMines int
	cells    collections.Set[point]
}

func (observation Observation) String() string {
	cells := sortedPoints(observation.cells)
	repr := make([]string, len(cells))
	for i, cell := range cells {
		repr[i] = fmt.Sprintf("(%d, %d)", cell.row, cell.col)
	}
	return fmt.Sprintf("Obs[(%d, %d), %d ε %s]",
		observation.origin.row, observation.origin.col,
		observation.numMines, strings.Join(repr, ", "))
}

func (director *Director) Next(board *game.Board) (game.CellAction, bool) {
	if board.IsGameOver() {
		return game.CellAction{}, false
	}

	observations := observe(board)

	if action, ok := actDeliberate(observations); ok {
		return action, true
	}
	if action, ok := actSubsets(observations); ok {
		return action, true
	}

	Log.Debug("no deduction available, guessing")
	return director.fallback.Next(board)
}

// observe builds one observation per revealed number that still borders
// covered, unflagged cells.
func observe(board *game.Board) []Observation {
	var observations []Observation

	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			count := board.AdjacentCount(row, col)
			if !board.IsRevealed(row, col) || count <= 0 {
				continue
			}

			observation := Observation{
				origin:   point{row, col},
				numMines: count,
				cells:    collections.NewSet[point](),
			}
			for r := row - 1; r <= row+1; r++ {
				for c := col - 1; c <= col+1; c++ {
					if !board.InBounds(r, c) || board.IsRevealed(r, c) {
						continue
					}
					if board.IsFlagged(r, c) {
						observation.numMines--
					} else {
						observation.cells.Add(point{r, c})
					}
				}
			}

			// Over-flagged numbers prove nothing
			if len(observation.cells) > 0 && observation.numMines >= 0 {
				observations = append(observations, observation)
			}
		}
	}

	return observations
}

// actDeliberate handles observations that are fully determined on their own.
func actDeliberate(observations []Observation) (game.CellAction, bool) {
	for _, observation := range observations {
		switch observation.numMines {
		case 0:
			Log.WithField("observation", observation).Debug("all safe, chording")
			return game.ChordAt(observation.origin.row, observation.origin.col), true
		case len(observation.cells):
			cell := sortedPoints(observation.cells)[0]
			Log.WithField("observation", observation).Debug("all mines, flagging")
			return game.FlagAt(cell.row, cell.col), true
		}
	}
	return game.CellAction{}, false
}

// actSubsets compares pairs of observations: when one's cells are contained
// in the other's, the cells only the larger one covers hold the difference
// of their mine counts.
func actSubsets(observations []Observation) (game.CellAction, bool) {
	for i, subset := range observations {
		for j, superset := range observations {
			if i == j {
				continue
			}
			if _, isSubset := subset.cells.IntersectionEx(superset.cells); !isSubset {
				continue
			}

			rest := superset.cells.Difference(subset.cells)
			if len(rest) == 0 {
				continue
			}

			restMines := superset.numMines - subset.numMines
			cell := sortedPoints(rest)[0]

			switch restMines {
			case 0:
				Log.WithFields(logrus.Fields{
					"subset":   subset,
					"superset": superset,
				}).Debug("difference is safe")
				return game.RevealAt(cell.row, cell.col), true
			case len(rest):
				Log.WithFields(logrus.Fields{
					"subset":   subset,
					"superset": superset,
				}).Debug("difference is mined")
				return game.FlagAt(cell.row, cell.col), true
			}
		}
	}
	return game.CellAction{}, false
}

func sortedPoints(set collections.Set[point]) []point {
	points := make([]point, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].row != points[j].row {
			return points[i].row < points[j].row
		}
		return points[i].col < points[j].col
	})
	return points
}

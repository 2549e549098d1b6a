package game

import "fmt"

type Cell struct {
	board *Board

	row, col int
	idx      int
	adjacent int

	isMine, isRevealed, isFlagged bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

// Offsets of the eight surrounding cells, clockwise from the top left
var neighborOffsets = [8][2]int{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
}

// neighbors returns the in-bounds cells surrounding cell. Cells on the border
// have fewer than eight neighbors; the board does not wrap around.
func (cell *Cell) neighbors() []*Cell {
	neighbors := make([]*Cell, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor := cell.board.cellAt(cell.row+offset[0], cell.col+offset[1]); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (cell *Cell) countNeighbors(predicate func(*Cell) bool) int {
	count := 0
	for _, neighbor := range cell.neighbors() {
		if predicate(neighbor) {
			count++
		}
	}
	return count
}

func isMine(cell *Cell) bool {
	return cell.isMine
}

func isFlagged(cell *Cell) bool {
	return cell.isFlagged
}

func (cell *Cell) toggleFlagged() {
	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		cell.board.numFlags++
	} else {
		cell.board.numFlags--
	}
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.isMine:
		switch {
		case cell.idx == cell.board.losingIdx:
			return layoutDetonated
		case cell.isFlagged:
			return layoutFlaggedMine
		default:
			return layoutMine
		}
	case cell.isFlagged:
		return layoutFlaggedSafe
	case cell.isRevealed:
		return layoutRevealed
	default:
		return layoutSafe
	}
}

func (cell *Cell) deserialize(c byte) bool {
	switch c {
	case layoutMine:
		cell.isMine = true
	case layoutFlaggedMine:
		cell.isMine = true
		cell.isFlagged = true
	case layoutFlaggedSafe:
		cell.isFlagged = true
	case layoutRevealed:
		cell.isRevealed = true
	case layoutSafe:
	default:
		return false
	}
	return true
}

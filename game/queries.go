package game

// Queries for the presentation layer. Coordinates outside the board yield
// zero values.

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// MinesLeft is the number of mines minus the number of flags. It goes
// negative when the player over-flags.
func (board *Board) MinesLeft() int {
	return board.numMines - board.numFlags
}

// Seed returns the seed of the current game's layout.
func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) IsGameOver() bool {
	return board.state != Ongoing
}

// DidWin is only meaningful once IsGameOver is true.
func (board *Board) DidWin() bool {
	return board.state == Won
}

func (board *Board) InBounds(row, col int) bool {
	return board.cellAt(row, col) != nil
}

func (board *Board) IsRevealed(row, col int) bool {
	cell := board.cellAt(row, col)
	return cell != nil && cell.isRevealed
}

func (board *Board) IsFlagged(row, col int) bool {
	cell := board.cellAt(row, col)
	return cell != nil && cell.isFlagged
}

// IsMine discloses the layout; shells should only show it once the game is
// lost.
func (board *Board) IsMine(row, col int) bool {
	cell := board.cellAt(row, col)
	return cell != nil && cell.isMine
}

// IsLosingMine reports whether (row, col) is the mine that ended the game.
func (board *Board) IsLosingMine(row, col int) bool {
	cell := board.cellAt(row, col)
	return cell != nil && cell.idx == board.losingIdx
}

// AdjacentCount returns the number of mines around (row, col), or
// MineSentinel if the cell is itself a mine.
func (board *Board) AdjacentCount(row, col int) int {
	cell := board.cellAt(row, col)
	if cell == nil {
		return 0
	}
	return cell.adjacent
}

package game

import (
	"math/rand"
	"time"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Config struct {
	Size     uint // in number of cells, per side
	NumMines uint

	// Seed for the first game's mine layout. Zero picks one from the clock.
	Seed int64

	// Called once per game, when it is won or lost
	OnGameEnd func(board *Board)
}

func NewConfig() Config {
	return Config{
		Size:     DefaultSize,
		NumMines: DefaultNumMines,
	}
}

// Validate checks the board dimensions without starting a game.
func (config Config) Validate() error {
	return validate(int(config.Size), int(config.NumMines))
}

// Board is the game engine: it owns every cell and enforces the rules. All
// methods run to completion synchronously; a Board must not be shared between
// goroutines without external locking.
type Board struct {
	size     int
	numMines int
	cells    []Cell

	state     BoardState
	numFlags  int
	remaining int // safe cells still covered
	losingIdx int

	seed int64
	rand *rand.Rand

	onGameEnd func(board *Board)
}

// NewBoard validates config and starts the first game.
func NewBoard(config Config) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	size, numMines := int(config.Size), int(config.NumMines)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{onGameEnd: config.OnGameEnd}
	board.startGame(size, numMines, seed)
	return board, nil
}

// Initialize starts a new game with the given dimensions. It fails without
// touching the current game if numMines cannot fit on the board.
func (board *Board) Initialize(size, numMines int) error {
	if err := validate(size, numMines); err != nil {
		Log.WithFields(logrus.Fields{
			"size":  size,
			"mines": numMines,
		}).Warn("rejected board configuration")
		return err
	}
	board.startGame(size, numMines, board.rand.Int63())
	return nil
}

// Restart starts a new game of the same dimensions with a fresh layout.
func (board *Board) Restart() {
	board.startGame(board.size, board.numMines, board.rand.Int63())
}

func (board *Board) startGame(size, numMines int, seed int64) {
	board.size = size
	board.numMines = numMines
	board.seed = seed
	board.rand = rand.New(rand.NewSource(seed))

	board.reset()
	board.placeMines()
	board.countAdjacent()

	Log.WithFields(logrus.Fields{
		"size":  size,
		"mines": numMines,
		"seed":  seed,
	}).Debug("new game")
	Log.Debugf("layout:\n%s", board)
}

func (board *Board) reset() {
	board.cells = make([]Cell, board.size*board.size)
	for idx := range board.cells {
		cell := &board.cells[idx]
		cell.board = board
		cell.idx = idx
		cell.row, cell.col = idx/board.size, idx%board.size
	}

	board.state = Ongoing
	board.numFlags = 0
	board.remaining = len(board.cells) - board.numMines
	board.losingIdx = -1
}

// placeMines picks random cells until numMines distinct ones are mined.
// validate guarantees at least one cell stays free, so this terminates.
func (board *Board) placeMines() {
	for placed := 0; placed < board.numMines; {
		cell := board.cellAt(board.rand.Intn(board.size), board.rand.Intn(board.size))
		if cell.isMine {
			continue
		}
		cell.isMine = true
		placed++
	}
}

func (board *Board) countAdjacent() {
	for idx := range board.cells {
		cell := &board.cells[idx]
		if cell.isMine {
			cell.adjacent = MineSentinel
		} else {
			cell.adjacent = cell.countNeighbors(isMine)
		}
	}
}

func (board *Board) cellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.size && col < board.size {
		return &board.cells[row*board.size+col]
	}
	return nil
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

// Reveal uncovers the cell at (row, col). Covered zero cells spread to their
// neighbors; a mine ends the game. Out-of-bounds, revealed or flagged cells
// and finished games are ignored.
func (board *Board) Reveal(row, col int) {
	origin := board.cellAt(row, col)
	if origin == nil || origin.isRevealed || origin.isFlagged || !board.canPlay() {
		return
	}

	if detonated := board.flood(origin); detonated != nil {
		board.lose(detonated)
		return
	}

	if board.CheckVictory() {
		board.win()
	}
}

// flood reveals origin and, breadth first, every covered cell reachable from
// it through zero cells. It returns the mine hit, if any.
func (board *Board) flood(origin *Cell) *Cell {
	var queue deque.Deque
	queue.PushBack(origin)

	for queue.Len() > 0 {
		cell := queue.PopFront().(*Cell)
		if cell.isRevealed || cell.isFlagged {
			continue
		}

		cell.isRevealed = true
		if cell.isMine {
			return cell
		}
		board.remaining--

		if cell.adjacent == 0 {
			for _, neighbor := range cell.neighbors() {
				if !neighbor.isRevealed && !neighbor.isFlagged {
					queue.PushBack(neighbor)
				}
			}
		}
	}

	return nil
}

// ToggleFlag flags or unflags a covered cell.
func (board *Board) ToggleFlag(row, col int) {
	cell := board.cellAt(row, col)
	if cell == nil || cell.isRevealed || !board.canPlay() {
		return
	}
	cell.toggleFlagged()
}

// ChordReveal reveals every covered, unflagged neighbor of a revealed number
// cell, but only when exactly that number of neighbors is flagged. Otherwise
// nothing changes.
func (board *Board) ChordReveal(row, col int) {
	origin := board.cellAt(row, col)
	if origin == nil || !origin.isRevealed || origin.isMine || origin.adjacent <= 0 || !board.canPlay() {
		return
	}

	if numFlags := origin.countNeighbors(isFlagged); numFlags != origin.adjacent {
		Log.WithFields(logrus.Fields{
			"cell":  origin,
			"flags": numFlags,
			"count": origin.adjacent,
		}).Debug("chord ignored, flag count mismatch")
		return
	}

	for _, neighbor := range origin.neighbors() {
		if !neighbor.isFlagged && !neighbor.isRevealed {
			board.Reveal(neighbor.row, neighbor.col)
		}
	}
}

// Click performs the primary action on a cell: covered cells are revealed,
// revealed ones are chorded.
func (board *Board) Click(row, col int) {
	cell := board.cellAt(row, col)
	if cell == nil || cell.isFlagged || !board.canPlay() {
		return
	}

	if cell.isRevealed {
		board.ChordReveal(row, col)
	} else {
		board.Reveal(row, col)
	}
}

// CheckVictory reports whether every safe cell has been revealed. Mines may
// remain covered.
func (board *Board) CheckVictory() bool {
	return board.remaining == 0
}

func (board *Board) win() {
	board.state = Won
	Log.WithFields(logrus.Fields{
		"seed":  board.seed,
		"flags": board.numFlags,
	}).Info("game won")
	board.endGame()
}

// lose records the detonated mine and uncovers every mine on the board.
func (board *Board) lose(detonated *Cell) {
	board.state = Lost
	board.losingIdx = detonated.idx

	for idx := range board.cells {
		if cell := &board.cells[idx]; cell.isMine {
			cell.isRevealed = true
		}
	}

	Log.WithFields(logrus.Fields{
		"seed": board.seed,
		"cell": detonated,
	}).Info("game lost")
	board.endGame()
}

func (board *Board) endGame() {
	if board.onGameEnd != nil {
		board.onGameEnd(board)
	}
}

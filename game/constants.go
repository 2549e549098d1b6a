package game

type BoardState int
type Action int

const (
	DefaultSize     = 10
	DefaultNumMines = 10
)

// MineSentinel is the adjacent count reported for mine cells
const MineSentinel = -1

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

const (
	Reveal Action = iota
	ToggleFlag
	Chord
)

func (action Action) String() string {
	switch action {
	case Reveal:
		return "reveal"
	case ToggleFlag:
		return "flag"
	case Chord:
		return "chord"
	default:
		return "unknown"
	}
}

// Layout characters, one per cell
const (
	layoutMine        = '*'
	layoutSafe        = '.'
	layoutFlaggedMine = 'F'
	layoutFlaggedSafe = 'f'
	layoutRevealed    = 'o'
	layoutDetonated   = 'X'
)

package game

// ---------- Types & Constants ----------

// Cell is the state of one board position.
type Cell uint8

const (
	Empty    Cell = 0 // Empty cell
	Human    Cell = 1 // Mark of the human player (Z)
	Opponent Cell = 2 // Mark of the seeded opponent (K)
)

// Symbol returns the single-letter mark used when rendering the board.
func (c Cell) Symbol() byte {
	switch c {
	case Human:
		return 'Z'
	case Opponent:
		return 'K'
	default:
		return ' '
	}
}

// Status tracks a round through its lifecycle. InProgress is the only
// non-terminal value.
type Status uint8

const (
	InProgress  Status = 0 // Human to move
	HumanWin    Status = 1 // Human completed a line
	OpponentWin Status = 2 // Opponent completed a line
	Draw        Status = 3 // Board exhausted with no line
	Invalid     Status = 4 // Transcript could not be replayed
)

// Terminal reports whether no further moves can be played.
func (s Status) Terminal() bool { return s != InProgress }

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case HumanWin:
		return "human win"
	case OpponentWin:
		return "opponent win"
	case Draw:
		return "draw"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

// MaxMoves bounds how many human moves a transcript may carry. The human
// can never place more marks than there are cells.
const MaxMoves = BoardSize

// NoMove marks a Turn in which the opponent did not move.
const NoMove = -1

// Turn is the result of one human move and the opponent's reply.
type Turn struct {
	Human    uint8  // cell the human marked
	Opponent int    // cell the opponent marked, or NoMove
	Status   Status // round status after the turn
}

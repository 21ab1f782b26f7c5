package game

import "errors"

var (
	ErrOutOfRange   = errors.New("move out of range")
	ErrCellOccupied = errors.New("cell occupied")
	ErrGameOver     = errors.New("round is over")
)

// Round drives one game: the human moves, then the seeded opponent
// answers. The interactive session and the verifier both play through a
// Round, which keeps their opponent moves identical for a given seed.
type Round struct {
	board      Board
	rng        LCG
	transcript Transcript
	status     Status
}

// NewRound starts a round with an empty board and a generator seeded
// with seed.
func NewRound(seed uint64) *Round {
	return &Round{
		rng:        LCG{state: seed},
		transcript: Transcript{Seed: seed},
	}
}

// Board returns a copy of the current board.
func (r *Round) Board() Board { return r.board }

// Status returns the current round status.
func (r *Round) Status() Status { return r.status }

// Transcript returns the seed and the human moves played so far.
func (r *Round) Transcript() Transcript { return r.transcript }

// Play applies a human move and, unless the round ends first, the
// opponent's reply. An illegal move returns an error and leaves the
// round untouched so the caller may retry.
func (r *Round) Play(pos uint64) (Turn, error) {
	if r.status.Terminal() {
		return Turn{}, ErrGameOver
	}
	if pos >= BoardSize {
		return Turn{}, ErrOutOfRange
	}
	if !r.board.Apply(pos, Human) {
		return Turn{}, ErrCellOccupied
	}
	// Cannot fail: at most one human move per cell.
	_ = r.transcript.Append(pos)

	turn := Turn{Human: uint8(pos), Opponent: NoMove}

	if w, ok := r.board.Winner(); ok && w == Human {
		r.status = HumanWin
		turn.Status = r.status
		return turn, nil
	}

	cands, ok := r.board.Candidates()
	if !ok {
		r.status = Draw
		turn.Status = r.status
		return turn, nil
	}
	opp := r.rng.Pick(cands)
	r.board.Apply(uint64(opp), Opponent)
	turn.Opponent = int(opp)

	if w, ok := r.board.Winner(); ok && w == Opponent {
		r.status = OpponentWin
	}
	turn.Status = r.status
	return turn, nil
}

// Replay re-plays t on a fresh round. It stops at the first terminal
// status; moves after that are not looked at. Any illegal move yields
// Invalid, and a transcript that runs out mid-game stays InProgress.
func Replay(t Transcript) Status {
	r := NewRound(t.Seed)
	for i := 0; i < t.Len(); i++ {
		turn, err := r.Play(t.Move(i))
		if err != nil {
			return Invalid
		}
		if turn.Status.Terminal() {
			return turn.Status
		}
	}
	return r.status
}

// VerifyTranscript reports whether replaying t ends in a human win.
func VerifyTranscript(t Transcript) bool {
	return Replay(t) == HumanWin
}

// Verify decodes a wire transcript and reports whether it records a
// human win. Every failure, whether a parse error, an illegal move, a
// loss, a draw or an unfinished game, is reported as false with no
// further detail.
func Verify(input string) bool {
	t, err := ParseTranscript(input)
	if err != nil {
		return false
	}
	return VerifyTranscript(t)
}

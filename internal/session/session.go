// Package session runs a round of tic-tac-toe in a terminal. The human
// types cell indices; the opponent answers with moves drawn from the same
// seeded generator the verifier replays, so the transcript a session
// produces verifies bit-for-bit.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"zikzakzoo/game"
)

const (
	promptMove  = "Enter your move (0-8):"
	invalidMove = "Invalid move. Please enter a number between 0 and 8 for an empty cell."
	msgHumanWin = "You win!"
	msgComputer = "Computer wins!"
	msgDraw     = "It's a draw!"
)

// Session is one interactive round.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	seed   uint64
	now    func() time.Time
	events emitter
}

// Option configures a Session.
type Option func(*Session)

// WithSeed fixes the opponent seed. Zero leaves the clock-derived default.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithClock replaces the clock used to derive the default seed.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithEventLogger sends JSON event lines to l.
func WithEventLogger(l *log.Logger) Option {
	return func(s *Session) { s.events = emitter{logger: l} }
}

// New builds a session reading moves from in and drawing to out. Without
// WithSeed the seed is the current Unix time in seconds.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:  bufio.NewScanner(in),
		out: out,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = uint64(s.now().Unix())
	}
	return s
}

// Seed returns the seed the opponent plays with.
func (s *Session) Seed() uint64 { return s.seed }

// Play runs the round to completion and returns the human transcript and
// the final status. Bad input is re-prompted; only I/O failure or ctx
// cancellation ends the round early, in which case the transcript so far
// is still returned.
func (s *Session) Play(ctx context.Context) (game.Transcript, game.Status, error) {
	r := game.NewRound(s.seed)
	s.events.roundStarted(s.seed)

	for !r.Status().Terminal() {
		if err := ctx.Err(); err != nil {
			return r.Transcript(), r.Status(), err
		}
		s.drawBoard(r.Board())

		pos, err := s.readMove(ctx, r.Board())
		if err != nil {
			return r.Transcript(), r.Status(), err
		}
		turn, err := r.Play(pos)
		if err != nil {
			// readMove already filtered illegal cells
			return r.Transcript(), r.Status(), fmt.Errorf("play move %d: %w", pos, err)
		}
		s.events.move("human", int(turn.Human))
		if turn.Opponent != game.NoMove {
			s.events.move("opponent", turn.Opponent)
			fmt.Fprintf(s.out, "Computer plays %d\n", turn.Opponent)
		}
	}

	s.drawBoard(r.Board())
	t := r.Transcript()
	switch r.Status() {
	case game.HumanWin:
		fmt.Fprintln(s.out, msgHumanWin)
		s.events.finished("roundWon", t.String())
	case game.OpponentWin:
		fmt.Fprintln(s.out, msgComputer)
		s.events.finished("roundLost", t.String())
	default:
		fmt.Fprintln(s.out, msgDraw)
		s.events.finished("roundDraw", t.String())
	}
	return t, r.Status(), nil
}

// readMove prompts until the human names an empty cell on the board.
func (s *Session) readMove(ctx context.Context, b game.Board) (uint64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintln(s.out, promptMove)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return 0, fmt.Errorf("read move: %w", err)
			}
			return 0, fmt.Errorf("read move: %w", io.ErrUnexpectedEOF)
		}
		pos, err := strconv.ParseUint(strings.TrimSpace(s.in.Text()), 10, 64)
		if err == nil && legal(b, pos) {
			return pos, nil
		}
		fmt.Fprintln(s.out, invalidMove)
	}
}

func legal(b game.Board, pos uint64) bool {
	return pos < game.BoardSize && b[pos] == game.Empty
}

func (s *Session) drawBoard(b game.Board) {
	fmt.Fprintln(s.out, b.String())
}

// IsInputClosed reports whether err came from input ending mid-round.
func IsInputClosed(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}

package game

import (
	"errors"
	"strconv"
	"strings"
)

//
// Transcript wire codec.
//
// A round travels as "<seed>,<move_0>,...,<move_k>": base-10 unsigned
// integers, comma separated, no whitespace. Opponent moves are never
// stored; they are re-derived from the seed on replay. A round is decided
// by the fifth human move at the latest, so only the first MaxMoves moves
// are kept; later tokens are still checked for well-formedness.
//

var (
	ErrMalformedSeed = errors.New("malformed seed")
	ErrMalformedMove = errors.New("malformed move")
	ErrTooManyMoves  = errors.New("too many moves")
)

const fieldSep = ','

// Transcript is a seed plus the human moves in play order. Move values
// are not range-checked here; replay does that.
type Transcript struct {
	Seed  uint64
	moves [MaxMoves]uint64
	n     uint8
}

// NewTranscript builds a transcript from already-known values.
func NewTranscript(seed uint64, moves ...uint64) (Transcript, error) {
	t := Transcript{Seed: seed}
	for _, m := range moves {
		if err := t.Append(m); err != nil {
			return Transcript{}, err
		}
	}
	return t, nil
}

// Append records the next human move.
func (t *Transcript) Append(move uint64) error {
	if int(t.n) >= MaxMoves {
		return ErrTooManyMoves
	}
	t.moves[t.n] = move
	t.n++
	return nil
}

// Len returns the number of human moves.
func (t Transcript) Len() int { return int(t.n) }

// Move returns the i-th human move.
func (t Transcript) Move(i int) uint64 { return t.moves[i] }

// Moves returns a copy of the human moves.
func (t Transcript) Moves() []uint64 {
	out := make([]uint64, t.n)
	copy(out, t.moves[:t.n])
	return out
}

// ParseTranscript decodes the wire format. Every token must be a base-10
// uint64 with an optional leading '+'; a bad seed or a bad move anywhere
// fails the whole transcript. Moves past MaxMoves are validated and
// dropped.
func ParseTranscript(s string) (Transcript, error) {
	in := s
	tok, more := nextFieldMore(&in)
	seed, err := parseU64(tok)
	if err != nil {
		return Transcript{}, ErrMalformedSeed
	}
	t := Transcript{Seed: seed}
	for more {
		tok, more = nextFieldMore(&in)
		m, err := parseU64(tok)
		if err != nil {
			return Transcript{}, ErrMalformedMove
		}
		if int(t.n) < MaxMoves {
			t.moves[t.n] = m
			t.n++
		}
	}
	return t, nil
}

// FormatTranscript encodes seed and moves into the wire format.
func FormatTranscript(seed uint64, moves []uint64) string {
	out := make([]byte, 0, 21+len(moves)*2)
	out = appendU64(out, seed)
	for _, m := range moves {
		out = append(out, fieldSep)
		out = appendU64(out, m)
	}
	return string(out)
}

// AppendTo appends the wire encoding of t to dst.
func (t Transcript) AppendTo(dst []byte) []byte {
	dst = appendU64(dst, t.Seed)
	for i := 0; i < int(t.n); i++ {
		dst = append(dst, fieldSep)
		dst = appendU64(dst, t.moves[i])
	}
	return dst
}

func (t Transcript) String() string {
	var buf [21 + MaxMoves*21]byte
	return string(t.AppendTo(buf[:0]))
}

// ---------- Parsing Helpers ----------

// nextFieldMore cuts the next comma-separated token off s and reports
// whether a separator followed it.
func nextFieldMore(s *string) (string, bool) {
	i := strings.IndexByte(*s, fieldSep)
	if i < 0 {
		f := *s
		*s = ""
		return f, false
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f, true
}

// parseU64 accepts ASCII digits with at most one leading '+'. Minus
// signs, spaces and empty tokens fail.
func parseU64(s string) (uint64, error) {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	return strconv.ParseUint(s, 10, 64)
}

func appendU64(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 10)
}

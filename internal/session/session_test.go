package session

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zikzakzoo/game"
)

func play(t *testing.T, seed uint64, input string, opts ...Option) (game.Transcript, game.Status, string, error) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithSeed(seed)}, opts...)
	s := New(strings.NewReader(input), &out, opts...)
	tr, st, err := s.Play(context.Background())
	return tr, st, out.String(), err
}

func TestPlayHumanWin(t *testing.T) {
	tr, st, out, err := play(t, 1, "0\n1\n2\n")
	require.NoError(t, err)

	assert.Equal(t, game.HumanWin, st)
	assert.Equal(t, "1,0,1,2", tr.String())
	assert.Contains(t, out, "Computer plays 5\n")
	assert.Contains(t, out, "Computer plays 8\n")
	assert.Contains(t, out, "You win!")
	assert.True(t, game.Verify(tr.String()))
}

func TestPlayOpponentWinAndDraw(t *testing.T) {
	tr, st, out, err := play(t, 1, "0\n1\n3\n4\n")
	require.NoError(t, err)
	assert.Equal(t, game.OpponentWin, st)
	assert.Contains(t, out, "Computer wins!")
	assert.False(t, game.Verify(tr.String()))

	tr, st, out, err = play(t, 1, "2\n3\n4\n7\n0\n")
	require.NoError(t, err)
	assert.Equal(t, game.Draw, st)
	assert.Contains(t, out, "It's a draw!")
	assert.Equal(t, game.Draw, game.Replay(tr))
}

func TestPlayRepromptsOnBadInput(t *testing.T) {
	// x: not a number, 9: off the board, second 0: ours, 5: the opponent's
	tr, st, out, err := play(t, 1, "x\n9\n0\n0\n5\n 1 \n2\n")
	require.NoError(t, err)

	assert.Equal(t, game.HumanWin, st)
	assert.Equal(t, "1,0,1,2", tr.String())
	assert.Equal(t, 4, strings.Count(out, invalidMove))
}

func TestPlayInputClosed(t *testing.T) {
	tr, st, _, err := play(t, 1, "0\n")
	require.Error(t, err)
	assert.True(t, IsInputClosed(err))
	assert.Equal(t, game.InProgress, st)
	assert.Equal(t, "1,0", tr.String())
}

func TestPlayCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(strings.NewReader("0\n"), &bytes.Buffer{}, WithSeed(1))
	_, _, err := s.Play(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeedFromClock(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{}, WithClock(func() time.Time {
		return time.Unix(1760659200, 0)
	}))
	assert.Equal(t, uint64(1760659200), s.Seed())

	s = New(strings.NewReader(""), &bytes.Buffer{}, WithSeed(9))
	assert.Equal(t, uint64(9), s.Seed())
}

func TestPlayEmitsEvents(t *testing.T) {
	var logs bytes.Buffer
	_, _, _, err := play(t, 1, "0\n1\n2\n", WithEventLogger(log.New(&logs, "", 0)))
	require.NoError(t, err)

	var types []string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(line), &ev), line)
		types = append(types, ev.Type)
	}
	assert.Equal(t, []string{
		"roundStarted",
		"move", "move",
		"move", "move",
		"move",
		"roundWon",
	}, types)
}

func TestBoardDrawnBeforePrompt(t *testing.T) {
	_, _, out, err := play(t, 1, "0\n1\n2\n")
	require.NoError(t, err)

	first := strings.Index(out, promptMove)
	require.Positive(t, first)
	assert.True(t, strings.HasPrefix(out, "0|1|2\n-+-+-\n3|4|5\n-+-+-\n6|7|8\n"))
}

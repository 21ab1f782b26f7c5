package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zikzakzoo/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DBPath:     filepath.Join(t.TempDir(), "rounds.db"),
		MemLimitMB: 8,
	}
}

func runCLI(t *testing.T, cfg config.Config, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), cfg, args, strings.NewReader(input), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestVerifyCommand(t *testing.T) {
	cfg := testConfig(t)

	out, errOut, err := runCLI(t, cfg, "", "verify", "1,0,1,2")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
	assert.Contains(t, errOut, "Succeeded!")

	for _, in := range []string{"abc,0", "1,9", "1,0,0", "1,0"} {
		out, _, err = runCLI(t, cfg, "", "verify", in)
		require.NoError(t, err, in)
		assert.Equal(t, "false\n", out, in)
	}
}

func TestVerifyRecordAndHistory(t *testing.T) {
	cfg := testConfig(t)

	_, _, err := runCLI(t, cfg, "", "verify", "-record", "7,0,1,2")
	require.NoError(t, err)
	_, _, err = runCLI(t, cfg, "", "verify", "-record", "1,0")
	require.NoError(t, err)

	out, _, err := runCLI(t, cfg, "", "history", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "7,0,1,2")
	assert.Contains(t, out, "1,0")
	assert.Equal(t, 2, strings.Count(out, "\n"))

}

func TestVerifyRecordMalformedFailsClosed(t *testing.T) {
	cfg := testConfig(t)

	out, errOut, err := runCLI(t, cfg, "", "verify", "-record", "x,0")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
	assert.Contains(t, errOut, "Not recorded")

	out, _, err = runCLI(t, cfg, "", "history")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestVerifyRecordKeepsRawTranscript(t *testing.T) {
	cfg := testConfig(t)

	out, _, err := runCLI(t, cfg, "", "verify", "-record", "+1,0,1,2,5,5,5,5,5,5,5")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = runCLI(t, cfg, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "+1,0,1,2,5,5,5,5,5,5,5")
}

func TestPlayCommand(t *testing.T) {
	cfg := testConfig(t)

	out, _, err := runCLI(t, cfg, "0\n1\n2\n", "play", "-seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to ZiK-ZaK-Zoo!")
	assert.Contains(t, out, "Seed used: 1\n")
	assert.Contains(t, out, "Player moves: [0 1 2]\n")
	assert.Contains(t, out, "Wow it's true that you won at ZiK-ZaK-ZoO!")

	out, _, err = runCLI(t, cfg, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "1,0,1,2")
}

func TestPlayUsesConfiguredSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = 1

	out, _, err := runCLI(t, cfg, "0\n1\n3\n4\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "Computer wins!")
	assert.Contains(t, out, "Wow it's false that you won at ZiK-ZaK-ZoO!")
}

func TestPlayInputEndsEarly(t *testing.T) {
	_, _, err := runCLI(t, testConfig(t), "0\n", "play", "-seed", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input ended before the round finished")
	assert.Contains(t, err.Error(), "1,0")
}

func TestUsageErrors(t *testing.T) {
	cfg := testConfig(t)

	_, errOut, err := runCLI(t, cfg, "")
	assert.Error(t, err)
	assert.Contains(t, errOut, "usage:")

	_, _, err = runCLI(t, cfg, "", "bogus")
	assert.Error(t, err)

	_, _, err = runCLI(t, cfg, "", "verify")
	assert.Error(t, err)

	cfg.ProverKey = "not-hex"
	_, _, err = runCLI(t, cfg, "", "verify", "1,0")
	assert.Error(t, err)
}

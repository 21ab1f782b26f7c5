// Package game is the deterministic core shared by the verifier guest and
// the interactive host: the 3x3 board, the seeded 64-bit LCG that picks
// the opponent's moves, the "seed,move,..." transcript codec, and the
// replay that turns a transcript into a verdict.
//
// Nothing here allocates on the replay path or keeps state between calls;
// each Round owns its board and generator. The package has no third-party
// imports so it builds unchanged under tinygo.
package game

// Command contract is the verifier guest. It is compiled with tinygo into
// the program the proving host executes: the transcript arrives as private
// input and a single boolean leaves as public output.
//
// The guest never logs and never aborts on bad input. Whatever went wrong,
// the only observable result is false.
package main

import (
	"zikzakzoo/game"
	"zikzakzoo/sdk"
)

func main() {
	run()
}

// run reads the transcript, replays it, and commits the verdict.
func run() {
	sdk.WriteOutput(game.Verify(sdk.ReadPrivateInput()))
}

// verifyImpl is the exported entry point's body: a nil payload is treated
// like any other malformed transcript.
func verifyImpl(payload *string) *string {
	ret := "false"
	if payload != nil && game.Verify(*payload) {
		ret = "true"
	}
	return &ret
}

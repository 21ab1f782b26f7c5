//go:build !tinygo

package sdk

// In-memory host used when the guest is built with the regular toolchain
// (tests, host-side tooling). Not safe for concurrent use.

var (
	privateInput string
	output       *bool
)

// ReadPrivateInput returns the value last passed to SetPrivateInput.
func ReadPrivateInput() string { return privateInput }

// WriteOutput records v; read it back with Output.
func WriteOutput(v bool) { output = &v }

// SetPrivateInput stages the input for the next guest run and clears any
// previous output.
func SetPrivateInput(s string) {
	privateInput = s
	output = nil
}

// Output returns the committed output and whether one was written.
func Output() (bool, bool) {
	if output == nil {
		return false, false
	}
	return *output, true
}

// Package sdk binds the verifier guest to its proving host. The host
// supplies the transcript as private input and commits whatever the guest
// writes as the single public output.
//
// Builds under tinygo use the wasm host imports; every other build gets an
// in-memory stand-in so the guest can be exercised from go test.
package sdk

// Package prover is the host side of the proving layer. A Prover runs the
// verifier guest once on a private transcript and returns a Proof whose
// only public content is the boolean output. The guest itself knows
// nothing about proofs.
package prover

import (
	"context"
	"errors"
)

var (
	ErrNilProof        = errors.New("proof is required")
	ErrBackendMismatch = errors.New("proof was produced by a different backend")
	ErrBadAttestation  = errors.New("proof attestation does not match")
	ErrInputTooLarge   = errors.New("input exceeds guest memory limit")
)

// Proof is the public result of one guest execution.
type Proof struct {
	Backend string
	Output  bool
	Nonce   [16]byte
	Tag     []byte
}

// Prover executes the verifier on private input and checks the resulting
// proofs.
type Prover interface {
	Name() string
	Prove(ctx context.Context, input string) (*Proof, error)
	Verify(ctx context.Context, proof *Proof) error
}

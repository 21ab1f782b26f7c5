package prover

import (
	"context"
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"zikzakzoo/game"
)

// LocalBackend names proofs produced by Local.
const LocalBackend = "local"

const defaultMemLimitMB = 8

// Local runs the verifier in-process and attests the output with
// HMAC-SHA256. The attestation only convinces holders of the key; it is a
// stand-in for a zkVM backend behind the same interface.
type Local struct {
	key        []byte
	memLimitMB int
	execute    func(string) bool
}

// Option configures Local.
type Option func(*Local)

// WithKey sets the attestation key.
func WithKey(key []byte) Option {
	return func(l *Local) { l.key = append([]byte(nil), key...) }
}

// WithMemLimit bounds guest input size, in megabytes.
func WithMemLimit(mb int) Option {
	return func(l *Local) { l.memLimitMB = mb }
}

// NewLocal builds a local prover. Without WithKey a random 32-byte key is
// generated, so proofs only verify inside the same process.
func NewLocal(opts ...Option) (*Local, error) {
	l := &Local{memLimitMB: defaultMemLimitMB, execute: game.Verify}
	for _, opt := range opts {
		opt(l)
	}
	if l.memLimitMB <= 0 {
		return nil, fmt.Errorf("memory limit must be positive, got %d", l.memLimitMB)
	}
	if len(l.key) == 0 {
		l.key = make([]byte, 32)
		if _, err := crand.Read(l.key); err != nil {
			return nil, fmt.Errorf("read prover key: %w", err)
		}
	}
	return l, nil
}

// ParseKey decodes a hex attestation key; blank input yields nil.
func ParseKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode prover key: %w", err)
	}
	return key, nil
}

func (l *Local) Name() string { return LocalBackend }

// Prove executes the guest once on input.
func (l *Local) Prove(ctx context.Context, input string) (*Proof, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(input) > l.memLimitMB<<20 {
		return nil, ErrInputTooLarge
	}

	p := &Proof{Backend: LocalBackend}
	if _, err := crand.Read(p.Nonce[:]); err != nil {
		return nil, fmt.Errorf("read proof nonce: %w", err)
	}
	p.Output = l.execute(input)
	p.Tag = l.tag(p)
	return p, nil
}

// Verify checks that proof was attested by this prover's key.
func (l *Local) Verify(ctx context.Context, proof *Proof) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if proof == nil {
		return ErrNilProof
	}
	if proof.Backend != LocalBackend {
		return ErrBackendMismatch
	}
	if !hmac.Equal(proof.Tag, l.tag(proof)) {
		return ErrBadAttestation
	}
	return nil
}

func (l *Local) tag(p *Proof) []byte {
	mac := hmac.New(sha256.New, l.key)
	mac.Write([]byte(p.Backend))
	mac.Write(p.Nonce[:])
	if p.Output {
		mac.Write([]byte{1})
	} else {
		mac.Write([]byte{0})
	}
	return mac.Sum(nil)
}

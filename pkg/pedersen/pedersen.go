// Package pedersen implements Pedersen commitments C = gᵐ⋅hʳ (mod p) over the
// multiplicative group of integers modulo p.
//
// The package is an arithmetic evaluator. Binding and hiding only hold when
// the caller picks a prime p, independent generators g and h of a large order
// subgroup, and a fresh uniformly random blinding factor r for every
// commitment. Validate and Generate help with the first two; nothing is
// enforced by Commit or Verify.
package pedersen

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/taurusgroup/pedersen/internal/params"
	"github.com/taurusgroup/pedersen/pkg/math/arith"
)

type Error string

const (
	ErrZeroModulus    Error = "modulus must not be 0"
	ErrNotPrime       Error = "modulus must be prime"
	ErrGeneratorRange Error = "g and h must be in [2,…,p-1]"
	ErrGEqualH        Error = "g cannot be equal to h"
	ErrNilFields      Error = "contains nil field"
	ErrNotValidModN   Error = "g and h must be in [1,…,p-1] and coprime to p"
	ErrLengthMismatch Error = "commitments and openings must have the same length"
	ErrNoGenerators   Error = "failed to find distinct generators"
)

func (e Error) Error() string {
	return fmt.Sprintf("pedersen: %s", string(e))
}

// Commitment is gᵐ⋅hʳ (mod p). It is always reduced, so it is < p.
type Commitment uint64

// Parameters holds the generators g, h and the modulus p.
// It is immutable, and safe for concurrent use.
type Parameters struct {
	g, h, p uint64
}

// New returns a new set of Pedersen parameters.
//
// Only p = 0 is rejected. Call Validate to check that the parameters are fit
// for binding and hiding.
func New(g, h, p uint64) (*Parameters, error) {
	if p == 0 {
		return nil, ErrZeroModulus
	}
	return &Parameters{g: g, h: h, p: p}, nil
}

// Validate returns an error if any of the following is true:
//   - p is not prime.
//   - g, h are not in [2, …, p-1].
//   - g = h.
func (p *Parameters) Validate() error {
	if !new(big.Int).SetUint64(p.p).ProbablyPrime(params.PrimalityIterations) {
		return ErrNotPrime
	}
	for _, x := range []uint64{p.g, p.h} {
		if x < 2 || x >= p.p {
			return ErrGeneratorRange
		}
	}
	if p.g == p.h {
		return ErrGEqualH
	}
	return nil
}

// G is the generator the message is raised to.
func (p *Parameters) G() uint64 { return p.g }

// H is the generator the blinding factor is raised to.
func (p *Parameters) H() uint64 { return p.h }

// P is the modulus.
func (p *Parameters) P() uint64 { return p.p }

// Commit computes gᵐ⋅hʳ (mod p), with m = message and r = blinding.
//
// Commit is deterministic: hiding comes entirely from the caller's choice of r.
func (p *Parameters) Commit(message, blinding uint64) Commitment {
	gm := arith.ModExp(p.g, message, p.p)
	hr := arith.ModExp(p.h, blinding, p.p)
	return Commitment(arith.MulMod(gm, hr, p.p))
}

// Verify returns true if commitment = gᵐ⋅hʳ (mod p).
//
// A false result means the opening does not match; it is not an error.
func (p *Parameters) Verify(commitment Commitment, message, blinding uint64) bool {
	return p.Commit(message, blinding) == commitment
}

// Add returns a⋅b (mod p).
//
// If a opens to (m₁, r₁) and b opens to (m₂, r₂), then the result opens to
// (m₁+m₂, r₁+r₂), as long as neither sum wraps around 2⁶⁴. See Opening.Add.
func (p *Parameters) Add(a, b Commitment) Commitment {
	return Commitment(arith.MulMod(uint64(a), uint64(b), p.p))
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (p *Parameters) WriteTo(w io.Writer) (int64, error) {
	if p == nil {
		return 0, io.ErrUnexpectedEOF
	}
	nAll := int64(0)
	buf := make([]byte, params.BytesWord)

	// write p, g, h
	for _, x := range []uint64{p.p, p.g, p.h} {
		binary.BigEndian.PutUint64(buf, x)
		n, err := w.Write(buf)
		nAll += int64(n)
		if err != nil {
			return nAll, err
		}
	}
	return nAll, nil
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (Parameters) Domain() string {
	return "Pedersen Parameters"
}

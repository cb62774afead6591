package pedersen

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/pedersen/internal/params"
	"github.com/taurusgroup/pedersen/pkg/math/arith"
	"github.com/taurusgroup/pedersen/pkg/math/sample"
)

// NatParameters is the arbitrary precision counterpart of Parameters, for
// moduli that do not fit in a machine word.
type NatParameters struct {
	p    *arith.Modulus
	g, h *saferith.Nat
}

// NewNat returns a new set of Pedersen parameters over a saferith modulus.
// Call Validate to check them.
func NewNat(g, h *saferith.Nat, p *saferith.Modulus) (*NatParameters, error) {
	if g == nil || h == nil || p == nil {
		return nil, ErrNilFields
	}
	return &NatParameters{
		p: arith.ModulusFromN(p),
		g: g,
		h: h,
	}, nil
}

// GenerateNat samples generators g = τ₁², h = τ₂² (mod p) for units τ₁, τ₂
// drawn from rand, such that g, h ≠ 1 and g ≠ h.
func GenerateNat(rand io.Reader, p *saferith.Modulus) (*NatParameters, error) {
	if p == nil {
		return nil, ErrNilFields
	}
	one := new(saferith.Nat).SetUint64(1)
	var g *saferith.Nat
	for i := 0; i < maxGeneratorIterations; i++ {
		tau := sample.UnitModN(rand, p)
		// τ² mod p
		x := new(saferith.Nat).ModMul(tau, tau, p)
		if x.Eq(one) == 1 {
			continue
		}
		if g == nil {
			g = x
			continue
		}
		if x.Eq(g) != 1 {
			return NewNat(g, x, p)
		}
	}
	return nil, fmt.Errorf("pedersen.GenerateNat: %w", ErrNoGenerators)
}

// Validate returns an error if any of the following is true:
//   - p is not prime.
//   - g, h are not in [1, …, p-1], or not coprime to p.
//   - g = h.
func (p *NatParameters) Validate() error {
	if !p.p.Nat().Big().ProbablyPrime(params.PrimalityIterations) {
		return ErrNotPrime
	}
	// g, h ∈ ℤₚˣ
	if !arith.IsValidNatModN(p.p.Modulus, p.g, p.h) {
		return ErrNotValidModN
	}
	if p.g.Eq(p.h) == 1 {
		return ErrGEqualH
	}
	return nil
}

func (p *NatParameters) P() *saferith.Modulus { return p.p.Modulus }

func (p *NatParameters) G() *saferith.Nat { return p.g }

func (p *NatParameters) H() *saferith.Nat { return p.h }

// Commit computes gᵐ hʳ (mod p).
func (p *NatParameters) Commit(m, r *saferith.Nat) *saferith.Nat {
	gm := p.p.Exp(p.g, m)
	hr := p.p.Exp(p.h, r)
	return p.p.Mul(gm, hr)
}

// CommitI computes gᵐ hʳ (mod p) for signed exponents.
//
// m and r are taken as saferith.Int so that negative values, such as
// differences of openings, can be committed to directly. g and h must be
// invertible mod p when an exponent is negative.
func (p *NatParameters) CommitI(m, r *saferith.Int) *saferith.Nat {
	gm := p.p.ExpI(p.g, m)
	hr := p.p.ExpI(p.h, r)
	return p.p.Mul(gm, hr)
}

// CommitRandom commits to m with a blinding factor r ∈ ℤₚ sampled from rand.
func (p *NatParameters) CommitRandom(rand io.Reader, m *saferith.Nat) (c, r *saferith.Nat) {
	r = sample.ModN(rand, p.p.Modulus)
	return p.Commit(m, r), r
}

// Verify returns true if c ≡ gᵐ hʳ (mod p) and c < p.
func (p *NatParameters) Verify(c, m, r *saferith.Nat) bool {
	if c == nil || m == nil || r == nil {
		return false
	}
	if _, _, lt := c.CmpMod(p.p.Modulus); lt != 1 {
		return false
	}
	return p.Commit(m, r).Eq(c) == 1
}

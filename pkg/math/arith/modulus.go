package arith

import (
	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus, and gives the arbitrary precision scheme
// the same small set of operations as the fixed-size one.
type Modulus struct {
	// represents modulus p
	*saferith.Modulus
}

// ModulusFromUint64 creates a Modulus from a machine word.
// It panics with ErrZeroModulus if p = 0.
func ModulusFromUint64(p uint64) *Modulus {
	if p == 0 {
		panic(ErrZeroModulus)
	}
	return &Modulus{Modulus: saferith.ModulusFromUint64(p)}
}

// ModulusFromN creates a simple wrapper around a given modulus p.
// The modulus is not copied.
func ModulusFromN(p *saferith.Modulus) *Modulus {
	return &Modulus{Modulus: p}
}

// Exp is equivalent to (saferith.Nat).Exp(x, e, p.Modulus).
// It returns xᵉ (mod p).
func (p *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(x, e, p.Modulus)
}

// ExpI is equivalent to (saferith.Nat).ExpI(x, e, p.Modulus).
// It returns xᵉ (mod p), where a negative e goes through the inverse of x.
// x must be invertible mod p when e < 0.
func (p *Modulus) ExpI(x *saferith.Nat, e *saferith.Int) *saferith.Nat {
	return new(saferith.Nat).ExpI(x, e, p.Modulus)
}

// Mul returns x⋅y (mod p).
func (p *Modulus) Mul(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(x, y, p.Modulus)
}

// IsValidNatModN checks that ints are all in the range [1,…,N-1] and are co-prime to N.
func IsValidNatModN(N *saferith.Modulus, ints ...*saferith.Nat) bool {
	for _, i := range ints {
		if i == nil {
			return false
		}
		if i.EqZero() == 1 {
			return false
		}
		if _, _, lt := i.CmpMod(N); lt != 1 {
			return false
		}
		if i.IsUnit(N) != 1 {
			return false
		}
	}
	return true
}

package pedersen

import (
	"fmt"
	"io"

	"github.com/taurusgroup/pedersen/internal/hash"
	"github.com/taurusgroup/pedersen/pkg/math/arith"
	"github.com/taurusgroup/pedersen/pkg/math/sample"
)

const maxGeneratorIterations = 255

// squareGenerator returns τ² (mod p) for a uniform τ ∈ [1, p-1].
//
// For a safe prime p = 2q+1, the result lies in the subgroup of order q.
func squareGenerator(rand io.Reader, p uint64) (uint64, error) {
	tau, err := sample.Uint64(rand, 1, p)
	if err != nil {
		return 0, err
	}
	return arith.MulMod(tau, tau, p), nil
}

func generators(rand io.Reader, p uint64) (*Parameters, error) {
	if p == 0 {
		return nil, ErrZeroModulus
	}
	var g, h uint64
	var err error
	for i := 0; i < maxGeneratorIterations; i++ {
		if g < 2 {
			if g, err = squareGenerator(rand, p); err != nil {
				return nil, err
			}
			continue
		}
		if h, err = squareGenerator(rand, p); err != nil {
			return nil, err
		}
		if h >= 2 && h != g {
			return &Parameters{g: g, h: h, p: p}, nil
		}
	}
	return nil, ErrNoGenerators
}

// Generate samples generators g = τ₁², h = τ₂² (mod p), using rand, such that
// g, h ∉ {0, 1} and g ≠ h.
//
// p is taken as is: it should be a safe prime for the generators to have a
// large order.
func Generate(rand io.Reader, p uint64) (*Parameters, error) {
	ped, err := generators(rand, p)
	if err != nil {
		return nil, fmt.Errorf("pedersen.Generate: %w", err)
	}
	return ped, nil
}

// Derive computes generators the same way as Generate, but reading from the
// output of the hash of seed and p, so that anyone can recompute them and
// check that nobody knows log_g(h).
func Derive(seed []byte, p uint64) (*Parameters, error) {
	h := hash.New()
	err := h.WriteAny(&hash.BytesWithDomain{
		TheDomain: "Pedersen Derive",
		Bytes:     append([]byte{}, seed...),
	}, p)
	if err != nil {
		return nil, fmt.Errorf("pedersen.Derive: %w", err)
	}
	ped, err := generators(h.Digest(), p)
	if err != nil {
		return nil, fmt.Errorf("pedersen.Derive: %w", err)
	}
	return ped, nil
}

package sample

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/pedersen/internal/params"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

func readBits(rand io.Reader, buf []byte) error {
	var err error
	for i := 0; i < maxIterations; i++ {
		if _, err = io.ReadFull(rand, buf); err == nil {
			return nil
		}
	}
	return fmt.Errorf("sample: %w: %v", ErrMaxIterations, err)
}

// Uint64 returns a uniform x ∈ [lo, hi).
//
// Candidates are drawn by rejection, masked to the bit length of hi - lo, so
// fewer than half are thrown away on average.
func Uint64(rand io.Reader, lo, hi uint64) (uint64, error) {
	if hi <= lo {
		return 0, fmt.Errorf("sample: empty interval [%d, %d)", lo, hi)
	}
	width := hi - lo
	mask := ^uint64(0)
	if width&(width-1) == 0 {
		mask = width - 1
	} else {
		for mask>>1 >= width {
			mask >>= 1
		}
	}
	buf := make([]byte, params.BytesWord)
	for i := 0; i < maxIterations; i++ {
		if err := readBits(rand, buf); err != nil {
			return 0, err
		}
		x := binary.BigEndian.Uint64(buf) & mask
		if x < width {
			return lo + x, nil
		}
	}
	return 0, ErrMaxIterations
}

// Blinding returns a uniform r ∈ [1, p-1], suitable as a blinding factor
// for commitments modulo p.
func Blinding(rand io.Reader, p uint64) (uint64, error) {
	if p < 2 {
		return 0, fmt.Errorf("sample: no blinding factor exists modulo %d", p)
	}
	return Uint64(rand, 1, p)
}

// ModN samples an element of ℤₙ.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	bits := n.BitLen()
	buf := make([]byte, (bits+7)/8)
	for {
		mustReadBits(rand, buf)
		if r := bits % 8; r != 0 {
			buf[0] &= byte(1<<r - 1)
		}
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			break
		}
	}
	return out
}

// UnitModN returns a u ∈ ℤₙˣ.
func UnitModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	for i := 0; i < maxIterations; i++ {
		u := ModN(rand, n)
		if u.IsUnit(n) == 1 {
			return u
		}
	}
	panic(ErrMaxIterations)
}

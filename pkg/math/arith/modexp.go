package arith

import "math/bits"

// MulMod returns a⋅b (mod m).
//
// The product is formed on 128 bits before reduction, so the result is exact
// for every m, including moduli close to 2⁶⁴.
//
// MulMod panics with ErrZeroModulus if m = 0.
func MulMod(a, b, m uint64) uint64 {
	if m == 0 {
		panic(ErrZeroModulus)
	}
	hi, lo := bits.Mul64(a, b)
	// Rem64 does not require hi < m, unlike Div64.
	return bits.Rem64(hi, lo, m)
}

// ModExp returns xᵉ (mod m), where x = base and e = exponent.
// It uses square-and-multiply over the bits of e, from least to most significant.
//
// ModExp(x, 0, m) = 1 (mod m), which is 0 when m = 1.
//
// ModExp panics with ErrZeroModulus if m = 0.
func ModExp(base, exponent, m uint64) uint64 {
	if m == 0 {
		panic(ErrZeroModulus)
	}
	result := 1 % m
	base %= m
	for e := exponent; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = MulMod(result, base, m)
		}
		base = MulMod(base, base, m)
	}
	return result
}

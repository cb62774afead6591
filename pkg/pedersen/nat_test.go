package pedersen

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nat(x uint64) *saferith.Nat {
	return new(saferith.Nat).SetUint64(x)
}

// 2¹²⁷ - 1
func mersenne127() *saferith.Modulus {
	b := new(big.Int).Lsh(big.NewInt(1), 127)
	b.Sub(b, big.NewInt(1))
	return saferith.ModulusFromNat(new(saferith.Nat).SetBig(b, b.BitLen()))
}

func TestNatParameters_WorkedExample(t *testing.T) {
	ped, err := NewNat(nat(5), nat(7), saferith.ModulusFromUint64(101))
	require.NoError(t, err)
	require.NoError(t, ped.Validate())

	c := ped.Commit(nat(9), nat(1))
	assert.True(t, c.Eq(nat(10)) == 1)
	assert.True(t, ped.Verify(c, nat(9), nat(1)))
	assert.False(t, ped.Verify(c, nat(9), nat(2)))
}

func TestNatParameters_MatchesWord(t *testing.T) {
	word, err := New(5, 7, p64)
	require.NoError(t, err)
	ped, err := NewNat(nat(5), nat(7), saferith.ModulusFromUint64(p64))
	require.NoError(t, err)

	r := mrand.New(mrand.NewSource(0))
	for i := 0; i < 50; i++ {
		m, b := r.Uint64(), r.Uint64()
		expected := uint64(word.Commit(m, b))
		assert.Equal(t, expected, ped.Commit(nat(m), nat(b)).Big().Uint64())
	}
}

func TestNatParameters_Large(t *testing.T) {
	p := mersenne127()
	ped, err := NewNat(nat(3), nat(7), p)
	require.NoError(t, err)
	require.NoError(t, ped.Validate())

	r := mrand.New(mrand.NewSource(1))
	for i := 0; i < 20; i++ {
		m := nat(r.Uint64())
		c, blinding := ped.CommitRandom(r, m)
		assert.True(t, ped.Verify(c, m, blinding))
		assert.False(t, ped.Verify(c, nat(r.Uint64()), blinding))
	}
}

func TestNatParameters_Homomorphic(t *testing.T) {
	ped, err := NewNat(nat(3), nat(7), mersenne127())
	require.NoError(t, err)

	r := mrand.New(mrand.NewSource(2))
	m1, r1, m2, r2 := nat(r.Uint64()), nat(r.Uint64()), nat(r.Uint64()), nat(r.Uint64())
	c := ped.p.Mul(ped.Commit(m1, r1), ped.Commit(m2, r2))

	m := new(saferith.Nat).Add(m1, m2, -1)
	blinding := new(saferith.Nat).Add(r1, r2, -1)
	assert.True(t, ped.Verify(c, m, blinding))
}

func TestNatParameters_CommitI(t *testing.T) {
	ped, err := NewNat(nat(5), nat(7), saferith.ModulusFromUint64(101))
	require.NoError(t, err)

	m := new(saferith.Int).SetNat(nat(9))
	b := new(saferith.Int).SetNat(nat(4))
	pos := ped.CommitI(m, b)
	assert.True(t, pos.Eq(ped.Commit(nat(9), nat(4))) == 1)

	mNeg := new(saferith.Int).SetNat(nat(9)).Neg(1)
	bNeg := new(saferith.Int).SetNat(nat(4)).Neg(1)
	neg := ped.CommitI(mNeg, bNeg)
	assert.True(t, ped.p.Mul(pos, neg).Eq(nat(1)) == 1, "C(m, r)⋅C(-m, -r) = 1")
}

func TestNatParameters_Verify_Invalid(t *testing.T) {
	ped, err := NewNat(nat(5), nat(7), saferith.ModulusFromUint64(101))
	require.NoError(t, err)

	assert.False(t, ped.Verify(nil, nat(9), nat(1)))
	assert.False(t, ped.Verify(nat(10), nil, nat(1)))
	assert.False(t, ped.Verify(nat(10), nat(9), nil))
	assert.False(t, ped.Verify(nat(111), nat(9), nat(1)), "commitment must be reduced")
}

func TestNatParameters_Validate(t *testing.T) {
	_, err := NewNat(nil, nat(7), saferith.ModulusFromUint64(101))
	assert.ErrorIs(t, err, ErrNilFields)

	tests := []struct {
		name string
		g, h uint64
		p    uint64
		err  error
	}{
		{"composite", 5, 7, 15, ErrNotPrime},
		{"zero", 0, 7, 101, ErrNotValidModN},
		{"too big", 5, 200, 101, ErrNotValidModN},
		{"equal", 5, 5, 101, ErrGEqualH},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ped, err := NewNat(nat(tt.g), nat(tt.h), saferith.ModulusFromUint64(tt.p))
			require.NoError(t, err)
			assert.ErrorIs(t, ped.Validate(), tt.err)
		})
	}
}

func TestGenerateNat(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	for _, p := range []*saferith.Modulus{saferith.ModulusFromUint64(1019), mersenne127()} {
		ped, err := GenerateNat(r, p)
		require.NoError(t, err)
		assert.NoError(t, ped.Validate())

		c, blinding := ped.CommitRandom(r, nat(9))
		assert.True(t, ped.Verify(c, nat(9), blinding))
	}

	// 1019 = 2⋅509 + 1, so the generators have order 509
	ped, err := GenerateNat(r, saferith.ModulusFromUint64(1019))
	require.NoError(t, err)
	q := nat(509)
	one := nat(1)
	assert.True(t, ped.P().Nat().Eq(nat(1019)) == 1)
	assert.True(t, new(saferith.Nat).Exp(ped.G(), q, ped.P()).Eq(one) == 1)
	assert.True(t, new(saferith.Nat).Exp(ped.H(), q, ped.P()).Eq(one) == 1)
}

func TestGenerateNat_Errors(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))

	_, err := GenerateNat(r, nil)
	assert.ErrorIs(t, err, ErrNilFields)

	// the only square of a unit mod 3 is 1
	_, err = GenerateNat(r, saferith.ModulusFromUint64(3))
	assert.ErrorIs(t, err, ErrNoGenerators)
}

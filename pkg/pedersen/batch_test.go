package pedersen

import (
	"context"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/pedersen/pkg/pool"
)

func randomOpenings(r *mrand.Rand, n int) []Opening {
	openings := make([]Opening, n)
	for i := range openings {
		openings[i] = Opening{Message: r.Uint64(), Blinding: r.Uint64()}
	}
	return openings
}

func TestParameters_CommitBatch(t *testing.T) {
	ped, err := New(5, 7, p64)
	require.NoError(t, err)
	openings := randomOpenings(mrand.New(mrand.NewSource(0)), 64)

	pl := pool.NewPool(0)
	defer pl.TearDown()

	for _, p := range []*pool.Pool{nil, pl} {
		commitments := ped.CommitBatch(p, openings)
		require.Len(t, commitments, len(openings))
		for i, o := range openings {
			assert.Equal(t, ped.Commit(o.Message, o.Blinding), commitments[i])
		}
	}
	assert.Empty(t, ped.CommitBatch(pl, nil))
}

func TestParameters_CommitRandomBatch(t *testing.T) {
	ped := toyParameters(t)
	pl := pool.NewPool(4)
	defer pl.TearDown()

	messages := []uint64{1, 2, 3, 9, 9, 100}
	commitments, openings, err := ped.CommitRandomBatch(pl, mrand.New(mrand.NewSource(0)), messages)
	require.NoError(t, err)
	for i, m := range messages {
		assert.Equal(t, m, openings[i].Message)
		assert.True(t, ped.VerifyOpening(commitments[i], openings[i]))
	}

	one, err := New(5, 7, 1)
	require.NoError(t, err)
	_, _, err = one.CommitRandomBatch(pl, mrand.New(mrand.NewSource(0)), messages)
	assert.Error(t, err)
}

func TestParameters_VerifyBatch(t *testing.T) {
	ped, err := New(5, 7, p64)
	require.NoError(t, err)
	openings := randomOpenings(mrand.New(mrand.NewSource(1)), 100)
	commitments := ped.CommitBatch(nil, openings)

	results, err := ped.VerifyBatch(context.Background(), commitments, openings)
	require.NoError(t, err)
	for i, ok := range results {
		assert.True(t, ok, "opening %d", i)
	}

	commitments[42]++
	results, err = ped.VerifyBatch(context.Background(), commitments, openings)
	require.NoError(t, err, "a mismatch is not an error")
	for i, ok := range results {
		assert.Equal(t, i != 42, ok, "opening %d", i)
	}

	results, err = ped.VerifyBatch(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParameters_VerifyBatch_Errors(t *testing.T) {
	ped := toyParameters(t)
	openings := randomOpenings(mrand.New(mrand.NewSource(2)), 10)
	commitments := ped.CommitBatch(nil, openings)

	_, err := ped.VerifyBatch(context.Background(), commitments[:5], openings)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ped.VerifyBatch(ctx, commitments, openings)
	assert.ErrorIs(t, err, context.Canceled)
}

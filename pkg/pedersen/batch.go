package pedersen

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/taurusgroup/pedersen/pkg/pool"
	"golang.org/x/sync/errgroup"
)

// CommitBatch commits to every opening, using the workers of pl.
// A nil pool does the work on the calling goroutine.
func (p *Parameters) CommitBatch(pl *pool.Pool, openings []Opening) []Commitment {
	results := pl.Parallelize(len(openings), func(i int) interface{} {
		return p.Commit(openings[i].Message, openings[i].Blinding)
	})
	commitments := make([]Commitment, len(results))
	for i, c := range results {
		commitments[i] = c.(Commitment)
	}
	return commitments
}

// CommitRandomBatch commits to every message with a fresh blinding factor.
// rand is shared between the workers of pl behind a lock.
func (p *Parameters) CommitRandomBatch(pl *pool.Pool, rand io.Reader, messages []uint64) ([]Commitment, []Opening, error) {
	type result struct {
		c   Commitment
		o   Opening
		err error
	}
	locked := pool.NewLockedReader(rand)
	results := pl.Parallelize(len(messages), func(i int) interface{} {
		c, o, err := p.CommitRandom(locked, messages[i])
		return result{c, o, err}
	})
	commitments := make([]Commitment, len(messages))
	openings := make([]Opening, len(messages))
	for i, r := range results {
		res := r.(result)
		if res.err != nil {
			return nil, nil, fmt.Errorf("pedersen: message %d: %w", i, res.err)
		}
		commitments[i], openings[i] = res.c, res.o
	}
	return commitments, openings, nil
}

// VerifyBatch checks openings[i] against commitments[i] for every i, and
// reports each result.
//
// The error is only set when the inputs have different lengths or ctx is
// done; a mismatch is reported as false in the results.
func (p *Parameters) VerifyBatch(ctx context.Context, commitments []Commitment, openings []Opening) ([]bool, error) {
	if len(commitments) != len(openings) {
		return nil, ErrLengthMismatch
	}
	results := make([]bool, len(commitments))

	chunks := runtime.NumCPU()
	chunkSize := (len(commitments) + chunks - 1) / chunks

	errGroup, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(commitments); start += chunkSize {
		lo, hi := start, start+chunkSize
		if hi > len(commitments) {
			hi = len(commitments)
		}
		errGroup.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = p.VerifyOpening(commitments[i], openings[i])
			}
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, fmt.Errorf("pedersen.VerifyBatch: %w", err)
	}
	return results, nil
}

package pedersen

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/taurusgroup/pedersen/pkg/math/sample"
)

// Opening is what a committer reveals to open a Commitment.
// The blinding factor must stay secret until then.
type Opening struct {
	Message  uint64
	Blinding uint64
}

// Add returns the opening of the product of two commitments.
// ok is false if either sum wraps around 2⁶⁴, in which case the result does
// not open Parameters.Add of the two commitments.
func (o Opening) Add(other Opening) (sum Opening, ok bool) {
	m, c1 := bits.Add64(o.Message, other.Message, 0)
	r, c2 := bits.Add64(o.Blinding, other.Blinding, 0)
	return Opening{Message: m, Blinding: r}, c1|c2 == 0
}

// VerifyOpening is Verify, with the message and blinding taken from o.
func (p *Parameters) VerifyOpening(c Commitment, o Opening) bool {
	return p.Verify(c, o.Message, o.Blinding)
}

// CommitRandom commits to message with a blinding factor drawn uniformly from
// [1, p-1] using rand, and returns the opening alongside.
func (p *Parameters) CommitRandom(rand io.Reader, message uint64) (Commitment, Opening, error) {
	r, err := sample.Blinding(rand, p.p)
	if err != nil {
		return 0, Opening{}, fmt.Errorf("pedersen: blinding: %w", err)
	}
	o := Opening{Message: message, Blinding: r}
	return p.Commit(message, r), o, nil
}

package pedersen

import (
	"bytes"
	"fmt"

	"github.com/taurusgroup/pedersen/internal/hash"
	"github.com/taurusgroup/pedersen/internal/params"
)

// Fingerprint identifies a set of parameters.
type Fingerprint []byte

// Fingerprint returns the hash of p, g and h.
func (p *Parameters) Fingerprint() Fingerprint {
	h := hash.New()
	if err := h.WriteAny(p); err != nil {
		panic(fmt.Sprintf("pedersen.Fingerprint: internal hash failure: %v", err))
	}
	return h.Sum()[:params.SecBytes]
}

// Envelope is a commitment tagged with the parameters it was produced under,
// for callers that store or send commitments around.
type Envelope struct {
	Fingerprint Fingerprint
	Value       Commitment
}

// Seal wraps c in an Envelope bound to p.
func (p *Parameters) Seal(c Commitment) Envelope {
	return Envelope{
		Fingerprint: p.Fingerprint(),
		Value:       c,
	}
}

// VerifyEnvelope returns true if e was sealed under p and o opens e.Value.
//
// Plain Verify would accept a commitment produced under any parameter set
// that happens to give the same value; this rejects it.
func (p *Parameters) VerifyEnvelope(e Envelope, o Opening) bool {
	if !bytes.Equal(e.Fingerprint, p.Fingerprint()) {
		return false
	}
	return p.VerifyOpening(e.Value, o)
}

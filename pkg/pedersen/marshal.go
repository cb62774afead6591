package pedersen

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

type parametersMarshal struct {
	G, H, P uint64
}

// MarshalBinary encodes p with cbor.
//
// The zero value has no modulus, so it is rejected the same way
// UnmarshalBinary would reject it.
func (p *Parameters) MarshalBinary() ([]byte, error) {
	if p.p == 0 {
		return nil, ErrZeroModulus
	}
	return cbor.Marshal(&parametersMarshal{G: p.g, H: p.h, P: p.p})
}

// UnmarshalBinary decodes parameters, applying the same checks as New.
func (p *Parameters) UnmarshalBinary(data []byte) error {
	var pm parametersMarshal
	if err := cbor.Unmarshal(data, &pm); err != nil {
		return fmt.Errorf("pedersen: %w", err)
	}
	decoded, err := New(pm.G, pm.H, pm.P)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

package arith

import "fmt"

type Error string

// ErrZeroModulus is the panic value of ModExp and MulMod when called with a zero modulus.
const ErrZeroModulus Error = "modulus must not be 0"

func (e Error) Error() string {
	return fmt.Sprintf("arith: %s", string(e))
}

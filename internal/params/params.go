package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// PrimalityIterations is the number of Miller-Rabin rounds used when
	// checking that a modulus is prime.
	//
	// 20 is the same number that Go uses internally.
	PrimalityIterations = 20

	// BitsWord is the width of the fixed-size scheme.
	BitsWord  = 64
	BytesWord = BitsWord / 8
)

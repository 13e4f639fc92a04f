// Package keccak implements the Keccak-f[1600] sponge: the SHAKE
// extendable-output functions, SHA-3, and the legacy Keccak hashes used by
// Ethereum.
//
// A Sponge absorbs input with Absorb or Write until output is first
// requested, then squeezes an unbounded output stream with Output or Read.
// Messages whose length is not a whole number of bytes are ended with
// AbsorbBitsFinal. OutputFinal squeezes and resets the sponge so the same
// value can hash the next message.
//
// The permutation is pure Go and makes no assumption about host byte order.
package keccak

// Sum256 computes the legacy Keccak-256 hash of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	s := keccakOf(256)()
	_ = s.Absorb(data)
	s.OutputFinal(out[:])
	return out
}

// SumSHA3_256 computes the SHA3-256 hash of data.
func SumSHA3_256(data []byte) [32]byte {
	var out [32]byte
	s := sha3Of(256)()
	_ = s.Absorb(data)
	s.OutputFinal(out[:])
	return out
}

// ShakeSum128 fills out with the SHAKE128 output for data.
func ShakeSum128(out, data []byte) {
	s := NewShake128()
	_ = s.Absorb(data)
	s.OutputFinal(out)
}

// ShakeSum256 fills out with the SHAKE256 output for data.
func ShakeSum256(out, data []byte) {
	s := NewShake256()
	_ = s.Absorb(data)
	s.OutputFinal(out)
}

package keccak

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsorbWhileSqueezing is returned when input is written to a
	// sponge that has already produced output. The sponge is left in the
	// squeezing phase and can keep producing output.
	ErrAbsorbWhileSqueezing = errors.New("keccak: attempt to absorb while squeezing")

	// ErrInvalidStrength is returned by constructors given a security
	// strength or digest width they do not support.
	ErrInvalidStrength = errors.New("keccak: invalid strength")
)

// Domain separation suffixes, stored least significant bit first.
const (
	suffixShake    = 0x0f // 1111
	suffixShakeLen = 4
	suffixSHA3     = 0x02 // 01
	suffixSHA3Len  = 2
)

// Sponge is a Keccak-f[1600] sponge. It absorbs input until the first
// output request, then squeezes an unbounded output stream. OutputFinal
// returns it to the absorbing phase with a zero state, ready for the next
// message.
//
// A Sponge is not safe for concurrent use.
type Sponge struct {
	a    [25]uint64
	rate int
	size int

	suffix    byte
	suffixLen int

	// pos is the number of bytes of the current block that have been
	// absorbed or, once squeezing, already handed out.
	pos       int
	squeezing bool
}

func newSponge(rate, size int, suffix byte, suffixLen int) *Sponge {
	return &Sponge{rate: rate, size: size, suffix: suffix, suffixLen: suffixLen}
}

// rateFor returns the rate in bytes for a capacity of twice strength bits.
func rateFor(strength int) int {
	return (1600 - 2*strength) / 8
}

// NewShake returns a SHAKE sponge for the given security strength, 128 or
// 256 bits.
func NewShake(strength int) (*Sponge, error) {
	switch strength {
	case 128, 256:
	default:
		return nil, fmt.Errorf("%w: SHAKE%d", ErrInvalidStrength, strength)
	}
	return newSponge(rateFor(strength), strength/4, suffixShake, suffixShakeLen), nil
}

// NewShake128 returns a SHAKE128 sponge (rate 168 bytes).
func NewShake128() *Sponge {
	return newSponge(rateFor(128), 32, suffixShake, suffixShakeLen)
}

// NewShake256 returns a SHAKE256 sponge (rate 136 bytes).
func NewShake256() *Sponge {
	return newSponge(rateFor(256), 64, suffixShake, suffixShakeLen)
}

// NewSHA3 returns a SHA3 sponge producing bits/8 bytes from Sum. bits must
// be 224, 256, 384 or 512.
func NewSHA3(bits int) (*Sponge, error) {
	if !validDigestBits(bits) {
		return nil, fmt.Errorf("%w: SHA3-%d", ErrInvalidStrength, bits)
	}
	return sha3Of(bits)(), nil
}

// NewLegacyKeccak returns a sponge for the original Keccak submission,
// which pads without a domain suffix. Ethereum uses the 256-bit variant.
func NewLegacyKeccak(bits int) (*Sponge, error) {
	if !validDigestBits(bits) {
		return nil, fmt.Errorf("%w: Keccak-%d", ErrInvalidStrength, bits)
	}
	return keccakOf(bits)(), nil
}

func validDigestBits(bits int) bool {
	switch bits {
	case 224, 256, 384, 512:
		return true
	}
	return false
}

// Rate returns the number of bytes absorbed or squeezed per permutation.
func (s *Sponge) Rate() int { return s.rate }

// BlockSize returns the rate in bytes.
func (s *Sponge) BlockSize() int { return s.rate }

// Size returns the number of bytes Sum appends.
func (s *Sponge) Size() int { return s.size }

// Squeezing reports whether the sponge has started producing output.
func (s *Sponge) Squeezing() bool { return s.squeezing }

// Reset zeroes the state and returns the sponge to the absorbing phase.
func (s *Sponge) Reset() {
	s.a = [25]uint64{}
	s.pos = 0
	s.squeezing = false
}

// Clone returns an independent copy of the sponge in its current state.
func (s *Sponge) Clone() *Sponge {
	c := *s
	return &c
}

// Absorb XORs p into the state, permuting after every full block.
// It returns ErrAbsorbWhileSqueezing, with the state untouched, once
// output has been requested.
func (s *Sponge) Absorb(p []byte) error {
	if s.squeezing {
		return ErrAbsorbWhileSqueezing
	}
	if s.pos > 0 {
		n := min(s.rate-s.pos, len(p))
		xorIn(&s.a, s.pos, p[:n])
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			keccakF1600(&s.a)
			s.pos = 0
		}
	}

	for len(p) >= s.rate {
		xorIn(&s.a, 0, p[:s.rate])
		keccakF1600(&s.a)
		p = p[s.rate:]
	}

	if len(p) > 0 {
		xorIn(&s.a, 0, p)
		s.pos = len(p)
	}
	return nil
}

// Write absorbs p. It implements io.Writer.
func (s *Sponge) Write(p []byte) (int, error) {
	if err := s.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte absorbs a single byte.
func (s *Sponge) WriteByte(c byte) error {
	return s.Absorb([]byte{c})
}

// AbsorbFinal ends a message made of whole bytes and switches to
// squeezing.
func (s *Sponge) AbsorbFinal() error {
	return s.AbsorbBitsFinal(0, 0)
}

// AbsorbBitsFinal ends the message with the low bits bits of last, then
// appends the domain suffix and pad10*1, permutes and switches to
// squeezing. bits must be in [0, 7]; zero means the message is a whole
// number of bytes and last is ignored.
func (s *Sponge) AbsorbBitsFinal(last byte, bits int) error {
	if bits < 0 || bits > 7 {
		panic("keccak: partial bit count out of range")
	}
	if s.squeezing {
		return ErrAbsorbWhileSqueezing
	}

	// Message bits, suffix, then the leading 1 of the padding: at most
	// 7+4+1 bits, so two bytes.
	n := bits + s.suffixLen
	v := uint16(last)&(1<<bits-1) | uint16(s.suffix)<<bits | 1<<n
	n++

	s.a[s.pos>>3] ^= uint64(byte(v)) << (8 * uint(s.pos&7))
	if n > 8 {
		s.pos++
		if s.pos == s.rate {
			keccakF1600(&s.a)
			s.pos = 0
		}
		s.a[s.pos>>3] ^= uint64(byte(v>>8)) << (8 * uint(s.pos&7))
		n -= 8
	}

	// The trailing 1 needs a fresh block when the leading 1 took the last
	// bit of this one.
	if s.pos == s.rate-1 && n == 8 {
		keccakF1600(&s.a)
	}
	end := s.rate - 1
	s.a[end>>3] ^= uint64(0x80) << (8 * uint(end&7))
	keccakF1600(&s.a)

	s.pos = 0
	s.squeezing = true
	return nil
}

// Output fills out with the next len(out) bytes of the output stream,
// finalizing the message first if the sponge is still absorbing.
// Consecutive calls continue the same stream, so the split of a request
// across calls never changes the bytes produced.
func (s *Sponge) Output(out []byte) {
	if !s.squeezing {
		// Cannot fail while absorbing.
		_ = s.AbsorbFinal()
	}
	for len(out) > 0 {
		if s.pos == s.rate {
			keccakF1600(&s.a)
			s.pos = 0
		}
		n := min(s.rate-s.pos, len(out))
		copyOut(out[:n], &s.a, s.pos)
		s.pos += n
		out = out[n:]
	}
}

// Read squeezes len(p) bytes into p. It implements io.Reader and never
// returns an error.
func (s *Sponge) Read(p []byte) (int, error) {
	s.Output(p)
	return len(p), nil
}

// OutputFinal behaves like Output and then resets the sponge.
func (s *Sponge) OutputFinal(out []byte) {
	s.Output(out)
	s.Reset()
}

// OutputFinalBits ends the message with the low bits bits of last,
// squeezes len(out) bytes and resets the sponge. It returns
// ErrAbsorbWhileSqueezing if output was already requested; the sponge is
// left unchanged in that case.
func (s *Sponge) OutputFinalBits(out []byte, last byte, bits int) error {
	if err := s.AbsorbBitsFinal(last, bits); err != nil {
		return err
	}
	s.OutputFinal(out)
	return nil
}

// Sum appends Size bytes of output for the input absorbed so far to b.
// The receiver is not modified. Sum panics once output has been requested,
// since the digest is no longer available.
func (s *Sponge) Sum(b []byte) []byte {
	if s.squeezing {
		panic("keccak: Sum after Output")
	}
	c := s.Clone()
	out := make([]byte, s.size)
	c.Output(out)
	return append(b, out...)
}

package keccak

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by ParseVariant for names it does not know.
var ErrUnknownVariant = errors.New("keccak: unknown variant")

// Variant identifies a configuration of the sponge.
type Variant uint

// Available variants. The SHAKE variants are extendable-output functions;
// the others have a fixed digest size.
const (
	SHAKE128 Variant = iota + 1
	SHAKE256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	Keccak256
	Keccak512
	maxVariant
)

type variantInfo struct {
	name string
	new  func() *Sponge
}

func sha3Of(bits int) func() *Sponge {
	return func() *Sponge {
		return newSponge(rateFor(bits), bits/8, suffixSHA3, suffixSHA3Len)
	}
}

func keccakOf(bits int) func() *Sponge {
	return func() *Sponge {
		return newSponge(rateFor(bits), bits/8, 0, 0)
	}
}

var variants = [maxVariant]variantInfo{
	SHAKE128:  {"SHAKE128", NewShake128},
	SHAKE256:  {"SHAKE256", NewShake256},
	SHA3_224:  {"SHA3-224", sha3Of(224)},
	SHA3_256:  {"SHA3-256", sha3Of(256)},
	SHA3_384:  {"SHA3-384", sha3Of(384)},
	SHA3_512:  {"SHA3-512", sha3Of(512)},
	Keccak256: {"Keccak-256", keccakOf(256)},
	Keccak512: {"Keccak-512", keccakOf(512)},
}

// Available reports whether v names a known variant.
func (v Variant) Available() bool {
	return v > 0 && v < maxVariant
}

// String returns the canonical name of v.
func (v Variant) String() string {
	if !v.Available() {
		return fmt.Sprintf("Variant(%d)", uint(v))
	}
	return variants[v].name
}

// New returns a fresh sponge configured for v. It panics if v is not
// available.
func (v Variant) New() *Sponge {
	if !v.Available() {
		panic("keccak: requested unavailable variant " + v.String())
	}
	return variants[v].new()
}

// XOF reports whether v produces arbitrary-length output by design.
func (v Variant) XOF() bool {
	return v == SHAKE128 || v == SHAKE256
}

// Variants lists every available variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, 0, maxVariant-1)
	for v := SHAKE128; v < maxVariant; v++ {
		vs = append(vs, v)
	}
	return vs
}

// ParseVariant returns the variant whose canonical name is name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if variants[v].name == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

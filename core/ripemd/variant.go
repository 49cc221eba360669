package ripemd

import "strconv"

// BlockSize is the block size of every RIPEMD variant in bytes.
const BlockSize = 64

// Digest sizes in bytes.
const (
	Size128 = 16
	Size160 = 20
	Size256 = 32
	Size320 = 40
)

// Variant identifies one of the four standardized RIPEMD digest lengths.
type Variant uint8

const (
	RIPEMD128 Variant = 1 + iota
	RIPEMD160
	RIPEMD256
	RIPEMD320
)

// Variants lists every supported variant in ascending digest length.
var Variants = []Variant{RIPEMD128, RIPEMD160, RIPEMD256, RIPEMD320}

// ParseVariant maps a digest length in bits to its variant.
func ParseVariant(bits int) (Variant, error) {
	switch bits {
	case 128:
		return RIPEMD128, nil
	case 160:
		return RIPEMD160, nil
	case 256:
		return RIPEMD256, nil
	case 320:
		return RIPEMD320, nil
	}
	return 0, NewUnsupportedVariantError(bits)
}

// Available reports whether v is one of the defined variants.
func (v Variant) Available() bool {
	return v >= RIPEMD128 && v <= RIPEMD320
}

// Bits returns the digest length in bits, or 0 for an unknown variant.
func (v Variant) Bits() int {
	return v.Size() * 8
}

// Size returns the digest length in bytes, or 0 for an unknown variant.
func (v Variant) Size() int {
	switch v {
	case RIPEMD128:
		return Size128
	case RIPEMD160:
		return Size160
	case RIPEMD256:
		return Size256
	case RIPEMD320:
		return Size320
	}
	return 0
}

func (v Variant) String() string {
	if !v.Available() {
		return "RIPEMD(" + strconv.Itoa(int(v)) + ")"
	}
	return "RIPEMD-" + strconv.Itoa(v.Bits())
}

// New returns a new hasher for v. It panics if v is not an available
// variant; use [New] or [ParseVariant] when the length comes from input.
func (v Variant) New() *Hasher {
	if !v.Available() {
		panic("ripemd: requested variant " + v.String() + " is unavailable")
	}
	h := &Hasher{d: descriptors[v]}
	h.Reset()
	return h
}

// Sum returns the v digest of data.
func (v Variant) Sum(data []byte) []byte {
	h := v.New()
	h.Write(data)
	return h.Finalize()
}

// words returns the number of 32-bit chain words of the variant.
func (v Variant) words() int {
	return v.Size() / 4
}

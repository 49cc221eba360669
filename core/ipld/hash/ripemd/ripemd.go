// Package ripemd exposes the RIPEMD hashers as multihash functions and
// registers them with go-multihash, so that multihash.Sum, CID prefixes and
// CAR integrity checks accept the ripemd-128, ripemd-160, ripemd-256 and
// ripemd-320 codes.
package ripemd

import (
	"fmt"
	stdhash "hash"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	mhreg "github.com/multiformats/go-multihash/core"
	"github.com/storacha/go-ripemd/core/ipld/hash"
	"github.com/storacha/go-ripemd/core/ripemd"
)

// Multihash codes of the RIPEMD family.
const (
	Code128 = uint64(multicodec.Ripemd128)
	Code160 = uint64(multicodec.Ripemd160)
	Code256 = uint64(multicodec.Ripemd256)
	Code320 = uint64(multicodec.Ripemd320)
)

func init() {
	for _, v := range ripemd.Variants {
		mhreg.Register(CodeOf(v), func() stdhash.Hash { return v.New() })
	}
}

type hasher struct {
	variant ripemd.Variant
	code    uint64
}

func (h hasher) Code() uint64 {
	return h.code
}

func (h hasher) Size() uint64 {
	return uint64(h.variant.Size())
}

// Variant returns the RIPEMD variant backing the hasher.
func (h hasher) Variant() ripemd.Variant {
	return h.variant
}

func (h hasher) Sum(b []byte) (hash.Digest, error) {
	sum := h.variant.Sum(b)

	d, err := multihash.Encode(sum, h.code)
	if err != nil {
		return nil, fmt.Errorf("encoding %s multihash: %w", h.variant, err)
	}

	return hash.NewDigest(h.code, h.Size(), sum, d), nil
}

var (
	Hasher128 = hasher{ripemd.RIPEMD128, Code128}
	Hasher160 = hasher{ripemd.RIPEMD160, Code160}
	Hasher256 = hasher{ripemd.RIPEMD256, Code256}
	Hasher320 = hasher{ripemd.RIPEMD320, Code320}
)

// CodeOf returns the multihash code of v, or 0 if v is not available.
func CodeOf(v ripemd.Variant) uint64 {
	switch v {
	case ripemd.RIPEMD128:
		return Code128
	case ripemd.RIPEMD160:
		return Code160
	case ripemd.RIPEMD256:
		return Code256
	case ripemd.RIPEMD320:
		return Code320
	}
	return 0
}

// VariantOf returns the variant identified by a multihash code.
func VariantOf(code uint64) (ripemd.Variant, error) {
	switch code {
	case Code128:
		return ripemd.RIPEMD128, nil
	case Code160:
		return ripemd.RIPEMD160, nil
	case Code256:
		return ripemd.RIPEMD256, nil
	case Code320:
		return ripemd.RIPEMD320, nil
	}
	return 0, fmt.Errorf("multihash code 0x%x is not a RIPEMD function", code)
}

// ForVariant returns the multihash hasher of v.
func ForVariant(v ripemd.Variant) (hash.Hasher, error) {
	code := CodeOf(v)
	if code == 0 {
		return nil, ripemd.NewUnsupportedVariantError(v.Bits())
	}
	return hasher{v, code}, nil
}

// ForCode returns the multihash hasher registered under code.
func ForCode(code uint64) (hash.Hasher, error) {
	v, err := VariantOf(code)
	if err != nil {
		return nil, err
	}
	return hasher{v, code}, nil
}

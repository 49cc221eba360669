package ripemd_test

import (
	"encoding/hex"
	"errors"
	stdhash "hash"
	"testing"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	mhreg "github.com/multiformats/go-multihash/core"
	mhripemd "github.com/storacha/go-ripemd/core/ipld/hash/ripemd"
	"github.com/storacha/go-ripemd/core/ripemd"
	"github.com/storacha/go-ripemd/core/ripemd/ripemdtest"
	"github.com/storacha/go-ripemd/testing/fixtures"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	for _, v := range ripemd.Variants {
		t.Run(v.String(), func(t *testing.T) {
			t.Parallel()

			ripemdtest.TestHasherCompliance(t, func() (stdhash.Hash, int) {
				h, err := mhreg.GetHasher(mhripemd.CodeOf(v))
				require.NoError(t, err)
				return h, v.Size()
			}, fixtures.VectorsFor(v.Bits())...)
		})
	}
}

func TestCodes(t *testing.T) {
	require.Equal(t, uint64(0x1052), mhripemd.Code128)
	require.Equal(t, uint64(0x1053), mhripemd.Code160)
	require.Equal(t, uint64(0x1054), mhripemd.Code256)
	require.Equal(t, uint64(0x1055), mhripemd.Code320)
	require.Equal(t, "ripemd-160", multicodec.Code(mhripemd.Code160).String())

	for _, v := range ripemd.Variants {
		code := mhripemd.CodeOf(v)
		got, err := mhripemd.VariantOf(code)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	require.Equal(t, uint64(0), mhripemd.CodeOf(ripemd.Variant(0)))

	_, err := mhripemd.VariantOf(multihash.SHA2_256)
	require.Error(t, err)
}

func TestSum(t *testing.T) {
	for _, vec := range fixtures.Vectors {
		if len(vec.Input) > 1000 {
			continue
		}
		v, err := ripemd.ParseVariant(vec.Bits)
		require.NoError(t, err)

		h, err := mhripemd.ForVariant(v)
		require.NoError(t, err)
		require.Equal(t, uint64(v.Size()), h.Size())

		d, err := h.Sum(vec.Input)
		require.NoError(t, err)
		require.Equal(t, h.Code(), d.Code())
		require.Equal(t, uint64(v.Size()), d.Size())
		require.Equal(t, vec.Digest, hex.EncodeToString(d.Digest()))

		decoded, err := multihash.Decode(d.Bytes())
		require.NoError(t, err)
		require.Equal(t, h.Code(), decoded.Code)
		require.Equal(t, v.Size(), decoded.Length)
		require.Equal(t, d.Digest(), decoded.Digest)
	}
}

func TestRegisteredWithMultihash(t *testing.T) {
	for _, v := range ripemd.Variants {
		code := mhripemd.CodeOf(v)
		mh, err := multihash.Sum([]byte("abc"), code, -1)
		require.NoError(t, err)

		h, err := mhripemd.ForCode(code)
		require.NoError(t, err)
		d, err := h.Sum([]byte("abc"))
		require.NoError(t, err)
		require.Equal(t, []byte(mh), d.Bytes())
	}
}

func TestForVariantUnsupported(t *testing.T) {
	_, err := mhripemd.ForVariant(ripemd.Variant(0))
	var uerr ripemd.UnsupportedVariantError
	require.True(t, errors.As(err, &uerr))

	_, err = mhripemd.ForCode(0x12)
	require.Error(t, err)
}

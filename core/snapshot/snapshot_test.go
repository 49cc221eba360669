package snapshot

import (
	"errors"
	"testing"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-ripemd/core/dag/cbor"
	mhripemd "github.com/storacha/go-ripemd/core/ipld/hash/ripemd"
	"github.com/storacha/go-ripemd/core/multiformat"
	"github.com/storacha/go-ripemd/core/ripemd"
	"github.com/storacha/go-ripemd/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	for _, v := range ripemd.Variants {
		for _, n := range []int{0, 3, 64, 200} {
			h := v.New()
			h.Write(helpers.RandomBytes(n))
			s0 := h.State()

			b, err := Encode(s0)
			require.NoError(t, err)

			s1, err := Decode(b)
			require.NoError(t, err)
			require.Equal(t, s0.Variant, s1.Variant)
			require.Equal(t, s0.Chain, s1.Chain)
			require.Equal(t, s0.Length, s1.Length)
			require.EqualValues(t, s0.Pending, s1.Pending)

			resumed, err := ripemd.FromState(s1)
			require.NoError(t, err)
			require.Equal(t, h.Finalize(), resumed.Finalize())
		}
	}
}

func TestTaggedWithMultihashCode(t *testing.T) {
	h := ripemd.RIPEMD320.New()
	b, err := Encode(h.State())
	require.NoError(t, err)

	_, err = multiformat.UntagWith(mhripemd.Code320, b, 0)
	require.NoError(t, err)
}

func TestLengthAboveMaxInt64(t *testing.T) {
	s := ripemd.RIPEMD160.New().State()
	s.Length = 1<<63 + 64
	b, err := Encode(s)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, s.Length, out.Length)
}

func TestFormatParse(t *testing.T) {
	h := ripemd.RIPEMD128.New()
	h.Write([]byte("resumable"))

	str, err := Format(h.State())
	require.NoError(t, err)

	enc, _, err := multibase.Decode(str)
	require.NoError(t, err)
	require.Equal(t, multibase.Encoding(multibase.Base64url), enc)

	s, err := Parse(str)
	require.NoError(t, err)

	resumed := helpers.Must(ripemd.FromState(s))
	resumed.Write([]byte(" hashing"))
	h.Write([]byte(" hashing"))
	require.Equal(t, h.Finalize(), resumed.Finalize())
}

func TestEncodeRejectsInvalidState(t *testing.T) {
	_, err := Encode(ripemd.State{Variant: ripemd.RIPEMD160, Chain: make([]uint32, 3)})
	var serr ripemd.InvalidStateSnapshotError
	require.True(t, errors.As(err, &serr))
}

func TestDecodeRejects(t *testing.T) {
	valid, err := Encode(ripemd.RIPEMD256.New().State())
	require.NoError(t, err)
	_, body, err := multiformat.Untag(valid)
	require.NoError(t, err)

	encodeModel := func(m StateModel) []byte {
		b, err := ipld.Marshal(dagcbor.Encode, &m, Type())
		require.NoError(t, err)
		return b
	}

	t.Run("unknown tag", func(t *testing.T) {
		_, err := Decode(multiformat.TagWith(0x12, body))
		var serr ripemd.InvalidStateSnapshotError
		require.True(t, errors.As(err, &serr))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		require.Error(t, err)
	})

	t.Run("garbage body", func(t *testing.T) {
		_, err := Decode(multiformat.TagWith(mhripemd.Code256, []byte{0xff, 0x00, 0x13}))
		var serr ripemd.InvalidStateSnapshotError
		require.True(t, errors.As(err, &serr))
	})

	t.Run("body is not a tuple", func(t *testing.T) {
		n, err := qp.BuildList(basicnode.Prototype.Any, 2, func(la datamodel.ListAssembler) {
			qp.ListEntry(la, qp.Int(1))
			qp.ListEntry(la, qp.Int(2))
		})
		require.NoError(t, err)
		b, err := cbor.Encode(n)
		require.NoError(t, err)

		_, err = Decode(multiformat.TagWith(mhripemd.Code256, b))
		var serr ripemd.InvalidStateSnapshotError
		require.True(t, errors.As(err, &serr))
		require.Contains(t, serr.Reason, "list of chain, pending and length")
	})

	t.Run("wrong chain width for tag", func(t *testing.T) {
		_, err := Decode(multiformat.TagWith(mhripemd.Code160, body))
		var serr ripemd.InvalidStateSnapshotError
		require.True(t, errors.As(err, &serr))
	})

	t.Run("chain word out of range", func(t *testing.T) {
		b := encodeModel(StateModel{Chain: []int64{1 << 32, 0, 0, 0}, Pending: []byte{}})
		_, err := Decode(multiformat.TagWith(mhripemd.Code128, b))
		var serr ripemd.InvalidStateSnapshotError
		require.True(t, errors.As(err, &serr))
	})

	t.Run("inconsistent length", func(t *testing.T) {
		b := encodeModel(StateModel{Chain: make([]int64, 4), Pending: []byte{1}, Length: 2})
		_, err := Decode(multiformat.TagWith(mhripemd.Code128, b))
		var serr ripemd.InvalidStateSnapshotError
		require.True(t, errors.As(err, &serr))
	})

	t.Run("bad multibase", func(t *testing.T) {
		_, err := Parse("!not multibase")
		require.Error(t, err)
	})
}

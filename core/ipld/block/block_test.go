package block

import (
	"testing"

	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	mhripemd "github.com/storacha/go-ripemd/core/ipld/hash/ripemd"
	"github.com/storacha/go-ripemd/core/ripemd"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	data := []byte("content addressed with RIPEMD")
	for _, v := range ripemd.Variants {
		t.Run(v.String(), func(t *testing.T) {
			b, err := Encode(data, v)
			require.NoError(t, err)
			require.Equal(t, data, b.Bytes())

			c := b.Link().(cidlink.Link).Cid
			require.Equal(t, uint64(1), c.Version())
			require.Equal(t, uint64(multicodec.Raw), c.Type())

			dh, err := multihash.Decode(c.Hash())
			require.NoError(t, err)
			require.Equal(t, mhripemd.CodeOf(v), dh.Code)
			require.Equal(t, v.Sum(data), dh.Digest)

			require.NoError(t, Verify(b))
		})
	}
}

func TestEncodeWithCodec(t *testing.T) {
	b, err := Encode([]byte{0xa0}, ripemd.RIPEMD160, WithCodec(uint64(multicodec.DagCbor)))
	require.NoError(t, err)
	require.Equal(t, uint64(multicodec.DagCbor), b.Link().(cidlink.Link).Cid.Type())
}

func TestEncodeUnsupportedVariant(t *testing.T) {
	_, err := Encode([]byte("x"), ripemd.Variant(0))
	require.Error(t, err)
}

func TestVerifyDetectsTampering(t *testing.T) {
	b, err := Encode([]byte("original"), ripemd.RIPEMD256)
	require.NoError(t, err)

	tampered := NewBlock(b.Link(), []byte("tampered"))
	require.Error(t, Verify(tampered))
}

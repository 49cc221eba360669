package block

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multicodec"
	mhripemd "github.com/storacha/go-ripemd/core/ipld/hash/ripemd"
	"github.com/storacha/go-ripemd/core/ripemd"
)

type Block interface {
	Link() ipld.Link
	Bytes() []byte
}

type block struct {
	link  ipld.Link
	bytes []byte
}

func (b *block) Link() ipld.Link {
	return b.link
}

func (b *block) Bytes() []byte {
	return b.bytes
}

// NewBlock pairs a link with bytes without checking that they match.
func NewBlock(link ipld.Link, bytes []byte) Block {
	return &block{link, bytes}
}

type encodeConfig struct {
	codec uint64
}

// Option configures [Encode].
type Option func(cfg *encodeConfig) error

// WithCodec sets the content codec recorded in the CID. The default is raw.
func WithCodec(codec uint64) Option {
	return func(cfg *encodeConfig) error {
		cfg.codec = codec
		return nil
	}
}

// Encode addresses data with a CIDv1 whose multihash is the v digest of data.
func Encode(data []byte, v ripemd.Variant, options ...Option) (Block, error) {
	cfg := encodeConfig{codec: uint64(multicodec.Raw)}
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	h, err := mhripemd.ForVariant(v)
	if err != nil {
		return nil, err
	}
	d, err := h.Sum(data)
	if err != nil {
		return nil, fmt.Errorf("hashing block: %w", err)
	}

	c := cid.NewCidV1(cfg.codec, d.Bytes())
	return NewBlock(cidlink.Link{Cid: c}, data), nil
}

// Verify re-hashes the bytes of b with the function named in its CID and
// checks that the result matches.
func Verify(b Block) error {
	cl, ok := b.Link().(cidlink.Link)
	if !ok {
		return fmt.Errorf("unsupported link type: %T", b.Link())
	}
	hashed, err := cl.Cid.Prefix().Sum(b.Bytes())
	if err != nil {
		return fmt.Errorf("hashing block %s: %w", cl.Cid, err)
	}
	if !hashed.Equals(cl.Cid) {
		return fmt.Errorf("mismatch in content integrity, name: %s, data: %s", cl.Cid, hashed)
	}
	return nil
}

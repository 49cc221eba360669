package car

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ipfs/go-cid"
	cbor "github.com/ipfs/go-ipld-cbor"
	"github.com/ipld/go-car/util"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/storacha/go-ripemd/core/ipld"
	"github.com/storacha/go-ripemd/core/ipld/block"
	"github.com/storacha/go-ripemd/core/iterable"
)

func init() {
	cbor.RegisterCborType(carHeader{})
}

type carHeader struct {
	Roots   []cid.Cid
	Version uint64
}

func encodeHeader(roots []ipld.Link) ([]byte, error) {
	h := carHeader{Version: 1}
	for _, r := range roots {
		cl, ok := r.(cidlink.Link)
		if !ok {
			return nil, fmt.Errorf("unsupported root link type: %T", r)
		}
		h.Roots = append(h.Roots, cl.Cid)
	}
	return cbor.DumpObject(h)
}

// Encode streams a CARv1 with the given roots and blocks. Errors from the
// blocks iterator are returned from the reader. Closing the reader before the
// end stops the encoding.
func Encode(roots []ipld.Link, blocks iterable.Iterator[ipld.Block]) io.ReadCloser {
	reader, writer := io.Pipe()
	go func() {
		hb, err := encodeHeader(roots)
		if err != nil {
			writer.CloseWithError(fmt.Errorf("writing CAR header: %s", err))
			return
		}
		if err := util.LdWrite(writer, hb); err != nil {
			writer.CloseWithError(fmt.Errorf("writing CAR header: %w", err))
			return
		}
		for {
			block, err := blocks.Next()
			if err != nil {
				if err == io.EOF {
					break
				}
				writer.CloseWithError(fmt.Errorf("writing CAR blocks: %s", err))
				return
			}
			if err := util.LdWrite(writer, []byte(block.Link().Binary()), block.Bytes()); err != nil {
				writer.CloseWithError(fmt.Errorf("writing CAR blocks: %w", err))
				return
			}
		}
		writer.Close()
	}()
	return reader
}

// Decode reads a CARv1. Every block is checked against its CID as it is
// read, using the hash function the CID names; RIPEMD CIDs are supported
// through the multihash registry.
func Decode(reader io.Reader) ([]ipld.Link, iterable.Iterator[ipld.Block], error) {
	br := bufio.NewReader(reader)

	hb, err := util.LdRead(br)
	if err != nil {
		return nil, nil, err
	}

	var ch carHeader
	if err := cbor.DecodeInto(hb, &ch); err != nil {
		return nil, nil, fmt.Errorf("invalid header: %v", err)
	}

	if ch.Version != 1 {
		return nil, nil, fmt.Errorf("invalid car version: %d", ch.Version)
	}

	roots := make([]ipld.Link, 0, len(ch.Roots))
	for _, r := range ch.Roots {
		roots = append(roots, cidlink.Link{Cid: r})
	}

	return roots, iterable.NewIterator(func() (ipld.Block, error) {
		if br == nil {
			return nil, io.EOF
		}
		c, bytes, err := util.ReadNode(br)
		if err != nil {
			if err == io.EOF {
				br = nil
			}
			return nil, err
		}

		blk := block.NewBlock(cidlink.Link{Cid: c}, bytes)
		if err := block.Verify(blk); err != nil {
			return nil, err
		}

		return blk, nil
	}), nil
}

package hash

// Hasher produces multihash digests for one hash function.
type Hasher interface {
	Code() uint64
	Size() uint64
	Sum(bytes []byte) (Digest, error)
}

type Digest interface {
	// Code is the multihash code of the hash function.
	Code() uint64
	// Size is the length of the raw digest in bytes.
	Size() uint64
	// Digest is the raw digest.
	Digest() []byte
	// Bytes is the multihash encoding of the digest.
	Bytes() []byte
}

type digest struct {
	code   uint64
	size   uint64
	digest []byte
	bytes  []byte
}

func (d *digest) Bytes() []byte {
	return d.bytes
}

func (d *digest) Code() uint64 {
	return d.code
}

func (d *digest) Digest() []byte {
	return d.digest
}

func (d *digest) Size() uint64 {
	return d.size
}

func NewDigest(code uint64, size uint64, digst []byte, bytes []byte) Digest {
	return &digest{code, size, digst, bytes}
}

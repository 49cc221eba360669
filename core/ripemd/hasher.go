package ripemd

import (
	"encoding/binary"
	"hash"
)

// Hasher computes a RIPEMD digest incrementally. It implements [hash.Hash].
//
// Finalize and Sum do not change the hasher: more data may be written after
// a digest has been taken, and the digest then covers everything written so
// far. A Hasher must not be used from multiple goroutines at once; separate
// hashers share no mutable state.
//
// The zero value is not usable and its methods panic: create hashers with
// [New], [Variant.New] or [FromState].
type Hasher struct {
	d   *descriptor
	s   [10]uint32      // chain value
	x   [BlockSize]byte // pending bytes
	nx  int             // index into x
	len uint64          // total bytes written, mod 2^64
}

var _ hash.Hash = (*Hasher)(nil)

const zeroHasherPanic = "ripemd: Hasher used without New, Variant.New or FromState"

func (h *Hasher) desc() *descriptor {
	if h.d == nil {
		panic(zeroHasherPanic)
	}
	return h.d
}

// New returns a hasher producing digests of the given length in bits. Only
// 128, 160, 256 and 320 are supported; any other length returns an
// [UnsupportedVariantError].
func New(bits int) (*Hasher, error) {
	v, err := ParseVariant(bits)
	if err != nil {
		return nil, err
	}
	return v.New(), nil
}

// Variant returns the variant the hasher was created for.
func (h *Hasher) Variant() Variant {
	return h.desc().variant
}

// Reset restores the initial state: the published chain constants of the
// variant, no pending bytes and a zero length.
func (h *Hasher) Reset() {
	h.s = h.desc().iv
	h.x = [BlockSize]byte{}
	h.nx = 0
	h.len = 0
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return h.desc().size }

// BlockSize returns the compression block size in bytes.
func (h *Hasher) BlockSize() int { return BlockSize }

// Len returns the number of bytes written so far, modulo 2^64.
func (h *Hasher) Len() uint64 { return h.len }

// Write absorbs p. It never returns an error.
func (h *Hasher) Write(p []byte) (nn int, err error) {
	d := h.desc()
	nn = len(p)
	h.len += uint64(nn)
	if h.nx > 0 {
		n := copy(h.x[h.nx:], p)
		h.nx += n
		if h.nx == BlockSize {
			d.compress(&h.s, h.x[:])
			h.nx = 0
		}
		p = p[n:]
	}
	n := d.compress(&h.s, p)
	p = p[n:]
	if len(p) > 0 {
		h.nx = copy(h.x[:], p)
	}
	return
}

// Sum appends the current digest to b and returns the resulting slice.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.desc()
	s := h.s
	var buf [2 * BlockSize]byte
	blocks := appendPadding(buf[:0], h.x[:h.nx], h.len)
	d.compress(&s, blocks)

	var digest [Size320]byte
	for i := 0; i < d.size/4; i++ {
		binary.LittleEndian.PutUint32(digest[4*i:], s[i])
	}
	return append(b, digest[:d.size]...)
}

// Finalize returns the digest of everything written so far.
func (h *Hasher) Finalize() []byte {
	return h.Sum(make([]byte, 0, h.desc().size))
}

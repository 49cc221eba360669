package ripemd

import (
	"encoding/binary"
	"math/bits"
)

// compress absorbs every complete 64-byte block of p into the chain value s
// and returns the number of bytes consumed.
func (d *descriptor) compress(s *[10]uint32, p []byte) int {
	n := 0
	var x [16]uint32
	for len(p) >= BlockSize {
		for i := range x {
			x[i] = binary.LittleEndian.Uint32(p[4*i:])
		}
		if d.lineWords == 4 {
			d.compress4(s, &x)
		} else {
			d.compress5(s, &x)
		}
		p = p[BlockSize:]
		n += BlockSize
	}
	return n
}

// compress4 is the step function of RIPEMD-128 and RIPEMD-256. Registers are
// kept by role: after each step the new value becomes B and A, C, D take the
// old D, B, C.
func (d *descriptor) compress4(s *[10]uint32, x *[16]uint32) {
	var l, r [4]uint32
	copy(l[:], s[0:4])
	if d.combine == combineSwap {
		copy(r[:], s[4:8])
	} else {
		r = l
	}

	for round := 0; round < 4; round++ {
		fl, fr := d.fl[round], d.fr[round]
		kl, kr := d.kl[round], d.kr[round]
		for j := round * 16; j < round*16+16; j++ {
			t := bits.RotateLeft32(l[0]+fl(l[1], l[2], l[3])+x[zl[j]]+kl, int(sl[j]))
			l[0], l[1], l[2], l[3] = l[3], t, l[1], l[2]

			t = bits.RotateLeft32(r[0]+fr(r[1], r[2], r[3])+x[zr[j]]+kr, int(sr[j]))
			r[0], r[1], r[2], r[3] = r[3], t, r[1], r[2]
		}
		if d.combine == combineSwap {
			i := d.swap[round]
			l[i], r[i] = r[i], l[i]
		}
	}

	if d.combine == combineSwap {
		for i := 0; i < 4; i++ {
			s[i] += l[i]
			s[4+i] += r[i]
		}
		return
	}
	t := s[1] + l[2] + r[3]
	s[1] = s[2] + l[3] + r[0]
	s[2] = s[3] + l[0] + r[1]
	s[3] = s[0] + l[1] + r[2]
	s[0] = t
}

// compress5 is the step function of RIPEMD-160 and RIPEMD-320. After each
// step the new value becomes B, the old C is rotated by 10 into D, and A, C,
// E take the old E, B, D.
func (d *descriptor) compress5(s *[10]uint32, x *[16]uint32) {
	var l, r [5]uint32
	copy(l[:], s[0:5])
	if d.combine == combineSwap {
		copy(r[:], s[5:10])
	} else {
		r = l
	}

	for round := 0; round < 5; round++ {
		fl, fr := d.fl[round], d.fr[round]
		kl, kr := d.kl[round], d.kr[round]
		for j := round * 16; j < round*16+16; j++ {
			t := bits.RotateLeft32(l[0]+fl(l[1], l[2], l[3])+x[zl[j]]+kl, int(sl[j])) + l[4]
			l[0], l[1], l[2], l[3], l[4] = l[4], t, l[1], bits.RotateLeft32(l[2], 10), l[3]

			t = bits.RotateLeft32(r[0]+fr(r[1], r[2], r[3])+x[zr[j]]+kr, int(sr[j])) + r[4]
			r[0], r[1], r[2], r[3], r[4] = r[4], t, r[1], bits.RotateLeft32(r[2], 10), r[3]
		}
		if d.combine == combineSwap {
			i := d.swap[round]
			l[i], r[i] = r[i], l[i]
		}
	}

	if d.combine == combineSwap {
		for i := 0; i < 5; i++ {
			s[i] += l[i]
			s[5+i] += r[i]
		}
		return
	}
	t := s[1] + l[2] + r[3]
	s[1] = s[2] + l[3] + r[4]
	s[2] = s[3] + l[4] + r[0]
	s[3] = s[4] + l[0] + r[1]
	s[4] = s[0] + l[1] + r[2]
	s[0] = t
}

package ripemd

import "encoding/binary"

// appendPadding appends to dst the final one or two blocks of a message of
// length bytes whose unprocessed tail is tail: the tail, a single 0x80 byte,
// zeros up to 56 mod 64, and the message length in bits as a 64-bit
// little-endian integer. len(tail) must equal length mod 64.
func appendPadding(dst []byte, tail []byte, length uint64) []byte {
	dst = append(dst, tail...)
	dst = append(dst, 0x80)
	n := (len(tail) + 1) % BlockSize
	if n > BlockSize-8 {
		dst = append(dst, make([]byte, BlockSize-n)...)
		n = 0
	}
	dst = append(dst, make([]byte, BlockSize-8-n)...)
	return binary.LittleEndian.AppendUint64(dst, length<<3)
}

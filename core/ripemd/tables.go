package ripemd

// Message word order of the left line, one row per round.
var zl = [80]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

// Message word order of the right line.
var zr = [80]uint8{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// Left rotation amounts of the left line.
var sl = [80]uint8{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

// Left rotation amounts of the right line.
var sr = [80]uint8{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

type boolFunc func(x, y, z uint32) uint32

func f1(x, y, z uint32) uint32 { return x ^ y ^ z }
func f2(x, y, z uint32) uint32 { return x&y | ^x&z }
func f3(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func f4(x, y, z uint32) uint32 { return x&z | y&^z }
func f5(x, y, z uint32) uint32 { return x ^ (y | ^z) }

// combine selects how the two lines are folded back into the chain value.
type combine uint8

const (
	// The lines start from the same chain and are folded together with
	// rotating cross-line additions (RIPEMD-128, RIPEMD-160).
	combineCross combine = iota
	// Each line owns one half of the chain. One register is exchanged
	// between the lines after every round and each line is added into its
	// own half (RIPEMD-256, RIPEMD-320).
	combineSwap
)

// descriptor is the static table set of one variant.
type descriptor struct {
	variant Variant
	size    int
	// lineWords is the register count of one line: 4 or 5.
	lineWords int
	rounds    int
	iv        [10]uint32
	fl, fr    [5]boolFunc
	kl, kr    [5]uint32
	combine   combine
	// swap is the register exchanged between the lines after each round,
	// as an index into the role-ordered registers A..E.
	swap [5]int
}

var (
	iv128 = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
	iv160 = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	iv256 = [8]uint32{
		0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476,
		0x76543210, 0xfedcba98, 0x89abcdef, 0x01234567,
	}
	iv320 = [10]uint32{
		0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
		0x76543210, 0xfedcba98, 0x89abcdef, 0x01234567, 0x3c2d1e0f,
	}
)

var (
	k4l = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}
	k4r = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}
	k5l = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	k5r = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

	f4l = [5]boolFunc{f1, f2, f3, f4}
	f4r = [5]boolFunc{f4, f3, f2, f1}
	f5l = [5]boolFunc{f1, f2, f3, f4, f5}
	f5r = [5]boolFunc{f5, f4, f3, f2, f1}
)

var descriptors = map[Variant]*descriptor{
	RIPEMD128: newDescriptor(RIPEMD128, iv128[:], combineCross, [5]int{}),
	RIPEMD160: newDescriptor(RIPEMD160, iv160[:], combineCross, [5]int{}),
	// Registers are renamed after every step, so the exchanged register is
	// named by its role: A, B, C, D in turn.
	RIPEMD256: newDescriptor(RIPEMD256, iv256[:], combineSwap, [5]int{0, 1, 2, 3}),
	// B, D, A, C, E in turn.
	RIPEMD320: newDescriptor(RIPEMD320, iv320[:], combineSwap, [5]int{1, 3, 0, 2, 4}),
}

func newDescriptor(v Variant, iv []uint32, c combine, swap [5]int) *descriptor {
	d := &descriptor{
		variant: v,
		size:    v.Size(),
		combine: c,
		swap:    swap,
	}
	copy(d.iv[:], iv)
	switch v {
	case RIPEMD128, RIPEMD256:
		d.lineWords, d.rounds = 4, 4
		d.fl, d.fr, d.kl, d.kr = f4l, f4r, k4l, k4r
	default:
		d.lineWords, d.rounds = 5, 5
		d.fl, d.fr, d.kl, d.kr = f5l, f5r, k5l, k5r
	}
	return d
}

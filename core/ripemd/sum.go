package ripemd

// Sum returns the RIPEMD digest of data with the given length in bits. It is
// shorthand for creating a hasher, writing data and finalizing.
func Sum(data []byte, bits int) ([]byte, error) {
	v, err := ParseVariant(bits)
	if err != nil {
		return nil, err
	}
	return v.Sum(data), nil
}

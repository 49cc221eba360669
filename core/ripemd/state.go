package ripemd

import "slices"

// State is a complete, independent snapshot of a [Hasher]. Nothing outside
// these fields influences the hasher's future output.
type State struct {
	Variant Variant
	// Chain is the running chain value: 4, 5, 8 or 10 words for RIPEMD-128,
	// 160, 256 and 320 respectively.
	Chain []uint32
	// Pending holds the bytes written since the last complete block.
	Pending []byte
	// Length is the number of bytes written, modulo 2^64.
	Length uint64
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Variant: s.Variant,
		Chain:   slices.Clone(s.Chain),
		Pending: slices.Clone(s.Pending),
		Length:  s.Length,
	}
}

// Validate checks that the fields of s are consistent with each other and
// with its variant.
func (s State) Validate() error {
	if !s.Variant.Available() {
		return NewInvalidStateSnapshotError("unknown variant %d", s.Variant)
	}
	if len(s.Chain) != s.Variant.words() {
		return NewInvalidStateSnapshotError("%s chain has %d words, expected %d", s.Variant, len(s.Chain), s.Variant.words())
	}
	if len(s.Pending) >= BlockSize {
		return NewInvalidStateSnapshotError("pending buffer holds %d bytes, must be less than %d", len(s.Pending), BlockSize)
	}
	if uint64(len(s.Pending)) != s.Length%BlockSize {
		return NewInvalidStateSnapshotError("pending buffer holds %d bytes but length %d leaves %d", len(s.Pending), s.Length, s.Length%BlockSize)
	}
	return nil
}

// State returns a snapshot of the hasher. The snapshot shares no memory with
// the hasher.
func (h *Hasher) State() State {
	v := h.desc().variant
	return State{
		Variant: v,
		Chain:   slices.Clone(h.s[:v.words()]),
		Pending: slices.Clone(h.x[:h.nx]),
		Length:  h.len,
	}
}

// SetState replaces the hasher's state with a copy of s. It returns an
// [InvalidStateSnapshotError] and leaves the hasher unchanged if s belongs to
// another variant or is malformed.
func (h *Hasher) SetState(s State) error {
	if v := h.desc().variant; s.Variant != v {
		return NewInvalidStateSnapshotError("snapshot of %s cannot be loaded into a %s hasher", s.Variant, v)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	h.s = [10]uint32{}
	copy(h.s[:], s.Chain)
	h.x = [BlockSize]byte{}
	h.nx = copy(h.x[:], s.Pending)
	h.len = s.Length
	return nil
}

// FromState returns a new hasher that continues from s.
func FromState(s State) (*Hasher, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	h := s.Variant.New()
	if err := h.SetState(s); err != nil {
		return nil, err
	}
	return h, nil
}

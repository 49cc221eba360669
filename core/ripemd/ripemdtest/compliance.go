// Package ripemdtest contains a compliance suite for hash.Hash values backed
// by the RIPEMD engine.
package ripemdtest

import (
	"bytes"
	"encoding/hex"
	"hash"
	"math/rand"
	"testing"

	"github.com/storacha/go-ripemd/core/ripemd"
	"github.com/storacha/go-ripemd/testing/fixtures"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h hash.Hash, size int)

// Snapshotter is implemented by hashers that can export and import state.
type Snapshotter interface {
	State() ripemd.State
	SetState(ripemd.State) error
}

// TestHasherCompliance checks the hash.Hash contract of the hashers made by
// f. The self-consistency checks cannot tell a wrong engine from a right one,
// so callers should pass the known answers for the variant f produces.
func TestHasherCompliance(t *testing.T, f HasherFactory, vectors ...fixtures.Vector) {
	t.Run("known answers", func(t *testing.T) {
		t.Parallel()

		if len(vectors) == 0 {
			t.Skip("no known answers given")
		}
		for _, vec := range vectors {
			h, _ := f()
			h.Write(vec.Input)
			require.Equal(t, vec.Digest, hex.EncodeToString(h.Sum(nil)), vec.Name)

			// odd sized writes straddle block boundaries
			h.Reset()
			for rest := vec.Input; len(rest) > 0; {
				n := min(len(rest), 97)
				h.Write(rest[:n])
				rest = rest[n:]
			}
			require.Equal(t, vec.Digest, hex.EncodeToString(h.Sum(nil)), vec.Name)
		}
	})

	t.Run("digest has the advertised size", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 119, 120, 128, 1000} {
			h, sz := f()
			require.Equal(t, sz, h.Size())
			h.Write(message(n))
			require.Len(t, h.Sum(nil), sz)
		}
	})

	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h1, _ := f()
		h1.Write([]byte("deterministic_data"))
		h2, _ := f()
		h2.Write([]byte("deterministic_data"))

		require.Equal(t, h1.Sum(nil), h2.Sum(nil))
	})

	t.Run("sum respects input", func(t *testing.T) {
		t.Parallel()

		h1, _ := f()
		h1.Write([]byte("data_1"))
		h2, _ := f()
		h2.Write([]byte("data_2"))

		require.NotEqual(t, h1.Sum(nil), h2.Sum(nil))
	})

	t.Run("sum appends", func(t *testing.T) {
		t.Parallel()

		h, sz := f()
		h.Write([]byte("prefix"))
		out := h.Sum([]byte("dst"))
		require.Len(t, out, 3+sz)
		require.Equal(t, []byte("dst"), out[:3])
		require.Equal(t, h.Sum(nil), out[3:])
	})

	t.Run("streaming equivalence", func(t *testing.T) {
		t.Parallel()

		rng := rand.New(rand.NewSource(1))
		msg := message(777)

		whole, _ := f()
		whole.Write(msg)
		want := whole.Sum(nil)

		bytewise, _ := f()
		for i := range msg {
			bytewise.Write(msg[i : i+1])
		}
		require.Equal(t, want, bytewise.Sum(nil))

		for i := 0; i < 32; i++ {
			h, _ := f()
			rest := msg
			for len(rest) > 0 {
				n := rng.Intn(150)
				if n > len(rest) {
					n = len(rest)
				}
				h.Write(rest[:n])
				rest = rest[n:]
			}
			require.Equal(t, want, h.Sum(nil))
		}
	})

	t.Run("sum does not change the hasher", func(t *testing.T) {
		t.Parallel()

		h, _ := f()
		h.Write([]byte("first part "))
		first := h.Sum(nil)
		require.Equal(t, first, h.Sum(nil))

		h.Write([]byte("second part"))

		full, _ := f()
		full.Write([]byte("first part second part"))
		require.Equal(t, full.Sum(nil), h.Sum(nil))
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()

		fresh, _ := f()
		want := fresh.Sum(nil)

		h, _ := f()
		h.Write(message(100))
		h.Reset()
		require.Equal(t, want, h.Sum(nil))
	})

	t.Run("state round trip", func(t *testing.T) {
		t.Parallel()

		h1, _ := f()
		s1, ok := h1.(Snapshotter)
		if !ok {
			t.Skip("hasher does not expose its state")
		}
		h1.Write(message(150))

		h2, _ := f()
		s2 := h2.(Snapshotter)
		require.NoError(t, s2.SetState(s1.State()))
		require.Equal(t, h1.Sum(nil), h2.Sum(nil))

		h1.Write([]byte("more"))
		h2.Write([]byte("more"))
		require.Equal(t, h1.Sum(nil), h2.Sum(nil))
	})

	t.Run("state is a copy", func(t *testing.T) {
		t.Parallel()

		h, _ := f()
		s, ok := h.(Snapshotter)
		if !ok {
			t.Skip("hasher does not expose its state")
		}
		h.Write(message(70))
		want := h.Sum(nil)

		st := s.State()
		for i := range st.Chain {
			st.Chain[i] = 0
		}
		for i := range st.Pending {
			st.Pending[i] ^= 0xff
		}
		require.Equal(t, want, h.Sum(nil))
	})
}

// message returns n deterministic, non-repeating bytes.
func message(n int) []byte {
	var b bytes.Buffer
	for i := 0; b.Len() < n; i++ {
		b.WriteByte(byte(i*7 + i/256))
	}
	return b.Bytes()[:n]
}

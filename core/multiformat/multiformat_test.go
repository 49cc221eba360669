package multiformat

import (
	"testing"

	"github.com/storacha/go-ripemd/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b := []byte{1, 2, 3}
		tb := TagWith(0x1053, b)
		utb := helpers.Must(UntagWith(0x1053, tb, 0))
		require.EqualValues(t, b, utb)
	})

	t.Run("offset", func(t *testing.T) {
		tb := append([]byte{0xff, 0xff}, TagWith(0x1055, []byte{9})...)
		utb := helpers.Must(UntagWith(0x1055, tb, 2))
		require.EqualValues(t, []byte{9}, utb)
	})

	t.Run("incorrect tag", func(t *testing.T) {
		b := []byte{1, 2, 3}
		tb := TagWith(1, b)
		_, err := UntagWith(2, tb, 0)
		require.Error(t, err)
		require.Equal(t, "expected multiformat with 0x2 tag instead got 0x1", err.Error())
	})

	t.Run("untag unknown", func(t *testing.T) {
		tb := TagWith(0x1054, []byte{4, 5})
		code, rest, err := Untag(tb)
		require.NoError(t, err)
		require.Equal(t, uint64(0x1054), code)
		require.EqualValues(t, []byte{4, 5}, rest)
	})

	t.Run("untag truncated", func(t *testing.T) {
		_, _, err := Untag([]byte{0x80})
		require.Error(t, err)
	})
}

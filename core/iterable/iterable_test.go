package iterable_test

import (
	"errors"
	"io"
	"testing"

	"github.com/storacha/go-ripemd/core/iterable"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	items, err := iterable.Collect(iterable.FromSlice([]int{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, items)

	it := iterable.FromSlice[string](nil)
	_, err = it.Next()
	require.Equal(t, io.EOF, err)
}

func TestFromSeq2(t *testing.T) {
	someErr := errors.New("some error")
	testCases := []struct {
		name          string
		seq           func(yield func(int, error) bool)
		expectedItems []int
		expectedErr   error
	}{
		{
			name: "yields every item",
			seq: func(yield func(int, error) bool) {
				for i := 0; i < 3; i++ {
					if !yield(i, nil) {
						return
					}
				}
			},
			expectedItems: []int{0, 1, 2},
		},
		{
			name: "stops at first error",
			seq: func(yield func(int, error) bool) {
				if !yield(1, nil) {
					return
				}
				if !yield(0, someErr) {
					return
				}
				yield(2, nil)
			},
			expectedErr: someErr,
		},
		{
			name:          "empty",
			seq:           func(yield func(int, error) bool) {},
			expectedItems: nil,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			items, err := iterable.Collect(iterable.FromSeq2(testCase.seq))
			require.Equal(t, testCase.expectedItems, items)
			require.ErrorIs(t, err, testCase.expectedErr)
		})
	}
}

func TestFromSeq2ErrorIsSticky(t *testing.T) {
	someErr := errors.New("some error")
	it := iterable.FromSeq2(func(yield func(int, error) bool) {
		yield(0, someErr)
	})
	_, err := it.Next()
	require.Equal(t, someErr, err)
	_, err = it.Next()
	require.Equal(t, someErr, err)
}

func TestToSeq2(t *testing.T) {
	var items []int
	for item, err := range iterable.ToSeq2(iterable.FromSlice([]int{1, 2, 3})) {
		require.NoError(t, err)
		items = append(items, item)
	}
	require.Equal(t, []int{1, 2, 3}, items)

	someErr := errors.New("some error")
	calls := 0
	it := iterable.NewIterator(func() (int, error) {
		calls++
		if calls == 2 {
			return 0, someErr
		}
		return calls, nil
	})
	var errs []error
	for _, err := range iterable.ToSeq2(it) {
		errs = append(errs, err)
	}
	require.Equal(t, []error{nil, someErr}, errs)
	require.Equal(t, 2, calls)

	// stopping early stops pulling
	calls = 0
	for range iterable.ToSeq2(iterable.NewIterator(func() (int, error) {
		calls++
		return calls, nil
	})) {
		break
	}
	require.Equal(t, 1, calls)
}

package iterable

import (
	"io"
	"iter"
)

// Iterator returns items in a collection with every call to Next().
// The error will be set to io.EOF when the iterator is complete.
type Iterator[T any] interface {
	Next() (T, error)
}

type iterator[T any] struct {
	next func() (T, error)
}

func (it *iterator[T]) Next() (T, error) {
	return it.next()
}

func NewIterator[T any](next func() (T, error)) Iterator[T] {
	return &iterator[T]{next}
}

func FromSlice[T any](items []T) Iterator[T] {
	i := 0
	return NewIterator(func() (T, error) {
		if i < len(items) {
			item := items[i]
			i++
			return item, nil
		}
		var zero T
		return zero, io.EOF
	})
}

// FromSeq2 adapts a push sequence of items and errors. The first non-nil
// error ends the iteration and is returned from every later call to Next.
func FromSeq2[T any](seq iter.Seq2[T, error]) Iterator[T] {
	next, stop := iter.Pull2(seq)
	var done error
	return NewIterator(func() (T, error) {
		var zero T
		if done != nil {
			return zero, done
		}
		item, err, ok := next()
		if !ok {
			done = io.EOF
		} else if err != nil {
			done = err
		}
		if done != nil {
			stop()
			return zero, done
		}
		return item, nil
	})
}

func Collect[T any](it Iterator[T]) ([]T, error) {
	var items []T
	for {
		item, err := it.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ToSeq2 adapts it to a push sequence. io.EOF ends the sequence; any other
// error is yielded once and ends it.
func ToSeq2[T any](it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := it.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Package blockstore keeps content addressed blocks in memory. Blocks are
// keyed by their link and remembered in the order they were first added, so
// a store can be turned back into a CAR with the same block order.
package blockstore

import (
	"iter"
	"sync"

	"github.com/storacha/go-ripemd/core/ipld"
)

type BlockReader interface {
	Get(link ipld.Link) (ipld.Block, bool, error)
	// Iterator yields the blocks in insertion order.
	Iterator() iter.Seq2[ipld.Block, error]
	Len() int
}

type BlockWriter interface {
	// Put adds a block. Putting a link that is already present is a no-op.
	Put(block ipld.Block) error
}

type BlockStore interface {
	BlockReader
	BlockWriter
}

type memstore struct {
	mu    sync.RWMutex
	order []string
	index map[string]ipld.Block
}

func (ms *memstore) Put(blk ipld.Block) error {
	key := blk.Link().String()

	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.index[key]; ok {
		return nil
	}
	ms.index[key] = blk
	ms.order = append(ms.order, key)
	return nil
}

func (ms *memstore) Get(link ipld.Link) (ipld.Block, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	blk, ok := ms.index[link.String()]
	return blk, ok, nil
}

func (ms *memstore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.order)
}

// Blocks put while iterating are not yielded.
func (ms *memstore) Iterator() iter.Seq2[ipld.Block, error] {
	ms.mu.RLock()
	order := ms.order[:len(ms.order):len(ms.order)]
	ms.mu.RUnlock()

	return func(yield func(ipld.Block, error) bool) {
		for _, key := range order {
			ms.mu.RLock()
			blk := ms.index[key]
			ms.mu.RUnlock()
			if !yield(blk, nil) {
				return
			}
		}
	}
}

// Option configures a new store.
type Option func(cfg *bsConfig) error

type bsConfig struct {
	blocks iter.Seq2[ipld.Block, error]
}

// WithBlocksIterator fills the store from blocks before it is returned. The
// first error from blocks aborts construction.
func WithBlocksIterator(blocks iter.Seq2[ipld.Block, error]) Option {
	return func(cfg *bsConfig) error {
		cfg.blocks = blocks
		return nil
	}
}

func NewBlockStore(options ...Option) (BlockStore, error) {
	cfg := bsConfig{}
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	ms := &memstore{index: map[string]ipld.Block{}}
	if cfg.blocks != nil {
		for blk, err := range cfg.blocks {
			if err != nil {
				return nil, err
			}
			if err := ms.Put(blk); err != nil {
				return nil, err
			}
		}
	}
	return ms, nil
}

// NewBlockReader is [NewBlockStore] without the write side, for stores that
// are filled once from an existing source such as a CAR.
func NewBlockReader(options ...Option) (BlockReader, error) {
	return NewBlockStore(options...)
}

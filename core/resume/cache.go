// Package resume keeps hasher states between the chunks of a long running
// upload, so that each chunk can be hashed as it arrives.
package resume

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/storacha/go-ripemd/core/ripemd"
)

var MemoryStateCacheSize = 100

// StateCache stores hasher states by an application defined key, typically
// an upload or session id.
type StateCache interface {
	Get(ctx context.Context, id string) (ripemd.State, bool, error)
	Put(ctx context.Context, id string, s ripemd.State) error
	Delete(ctx context.Context, id string) error
}

type MemoryStateCache struct {
	data *lru.Cache[string, ripemd.State]
}

func (m *MemoryStateCache) Get(ctx context.Context, id string) (ripemd.State, bool, error) {
	s, ok := m.data.Get(id)
	if !ok {
		return ripemd.State{}, false, nil
	}
	return s.Clone(), true, nil
}

func (m *MemoryStateCache) Put(ctx context.Context, id string, s ripemd.State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.data.Add(id, s.Clone())
	return nil
}

func (m *MemoryStateCache) Delete(ctx context.Context, id string) error {
	m.data.Remove(id)
	return nil
}

// Len returns the number of cached states.
func (m *MemoryStateCache) Len() int {
	return m.data.Len()
}

var _ StateCache = (*MemoryStateCache)(nil)

// NewMemoryStateCache creates a new in memory LRU cache of hasher states. The
// size parameter controls the maximum number of states that can be cached.
// Pass a value less than 1 to use the default cache size
// [MemoryStateCacheSize].
func NewMemoryStateCache(size int) (*MemoryStateCache, error) {
	if size <= 0 {
		size = MemoryStateCacheSize
	}
	cache, err := lru.New[string, ripemd.State](size)
	if err != nil {
		return nil, fmt.Errorf("creating state LRU: %w", err)
	}
	return &MemoryStateCache{data: cache}, nil
}

// Resume returns a hasher that continues from the state cached under id, or
// a new v hasher when nothing is cached. An unavailable v is an
// [ripemd.UnsupportedVariantError] and a cached state of another variant is
// an [ripemd.InvalidStateSnapshotError].
func Resume(ctx context.Context, cache StateCache, id string, v ripemd.Variant) (*ripemd.Hasher, error) {
	if !v.Available() {
		return nil, ripemd.NewUnsupportedVariantError(v.Bits())
	}
	s, ok, err := cache.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting state %q: %w", id, err)
	}
	h := v.New()
	if !ok {
		return h, nil
	}
	if err := h.SetState(s); err != nil {
		return nil, err
	}
	return h, nil
}

// Suspend stores the state of h under id.
func Suspend(ctx context.Context, cache StateCache, id string, h *ripemd.Hasher) error {
	if err := cache.Put(ctx, id, h.State()); err != nil {
		return fmt.Errorf("putting state %q: %w", id, err)
	}
	return nil
}

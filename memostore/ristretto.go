package memostore

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/on-the-ground/splaymemo/pure"
)

var _ pure.Table[int] = (*Ristretto[int])(nil)

// Ristretto is a cost-bounded admission cache. Writes are made synchronous by
// waiting on the set buffer, but the admission policy may still drop an entry
// once maxCost is reached.
type Ristretto[V any] struct {
	cache *ristretto.Cache[int, V]
}

func NewRistretto[V any](maxCost int64) (*Ristretto[V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[int, V]{
		NumCounters:        maxCost * 10, // keys to track frequency of, ~10x capacity.
		MaxCost:            maxCost,      // each entry costs 1.
		BufferItems:        64,           // number of keys per Get buffer.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto[V]{cache: cache}, nil
}

func (r *Ristretto[V]) Find(key int) (V, bool) {
	return r.cache.Get(key)
}

func (r *Ristretto[V]) Insert(key int, value V) {
	r.cache.Set(key, value, 1)
	r.cache.Wait()
}

func (r *Ristretto[V]) Close() error {
	r.cache.Close()
	return nil
}

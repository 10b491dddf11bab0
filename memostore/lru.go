package memostore

import (
	arc "github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/on-the-ground/splaymemo/pure"
)

var (
	_ pure.Table[int] = (*LRU[int])(nil)
	_ pure.Table[int] = (*ARC[int])(nil)
)

// LRU is a fixed-size least-recently-used table.
type LRU[V any] struct {
	cache *lru.Cache[int, V]
}

func NewLRU[V any](size int) (*LRU[V], error) {
	cache, err := lru.New[int, V](size)
	if err != nil {
		return nil, err
	}
	return &LRU[V]{cache: cache}, nil
}

func (l *LRU[V]) Find(key int) (V, bool) { return l.cache.Get(key) }

func (l *LRU[V]) Insert(key int, value V) { l.cache.Add(key, value) }

func (l *LRU[V]) Len() int { return l.cache.Len() }

// ARC is a fixed-size adaptive replacement table, balancing recency and frequency.
type ARC[V any] struct {
	cache *arc.ARCCache[int, V]
}

func NewARC[V any](size int) (*ARC[V], error) {
	cache, err := arc.NewARC[int, V](size)
	if err != nil {
		return nil, err
	}
	return &ARC[V]{cache: cache}, nil
}

func (a *ARC[V]) Find(key int) (V, bool) { return a.cache.Get(key) }

func (a *ARC[V]) Insert(key int, value V) { a.cache.Add(key, value) }

func (a *ARC[V]) Len() int { return a.cache.Len() }

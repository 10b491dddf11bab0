package workload

import (
	"context"
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/on-the-ground/splaymemo/pure"
)

// Summer answers range sums over a mutable array.
type Summer interface {
	Sum(l, r int) int
	Update(i, v int)
}

// CacheStats counts range sums served from and missed by a cache.
type CacheStats struct {
	Hits   int
	Misses int
	Resets int
}

func sum(array []int, l, r int) int {
	s := 0
	for _, v := range array[l : r+1] {
		s += v
	}
	return s
}

// Uncached recomputes every range.
type Uncached struct {
	array []int
}

func NewUncached(array []int) *Uncached {
	return &Uncached{array: slices.Clone(array)}
}

func (u *Uncached) Sum(l, r int) int { return sum(u.array, l, r) }

func (u *Uncached) Update(i, v int) { u.array[i] = v }

type span struct{ l, r int }

// LRUCached remembers the most recent range sums and forgets all of them on
// any update, since one write may touch every cached range.
type LRUCached struct {
	array []int
	cache *lru.Cache[span, int]
	stats CacheStats
}

func NewLRUCached(array []int, size int) (*LRUCached, error) {
	cache, err := lru.New[span, int](size)
	if err != nil {
		return nil, err
	}
	return &LRUCached{array: slices.Clone(array), cache: cache}, nil
}

func (c *LRUCached) Sum(l, r int) int {
	k := span{l, r}
	if v, ok := c.cache.Get(k); ok {
		c.stats.Hits++
		return v
	}
	c.stats.Misses++
	v := sum(c.array, l, r)
	c.cache.Add(k, v)
	return v
}

func (c *LRUCached) Update(i, v int) {
	c.array[i] = v
	c.cache.Purge()
	c.stats.Resets++
}

func (c *LRUCached) Stats() CacheStats { return c.stats }

// SplayCached keeps every range sum since the last update in a splay tree
// keyed by l*len(array)+r, so adjacent ranges from the same left bound
// share a neighbourhood. An update discards the whole tree.
type SplayCached struct {
	array []int
	table *pure.SplayTree[int]
	stats CacheStats
}

func NewSplayCached(array []int) *SplayCached {
	return &SplayCached{array: slices.Clone(array), table: pure.NewSplayTree[int]()}
}

func (c *SplayCached) Sum(l, r int) int {
	k := l*len(c.array) + r
	if v, ok := c.table.Find(k); ok {
		c.stats.Hits++
		return v
	}
	c.stats.Misses++
	v := sum(c.array, l, r)
	c.table.Insert(k, v)
	return v
}

func (c *SplayCached) Update(i, v int) {
	c.array[i] = v
	if c.table.Len() > 0 {
		c.table = pure.NewSplayTree[int]()
	}
	c.stats.Resets++
}

func (c *SplayCached) Stats() CacheStats { return c.stats }

// Result summarizes one replay.
type Result struct {
	Ranges   int
	Updates  int
	Checksum int // sum of every range answer
	Elapsed  time.Duration
}

const ctxCheckEvery = 1024

// Replay runs queries against s in order. ctx is checked periodically.
func Replay(ctx context.Context, s Summer, queries []Query) (Result, error) {
	var res Result
	start := time.Now()
	for i, q := range queries {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("replay stopped at query %d: %w", i, err)
			}
		}
		switch q.Kind {
		case KindRange:
			res.Checksum += s.Sum(q.L, q.R)
			res.Ranges++
		case KindUpdate:
			s.Update(q.Index, q.Value)
			res.Updates++
		default:
			return res, fmt.Errorf("query %d: unknown kind %v", i, q.Kind)
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

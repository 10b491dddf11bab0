package workload

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("invalid workload config")

// Kind tells range queries from point updates.
type Kind uint8

const (
	KindRange Kind = iota
	KindUpdate
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "Range"
	case KindUpdate:
		return "Update"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Query is either a range sum over [L, R] or an update writing Value at Index.
type Query struct {
	Kind  Kind
	L, R  int
	Index int
	Value int
}

type Config struct {
	Size          int     // array length
	Queries       int     // number of queries
	MaxValue      int     // array values and update values are drawn from [1, MaxValue]
	RangeFraction float64 // share of range queries, the rest are updates
	CacheSize     int     // entries kept by the LRU summer
	Seed          int64
}

func DefaultConfig() Config {
	return Config{
		Size:          100_000,
		Queries:       50_000,
		MaxValue:      1000,
		RangeFraction: 0.7,
		CacheSize:     1000,
		Seed:          1,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Size < 2 {
		err = multierr.Append(err, fmt.Errorf("%w: size must be at least 2, got %d", ErrInvalidConfig, c.Size))
	}
	if c.Queries < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: queries must not be negative, got %d", ErrInvalidConfig, c.Queries))
	}
	if c.MaxValue < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: max value must be positive, got %d", ErrInvalidConfig, c.MaxValue))
	}
	if c.RangeFraction < 0 || c.RangeFraction > 1 {
		err = multierr.Append(err, fmt.Errorf("%w: range fraction must be in [0, 1], got %v", ErrInvalidConfig, c.RangeFraction))
	}
	if c.CacheSize < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: cache size must be positive, got %d", ErrInvalidConfig, c.CacheSize))
	}
	return err
}

// Generate builds the initial array and the query stream. The same config
// always yields the same workload.
func Generate(cfg Config) ([]int, []Query, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))

	array := make([]int, cfg.Size)
	for i := range array {
		array[i] = 1 + rnd.Intn(cfg.MaxValue)
	}

	queries := make([]Query, cfg.Queries)
	for i := range queries {
		if rnd.Float64() < cfg.RangeFraction {
			l, r := rnd.Intn(cfg.Size), rnd.Intn(cfg.Size-1)
			// draw two distinct indices
			if r >= l {
				r++
			} else {
				l, r = r, l
			}
			queries[i] = Query{Kind: KindRange, L: l, R: r}
		} else {
			queries[i] = Query{
				Kind:  KindUpdate,
				Index: rnd.Intn(cfg.Size),
				Value: 1 + rnd.Intn(cfg.MaxValue),
			}
		}
	}
	return array, queries, nil
}

// Fingerprint digests a query stream so two runs can prove they replayed the
// same workload.
func Fingerprint(queries []Query) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 1+4*binary.MaxVarintLen64)
	for _, q := range queries {
		buf = buf[:0]
		buf = append(buf, byte(q.Kind))
		buf = binary.AppendVarint(buf, int64(q.L))
		buf = binary.AppendVarint(buf, int64(q.R))
		buf = binary.AppendVarint(buf, int64(q.Index))
		buf = binary.AppendVarint(buf, int64(q.Value))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

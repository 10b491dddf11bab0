package memostore

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/on-the-ground/splaymemo/pure"
)

// Backend names accepted by Open.
const (
	BackendSplay     = "splay"
	BackendLRU       = "lru"
	BackendARC       = "arc"
	BackendRistretto = "ristretto"
	BackendMemDB     = "memdb"
)

var ErrUnknownBackend = errors.New("unknown memo backend")

// Backends lists every backend Open understands.
func Backends() []string {
	return []string{BackendSplay, BackendLRU, BackendARC, BackendRistretto, BackendMemDB}
}

// Options sizes the bounded backends. Unbounded ones ignore it.
type Options struct {
	Size    int   // lru, arc
	MaxCost int64 // ristretto
}

func DefaultOptions() Options {
	return Options{
		Size:    1 << 20,
		MaxCost: 1 << 20,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds an empty big-integer memo table for the named backend.
// The returned Closer must be closed once the table is no longer used.
func Open(name string, opts Options) (pure.Table[*big.Int], io.Closer, error) {
	switch name {
	case BackendSplay:
		return pure.NewSplayTree[*big.Int](), nopCloser{}, nil
	case BackendLRU:
		t, err := NewLRU[*big.Int](opts.Size)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", name, err)
		}
		return t, nopCloser{}, nil
	case BackendARC:
		t, err := NewARC[*big.Int](opts.Size)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", name, err)
		}
		return t, nopCloser{}, nil
	case BackendRistretto:
		t, err := NewRistretto[*big.Int](opts.MaxCost)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", name, err)
		}
		return t, t, nil
	case BackendMemDB:
		t, err := NewMemDB()
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", name, err)
		}
		return t, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

package purefn

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/on-the-ground/splaymemo/pure"
)

var (
	ErrNegativeIndex = errors.New("fibonacci index must not be negative")
	ErrOverflow      = errors.New("fibonacci value overflows uint64")
)

// maxUint64Index is the largest n with F(n) < 2^64.
const maxUint64Index = 93

// Fibonacci evaluates F(n) = F(n-1) + F(n-2), F(0) = 0, F(1) = 1, top-down,
// with table as its only memo. Every distinct n is computed at most once for
// the lifetime of the table, base cases included.
//
// A Fibonacci shares the concurrency limits of its table.
type Fibonacci struct {
	eval     func(int) *big.Int
	calls    int
	computed int
}

func NewFibonacci(table pure.Table[*big.Int]) *Fibonacci {
	f := &Fibonacci{}
	tableized := pure.TableizeI1O1(func(n int) *big.Int {
		f.computed++
		if n <= 1 {
			return big.NewInt(int64(n))
		}
		return new(big.Int).Add(f.eval(n-1), f.eval(n-2))
	}, table)
	f.eval = func(n int) *big.Int {
		f.calls++
		return tableized(n)
	}
	return f
}

// Eval returns F(n). The result is a copy; memoized values are never exposed.
func (f *Fibonacci) Eval(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}
	return new(big.Int).Set(f.eval(n)), nil
}

// Uint64 returns F(n) for n small enough to fit.
func (f *Fibonacci) Uint64(n int) (uint64, error) {
	if n > maxUint64Index {
		return 0, fmt.Errorf("%w: %d", ErrOverflow, n)
	}
	v, err := f.Eval(n)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// Calls reports how many memo lookups have been made, recursive ones included.
func (f *Fibonacci) Calls() int { return f.calls }

// Computed reports how many times the recurrence itself ran, i.e. memo misses.
func (f *Fibonacci) Computed() int { return f.computed }

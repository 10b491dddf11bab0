package purefn_test

import (
	"math/big"
	"testing"

	"github.com/on-the-ground/splaymemo/memostore"
	"github.com/on-the-ground/splaymemo/pure"
	"github.com/on-the-ground/splaymemo/purefn"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkTableizedFib20(b *testing.B) {
	var tableFib func(int) int
	tableFib = pure.TableizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return tableFib(n-1) + tableFib(n-2)
	}, pure.NewSplayTree[int]())

	for i := 0; i < b.N; i++ {
		_ = tableFib(20)
	}
}

// BenchmarkFibonacciCold fills a fresh table every iteration.
func BenchmarkFibonacciCold(b *testing.B) {
	for _, name := range memostore.Backends() {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				table, closer, err := memostore.Open(name, memostore.DefaultOptions())
				if err != nil {
					b.Fatal(err)
				}
				if _, err := purefn.NewFibonacci(table).Eval(500); err != nil {
					b.Fatal(err)
				}
				_ = closer.Close()
			}
		})
	}
}

// BenchmarkFibonacciWarm sweeps indices over one table that is already full.
func BenchmarkFibonacciWarm(b *testing.B) {
	for _, name := range memostore.Backends() {
		b.Run(name, func(b *testing.B) {
			table, closer, err := memostore.Open(name, memostore.DefaultOptions())
			if err != nil {
				b.Fatal(err)
			}
			defer closer.Close()
			fib := purefn.NewFibonacci(table)
			if _, err := fib.Eval(1000); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := fib.Eval(i % 1000); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSplayTreeSequentialFind(b *testing.B) {
	tree := pure.NewSplayTree[*big.Int]()
	for k := 0; k < 4096; k++ {
		tree.Insert(k, big.NewInt(int64(k)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Find(i % 4096)
	}
}

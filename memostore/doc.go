// Package memostore adapts third-party caches to pure.Table so they can stand
// in for the splay tree under the same memoized evaluator.
//
// Bounded backends (LRU, ARC, Ristretto) may forget entries; a memoized pure
// function stays correct and simply recomputes what was dropped.
package memostore

// Package purefn evaluates recursive numeric functions through a memo table.
//
// Fibonacci is the reference recurrence. It does not own a cache of its own:
// whatever pure.Table it is given (a splay tree by default, or any backend from
// memostore) is consulted before each recursive step and filled after it.
//
// This package embodies the idea that:
//
//	> If a function is pure, it should be cacheable like a mathematical function.
//
// Because results never go stale, there is nothing to invalidate. Reusing the
// same table across calls is the whole point: once F(n) is known, asking for
// any F(k), k <= n, is a single lookup.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package purefn

// Package pure provides an ordered, self-adjusting memo table for pure functions.
//
// SplayTree maps int keys to values and splays every accessed key to the root,
// so a key that was just stored or looked up is the cheapest one to reach next.
// There is no eviction and no deletion: a memo for a pure function never goes
// stale, and the table lives exactly as long as its owner keeps it.
//
// TableizeI1O1 wraps a pure func(int) O with any Table, the splay tree being
// the default one.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Find rotates nodes just
// like Insert does, so guard a shared table with your own lock.
package pure

// Package bench times a memoized Fibonacci evaluator over a sequence of
// increasing indices, once per memo backend, and renders the (index, duration)
// series as a console table, a plot and prometheus metrics.
//
// Every backend keeps one table for the whole run. The first samples pay for
// filling it; later ones mostly measure how fast the backend finds what it
// already holds, which is where the splay tree's move-to-root behaviour shows.
package bench

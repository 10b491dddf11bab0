package bench

import (
	"errors"
	"fmt"
	"slices"

	"github.com/on-the-ground/splaymemo/memostore"
	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("invalid bench config")

// Config drives one Fibonacci timing run.
type Config struct {
	Start, Stop, Step int // indices Start, Start+Step, ... below Stop

	Backends []string

	LRUSize          int   // lru and arc capacity
	RistrettoMaxCost int64 // ristretto capacity

	PlotPath    string // PNG/SVG written when set
	MetricsPath string // prometheus textfile written when set
}

func DefaultConfig() Config {
	opts := memostore.DefaultOptions()
	return Config{
		Start:            0,
		Stop:             1000,
		Step:             50,
		Backends:         []string{memostore.BackendSplay, memostore.BackendLRU},
		LRUSize:          opts.Size,
		RistrettoMaxCost: opts.MaxCost,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Start < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: start must not be negative, got %d", ErrInvalidConfig, c.Start))
	}
	if c.Stop <= c.Start {
		err = multierr.Append(err, fmt.Errorf("%w: stop (%d) must be greater than start (%d)", ErrInvalidConfig, c.Stop, c.Start))
	}
	if c.Step <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidConfig, c.Step))
	}
	if len(c.Backends) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: at least one backend is required", ErrInvalidConfig))
	}
	known := memostore.Backends()
	seen := map[string]bool{}
	for _, b := range c.Backends {
		if !slices.Contains(known, b) {
			err = multierr.Append(err, fmt.Errorf("%w: %w: %q", ErrInvalidConfig, memostore.ErrUnknownBackend, b))
		}
		if seen[b] {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate backend %q", ErrInvalidConfig, b))
		}
		seen[b] = true
	}
	if c.LRUSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: lru size must be positive, got %d", ErrInvalidConfig, c.LRUSize))
	}
	if c.RistrettoMaxCost <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: ristretto max cost must be positive, got %d", ErrInvalidConfig, c.RistrettoMaxCost))
	}
	return err
}

// Indices lists the Fibonacci indices a run evaluates, in order.
func (c Config) Indices() []int {
	if c.Step <= 0 {
		return nil
	}
	var ns []int
	for n := c.Start; n < c.Stop; n += c.Step {
		ns = append(ns, n)
	}
	return ns
}

func (c Config) storeOptions() memostore.Options {
	return memostore.Options{Size: c.LRUSize, MaxCost: c.RistrettoMaxCost}
}

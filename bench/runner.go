package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/splaymemo/memostore"
	"github.com/on-the-ground/splaymemo/purefn"
	"github.com/on-the-ground/splaymemo/shared/log"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/multierr"
)

var ErrMismatch = errors.New("backends disagree")

// Sample is one timed evaluation of F(Index).
type Sample struct {
	Index int
	Span  timespan.TimeSpan
}

func (s Sample) Duration() time.Duration { return s.Span.Duration() }

// Series holds every sample of one backend, in index order.
type Series struct {
	Backend  string
	Samples  []Sample
	Calls    int // memo lookups over the whole run
	Computed int // memo misses over the whole run
}

// Total is the summed duration of all samples.
func (s Series) Total() time.Duration {
	var d time.Duration
	for _, sm := range s.Samples {
		d += sm.Duration()
	}
	return d
}

type Report struct {
	RunID   uuid.UUID
	Span    timespan.TimeSpan
	Indices []int
	Series  []Series
}

type contender struct {
	series *Series
	fib    *purefn.Fibonacci
	closer io.Closer
}

// Run evaluates every configured index on every backend. Each backend keeps a
// single table for the whole run, so later indices reuse earlier subresults.
// Backends are interleaved per index and their answers cross-checked.
func Run(ctx context.Context, cfg Config) (report Report, err error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	report = Report{
		RunID:   uuid.New(),
		Indices: cfg.Indices(),
		Series:  make([]Series, len(cfg.Backends)),
	}
	fields := func(kv ...interface{}) map[string]interface{} {
		m := map[string]interface{}{"run_id": report.RunID.String()}
		for i := 0; i+1 < len(kv); i += 2 {
			m[kv[i].(string)] = kv[i+1]
		}
		return m
	}

	contenders := make([]contender, 0, len(cfg.Backends))
	defer func() {
		for _, c := range contenders {
			err = multierr.Append(err, c.closer.Close())
		}
	}()
	for i, name := range cfg.Backends {
		table, closer, err := memostore.Open(name, cfg.storeOptions())
		if err != nil {
			return Report{}, err
		}
		report.Series[i] = Series{Backend: name, Samples: make([]Sample, 0, len(report.Indices))}
		contenders = append(contenders, contender{
			series: &report.Series[i],
			fib:    purefn.NewFibonacci(table),
			closer: closer,
		})
	}

	log.Effect(ctx, log.LogInfo, "starting run", fields(
		"backends", cfg.Backends,
		"start", cfg.Start,
		"stop", cfg.Stop,
		"step", cfg.Step,
	))

	runStart := time.Now()
	for _, n := range report.Indices {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("run stopped before F(%d): %w", n, err)
		}

		var want *big.Int
		for _, c := range contenders {
			start := time.Now()
			v, err := c.fib.Eval(n)
			end := time.Now()
			if err != nil {
				return Report{}, fmt.Errorf("%s: F(%d): %w", c.series.Backend, n, err)
			}
			if want == nil {
				want = v
			} else if want.Cmp(v) != 0 {
				return Report{}, fmt.Errorf("%w at F(%d): %s", ErrMismatch, n, c.series.Backend)
			}

			sample := Sample{Index: n, Span: timespan.BetweenTimes(start, end)}
			c.series.Samples = append(c.series.Samples, sample)
			log.Effect(ctx, log.LogDebug, "evaluated", fields(
				"backend", c.series.Backend,
				"n", n,
				"duration", sample.Duration(),
				"bits", v.BitLen(),
			))
		}
	}
	report.Span = timespan.BetweenTimes(runStart, time.Now())

	for _, c := range contenders {
		c.series.Calls = c.fib.Calls()
		c.series.Computed = c.fib.Computed()
		log.Effect(ctx, log.LogInfo, "backend finished", fields(
			"backend", c.series.Backend,
			"total", c.series.Total(),
			"calls", c.series.Calls,
			"computed", c.series.Computed,
		))
	}
	return report, nil
}

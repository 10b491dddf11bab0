package workload_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/splaymemo/workload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func smallConfig() workload.Config {
	cfg := workload.DefaultConfig()
	cfg.Size = 200
	cfg.Queries = 2000
	cfg.CacheSize = 16
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, workload.DefaultConfig().Validate())

	bad := workload.Config{Size: 1, Queries: -1, MaxValue: 0, RangeFraction: 2, CacheSize: 0}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, workload.ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 5)
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := smallConfig()

	a1, q1, err := workload.Generate(cfg)
	require.NoError(t, err)
	a2, q2, err := workload.Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, q1, q2)
	assert.Equal(t, workload.Fingerprint(q1), workload.Fingerprint(q2))

	cfg.Seed++
	_, q3, err := workload.Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, workload.Fingerprint(q1), workload.Fingerprint(q3))
}

func TestGenerate_Shape(t *testing.T) {
	cfg := smallConfig()
	array, queries, err := workload.Generate(cfg)
	require.NoError(t, err)

	require.Len(t, array, cfg.Size)
	for _, v := range array {
		assert.True(t, v >= 1 && v <= cfg.MaxValue)
	}

	ranges := 0
	for _, q := range queries {
		switch q.Kind {
		case workload.KindRange:
			ranges++
			assert.True(t, 0 <= q.L && q.L < q.R && q.R < cfg.Size, "bad range %+v", q)
		case workload.KindUpdate:
			assert.True(t, 0 <= q.Index && q.Index < cfg.Size)
			assert.True(t, q.Value >= 1 && q.Value <= cfg.MaxValue)
		}
	}
	// 70% expected; allow generous slack
	assert.InDelta(t, 0.7, float64(ranges)/float64(len(queries)), 0.05)
}

func TestGenerate_RejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Size = 0
	_, _, err := workload.Generate(cfg)
	assert.ErrorIs(t, err, workload.ErrInvalidConfig)
}

func TestReplay_SummersAgree(t *testing.T) {
	cfg := smallConfig()
	array, queries, err := workload.Generate(cfg)
	require.NoError(t, err)

	lruSummer, err := workload.NewLRUCached(array, cfg.CacheSize)
	require.NoError(t, err)
	splaySummer := workload.NewSplayCached(array)

	ctx := context.Background()
	want, err := workload.Replay(ctx, workload.NewUncached(array), queries)
	require.NoError(t, err)

	for name, s := range map[string]workload.Summer{"lru": lruSummer, "splay": splaySummer} {
		got, err := workload.Replay(ctx, s, queries)
		require.NoError(t, err, name)
		assert.Equal(t, want.Checksum, got.Checksum, name)
		assert.Equal(t, want.Ranges, got.Ranges, name)
		assert.Equal(t, want.Updates, got.Updates, name)
	}

	stats := lruSummer.Stats()
	assert.Equal(t, want.Ranges, stats.Hits+stats.Misses)
	assert.Equal(t, want.Updates, stats.Resets)
}

func TestReplay_CachesRepeatedRanges(t *testing.T) {
	array := []int{1, 2, 3, 4, 5}
	queries := []workload.Query{
		{Kind: workload.KindRange, L: 0, R: 4},
		{Kind: workload.KindRange, L: 0, R: 4},
		{Kind: workload.KindUpdate, Index: 0, Value: 10},
		{Kind: workload.KindRange, L: 0, R: 4},
	}

	s := workload.NewSplayCached(array)
	res, err := workload.Replay(context.Background(), s, queries)
	require.NoError(t, err)

	assert.Equal(t, 15+15+24, res.Checksum)
	assert.Equal(t, workload.CacheStats{Hits: 1, Misses: 2, Resets: 1}, s.Stats())
	// the summer works on its own copy
	assert.Equal(t, 1, array[0])
}

func TestReplay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := workload.Replay(ctx, workload.NewUncached([]int{1, 2}), []workload.Query{
		{Kind: workload.KindRange, L: 0, R: 1},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Range", workload.KindRange.String())
	assert.Equal(t, "Update", workload.KindUpdate.String())
	assert.Equal(t, "Kind(9)", workload.Kind(9).String())
}

package coll_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/coll"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := coll.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithComponent("hashmap")

	logger.LogRehash(context.Background(), 16, 32, 12, 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rehash completed", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "hashmap", entry["component"])
	assert.EqualValues(t, 16, entry["old_capacity"])
	assert.EqualValues(t, 32, entry["new_capacity"])
	assert.EqualValues(t, 12, entry["live"])
	assert.EqualValues(t, 3, entry["tombstones_dropped"])
}

func TestLogSplit(t *testing.T) {
	var buf bytes.Buffer
	logger := coll.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.LogSplit(context.Background(), 3, 40)
	assert.Contains(t, buf.String(), `msg="root split"`)
	assert.Contains(t, buf.String(), "height=3")
	assert.Contains(t, buf.String(), "length=40")
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()

	assert.NotNil(t, coll.NewLogger(nil))
	assert.False(t, coll.NewLogger(nil).Enabled(ctx, slog.LevelDebug))
	assert.True(t, coll.NewJSONLogger(slog.LevelDebug).Enabled(ctx, slog.LevelDebug))
	assert.False(t, coll.NewTextLogger(slog.LevelWarn).Enabled(ctx, slog.LevelInfo))
	assert.False(t, coll.NoopLogger().Enabled(ctx, slog.LevelError))
}

func TestBasicMetricsCollector(t *testing.T) {
	var c coll.MetricsCollector = &coll.BasicMetricsCollector{}
	c.RecordGrow(16, 32)
	c.RecordRehash(16, 32, 10, 2)
	c.RecordRehash(32, 32, 10, 5)
	c.RecordSplit(true)
	c.RecordSplit(false)
	c.RecordSplit(false)

	stats := c.(*coll.BasicMetricsCollector).GetStats()
	assert.Equal(t, int64(1), stats.GrowCount)
	assert.Equal(t, int64(2), stats.RehashCount)
	assert.Equal(t, int64(7), stats.TombstonesDropped)
	assert.Equal(t, int64(3), stats.SplitCount)
	assert.Equal(t, int64(1), stats.RootSplitCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	var c coll.MetricsCollector = coll.NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		c.RecordGrow(1, 2)
		c.RecordRehash(1, 2, 3, 4)
		c.RecordSplit(true)
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		coll.ErrIndexOutOfRange,
		coll.ErrInvalidOrder,
		coll.ErrInvalidCapacity,
		coll.ErrOverflow,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

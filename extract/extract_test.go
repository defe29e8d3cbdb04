package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeward-labs/fixtura/extract"
	"github.com/leeward-labs/fixtura/oracle"
	"github.com/leeward-labs/fixtura/value"
)

func obj(pairs ...any) *value.Object {
	o := value.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1])
	}

	return o
}

func TestExtractEmptyArrayField(t *testing.T) {
	records := []value.Value{
		obj("timestamps", []value.Value{}),
	}

	ev, err := extract.Extract(context.Background(), records, oracle.Default())
	require.NoError(t, err)

	assert.Equal(t, 1, ev.ItemCount)
	assert.Contains(t, ev.FieldPaths, "timestamps")
	assert.Equal(t, map[int]int{0: 1}, ev.ArrayLengthCounts["timestamps"])
}

func TestExtractNestedNullability(t *testing.T) {
	records := []value.Value{
		obj("data", obj("topList", nil)),
		obj("data", nil),
	}

	ev, err := extract.Extract(context.Background(), records, oracle.Default())
	require.NoError(t, err)

	assert.Equal(t, 1, ev.PresenceCounts["data"])
	assert.Equal(t, 1, ev.NullCounts["data"])
	assert.Equal(t, 2, ev.AppearanceCounts["data"])
	assert.Equal(t, 1, ev.NullCounts["data.topList"])
	assert.Equal(t, 1, ev.AppearanceCounts["data.topList"])
}

func TestExtractDynamicKeyObject(t *testing.T) {
	o := oracle.FromPaths("daily_metrics")

	records := []value.Value{
		obj("daily_metrics", obj("2025-01-05", obj("total_users", float64(100)))),
	}

	ev, err := extract.Extract(context.Background(), records, o)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{1: 1}, ev.ObjectSizeCounts["daily_metrics"])
	assert.Contains(t, ev.ObjectKeyBag["daily_metrics"], "2025-01-05")
	assert.Contains(t, ev.FieldPaths, "daily_metrics.{}.total_users")
}

func TestMergeSumsCounters(t *testing.T) {
	a, err := extract.Extract(context.Background(), []value.Value{obj("x", float64(1))}, oracle.Default())
	require.NoError(t, err)

	b, err := extract.Extract(context.Background(), []value.Value{obj("x", float64(1))}, oracle.Default())
	require.NoError(t, err)

	merged := extract.Merge(a, b)
	assert.Equal(t, 2, merged.ItemCount)
	assert.Equal(t, 2, merged.FieldValueCounts["x"][float64(1)])
}

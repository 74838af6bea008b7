package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

func TestChecksum_Deterministic(t *testing.T) {
	a := Checksum([]byte("order_id,total_price\n1,10\n"))
	b := Checksum([]byte("order_id,total_price\n1,10\n"))
	c := Checksum([]byte("order_id,total_price\n1,11\n"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestReportCache_PutGet(t *testing.T) {
	c := New(4)
	report := &domain.AggregateReport{HasData: true, TotalOrders: 3}

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Put("k", report)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Same(t, report, got)
	assert.Equal(t, 1, c.Len())
}

func TestReportCache_Invalidate(t *testing.T) {
	c := New(4)
	c.Put("k", &domain.AggregateReport{})

	c.Invalidate("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	// Invalidating again is a no-op.
	c.Invalidate("k")
	assert.Equal(t, 0, c.Len())
}

func TestReportCache_EvictsOldestFirst(t *testing.T) {
	c := New(2)
	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("k%d", i), &domain.AggregateReport{TotalOrders: i})
	}

	_, ok := c.Get("k0")
	assert.False(t, ok, "oldest entry should have been evicted")

	got, ok := c.Get("k2")
	require.True(t, ok)
	assert.Equal(t, 2, got.TotalOrders)
	assert.Equal(t, 2, c.Len())
}

func TestReportCache_OverwriteDoesNotGrow(t *testing.T) {
	c := New(2)
	c.Put("k", &domain.AggregateReport{TotalOrders: 1})
	c.Put("k", &domain.AggregateReport{TotalOrders: 2})

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got.TotalOrders)
	assert.Equal(t, 1, c.Len())
}

func TestReportCache_ZeroCapacityDisablesCaching(t *testing.T) {
	c := New(0)
	c.Put("k", &domain.AggregateReport{})

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestReportCache_NegativeCapacityDisablesCaching(t *testing.T) {
	c := New(-3)

	assert.NotPanics(t, func() {
		c.Put("k", &domain.AggregateReport{})
	})
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

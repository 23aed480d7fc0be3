package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSeed(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	before, _ := s.Snapshot()
	s.Seed(50)
	after, _ := s.Snapshot()

	require.Len(t, after.Sales, 50, "Expected every seed sale to be recorded against the default stock levels")

	sold := make(map[string]int)
	earliest := time.Now().AddDate(0, 0, -31)
	for _, sale := range after.Sales {
		d, err := time.Parse(DateLayout, sale.Date)
		require.NoError(t, err, "Expected seed dates in the %s format", DateLayout)
		assert.True(t, d.After(earliest), "Expected seed dates within the last 30 days")

		assert.Contains(t, after.Branches, sale.Branch)
		assert.GreaterOrEqual(t, sale.Quantity, 1)
		assert.LessOrEqual(t, sale.Quantity, 9)

		sold[sale.Product] += sale.Quantity
	}

	for name, p := range after.Products {
		assert.Equal(t, before.Products[name].Stock-sold[name], p.Stock,
			"Expected stock for %s to drop by exactly the seeded quantity", name)
	}
}

func TestSeed_Zero(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	s.Seed(0)
	assert.Empty(t, s.ListSales())
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestComputeAnalytics_EmptyLedger(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	a := s.ComputeAnalytics()
	assert.Equal(t, 0, a.TotalCount)
	assert.Equal(t, 0.0, a.TotalRevenue)
	assert.Equal(t, NoSalesSentinel, a.TopProduct)
	assert.Equal(t, 0.0, a.FebruaryRevenue)
}

func TestComputeAnalytics_TotalsMatchLedger(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	_, err := s.RecordSale("2025-01-10", "Graxas", "Brasil", 3)
	require.NoError(t, err)
	_, err = s.RecordSale("2025-03-15", "Pastas", "Alemanha", 2)
	require.NoError(t, err)
	_, err = s.RecordSale("2025-05-20", "Óleos", "EUA", 1)
	require.NoError(t, err)

	a := s.ComputeAnalytics()
	assert.Equal(t, 3, a.TotalCount)

	var sum float64
	for _, sale := range s.ListSales() {
		sum += sale.Value
	}
	assert.Equal(t, sum, a.TotalRevenue, "Expected total revenue to equal the sum of line values")
	assert.Equal(t, 3*50.00+2*100.00+1*200.00, a.TotalRevenue)
}

func TestComputeAnalytics_TopProduct(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	_, err := s.RecordSale("2025-01-10", "Graxas", "Brasil", 2)
	require.NoError(t, err)
	_, err = s.RecordSale("2025-01-11", "Pastas", "Brasil", 5)
	require.NoError(t, err)
	_, err = s.RecordSale("2025-01-12", "Graxas", "EUA", 1)
	require.NoError(t, err)

	a := s.ComputeAnalytics()
	assert.Equal(t, "Pastas", a.TopProduct, "Expected the product with the greatest summed quantity")
}

func TestComputeAnalytics_TopProductTieBreak(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	_, err := s.RecordSale("2025-01-10", "Pastas", "Brasil", 4)
	require.NoError(t, err)
	_, err = s.RecordSale("2025-01-11", "Graxas", "Brasil", 4)
	require.NoError(t, err)

	a := s.ComputeAnalytics()
	assert.Equal(t, "Graxas", a.TopProduct, "Expected ties to resolve to the lexicographically smallest name")
}

func TestComputeAnalytics_FebruaryRevenueSpansYears(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	_, err := s.RecordSale("2024-02-14", "Graxas", "Brasil", 1)
	require.NoError(t, err)
	_, err = s.RecordSale("2025-02-01", "Pastas", "Alemanha", 1)
	require.NoError(t, err)
	_, err = s.RecordSale("2025-03-01", "Óleos", "EUA", 1)
	require.NoError(t, err)

	a := s.ComputeAnalytics()
	assert.Equal(t, 50.00+100.00, a.FebruaryRevenue, "Expected February sales from every year to count")
}

func TestSnapshot_AnalyticsIncluded(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	_, err := s.RecordSale("2025-02-10", "Graxas", "Brasil", 2)
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, s.ComputeAnalytics(), snap.Analytics)
}

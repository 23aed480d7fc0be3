package store

import "time"

// NoSalesSentinel is reported as the top product while the ledger is empty.
// Downstream dashboards key on this exact value.
const NoSalesSentinel = "Sem vendas"

// ComputeAnalytics derives the aggregate metrics from the ledger. Nothing is
// maintained incrementally; each call is a fresh pass, which is fine for the
// volumes this tracker sees.
func (s *Store) ComputeAnalytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyticsLocked()
}

func (s *Store) analyticsLocked() Analytics {
	a := Analytics{TopProduct: NoSalesSentinel}

	unitsSold := make(map[string]int)
	for _, sale := range s.sales {
		a.TotalCount++
		a.TotalRevenue += sale.Value
		unitsSold[sale.Product] += sale.Quantity

		// February revenue spans all years on purpose: the metric upstream
		// systems consume is month-based, not scoped to the current year.
		if d, err := time.Parse(DateLayout, sale.Date); err == nil && d.Month() == time.February {
			a.FebruaryRevenue += sale.Value
		}
	}

	// Ties go to the lexicographically smallest name so the result does not
	// depend on map iteration order.
	top := ""
	for name, units := range unitsSold {
		if top == "" || units > unitsSold[top] || (units == unitsSold[top] && name < top) {
			top = name
		}
	}
	if top != "" {
		a.TopProduct = top
	}
	return a
}

package store

import (
	"math/rand"
	"slices"
	"time"

	"go.uber.org/zap"
)

// branchWeights gives Brasil the bulk of the demo traffic, matching the
// company's real sales distribution across its three offices.
var branchWeights = []float64{0.6, 0.2, 0.2}

// Seed records n synthetic sales: a date within the last 30 days, a product
// drawn uniformly from the catalog, a weighted branch and a quantity of 1-9.
// Seeding goes through RecordSale so stock decrements apply the same as for
// real sales. It is demo scaffolding only.
func (s *Store) Seed(n int) {
	s.mu.Lock()
	names := make([]string, 0, len(s.products))
	for name := range s.products {
		names = append(names, name)
	}
	branches := slices.Clone(s.branches)
	s.mu.Unlock()

	slices.Sort(names)
	now := time.Now()

	for i := 0; i < n; i++ {
		date := now.AddDate(0, 0, -rand.Intn(30)).Format(DateLayout)
		product := names[rand.Intn(len(names))]
		branch := weightedChoice(branches, branchWeights)
		quantity := rand.Intn(9) + 1

		if _, err := s.RecordSale(date, product, branch, quantity); err != nil {
			s.logger.Warn("skipping seed sale", zap.String("product", product), zap.Error(err))
		}
	}
}

func weightedChoice(options []string, weights []float64) string {
	r := rand.Float64()
	acc := 0.0
	for i, option := range options {
		if i < len(weights) {
			acc += weights[i]
		} else {
			acc = 1
		}
		if r < acc {
			return option
		}
	}
	return options[len(options)-1]
}

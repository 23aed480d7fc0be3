package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds the catalog, the branch list and the sales ledger in memory.
// State lives for the lifetime of the process and is discarded on exit;
// there is no persistence layer and that is intentional.
//
// A single mutex covers every operation so that each read-modify-write
// (notably the stock check plus decrement in RecordSale) is one critical
// section under concurrent requests.
type Store struct {
	mu       sync.Mutex
	products map[string]Product
	branches []string
	sales    []Sale
	logger   *zap.Logger
}

// Compile-time check: the local store satisfies the shared call surface.
var _ DataSource = (*Store)(nil)

// New creates a Store pre-loaded with the company catalog and branch list.
// The ledger starts empty; call Seed to populate demo sales.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{
		products: map[string]Product{
			"Graxas":                 {Name: "Graxas", Price: 50.00, Stock: 1000},
			"Pastas":                 {Name: "Pastas", Price: 100.00, Stock: 5000},
			"Óleos":                  {Name: "Óleos", Price: 200.00, Stock: 2000},
			"Produtos de limpeza":    {Name: "Produtos de limpeza", Price: 200.00, Stock: 5000},
			"Produtos de manutenção": {Name: "Produtos de manutenção", Price: 100.00, Stock: 1000},
		},
		branches: []string{"Brasil", "Alemanha", "EUA"},
		logger:   logger,
	}
}

// Snapshot returns a copy of the catalog, branches and ledger together with
// freshly computed analytics. The error is always nil locally; it exists so
// the remote implementation can share the signature.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make(map[string]Product, len(s.products))
	for name, p := range s.products {
		products[name] = p
	}

	return &Snapshot{
		Products:  products,
		Branches:  slices.Clone(s.branches),
		Sales:     slices.Clone(s.sales),
		Analytics: s.analyticsLocked(),
	}, nil
}

// Branches returns the fixed list of sales offices.
func (s *Store) Branches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.branches)
}

// ListSales returns all recorded sales in insertion order.
func (s *Store) ListSales() []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sales)
}

// AddProduct inserts a new catalog entry. It fails with ErrAlreadyExists if
// the name is taken and ErrInvalidInput on an empty name, a non-positive
// price or negative stock.
func (s *Store) AddProduct(name string, price float64, stock int) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}

	p := Product{Name: name, Price: price, Stock: stock}
	s.products[name] = p

	s.logger.Info("product added",
		zap.String("product", name),
		zap.Float64("price", price),
		zap.Int("stock", stock),
	)
	return &p, nil
}

// RestockAndReprice adds stock to an existing product and replaces its price.
// It fails with ErrNotFound if the product does not exist.
func (s *Store) RestockAndReprice(name string, addedStock int, newPrice float64) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if newPrice <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	if addedStock < 0 {
		return nil, fmt.Errorf("%w: added stock must not be negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	p.Stock += addedStock
	p.Price = newPrice
	s.products[name] = p

	s.logger.Info("product updated",
		zap.String("product", name),
		zap.Float64("price", p.Price),
		zap.Int("stock", p.Stock),
	)
	return &p, nil
}

// RecordSale validates the request, checks stock, decrements it and appends
// the sale to the ledger, all inside one critical section. On any failure the
// catalog and the ledger are left unchanged. The line value is fixed at the
// product's current price and never revised.
func (s *Store) RecordSale(date, product, branch string, quantity int) (*Sale, error) {
	if date == "" || product == "" || branch == "" {
		return nil, fmt.Errorf("%w: date, product and branch are required", ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must use the %s format", ErrInvalidInput, DateLayout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[product]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, product)
	}
	if !slices.Contains(s.branches, branch) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBranch, branch)
	}
	if quantity > p.Stock {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, quantity, p.Stock)
	}

	p.Stock -= quantity
	s.products[product] = p

	sale := Sale{
		ID:       uuid.NewString(),
		Date:     date,
		Product:  product,
		Branch:   branch,
		Quantity: quantity,
		Value:    float64(quantity) * p.Price,
	}
	s.sales = append(s.sales, sale)

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("product", product),
		zap.String("branch", branch),
		zap.Int("quantity", quantity),
		zap.Float64("value", sale.Value),
	)
	return &sale, nil
}

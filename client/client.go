// Package client is the remote implementation of store.DataSource. A
// dashboard running in another process talks to the API through it with the
// exact same calls an in-process dashboard makes on the store.
package client

import (
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"sales_dashboard/internal/store"
)

// Client calls the dashboard API over HTTP.
type Client struct {
	http *resty.Client
}

var _ store.DataSource = (*Client)(nil)

// New creates a Client for the API at baseURL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
}

// Close releases the underlying HTTP resources.
func (c *Client) Close() error {
	return c.http.Close()
}

type apiError struct {
	Error string `json:"error"`
}

// Snapshot fetches GET /api/data.
func (c *Client) Snapshot() (*store.Snapshot, error) {
	var snap store.Snapshot
	var apiErr apiError

	res, err := c.http.R().
		SetResult(&snap).
		SetError(&apiErr).
		Get("/api/data")
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}
	if res.IsError() {
		return nil, remoteError(res.StatusCode(), apiErr.Error)
	}
	return &snap, nil
}

// RecordSale posts a sale to POST /api/sales and returns the created record.
func (c *Client) RecordSale(date, product, branch string, quantity int) (*store.Sale, error) {
	var out struct {
		Message string     `json:"message"`
		Sale    store.Sale `json:"sale"`
	}
	var apiErr apiError

	res, err := c.http.R().
		SetBody(map[string]any{
			"date":     date,
			"product":  product,
			"branch":   branch,
			"quantity": quantity,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/sales")
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}
	if res.IsError() {
		return nil, remoteError(res.StatusCode(), apiErr.Error)
	}
	return &out.Sale, nil
}

// AddProduct creates a catalog entry via POST /api/products.
func (c *Client) AddProduct(name string, price float64, stock int) (*store.Product, error) {
	return c.manageProduct(name, price, stock, false)
}

// RestockAndReprice updates an existing entry via POST /api/products.
func (c *Client) RestockAndReprice(name string, addedStock int, newPrice float64) (*store.Product, error) {
	return c.manageProduct(name, newPrice, addedStock, true)
}

func (c *Client) manageProduct(name string, price float64, stock int, update bool) (*store.Product, error) {
	var out struct {
		Message string        `json:"message"`
		Product store.Product `json:"product"`
	}
	var apiErr apiError

	res, err := c.http.R().
		SetBody(map[string]any{
			"name":   name,
			"price":  price,
			"stock":  stock,
			"update": update,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/products")
	if err != nil {
		return nil, fmt.Errorf("manage product: %w", err)
	}
	if res.IsError() {
		return nil, remoteError(res.StatusCode(), apiErr.Error)
	}
	return &out.Product, nil
}

// knownErrors are the domain errors the server reports verbatim in the error
// body. Matching them by message lets callers use errors.Is on remote results
// the same way they would on local ones.
var knownErrors = []error{
	store.ErrInsufficientStock,
	store.ErrUnknownProduct,
	store.ErrUnknownBranch,
	store.ErrInvalidInput,
	store.ErrAlreadyExists,
	store.ErrNotFound,
}

func remoteError(status int, msg string) error {
	for _, sentinel := range knownErrors {
		if strings.HasPrefix(msg, sentinel.Error()) {
			detail := strings.TrimPrefix(msg, sentinel.Error())
			if detail == "" {
				return sentinel
			}
			return fmt.Errorf("%w%s", sentinel, detail)
		}
	}
	if msg == "" {
		return fmt.Errorf("unexpected status %d", status)
	}
	return fmt.Errorf("unexpected status %d: %s", status, msg)
}

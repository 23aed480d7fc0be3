package store

import "errors"

// ErrInvalidInput is returned when a required field is missing or malformed.
var ErrInvalidInput = errors.New("invalid input")

// ErrAlreadyExists is returned when adding a product whose name is taken.
var ErrAlreadyExists = errors.New("product already exists")

// ErrNotFound is returned when updating a product that does not exist.
var ErrNotFound = errors.New("product not found")

// ErrUnknownProduct is returned when a sale references a missing product.
var ErrUnknownProduct = errors.New("unknown product")

// ErrUnknownBranch is returned when a sale references a missing branch.
var ErrUnknownBranch = errors.New("unknown branch")

// ErrInsufficientStock is returned when a sale asks for more units than the
// product has in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

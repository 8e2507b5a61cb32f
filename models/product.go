package models

import (
	"errors"
	"strings"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("price must be greater than or equal to 0")
)

// Product is a catalogue entry exposed through the /products resource.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate checks the product invariants: a non-blank name and a
// non-negative price.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProductNameRequired
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrOrderProductRequired     = errors.New("order product is required")
	ErrOrderProductNameRequired = errors.New("order product name is required")
	ErrOrderUserRequired        = errors.New("order user is required")
)

// Order is a purchase of a single product by a user. Product and User hold
// the identifiers of the referenced product record and user account.
type Order struct {
	Ref          string  `json:"ref"`
	Product      string  `json:"product"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	IsApproved   bool    `json:"isApproved"`
	User         string  `json:"user"`
}

// ApplyDefaults assigns a fresh reference to orders created without one.
func (o *Order) ApplyDefaults() {
	if o.Ref == "" {
		o.Ref = uuid.NewString()
	}
}

func (o Order) Validate() error {
	switch {
	case strings.TrimSpace(o.Product) == "":
		return ErrOrderProductRequired
	case strings.TrimSpace(o.ProductName) == "":
		return ErrOrderProductNameRequired
	case o.ProductPrice < 0:
		return ErrNegativePrice
	case strings.TrimSpace(o.User) == "":
		return ErrOrderUserRequired
	}
	return nil
}

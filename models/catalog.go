package models

import "github.com/shopspring/decimal"

// Product is one of the fixed-price buttons on the counter screen.
type Product struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Catalog is the fixed product list and the waiting-customer queue the
// frontend renders. Loaded once at startup; the till never mutates it.
type Catalog struct {
	Products  []Product `json:"products"`
	Customers []string  `json:"customers"`
}

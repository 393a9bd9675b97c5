package item

import "github.com/shopspring/decimal"

// Item is a catalog entry. Prices are fixed-point decimals backed by a
// NUMERIC column; items are read-only from the API's perspective and are
// seeded out of band.
type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

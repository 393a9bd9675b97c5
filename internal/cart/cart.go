package cart

import (
	"github.com/shopspring/decimal"

	"github.com/pakin42/ecommerce-backend/internal/item"
)

// Cart is a user's mutable item sequence. Quantity is represented by
// repetition, so the same item may appear multiple times. Total is cached
// on the record but always derived from Items; it is never written except
// through recomputeTotal.
type Cart struct {
	ID     int             `json:"id"`
	UserID int             `json:"userId"`
	Items  []item.Item     `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

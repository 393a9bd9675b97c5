package order

import (
	"github.com/shopspring/decimal"

	"github.com/pakin42/ecommerce-backend/internal/item"
)

// Order is an immutable snapshot of a cart at submission time. It owns its
// own copy of the item list and total; later cart mutations never reach it.
type Order struct {
	ID        int             `json:"id"`
	UserID    int             `json:"userId"`
	Items     []item.Item     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

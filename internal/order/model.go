package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable record of a completed checkout.
type Order struct {
	ID         int64           `json:"id"`
	UserID     uint            `json:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []*Item         `json:"items,omitempty"`
}

// Item snapshots a cart line at checkout. Price is unit price times
// quantity. ProductID is nil once the product has been deleted.
type Item struct {
	ID           int64           `json:"id"`
	ProductID    *int64          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

type CheckoutParams struct {
	UserID         uint
	IdempotencyKey string
}

// cartLine is a cart item read inside the checkout transaction.
type cartLine struct {
	productID    int64
	productName  string
	categoryName string
	unitPrice    decimal.Decimal
	quantity     int
}

func (l cartLine) lineTotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// productIDs returns the distinct product ids of lines in cart order.
func productIDs(lines []cartLine) []int64 {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.productID]; ok {
			continue
		}
		seen[l.productID] = struct{}{}
		ids = append(ids, l.productID)
	}
	return ids
}

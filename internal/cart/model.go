package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        int64     `json:"id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Item is a cart line priced at the product's current price.
type Item struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	ImageURL  *string         `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// View is the cart as presented to its owner. Total and ItemCount are
// derived from Items on every read.
type View struct {
	CartID    int64           `json:"cart_id"`
	Items     []*Item         `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// NewView fills each line's subtotal and sums the cart totals.
func NewView(cartID int64, items []*Item) *View {
	v := &View{CartID: cartID, Items: items, Total: decimal.Zero}
	if v.Items == nil {
		v.Items = []*Item{}
	}

	for _, it := range v.Items {
		it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		v.Total = v.Total.Add(it.Subtotal)
		v.ItemCount += it.Quantity
	}

	return v
}

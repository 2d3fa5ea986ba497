package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Item is one line; Name and PriceAtOrder are snapshots taken when the
// order was placed and survive later catalog edits or deletes.
type Item struct {
	MenuItemID   string          `json:"menuItemId"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"priceAtOrder"`
}

func (it Item) Subtotal() decimal.Decimal {
	return it.PriceAtOrder.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total sums the line subtotals.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

type CustomerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// View is the read projection: an order with its customer resolved.
type View struct {
	Order
	Customer *CustomerSummary `json:"customer,omitempty"`
}

// Filter narrows a listing. Zero value lists everything.
type Filter struct {
	CustomerID      string
	ExcludeTerminal bool
}

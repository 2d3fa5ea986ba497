package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// NUMERIC in Postgres, decimal in memory, string on the wire
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	IsAvailable bool            `json:"isAvailable"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListResponse is the catalog as served to every caller.
// swagger:model
type ListResponse struct {
	Items []MenuItem `json:"items"`
}

// CreateItemRequest payload of creation.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	Name        string           `json:"name"        example:"Coffee"`
	Price       *decimal.Decimal `json:"price"       swaggertype:"string" example:"50"`
	Description string           `json:"description" example:"Hot brewed coffee"`
	ImageURL    string           `json:"imageUrl"`
}

// UpdateItemRequest payload of partial update; nil fields are left as is.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string"`
	ImageURL    *string          `json:"imageUrl"`
	IsAvailable *bool            `json:"isAvailable"`
}

// DefaultMenu is what cmd/seed loads into an empty catalog.
var DefaultMenu = []CreateItemRequest{
	{Name: "Coffee", Description: "Hot brewed coffee", Price: price(50)},
	{Name: "Tea", Description: "Masala chai", Price: price(30)},
	{Name: "Sandwich", Description: "Veg club sandwich", Price: price(80)},
	{Name: "Burger", Description: "Cheese burger with fries", Price: price(120)},
	{Name: "Pizza Slice", Description: "Margherita pizza slice", Price: price(60)},
	{Name: "Samosa", Description: "Crispy potato samosa", Price: price(20)},
	{Name: "Cold Drink", Description: "Chilled soft drink", Price: price(40)},
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

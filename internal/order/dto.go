package order

// CreateOrderItem payload of one line.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	MenuItemID string `json:"menuItemId" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity   int    `json:"quantity"   example:"2"`
}

// CreateOrderRequest payload of order creation. The customer comes from
// the session, never from the body.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
}

// AdvanceStatusRequest payload of a staff status change. Force skips the
// adjacency check for corrections.
// swagger:model AdvanceStatusRequest
type AdvanceStatusRequest struct {
	Status string `json:"status" example:"PaymentReceived"`
	Force  bool   `json:"force"`
}

// MaxQuantity caps a single line; order_items.quantity is an INT.
const MaxQuantity = 1000

// ScopeMine restricts a listing to the caller's own orders.
const ScopeMine = "mine"

package model

import (
	"resort/shared/model"
	"slices"
	"time"
)

const (
	TableName      = "material_orders"
	EntityName     = "material_order"
	ItemTableName  = "material_order_items"
	ItemEntityName = "material_order_item"

	FieldID               = "id"
	FieldSupplier         = "supplier"
	FieldOrderDate        = "order_date"
	FieldExpectedDelivery = "expected_delivery"
	FieldNotes            = "notes"
	FieldTotalAmount      = "total_amount"
	FieldStatus           = "status"
	FieldCreatedAt        = "created_at"

	FieldOrderID     = "order_id"
	FieldItemName    = "item_name"
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldUnitPrice   = "unit_price"
	FieldTotalPrice  = "total_price"

	StatusPending   = "pending"
	StatusOrdered   = "ordered"
	StatusReceived  = "received"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID               string     `db:"id"`
	Supplier         string     `db:"supplier"`
	OrderDate        time.Time  `db:"order_date"`
	ExpectedDelivery *time.Time `db:"expected_delivery"`
	Notes            string     `db:"notes"`
	TotalAmount      float64    `db:"total_amount"`
	Status           string     `db:"status"`
	model.Metadata
}

type Item struct {
	ID          string  `db:"id"`
	OrderID     string  `db:"order_id"`
	ItemName    string  `db:"item_name"`
	Description string  `db:"description"`
	Quantity    int     `db:"quantity"`
	UnitPrice   float64 `db:"unit_price"`
	TotalPrice  float64 `db:"total_price"`
}

// transitions lists where each status may move. Received and cancelled orders are closed.
var transitions = map[string][]string{
	StatusPending: {StatusOrdered, StatusReceived, StatusCancelled},
	StatusOrdered: {StatusReceived, StatusCancelled},
}

// CanTransition reports whether an order in status from may move to status to.
// Keeping the same status is always allowed.
func CanTransition(from, to string) bool {
	return from == to || slices.Contains(transitions[from], to)
}

// Total sums the line totals of items.
func Total(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}

	return total
}

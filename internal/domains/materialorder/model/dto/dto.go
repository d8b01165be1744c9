package dto

import (
	"fmt"
	"resort/internal/domains/materialorder/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	ItemName    string  `json:"item_name"   validate:"required,max=255"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Quantity    int     `json:"quantity"    validate:"required,gte=1"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"`
}

type CreateOrderRequest struct {
	Supplier         string              `json:"supplier"          validate:"required,max=255"`
	OrderDate        string              `json:"order_date"        validate:"required,date"`
	ExpectedDelivery string              `json:"expected_delivery" validate:"omitempty,date"`
	Notes            string              `json:"notes"             validate:"omitempty,max=1000"`
	Items            []CreateItemRequest `json:"items"             validate:"required,min=1,dive"`
}

// ToModel builds a pending order and its lines. Each line costs quantity times unit
// price and the order total is the sum of its lines.
func (c *CreateOrderRequest) ToModel(user string) (model.Order, []model.Item, error) {
	orderDate, err := time.Parse(constant.DateOnlyFormat, c.OrderDate)
	if err != nil {
		return model.Order{}, nil, fmt.Errorf("invalid order_date %q: %w", c.OrderDate, err)
	}

	var expected *time.Time

	if c.ExpectedDelivery != constant.Empty {
		parsed, err := time.Parse(constant.DateOnlyFormat, c.ExpectedDelivery)
		if err != nil {
			return model.Order{}, nil, fmt.Errorf("invalid expected_delivery %q: %w", c.ExpectedDelivery, err)
		}

		expected = &parsed
	}

	now := timezone.Now()
	order := model.Order{
		ID:               uuid.NewString(),
		Supplier:         c.Supplier,
		OrderDate:        orderDate,
		ExpectedDelivery: expected,
		Notes:            c.Notes,
		Status:           model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	items := make([]model.Item, len(c.Items))
	for i, item := range c.Items {
		items[i] = model.Item{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			ItemName:    item.ItemName,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  float64(item.Quantity) * item.UnitPrice,
		}
	}

	order.TotalAmount = model.Total(items)

	return order, items, nil
}

type UpdateOrderRequest struct {
	Supplier         string `db:"supplier"          json:"supplier"          validate:"omitempty,max=255"`
	ExpectedDelivery string `db:"expected_delivery" json:"expected_delivery" validate:"omitempty,date"`
	Notes            string `db:"notes"             json:"notes"             validate:"omitempty,max=1000"`
	Status           string `db:"status"            json:"status"            validate:"omitempty,oneof=pending ordered received cancelled"`
}

func (u UpdateOrderRequest) IsEmpty() bool {
	return u.Supplier == "" && u.ExpectedDelivery == "" && u.Notes == "" && u.Status == ""
}

type ItemResponse struct {
	ID          string  `json:"id"`
	ItemName    string  `json:"item_name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type OrderResponse struct {
	ID               string         `json:"id"`
	Supplier         string         `json:"supplier"`
	OrderDate        string         `json:"order_date"`
	ExpectedDelivery string         `json:"expected_delivery,omitempty"`
	Notes            string         `json:"notes"`
	TotalAmount      float64        `json:"total_amount"`
	Status           string         `json:"status"`
	Items            []ItemResponse `json:"items"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(order model.Order, items []model.Item) {
	r.ID = order.ID
	r.Supplier = order.Supplier
	r.OrderDate = order.OrderDate.Format(constant.DateOnlyFormat)
	r.Notes = order.Notes
	r.TotalAmount = order.TotalAmount
	r.Status = order.Status
	r.Metadata.FromModel(order.Metadata)

	if order.ExpectedDelivery != nil {
		r.ExpectedDelivery = order.ExpectedDelivery.Format(constant.DateOnlyFormat)
	}

	r.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Items[i] = ItemResponse{
			ID:          item.ID,
			ItemName:    item.ItemName,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

// FromModels pairs every order with its lines from items, which may hold lines of
// several orders in any order.
func (r *GetOrdersResponse) FromModels(orders []model.Order, items []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byOrder := make(map[string][]model.Item, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	r.Orders = make([]OrderResponse, len(orders))
	for i, order := range orders {
		r.Orders[i].FromModel(order, byOrder[order.ID])
	}
}

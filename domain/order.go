package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder = "order created successfully"
	MessageSuccessGetOrders   = "orders retrieved successfully"
	MessageSuccessGetOrder    = "order retrieved successfully"
	MessageSuccessUpdateOrder = "order updated successfully"
	MessageSuccessDeleteOrder = "order deleted successfully"

	MessageFailedCreateOrder = "failed to create order"
	MessageFailedGetOrders   = "failed to retrieve orders"
	MessageFailedGetOrder    = "failed to retrieve order"
	MessageFailedUpdateOrder = "failed to update order"
	MessageFailedDeleteOrder = "failed to delete order"

	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrOrderNotPending = errors.New("only pending orders can be modified")
)

type (
	OrderItemRequest struct {
		MenuItemID uint `json:"menu_item_id" validate:"required"`
		Quantity   int  `json:"quantity" validate:"required,min=1"`
	}

	CreateOrderRequest struct {
		SessionID uint               `json:"session_id" validate:"required"`
		Items     []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateOrderRequest struct {
		Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	OrderSummaryResponse struct {
		OrderID uint    `json:"order_id"`
		Total   float64 `json:"total"`
		Status  string  `json:"status"`
	}

	OrderItemResponse struct {
		MenuItemID uint    `json:"menu_item_id"`
		Name       string  `json:"name"`
		ImageURL   string  `json:"image_url,omitempty"`
		Quantity   int     `json:"quantity"`
		TotalPrice float64 `json:"total_price"`
	}

	OrderResponse struct {
		ID        uint                `json:"id"`
		SessionID uint                `json:"session_id"`
		Total     float64             `json:"total"`
		Status    string              `json:"status"`
		Items     []OrderItemResponse `json:"items"`
		CreatedAt time.Time           `json:"created_at"`
	}
)

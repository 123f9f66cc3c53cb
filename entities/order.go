package entities

import (
	"github.com/google/uuid"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uint      `json:"session_id"`
	UserID    uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Total     float64   `gorm:"type:decimal(12,2)" json:"total"`
	Status    string    `gorm:"type:varchar(16);default:pending" json:"status"` // pending, paid, failed

	Session    *Session    `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	User       *User       `gorm:"foreignKey:UserID" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	Timestamp
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint    `json:"order_id"`
	MenuItemID uint    `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `gorm:"type:decimal(12,2)" json:"total_price"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Timestamp
}

package order

import (
	"context"

	"tabletalk-backend/domain"
	"tabletalk-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id uint) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID uuid.UUID, sessionIDs []uint) ([]*entities.Order, error)
		ReplaceOrderItems(ctx context.Context, orderID uint, items []entities.OrderItem, total float64) error
		DeleteOrder(ctx context.Context, orderID uint) error
		MarkOrderStatus(ctx context.Context, orderID uint, status string) (bool, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order together with its items in a single
// transaction; GORM persists the OrderItems association with the parent row.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems.MenuItem").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID uuid.UUID, sessionIDs []uint) ([]*entities.Order, error) {
	var orders []*entities.Order

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(sessionIDs) > 0 {
		query = query.Where("session_id IN ?", sessionIDs)
	}

	if err := query.
		Preload("OrderItems.MenuItem").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ReplaceOrderItems swaps the full item set and updates the cached total. The
// order row is locked for the duration of the transaction and its status
// re-checked under the lock, so a webhook transition that lands between the
// caller's guard check and this write aborts the edit instead of interleaving.
func (r *orderRepository) ReplaceOrderItems(ctx context.Context, orderID uint, items []entities.OrderItem, total float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entities.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", orderID).
			First(&order).Error; err != nil {
			return err
		}

		if order.Status != entities.OrderStatusPending {
			return domain.ErrOrderNotPending
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = orderID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return tx.Model(&order).Update("total", total).Error
	})
}

// DeleteOrder removes the order and its items, guarded the same way as
// ReplaceOrderItems: a concurrently paid or failed order is never deleted.
func (r *orderRepository) DeleteOrder(ctx context.Context, orderID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entities.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", orderID).
			First(&order).Error; err != nil {
			return err
		}

		if order.Status != entities.OrderStatusPending {
			return domain.ErrOrderNotPending
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&order).Error
	})
}

// MarkOrderStatus applies a status transition with a single conditional
// UPDATE. Only pending orders transition; the returned bool reports whether a
// row was actually updated, so replayed or out-of-order notifications become
// no-ops instead of overwriting a terminal state.
func (r *orderRepository) MarkOrderStatus(ctx context.Context, orderID uint, status string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ? AND status = ?", orderID, entities.OrderStatusPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

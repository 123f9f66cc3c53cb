package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"tabletalk-backend/domain"
	"tabletalk-backend/entities"
	"tabletalk-backend/pkg/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockOrderRepository struct {
	orders     map[uint]*entities.Order
	nextID     uint
	replaceErr error
	deleteErr  error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: map[uint]*entities.Order{}, nextID: 1}
}

func (m *mockOrderRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	order.ID = m.nextID
	m.nextID++
	for i := range order.OrderItems {
		order.OrderItems[i].OrderID = order.ID
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepository) GetOrderByID(_ context.Context, id uint) (*entities.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (m *mockOrderRepository) GetOrdersByUser(_ context.Context, userID uuid.UUID, sessionIDs []uint) ([]*entities.Order, error) {
	var result []*entities.Order
	for _, order := range m.orders {
		if order.UserID != userID {
			continue
		}
		if len(sessionIDs) > 0 && !containsUint(sessionIDs, order.SessionID) {
			continue
		}
		result = append(result, order)
	}
	return result, nil
}

func (m *mockOrderRepository) ReplaceOrderItems(_ context.Context, orderID uint, items []entities.OrderItem, total float64) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	order, ok := m.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if order.Status != entities.OrderStatusPending {
		return domain.ErrOrderNotPending
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	order.OrderItems = items
	order.Total = total
	return nil
}

func (m *mockOrderRepository) DeleteOrder(_ context.Context, orderID uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	order, ok := m.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if order.Status != entities.OrderStatusPending {
		return domain.ErrOrderNotPending
	}
	delete(m.orders, orderID)
	return nil
}

func (m *mockOrderRepository) MarkOrderStatus(_ context.Context, orderID uint, status string) (bool, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return false, nil
	}
	if order.Status != entities.OrderStatusPending {
		return false, nil
	}
	order.Status = status
	return true, nil
}

func containsUint(values []uint, target uint) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

type mockSessionRepository struct {
	sessions map[uint]*entities.Session
}

func (m *mockSessionRepository) GetTableByQRCode(_ context.Context, _ string) (*entities.Table, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepository) GetTables(_ context.Context) ([]*entities.Table, error) {
	return nil, nil
}

func (m *mockSessionRepository) CreateSession(_ context.Context, _ *entities.Session) error {
	return nil
}

func (m *mockSessionRepository) GetSessionByID(_ context.Context, id uint) (*entities.Session, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (m *mockSessionRepository) GetSessionIDsByTable(_ context.Context, tableID uint) ([]uint, error) {
	var ids []uint
	for _, session := range m.sessions {
		if session.TableID == tableID {
			ids = append(ids, session.ID)
		}
	}
	return ids, nil
}

type mockMenuRepository struct {
	items map[uint]*entities.MenuItem
}

func (m *mockMenuRepository) GetMenuItemByID(_ context.Context, id uint) (*entities.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockMenuRepository) GetMenuItems(_ context.Context) ([]*entities.MenuItem, error) {
	return nil, nil
}

type orderServiceFixture struct {
	service  OrderService
	orders   *mockOrderRepository
	sessions *mockSessionRepository
	userID   uuid.UUID
}

func newOrderServiceFixture() *orderServiceFixture {
	orders := newMockOrderRepository()
	sessions := &mockSessionRepository{sessions: map[uint]*entities.Session{
		1: {ID: 1, TableID: 1, StartedAt: time.Now(), ExpiresAt: time.Now().Add(30 * time.Minute)},
		2: {ID: 2, TableID: 2, StartedAt: time.Now().Add(-time.Hour), ExpiresAt: time.Now().Add(-30 * time.Minute)},
	}}
	menuRepo := &mockMenuRepository{items: map[uint]*entities.MenuItem{
		1: {ID: 1, Name: "Nasi Goreng Spesial", Price: 25000},
		2: {ID: 2, Name: "Sate Ayam", Price: 30000},
	}}

	return &orderServiceFixture{
		service:  NewOrderService(orders, sessions, pricing.NewPricingService(menuRepo)),
		orders:   orders,
		sessions: sessions,
		userID:   uuid.New(),
	}
}

func (f *orderServiceFixture) createPendingOrder(t *testing.T) domain.OrderSummaryResponse {
	t.Helper()
	res, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		SessionID: 1,
		Items: []domain.OrderItemRequest{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	}, f.userID.String())
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	return res
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty item list", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.service.CreateOrder(ctx, domain.CreateOrderRequest{SessionID: 1}, f.userID.String())
		if !errors.Is(err, domain.ErrEmptyOrder) {
			t.Errorf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("rejects missing session", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.service.CreateOrder(ctx, domain.CreateOrderRequest{
			SessionID: 99,
			Items:     []domain.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		}, f.userID.String())
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("rejects expired session even with valid items", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.service.CreateOrder(ctx, domain.CreateOrderRequest{
			SessionID: 2,
			Items:     []domain.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		}, f.userID.String())
		if !errors.Is(err, domain.ErrSessionExpired) {
			t.Errorf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("creates pending order with computed total", func(t *testing.T) {
		f := newOrderServiceFixture()

		res := f.createPendingOrder(t)
		if res.Total != 80000 {
			t.Errorf("expected total 80000, got %v", res.Total)
		}
		if res.Status != entities.OrderStatusPending {
			t.Errorf("expected status pending, got %q", res.Status)
		}

		stored := f.orders.orders[res.OrderID]
		if stored == nil {
			t.Fatal("order was not persisted")
		}
		if len(stored.OrderItems) != 2 {
			t.Errorf("expected 2 order items, got %d", len(stored.OrderItems))
		}
	})

	t.Run("propagates missing menu item as not found", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.service.CreateOrder(ctx, domain.CreateOrderRequest{
			SessionID: 1,
			Items:     []domain.OrderItemRequest{{MenuItemID: 42, Quantity: 1}},
		}, f.userID.String())
		if !errors.Is(err, domain.ErrMenuItemNotFound) {
			t.Errorf("expected ErrMenuItemNotFound, got %v", err)
		}
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces items and recomputes total", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)

		res, err := f.service.UpdateOrder(ctx, created.OrderID, domain.UpdateOrderRequest{
			Items: []domain.OrderItemRequest{{MenuItemID: 2, Quantity: 2}},
		}, f.userID.String())
		if err != nil {
			t.Fatalf("UpdateOrder failed: %v", err)
		}
		if res.Total != 60000 {
			t.Errorf("expected total 60000, got %v", res.Total)
		}

		stored := f.orders.orders[created.OrderID]
		if len(stored.OrderItems) != 1 {
			t.Errorf("expected item set replaced, got %d items", len(stored.OrderItems))
		}
	})

	t.Run("rejects update once order is paid", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)
		f.orders.orders[created.OrderID].Status = entities.OrderStatusPaid

		_, err := f.service.UpdateOrder(ctx, created.OrderID, domain.UpdateOrderRequest{
			Items: []domain.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		}, f.userID.String())
		if !errors.Is(err, domain.ErrOrderNotPending) {
			t.Errorf("expected ErrOrderNotPending, got %v", err)
		}
	})

	t.Run("rejects update once order has failed", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)
		f.orders.orders[created.OrderID].Status = entities.OrderStatusFailed

		_, err := f.service.UpdateOrder(ctx, created.OrderID, domain.UpdateOrderRequest{
			Items: []domain.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		}, f.userID.String())
		if !errors.Is(err, domain.ErrOrderNotPending) {
			t.Errorf("expected ErrOrderNotPending, got %v", err)
		}
	})

	t.Run("surfaces a concurrent status transition from the conditional write", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)
		// webhook lands between the service guard and the commit
		f.orders.replaceErr = domain.ErrOrderNotPending

		_, err := f.service.UpdateOrder(ctx, created.OrderID, domain.UpdateOrderRequest{
			Items: []domain.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		}, f.userID.String())
		if !errors.Is(err, domain.ErrOrderNotPending) {
			t.Errorf("expected ErrOrderNotPending, got %v", err)
		}
	})

	t.Run("treats another user's order as absent", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)

		_, err := f.service.UpdateOrder(ctx, created.OrderID, domain.UpdateOrderRequest{
			Items: []domain.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		}, uuid.NewString())
		if !errors.Is(err, domain.ErrOrderNotFound) {
			t.Errorf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a pending order", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)

		if err := f.service.DeleteOrder(ctx, created.OrderID, f.userID.String()); err != nil {
			t.Fatalf("DeleteOrder failed: %v", err)
		}
		if _, ok := f.orders.orders[created.OrderID]; ok {
			t.Error("order still present after delete")
		}
	})

	t.Run("never deletes a paid order", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)
		f.orders.orders[created.OrderID].Status = entities.OrderStatusPaid

		err := f.service.DeleteOrder(ctx, created.OrderID, f.userID.String())
		if !errors.Is(err, domain.ErrOrderNotPending) {
			t.Errorf("expected ErrOrderNotPending, got %v", err)
		}
		if _, ok := f.orders.orders[created.OrderID]; !ok {
			t.Error("paid order was deleted")
		}
	})

	t.Run("aborts when the order is paid concurrently", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)
		f.orders.deleteErr = domain.ErrOrderNotPending

		err := f.service.DeleteOrder(ctx, created.OrderID, f.userID.String())
		if !errors.Is(err, domain.ErrOrderNotPending) {
			t.Errorf("expected ErrOrderNotPending, got %v", err)
		}
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the caller's order with items", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)

		res, err := f.service.GetOrder(ctx, created.OrderID, f.userID.String())
		if err != nil {
			t.Fatalf("GetOrder failed: %v", err)
		}
		if res.Total != created.Total {
			t.Errorf("expected total %v, got %v", created.Total, res.Total)
		}
		if len(res.Items) != 2 {
			t.Errorf("expected 2 items, got %d", len(res.Items))
		}
	})

	t.Run("hides orders owned by someone else", func(t *testing.T) {
		f := newOrderServiceFixture()
		created := f.createPendingOrder(t)

		_, err := f.service.GetOrder(ctx, created.OrderID, uuid.NewString())
		if !errors.Is(err, domain.ErrOrderNotFound) {
			t.Errorf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the caller's orders", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.createPendingOrder(t)

		other := uuid.New()
		f.orders.orders[42] = &entities.Order{ID: 42, SessionID: 1, UserID: other, Status: entities.OrderStatusPending}

		res, err := f.service.ListOrders(ctx, f.userID.String(), 0, 0)
		if err != nil {
			t.Fatalf("ListOrders failed: %v", err)
		}
		if len(res) != 1 {
			t.Errorf("expected 1 order, got %d", len(res))
		}
	})

	t.Run("filters by session", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.createPendingOrder(t)

		res, err := f.service.ListOrders(ctx, f.userID.String(), 99, 0)
		if err != nil {
			t.Fatalf("ListOrders failed: %v", err)
		}
		if len(res) != 0 {
			t.Errorf("expected no orders for session 99, got %d", len(res))
		}
	})

	t.Run("resolves a table filter through its sessions", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.createPendingOrder(t)

		res, err := f.service.ListOrders(ctx, f.userID.String(), 0, 1)
		if err != nil {
			t.Fatalf("ListOrders failed: %v", err)
		}
		if len(res) != 1 {
			t.Errorf("expected 1 order for table 1, got %d", len(res))
		}
	})
}

package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tabletalk-backend/domain"
	"tabletalk-backend/entities"
	"tabletalk-backend/pkg/pricing"
	"tabletalk-backend/pkg/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderSummaryResponse, error)
		ListOrders(ctx context.Context, userID string, sessionID, tableID uint) ([]domain.OrderResponse, error)
		GetOrder(ctx context.Context, orderID uint, userID string) (domain.OrderResponse, error)
		UpdateOrder(ctx context.Context, orderID uint, req domain.UpdateOrderRequest, userID string) (domain.OrderSummaryResponse, error)
		DeleteOrder(ctx context.Context, orderID uint, userID string) error
	}

	orderService struct {
		orderRepository   OrderRepository
		sessionRepository session.SessionRepository
		pricingService    pricing.PricingService
	}
)

func NewOrderService(orderRepository OrderRepository, sessionRepository session.SessionRepository, pricingService pricing.PricingService) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		sessionRepository: sessionRepository,
		pricingService:    pricingService,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderSummaryResponse, error) {
	if len(req.Items) == 0 {
		return domain.OrderSummaryResponse{}, domain.ErrEmptyOrder
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderSummaryResponse{}, domain.ErrParseUUID
	}

	sess, err := s.sessionRepository.GetSessionByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderSummaryResponse{}, domain.ErrSessionNotFound
		}
		return domain.OrderSummaryResponse{}, err
	}

	// Expiry is evaluated lazily here, there is no background sweep.
	if !time.Now().Before(sess.ExpiresAt) {
		return domain.OrderSummaryResponse{}, domain.ErrSessionExpired
	}

	priced, err := s.pricingService.Price(ctx, req.Items)
	if err != nil {
		return domain.OrderSummaryResponse{}, err
	}

	order := &entities.Order{
		SessionID:  sess.ID,
		UserID:     userUUID,
		Total:      priced.Total,
		Status:     entities.OrderStatusPending,
		OrderItems: buildOrderItems(priced.LineItems),
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderSummaryResponse{}, err
	}

	return domain.OrderSummaryResponse{
		OrderID: order.ID,
		Total:   order.Total,
		Status:  order.Status,
	}, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string, sessionID, tableID uint) ([]domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var sessionIDs []uint
	switch {
	case sessionID != 0:
		sessionIDs = []uint{sessionID}
	case tableID != 0:
		sessionIDs, err = s.sessionRepository.GetSessionIDsByTable(ctx, tableID)
		if err != nil {
			return nil, err
		}
		if len(sessionIDs) == 0 {
			return []domain.OrderResponse{}, nil
		}
	}

	orders, err := s.orderRepository.GetOrdersByUser(ctx, userUUID, sessionIDs)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, buildOrderResponse(order))
	}
	return result, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID uint, userID string) (domain.OrderResponse, error) {
	order, err := s.getOwnedOrder(ctx, orderID, userID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	return buildOrderResponse(order), nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID uint, req domain.UpdateOrderRequest, userID string) (domain.OrderSummaryResponse, error) {
	if len(req.Items) == 0 {
		return domain.OrderSummaryResponse{}, domain.ErrEmptyOrder
	}

	order, err := s.getOwnedOrder(ctx, orderID, userID)
	if err != nil {
		return domain.OrderSummaryResponse{}, err
	}

	if order.Status != entities.OrderStatusPending {
		return domain.OrderSummaryResponse{}, fmt.Errorf("%w: cannot edit order with status: %s", domain.ErrOrderNotPending, order.Status)
	}

	priced, err := s.pricingService.Price(ctx, req.Items)
	if err != nil {
		return domain.OrderSummaryResponse{}, err
	}

	// The repository re-checks the status under a row lock; a payment
	// notification landing between the guard above and the commit makes
	// this fail instead of resurrecting items on a paid order.
	if err := s.orderRepository.ReplaceOrderItems(ctx, order.ID, buildOrderItems(priced.LineItems), priced.Total); err != nil {
		return domain.OrderSummaryResponse{}, err
	}

	return domain.OrderSummaryResponse{
		OrderID: order.ID,
		Total:   priced.Total,
		Status:  entities.OrderStatusPending,
	}, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID uint, userID string) error {
	order, err := s.getOwnedOrder(ctx, orderID, userID)
	if err != nil {
		return err
	}

	if order.Status != entities.OrderStatusPending {
		return fmt.Errorf("%w: cannot delete order with status: %s", domain.ErrOrderNotPending, order.Status)
	}

	return s.orderRepository.DeleteOrder(ctx, order.ID)
}

// getOwnedOrder resolves an order for the calling user; orders owned by
// someone else are indistinguishable from absent ones.
func (s *orderService) getOwnedOrder(ctx context.Context, orderID uint, userID string) (*entities.Order, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID.String() != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func buildOrderItems(lineItems []domain.PricedItem) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(lineItems))
	for _, line := range lineItems {
		items = append(items, entities.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
		})
	}
	return items
}

func buildOrderResponse(order *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		res := domain.OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		}
		if item.MenuItem != nil {
			res.Name = item.MenuItem.Name
			res.ImageURL = item.MenuItem.ImageURL
		}
		items = append(items, res)
	}

	return domain.OrderResponse{
		ID:        order.ID,
		SessionID: order.SessionID,
		Total:     order.Total,
		Status:    order.Status,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

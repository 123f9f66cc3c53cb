package pricing

import (
	"context"
	"errors"
	"fmt"

	"tabletalk-backend/domain"
	"tabletalk-backend/pkg/menu"

	"gorm.io/gorm"
)

type (
	// PricingService resolves current menu prices for a set of requested items
	// and computes line totals and an order total. It has no side effects;
	// prices are snapshots taken at invocation time.
	PricingService interface {
		Price(ctx context.Context, items []domain.OrderItemRequest) (domain.PricingResult, error)
	}

	pricingService struct {
		menuRepository menu.MenuRepository
	}
)

func NewPricingService(menuRepository menu.MenuRepository) PricingService {
	return &pricingService{menuRepository: menuRepository}
}

func (s *pricingService) Price(ctx context.Context, items []domain.OrderItemRequest) (domain.PricingResult, error) {
	result := domain.PricingResult{
		LineItems: make([]domain.PricedItem, 0, len(items)),
	}

	for _, item := range items {
		if item.Quantity < 1 {
			return domain.PricingResult{}, domain.ErrInvalidQuantity
		}

		menuItem, err := s.menuRepository.GetMenuItemByID(ctx, item.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.PricingResult{}, fmt.Errorf("menu item %d: %w", item.MenuItemID, domain.ErrMenuItemNotFound)
			}
			return domain.PricingResult{}, err
		}

		totalPrice := menuItem.Price * float64(item.Quantity)
		result.LineItems = append(result.LineItems, domain.PricedItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			TotalPrice: totalPrice,
		})
		result.Total += totalPrice
	}

	return result, nil
}

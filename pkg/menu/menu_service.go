package menu

import (
	"context"

	"tabletalk-backend/domain"
)

type (
	MenuService interface {
		GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
	}
)

func NewMenuService(menuRepository MenuRepository) MenuService {
	return &menuService{menuRepository: menuRepository}
}

func (s *menuService) GetMenuItems(ctx context.Context) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, domain.MenuItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		})
	}
	return result, nil
}

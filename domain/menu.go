package domain

import (
	"errors"
)

var (
	MessageSuccessGetMenuItems = "menu items retrieved successfully"

	MessageFailedGetMenuItems = "failed to retrieve menu items"

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

type (
	MenuItemResponse struct {
		ID       uint    `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		ImageURL string  `json:"image_url,omitempty"`
	}
)

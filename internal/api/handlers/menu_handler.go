package handlers

import (
	"tabletalk-backend/domain"
	"tabletalk-backend/internal/api/presenters"
	"tabletalk-backend/pkg/menu"

	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenuItems(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
	}
)

func NewMenuHandler(menuService menu.MenuService) MenuHandler {
	return &menuHandler{menuService: menuService}
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	res, err := h.menuService.GetMenuItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

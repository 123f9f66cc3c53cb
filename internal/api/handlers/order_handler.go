package handlers

import (
	"strconv"

	"tabletalk-backend/domain"
	"tabletalk-backend/internal/api/presenters"
	"tabletalk-backend/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		ListOrders(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		UpdateOrder(c *fiber.Ctx) error
		DeleteOrder(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.CreateOrder(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) ListOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	sessionID := queryUint(c, "session_id")
	tableID := queryUint(c, "table_id")

	res, err := h.orderService.ListOrders(c.Context(), userID, sessionID, tableID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orderID, ok := paramOrderID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrder, domain.ErrOrderNotFound)
	}

	res, err := h.orderService.GetOrder(c.Context(), orderID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *orderHandler) UpdateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orderID, ok := paramOrderID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateOrder, domain.ErrOrderNotFound)
	}

	req := new(domain.UpdateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	res, err := h.orderService.UpdateOrder(c.Context(), orderID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOrder)
}

func (h *orderHandler) DeleteOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orderID, ok := paramOrderID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteOrder, domain.ErrOrderNotFound)
	}

	if err := h.orderService.DeleteOrder(c.Context(), orderID, userID); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteOrder, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"order_id": orderID}, fiber.StatusOK, domain.MessageSuccessDeleteOrder)
}

func paramOrderID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *fiber.Ctx, key string) uint {
	value, err := strconv.Atoi(c.Query(key, "0"))
	if err != nil || value < 0 {
		return 0
	}
	return uint(value)
}

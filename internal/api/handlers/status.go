package handlers

import (
	"errors"

	"tabletalk-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusCode maps service-level sentinel errors to HTTP statuses. Anything
// unmapped is a storage or gateway failure and surfaces as a 500.
func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrSessionExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrOrderNotPending),
		errors.Is(err, domain.ErrOrderNotPayable),
		errors.Is(err, domain.ErrInvalidOrderReference),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

package domain

import (
	"errors"
)

var (
	MessageSuccessCreateTransaction   = "payment transaction created successfully"
	MessageSuccessProcessNotification = "notification processed successfully"

	MessageFailedCreateTransaction   = "failed to create payment transaction"
	MessageFailedProcessNotification = "failed to process notification"

	ErrOrderNotPayable       = errors.New("order is already paid or failed")
	ErrInvalidOrderReference = errors.New("invalid order reference")
	ErrPaymentGatewayFailed  = errors.New("payment gateway request failed")
)

type (
	CreateTransactionRequest struct {
		OrderID uint `json:"order_id" validate:"required"`
	}

	CreateTransactionResponse struct {
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	PaymentNotificationRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
	}
)

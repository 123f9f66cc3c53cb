package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateSession = "session created successfully"
	MessageSuccessGetSession    = "session retrieved successfully"
	MessageSuccessGetTables     = "tables retrieved successfully"

	MessageFailedCreateSession = "failed to create session"
	MessageFailedGetSession    = "failed to retrieve session"
	MessageFailedGetTables     = "failed to retrieve tables"

	ErrTableNotFound   = errors.New("table not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired, please scan your table QR code again")
)

type (
	CreateSessionRequest struct {
		QRCode string `json:"qr_code" validate:"required"`
	}

	SessionResponse struct {
		ID        uint      `json:"id"`
		TableID   uint      `json:"table_id"`
		TableName string    `json:"table_name,omitempty"`
		StartedAt time.Time `json:"started_at"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	TableResponse struct {
		ID     uint   `json:"id"`
		Name   string `json:"name"`
		QRCode string `json:"qr_code"`
	}
)

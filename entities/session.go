package entities

import (
	"time"
)

type Session struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TableID   uint      `json:"table_id"`
	StartedAt time.Time `json:"started_at"`
	ExpiresAt time.Time `json:"expires_at"`

	Table *Table `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Timestamp
}

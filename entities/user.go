package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GoogleID string    `gorm:"uniqueIndex" json:"google_id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`

	Timestamp
}

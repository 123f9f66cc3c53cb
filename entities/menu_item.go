package entities

type MenuItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `json:"name"`
	Price    float64 `gorm:"type:decimal(12,2)" json:"price"`
	ImageURL string  `json:"image_url,omitempty"`

	Timestamp
}

package entities

type Table struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `json:"name"`
	QRCode string `gorm:"column:qr_code;uniqueIndex" json:"qr_code"`

	Timestamp
}

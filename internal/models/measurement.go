package models

import (
	"time"
)

// Measurement represents one weight/height observation for a user
type Measurement struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Weight     float64   `gorm:"not null" json:"weight"` // kilograms
	Height     float64   `gorm:"not null" json:"height"` // centimeters
	MeasuredAt time.Time `json:"measured_at"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Measurement model
func (Measurement) TableName() string {
	return "measurements"
}

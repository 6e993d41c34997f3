package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID string `gorm:"size:36;index" json:"request_id"`
	Action    string `gorm:"size:50;not null" json:"action"`
	Entity    string `gorm:"size:50" json:"entity"`

	BookingStart *time.Time `gorm:"type:timestamp" json:"booking_start"`
	Email        string     `gorm:"size:255" json:"email"`
	Metadata     string     `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

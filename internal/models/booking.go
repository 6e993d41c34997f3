package models

import "time"

// Booking is the postgres row for one reservation. StartTime and EndTime
// hold naive wall-clock values in the owner's time zone.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time `gorm:"type:timestamp;not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"type:timestamp;not null" json:"end_time"`

	Title string `gorm:"size:255;not null" json:"title"`
	Email string `gorm:"size:255;not null" json:"email"`
	Phone string `gorm:"size:50" json:"phone"`
	Notes string `gorm:"type:text;not null" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

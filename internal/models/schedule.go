package models

import "time"

type ScheduleStatus string

const (
	ScheduleAvailable    ScheduleStatus = "AVAILABLE"
	ScheduleNotAvailable ScheduleStatus = "NOT_AVAILABLE"
)

// Schedule is one calendar day of the campsite. A day is either AVAILABLE
// or claimed by exactly one active reservation (BookingID set).
type Schedule struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ScheduleDate time.Time      `gorm:"type:date;uniqueIndex;not null" json:"schedule_date"`
	Status       ScheduleStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	BookingID    string         `gorm:"size:32;index" json:"booking_id,omitempty"`
	Version      int64          `gorm:"not null;default:0" json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

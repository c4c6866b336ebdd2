package models

import "time"

type ReservationStatus string

const (
	StatusReserved ReservationStatus = "RESERVED"
	StatusCanceled ReservationStatus = "CANCELED"
)

type Reservation struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	BookingID    string            `gorm:"uniqueIndex;size:32;not null" json:"booking_id"`
	FirstName    string            `gorm:"not null" json:"first_name"`
	LastName     string            `gorm:"not null" json:"last_name"`
	Email        string            `gorm:"not null" json:"email"`
	CheckInDate  time.Time         `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate time.Time         `gorm:"type:date;not null" json:"check_out_date"`
	Status       ReservationStatus `gorm:"type:varchar(20);not null;default:'RESERVED'" json:"status"`
	Revision     int64             `gorm:"not null;default:1" json:"revision"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Nights returns the claimed nights [CheckInDate, CheckOutDate), check-out
// day itself is not occupied.
func (r *Reservation) Nights() []time.Time {
	var nights []time.Time
	for d := r.CheckInDate; d.Before(r.CheckOutDate); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

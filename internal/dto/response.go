package dto

import (
	"time"

	"github.com/campsitehq/campsite-service/internal/models"
)

// Rejected operations echo the original request back beside the error list
// so callers can correlate failure to input without re-sending it.

type ReservationResponse struct {
	BookingID string              `json:"booking_id,omitempty"`
	Request   *ReservationRequest `json:"request,omitempty"`
	Errors    []string            `json:"errors,omitempty"`
}

type CancellationResponse struct {
	Request        *CancellationRequest `json:"request,omitempty"`
	CancelledDates []string             `json:"cancelled_dates,omitempty"`
	FirstName      string               `json:"first_name,omitempty"`
	LastName       string               `json:"last_name,omitempty"`
	Email          string               `json:"email,omitempty"`
	CheckInDate    string               `json:"check_in_date,omitempty"`
	CheckOutDate   string               `json:"check_out_date,omitempty"`
	Errors         []string             `json:"errors,omitempty"`
}

type ModificationResponse struct {
	Request      *ModificationRequest  `json:"request,omitempty"`
	Cancellation *CancellationResponse `json:"cancellation,omitempty"`
	Reservation  *ReservationResponse  `json:"reservation,omitempty"`
	Errors       []string              `json:"errors,omitempty"`
}

type SchedulesResponse struct {
	Request        *SchedulesRequest `json:"request,omitempty"`
	AvailableDates []string          `json:"available_dates"`
}

type InitializeResponse struct {
	Request *InitializeRequest `json:"request,omitempty"`
	Errors  []string           `json:"errors,omitempty"`
}

type ReservationDetail struct {
	BookingID    string                   `json:"booking_id"`
	FirstName    string                   `json:"first_name"`
	LastName     string                   `json:"last_name"`
	Email        string                   `json:"email"`
	CheckInDate  string                   `json:"check_in_date"`
	CheckOutDate string                   `json:"check_out_date"`
	Status       models.ReservationStatus `json:"status"`
	Revision     int64                    `json:"revision"`
	CreatedAt    time.Time                `json:"created_at"`
}

type ScheduleDetail struct {
	ScheduleDate string                `json:"schedule_date"`
	Status       models.ScheduleStatus `json:"status"`
	BookingID    string                `json:"booking_id,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationDetail(r *models.Reservation) ReservationDetail {
	return ReservationDetail{
		BookingID:    r.BookingID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		CheckInDate:  FormatDate(r.CheckInDate),
		CheckOutDate: FormatDate(r.CheckOutDate),
		Status:       r.Status,
		Revision:     r.Revision,
		CreatedAt:    r.CreatedAt,
	}
}

func ToScheduleDetail(s *models.Schedule) ScheduleDetail {
	return ScheduleDetail{
		ScheduleDate: FormatDate(s.ScheduleDate),
		Status:       s.Status,
		BookingID:    s.BookingID,
	}
}

package dto

import "time"

// Dates travel as YYYY-MM-DD strings; parsing happens at the edge so the
// service only ever sees time.Time values.

type InitializeRequest struct {
	AvailableStartDate string `json:"available_start_date"`
	AvailableEndDate   string `json:"available_end_date"`
}

type SchedulesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ReservationRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

type CancellationRequest struct {
	BookingID string `json:"booking_id"`
}

type ModificationRequest struct {
	BookingID    string `json:"booking_id"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email,omitempty"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
}

// ParseDate parses a YYYY-MM-DD wire date. The empty string parses to the
// zero time so optional fields can flow through unchanged.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func FormatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = FormatDate(d)
	}
	return out
}

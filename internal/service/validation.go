package service

import (
	"fmt"
	"time"
)

// validateMaxDays reports whether end falls within maxDays days after start.
func validateMaxDays(start, end time.Time, maxDays int) bool {
	return !end.After(start.AddDate(0, 0, maxDays))
}

// validateMinDays reports whether end is at least minDays days after start.
func validateMinDays(start, end time.Time, minDays int) bool {
	return !end.Before(start.AddDate(0, 0, minDays))
}

// validateReservationRequest collects every violated rule. Date-window rules
// are skipped when either date is missing, reported as a single error.
func (s *campsiteService) validateReservationRequest(req ReservationRequest) []string {
	var errs []string

	if req.FirstName == "" {
		errs = append(errs, "First name is required")
	}
	if req.LastName == "" {
		errs = append(errs, "Last name is required")
	}
	if req.Email == "" {
		errs = append(errs, "Email is required")
	}

	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		errs = append(errs, "Check-in and check-out dates are required")
		return errs
	}

	today := truncateToDay(s.now())
	checkIn := truncateToDay(req.CheckInDate)
	checkOut := truncateToDay(req.CheckOutDate)

	if !validateMaxDays(checkIn, checkOut, s.cfg.MaxStayDays) {
		errs = append(errs, fmt.Sprintf("Cannot reserve more than %d days", s.cfg.MaxStayDays))
	}
	if !validateMaxDays(today, checkIn, s.cfg.MaxDaysAdvance) {
		errs = append(errs, fmt.Sprintf("Cannot reserve more than %d days in advance", s.cfg.MaxDaysAdvance))
	}
	if !validateMinDays(today, checkIn, s.cfg.MinDaysAdvance) {
		errs = append(errs, fmt.Sprintf("Need to reserve at least %d day in advance", s.cfg.MinDaysAdvance))
	}
	if !validateMinDays(checkIn, checkOut, 1) {
		errs = append(errs, "Need to reserve at least 1 day")
	}

	return errs
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

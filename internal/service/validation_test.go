package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedToday() time.Time {
	return time.Date(2024, 7, 1, 10, 30, 0, 0, time.UTC)
}

func newTestService(cfg Config) *campsiteService {
	return &campsiteService{cfg: cfg, now: fixedToday}
}

func defaultTestConfig() Config {
	return Config{
		MinDaysAdvance:  1,
		MaxDaysAdvance:  30,
		MaxStayDays:     3,
		BookingIDLength: 8,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() ReservationRequest {
	return ReservationRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		CheckInDate:  day(2024, 7, 10),
		CheckOutDate: day(2024, 7, 13),
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	s := newTestService(defaultTestConfig())

	errs := s.validateReservationRequest(validRequest())

	assert.Empty(t, errs)
}

func TestValidateRequest_MissingGuestFields(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.FirstName = ""
	req.LastName = ""
	req.Email = ""

	errs := s.validateReservationRequest(req)

	assert.Equal(t, []string{
		"First name is required",
		"Last name is required",
		"Email is required",
	}, errs)
}

func TestValidateRequest_MissingDatesShortCircuit(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.CheckInDate = time.Time{}

	errs := s.validateReservationRequest(req)

	// one error for the missing dates, none of the window rules fire
	assert.Equal(t, []string{"Check-in and check-out dates are required"}, errs)
}

func TestValidateRequest_MaxStayExceeded(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.CheckInDate = day(2024, 7, 10)
	req.CheckOutDate = day(2024, 7, 14) // 4 nights, max is 3

	errs := s.validateReservationRequest(req)

	assert.Contains(t, errs, "Cannot reserve more than 3 days")
}

func TestValidateRequest_MinAdvanceViolated(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.CheckInDate = day(2024, 7, 1) // today, min advance is 1
	req.CheckOutDate = day(2024, 7, 2)

	errs := s.validateReservationRequest(req)

	assert.Contains(t, errs, "Need to reserve at least 1 day in advance")
}

func TestValidateRequest_MaxAdvanceViolated(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.CheckInDate = day(2024, 8, 15) // 45 days out, max is 30
	req.CheckOutDate = day(2024, 8, 16)

	errs := s.validateReservationRequest(req)

	assert.Contains(t, errs, "Cannot reserve more than 30 days in advance")
}

func TestValidateRequest_MinStayViolated(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.CheckInDate = day(2024, 7, 10)
	req.CheckOutDate = day(2024, 7, 10) // zero nights

	errs := s.validateReservationRequest(req)

	assert.Contains(t, errs, "Need to reserve at least 1 day")
}

func TestValidateRequest_CollectsAllViolations(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := ReservationRequest{
		CheckInDate:  day(2024, 9, 1),  // beyond max advance
		CheckOutDate: day(2024, 8, 20), // before check-in
	}

	errs := s.validateReservationRequest(req)

	// every broken rule reported, not just the first
	assert.Contains(t, errs, "First name is required")
	assert.Contains(t, errs, "Last name is required")
	assert.Contains(t, errs, "Email is required")
	assert.Contains(t, errs, "Cannot reserve more than 30 days in advance")
	assert.Contains(t, errs, "Need to reserve at least 1 day")
}

func TestValidateRequest_BoundaryStayLength(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.CheckInDate = day(2024, 7, 10)
	req.CheckOutDate = day(2024, 7, 13) // exactly 3 nights

	errs := s.validateReservationRequest(req)

	assert.Empty(t, errs)
}

func TestValidateRequest_BoundaryMaxAdvance(t *testing.T) {
	s := newTestService(defaultTestConfig())

	req := validRequest()
	req.CheckInDate = day(2024, 7, 31) // exactly 30 days out
	req.CheckOutDate = day(2024, 8, 1)

	errs := s.validateReservationRequest(req)

	assert.Empty(t, errs)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campsitehq/campsite-service/internal/models"
	"github.com/campsitehq/campsite-service/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// maxIDAttempts bounds retries when a freshly generated booking id collides
// with an existing one.
const maxIDAttempts = 3

const (
	pgLockNotAvailable = "55P03"
	pgUniqueViolation  = "23505"
)

// Config holds the booking policy knobs, passed in explicitly rather than
// read from ambient state.
type Config struct {
	MinDaysAdvance  int
	MaxDaysAdvance  int
	MaxStayDays     int
	BookingIDLength int
	LockTimeout     time.Duration
}

type IDGenerator interface {
	Generate(length int) string
}

type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type ReservationRequest struct {
	FirstName    string
	LastName     string
	Email        string
	CheckInDate  time.Time
	CheckOutDate time.Time
}

// ModificationRequest carries the fields to change; zero values keep the
// original reservation's values.
type ModificationRequest struct {
	FirstName    string
	LastName     string
	Email        string
	CheckInDate  time.Time
	CheckOutDate time.Time
}

type CancellationResult struct {
	Reservation    *models.Reservation
	CancelledDates []time.Time
}

type ModificationResult struct {
	Cancellation *CancellationResult
	Reservation  *models.Reservation
}

type CampsiteService interface {
	Initialize(ctx context.Context, start, end time.Time) error
	Available(ctx context.Context, start, end time.Time) ([]time.Time, error)
	Reserve(ctx context.Context, req ReservationRequest) (*models.Reservation, error)
	Cancel(ctx context.Context, bookingID string) (*CancellationResult, error)
	Modify(ctx context.Context, bookingID string, req ModificationRequest) (*ModificationResult, error)
	GetReservation(ctx context.Context, bookingID string) (*models.Reservation, error)
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
}

type campsiteService struct {
	scheduleRepo    repository.ScheduleRepository
	reservationRepo repository.ReservationRepository
	idgen           IDGenerator
	publisher       EventPublisher
	cfg             Config
	now             func() time.Time
}

func NewCampsiteService(
	scheduleRepo repository.ScheduleRepository,
	reservationRepo repository.ReservationRepository,
	gen IDGenerator,
	publisher EventPublisher,
	cfg Config,
) CampsiteService {
	return &campsiteService{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		idgen:           gen,
		publisher:       publisher,
		cfg:             cfg,
		now:             time.Now,
	}
}

func (s *campsiteService) Initialize(ctx context.Context, start, end time.Time) error {
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return s.scheduleRepo.InitRange(ctx, truncateToDay(start), truncateToDay(end))
}

func (s *campsiteService) Available(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	schedules, err := s.scheduleRepo.FindAvailableBetween(ctx, truncateToDay(start), truncateToDay(end))
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(schedules))
	for i, schedule := range schedules {
		dates[i] = schedule.ScheduleDate
	}
	return dates, nil
}

func (s *campsiteService) Reserve(ctx context.Context, req ReservationRequest) (*models.Reservation, error) {
	if errs := s.validateReservationRequest(req); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	checkIn := truncateToDay(req.CheckInDate)
	checkOut := truncateToDay(req.CheckOutDate)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		bookingID := s.idgen.Generate(s.cfg.BookingIDLength)
		reservation, err := s.reserveAs(ctx, req, checkIn, checkOut, bookingID)
		if err != nil {
			if isUniqueViolation(err) {
				continue // generator collision, roll a new code
			}
			return nil, err
		}
		s.publish("booking.reserved", reservation)
		return reservation, nil
	}
	return nil, ErrBookingIDExhausted
}

// reserveAs claims every night in [checkIn, checkOut) and writes the ledger
// row, all inside a single transaction. Night rows are locked FOR UPDATE in
// ascending date order so two overlapping requests always meet on the first
// shared night instead of deadlocking. Any conflict rolls the whole claim
// back.
func (s *campsiteService) reserveAs(ctx context.Context, req ReservationRequest, checkIn, checkOut time.Time, bookingID string) (*models.Reservation, error) {
	var reservation *models.Reservation

	err := s.scheduleRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.applyLockTimeout(tx); err != nil {
			return err
		}

		var conflicts []DateConflict
		var claimed []*models.Schedule
		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			slot, err := s.scheduleRepo.FindByDateForUpdate(ctx, tx, d)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				conflicts = append(conflicts, DateConflict{Date: d})
				continue
			}
			if err != nil {
				return err
			}
			if slot.Status != models.ScheduleAvailable {
				conflicts = append(conflicts, DateConflict{Date: d, BookingID: slot.BookingID})
				continue
			}
			claimed = append(claimed, slot)
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		for _, slot := range claimed {
			slot.Status = models.ScheduleNotAvailable
			slot.BookingID = bookingID
			slot.Version++
			if err := s.scheduleRepo.Save(ctx, tx, slot); err != nil {
				return err
			}
		}

		reservation = &models.Reservation{
			BookingID:    bookingID,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Status:       models.StatusReserved,
			Revision:     1,
		}
		return s.reservationRepo.Create(ctx, tx, reservation)
	})
	if err != nil {
		return nil, translateTxError(err)
	}
	return reservation, nil
}

func (s *campsiteService) Cancel(ctx context.Context, bookingID string) (*CancellationResult, error) {
	reservation, err := s.reservationRepo.FindByBookingID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	if reservation.Status == models.StatusCanceled {
		return nil, ErrAlreadyCanceled
	}

	var released []time.Time
	err = s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.applyLockTimeout(tx); err != nil {
			return err
		}

		rows, err := s.reservationRepo.UpdateStatusChecked(ctx, tx, bookingID, reservation.Revision, models.StatusCanceled)
		if err != nil {
			return err
		}
		if rows == 0 {
			// lost the race on this reservation: classify for the caller
			current, err := s.reservationRepo.FindByBookingID(ctx, bookingID)
			if err != nil {
				return ErrReservationNotFound
			}
			if current.Status == models.StatusCanceled {
				return ErrAlreadyCanceled
			}
			return ErrStaleReservation
		}

		slots, err := s.scheduleRepo.FindByBookingIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		for i := range slots {
			slot := &slots[i]
			released = append(released, slot.ScheduleDate)
			slot.Status = models.ScheduleAvailable
			slot.BookingID = ""
			slot.Version++
			if err := s.scheduleRepo.Save(ctx, tx, slot); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateTxError(err)
	}

	reservation.Status = models.StatusCanceled
	reservation.Revision++
	s.publish("booking.cancelled", reservation)

	return &CancellationResult{Reservation: reservation, CancelledDates: released}, nil
}

// Modify is cancel followed by a fresh reservation for the merged request.
// The two steps are one logical unit but not one transaction: when the
// re-reservation fails the original stays cancelled, and the caller is told
// which stage failed.
func (s *campsiteService) Modify(ctx context.Context, bookingID string, req ModificationRequest) (*ModificationResult, error) {
	cancellation, err := s.Cancel(ctx, bookingID)
	if err != nil {
		return nil, &ModificationError{Stage: "cancel", Err: err}
	}

	reservation, err := s.Reserve(ctx, mergeModification(cancellation.Reservation, req))
	if err != nil {
		return nil, &ModificationError{Stage: "reserve", Err: err}
	}

	return &ModificationResult{Cancellation: cancellation, Reservation: reservation}, nil
}

func (s *campsiteService) GetReservation(ctx context.Context, bookingID string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByBookingID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *campsiteService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.reservationRepo.FindAll(ctx)
}

func (s *campsiteService) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	return s.scheduleRepo.FindAll(ctx)
}

// mergeModification fills any field left empty in the request from the
// just-cancelled reservation.
func mergeModification(previous *models.Reservation, req ModificationRequest) ReservationRequest {
	merged := ReservationRequest{
		FirstName:    previous.FirstName,
		LastName:     previous.LastName,
		Email:        previous.Email,
		CheckInDate:  previous.CheckInDate,
		CheckOutDate: previous.CheckOutDate,
	}
	if req.FirstName != "" {
		merged.FirstName = req.FirstName
	}
	if req.LastName != "" {
		merged.LastName = req.LastName
	}
	if req.Email != "" {
		merged.Email = req.Email
	}
	if !req.CheckInDate.IsZero() {
		merged.CheckInDate = req.CheckInDate
	}
	if !req.CheckOutDate.IsZero() {
		merged.CheckOutDate = req.CheckOutDate
	}
	return merged
}

// applyLockTimeout bounds how long the transaction waits for contended day
// rows, so the loser of a truly concurrent claim fails fast instead of
// queueing.
func (s *campsiteService) applyLockTimeout(tx *gorm.DB) error {
	if s.cfg.LockTimeout <= 0 {
		return nil
	}
	return tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.cfg.LockTimeout.Milliseconds())).Error
}

func (s *campsiteService) publish(routingKey string, reservation *models.Reservation) {
	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, reservation)
	}
}

func translateTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
		return ErrLockTimeout
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

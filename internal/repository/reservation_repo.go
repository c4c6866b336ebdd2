package repository

import (
	"context"

	"github.com/campsitehq/campsite-service/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByBookingID(ctx context.Context, bookingID string) (*models.Reservation, error)
	// UpdateStatusChecked flips the status only when the caller's revision is
	// still current, bumping the revision in the same statement. Returns the
	// number of rows updated; zero means the reservation changed underneath
	// the caller (or no longer matches).
	UpdateStatusChecked(ctx context.Context, tx *gorm.DB, bookingID string, revision int64, status models.ReservationStatus) (int64, error)
	FindAll(ctx context.Context) ([]models.Reservation, error)
	GetDB() *gorm.DB
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByBookingID(ctx context.Context, bookingID string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) UpdateStatusChecked(ctx context.Context, tx *gorm.DB, bookingID string, revision int64, status models.ReservationStatus) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("booking_id = ? AND revision = ?", bookingID, revision).
		Updates(map[string]any{
			"status":   status,
			"revision": revision + 1,
		})
	return result.RowsAffected, result.Error
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

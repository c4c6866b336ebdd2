package repository

import (
	"context"
	"time"

	"github.com/campsitehq/campsite-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleRepository interface {
	// InitRange seeds one AVAILABLE row per day in [start, end] inclusive.
	// Existing rows are left untouched, so re-running only fills gaps.
	InitRange(ctx context.Context, start, end time.Time) error
	FindByDateForUpdate(ctx context.Context, tx *gorm.DB, date time.Time) (*models.Schedule, error)
	FindByBookingIDForUpdate(ctx context.Context, tx *gorm.DB, bookingID string) ([]models.Schedule, error)
	FindAvailableBetween(ctx context.Context, start, end time.Time) ([]models.Schedule, error)
	Save(ctx context.Context, tx *gorm.DB, schedule *models.Schedule) error
	FindAll(ctx context.Context) ([]models.Schedule, error)
	GetDB() *gorm.DB
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *scheduleRepository) InitRange(ctx context.Context, start, end time.Time) error {
	var schedules []models.Schedule
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		schedules = append(schedules, models.Schedule{
			ScheduleDate: d,
			Status:       models.ScheduleAvailable,
		})
	}
	if len(schedules) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "schedule_date"}},
			DoNothing: true,
		}).
		Create(&schedules).Error
}

// FindByDateForUpdate acquires a row-level lock on the day within the given
// transaction, serializing concurrent claims of the same night.
func (r *scheduleRepository) FindByDateForUpdate(ctx context.Context, tx *gorm.DB, date time.Time) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("schedule_date = ?", date).
		First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByBookingIDForUpdate(ctx context.Context, tx *gorm.DB, bookingID string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("booking_id = ?", bookingID).
		Order("schedule_date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindAvailableBetween(ctx context.Context, start, end time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.WithContext(ctx).
		Where("schedule_date >= ? AND schedule_date <= ? AND status = ?", start, end, models.ScheduleAvailable).
		Order("schedule_date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Save(ctx context.Context, tx *gorm.DB, schedule *models.Schedule) error {
	return tx.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) FindAll(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).Order("schedule_date ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/tasmimahana/cse470/internal/domain/booking"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/query"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).
		Omit("User", "Pet").
		Create(b).Error
}

func (r *BookingGormRepository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Pet").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).
		Omit("User", "Pet").
		Save(b).Error
}

func (r *BookingGormRepository) GetPet(ctx context.Context, id string) (*models.Pet, error) {
	var p models.Pet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) ListBookings(ctx context.Context, spec query.FilterSpec) ([]models.Booking, error) {
	var bookings []models.Booking
	q := ApplyFilter(r.db.WithContext(ctx).Model(&models.Booking{}), "bookings", spec)
	if err := q.
		Preload("User").
		Preload("Pet").
		Order("bookings.created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ domain.Repository = (*BookingGormRepository)(nil)

package repository

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	CustomerID     string    `gorm:"column:customer_id;index"`
	RestaurantID   string    `gorm:"column:restaurant_id;index"`
	BookingAt      time.Time `gorm:"column:booking_at"`
	NumberOfGuests int       `gorm:"column:number_of_guests"`
	Category       string    `gorm:"column:category"`
	Message        *string   `gorm:"column:message"`
	PhoneNumber    string    `gorm:"column:phone_number"`
	Status         string    `gorm:"column:status;index"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var message string
	if m.Message != nil {
		message = *m.Message
	}
	return &domain.Booking{
		ID:             m.ID,
		CustomerID:     m.CustomerID,
		RestaurantID:   m.RestaurantID,
		BookingAt:      m.BookingAt,
		NumberOfGuests: m.NumberOfGuests,
		Category:       domain.MealCategory(m.Category),
		Message:        message,
		PhoneNumber:    m.PhoneNumber,
		Status:         domain.BookingStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BookingWithCustomer is the owner-dashboard projection: booking fields
// joined with the requesting customer's display identity.
type BookingWithCustomer struct {
	Booking       domain.Booking `json:"booking"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	var message *string
	if b.Message != "" {
		v := b.Message
		message = &v
	}
	m := bookingModel{
		ID:             uuid.NewString(),
		CustomerID:     b.CustomerID,
		RestaurantID:   b.RestaurantID,
		BookingAt:      b.BookingAt,
		NumberOfGuests: b.NumberOfGuests,
		Category:       string(b.Category),
		Message:        message,
		PhoneNumber:    b.PhoneNumber,
		Status:         string(b.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// UpdateStatusIfPending applies the status change only if the booking is
// still pending at write time. Returns false when another writer already
// resolved the booking (or the id is gone); the caller distinguishes the
// two with a prior GetByID.
func (r *BookingRepository) UpdateStatusIfPending(ctx context.Context, id string, status domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(domain.BookingPending)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// BookingColumns aliases bookingModel under an exported name: gorm's
// schema parser ignores unexported field names, so an anonymous
// bookingModel embed would never be scanned.
type BookingColumns = bookingModel

type bookingWithCustomerRow struct {
	BookingColumns
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Email     string `gorm:"column:customer_email"`
}

func (r *BookingRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]BookingWithCustomer, error) {
	var rows []bookingWithCustomerRow
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, users.first_name, users.last_name, users.email AS customer_email").
		Joins("LEFT JOIN users ON users.id = bookings.customer_id").
		Where("bookings.restaurant_id = ?", restaurantID).
		Order("bookings.created_at DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]BookingWithCustomer, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingWithCustomer{
			Booking:       *toDomainBooking(row.BookingColumns),
			CustomerName:  row.FirstName + " " + row.LastName,
			CustomerEmail: row.Email,
		})
	}
	return out, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// CountByStatusForRestaurant groups bookings created in [from, to] by status.
func (r *BookingRepository) CountByStatusForRestaurant(ctx context.Context, restaurantID string, from, to time.Time) (map[domain.BookingStatus]int64, error) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	var rows []statusCount
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("status, COUNT(1) AS count").
		Where("restaurant_id = ? AND created_at >= ? AND created_at <= ?", restaurantID, from, to).
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[domain.BookingStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.BookingStatus(row.Status)] = row.Count
	}
	return out, nil
}

// ExecutedSlice is the minimal projection the analytics aggregations need.
type ExecutedSlice struct {
	BookingAt      time.Time
	Category       domain.MealCategory
	NumberOfGuests int
}

// ListExecutedForRestaurant returns executed bookings scheduled in
// [from, to]. Aggregation happens in the service to stay dialect-neutral
// between postgres and sqlite.
func (r *BookingRepository) ListExecutedForRestaurant(ctx context.Context, restaurantID string, from, to time.Time) ([]ExecutedSlice, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND status = ? AND booking_at >= ? AND booking_at <= ?",
			restaurantID, string(domain.BookingExecuted), from, to).
		Order("booking_at ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]ExecutedSlice, 0, len(rows))
	for _, m := range rows {
		out = append(out, ExecutedSlice{
			BookingAt:      m.BookingAt,
			Category:       domain.MealCategory(m.Category),
			NumberOfGuests: m.NumberOfGuests,
		})
	}
	return out, nil
}

func (r *BookingRepository) Migrate() error {
	return r.db.AutoMigrate(&bookingModel{})
}

package booking

import (
	"context"

	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

// BookingRepository defines the persistence operations the lifecycle
// manager needs. The status change is an atomic conditional update, not a
// read-modify-write.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatusIfPending(ctx context.Context, id string, status domain.BookingStatus) (bool, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]repository.BookingWithCustomer, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
}

// UserDirectory resolves a session-bound identity to a user entity.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RestaurantDirectory resolves restaurants by id or owning account.
type RestaurantDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error)
}

// Broadcaster publishes an event to a restaurant-scoped live channel.
// Best-effort: no acknowledgment, no retry, non-blocking for the caller.
type Broadcaster interface {
	Publish(restaurantID, event string, payload any) int
}

// Mailer delivers a transactional email to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, toName, subject, html string) error
}

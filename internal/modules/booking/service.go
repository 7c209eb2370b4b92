package booking

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/mailer"
	"tablebook/internal/repository"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type Service struct {
	bookings    BookingRepository
	users       UserDirectory
	restaurants RestaurantDirectory
	broadcaster Broadcaster
	mail        Mailer
}

func NewService(
	bookings BookingRepository,
	users UserDirectory,
	restaurants RestaurantDirectory,
	broadcaster Broadcaster,
	mail Mailer,
) *Service {
	return &Service{
		bookings:    bookings,
		users:       users,
		restaurants: restaurants,
		broadcaster: broadcaster,
		mail:        mail,
	}
}

// Create validates and persists a pending booking, then notifies the
// restaurant's connected dashboards. Persistence comes strictly first: a
// crash between the two loses a live alert, never a booking.
func (s *Service) Create(ctx context.Context, customerID string, req CreateBookingRequest) (*domain.Booking, error) {
	customer, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	bookingAt, err := time.Parse(time.RFC3339, req.BookingAt)
	if err != nil {
		return nil, ErrValidation
	}
	if req.NumberOfGuests < 1 {
		return nil, ErrValidation
	}
	if !domain.ValidMealCategory(domain.MealCategory(req.Category)) {
		return nil, ErrValidation
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return nil, ErrValidation
	}

	restaurant, err := s.restaurants.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		CustomerID:     customer.ID,
		RestaurantID:   restaurant.ID,
		BookingAt:      bookingAt,
		NumberOfGuests: req.NumberOfGuests,
		Category:       domain.MealCategory(req.Category),
		Message:        req.Message,
		PhoneNumber:    req.PhoneNumber,
		Status:         domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Publish(restaurant.ID, "new-booking", NewBookingEvent{
			Message: "New booking received!",
			Data: NewBookingData{
				BookingID:      b.ID,
				RestaurantID:   b.RestaurantID,
				BookingAt:      b.BookingAt,
				NumberOfGuests: b.NumberOfGuests,
				Category:       string(b.Category),
				Message:        b.Message,
				PhoneNumber:    b.PhoneNumber,
				FullName:       customer.FullName(),
				Email:          customer.Email,
			},
		})
	}

	return b, nil
}

// StatusChangeResult carries the updated booking plus a non-fatal warning
// when the notification email could not be delivered.
type StatusChangeResult struct {
	Booking      *domain.Booking
	EmailWarning string
}

// ChangeStatus resolves exactly one pending booking to accepted or
// rejected. The write is guarded by a status=pending precondition, so two
// owners (or a double click) racing on the same booking produce one
// winner; the loser observes ErrInvalidStatusTransition.
func (s *Service) ChangeStatus(ctx context.Context, actorOwnerID, bookingID string, newStatus domain.BookingStatus) (*StatusChangeResult, error) {
	if newStatus != domain.BookingAccepted && newStatus != domain.BookingRejected {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	restaurant, err := s.restaurants.GetByOwner(ctx, actorOwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if restaurant.ID != b.RestaurantID {
		return nil, ErrForbidden
	}

	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.bookings.UpdateStatusIfPending(ctx, bookingID, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Lost the race: someone else resolved it between our read and
		// the conditional write.
		return nil, ErrInvalidStatusTransition
	}

	b.Status = newStatus
	b.UpdatedAt = time.Now()

	result := &StatusChangeResult{Booking: b}
	if warn := s.notifyCustomer(ctx, restaurant, b); warn != "" {
		result.EmailWarning = warn
	}
	return result, nil
}

// notifyCustomer emails the booking decision. Runs strictly after the
// status change has committed; failure is reported, never rolled back.
func (s *Service) notifyCustomer(ctx context.Context, restaurant *domain.Restaurant, b *domain.Booking) string {
	if s.mail == nil {
		return ""
	}

	customer, err := s.users.GetByID(ctx, b.CustomerID)
	if err != nil {
		log.Printf("booking %s: could not resolve customer for email: %v", b.ID, err)
		return "booking updated, notification email could not be delivered"
	}

	var subject, html string
	switch b.Status {
	case domain.BookingAccepted:
		subject = mailer.SubjectBookingAccepted
		html = mailer.BookingAcceptedTemplate(restaurant.Name, b.NumberOfGuests, b.BookingAt)
	case domain.BookingRejected:
		subject = mailer.SubjectBookingRejected
		html = mailer.BookingRejectedTemplate(restaurant.Name, b.BookingAt, b.ID)
	default:
		return ""
	}

	if err := s.mail.Send(ctx, customer.Email, customer.FullName(), subject, html); err != nil {
		log.Printf("booking %s: email dispatch failed: %v", b.ID, err)
		return "booking updated, notification email could not be delivered"
	}
	return ""
}

// ListByRestaurant returns the caller-owner's bookings joined with each
// customer's display identity, newest first.
func (s *Service) ListByRestaurant(ctx context.Context, ownerID string) ([]repository.BookingWithCustomer, error) {
	restaurant, err := s.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return s.bookings.ListByRestaurant(ctx, restaurant.ID)
}

// ListByCustomer returns the caller's own bookings, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

package domain

import "time"

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingAccepted BookingStatus = "accepted"
	BookingRejected BookingStatus = "rejected"

	// Extended vocabulary used by analytics only. No transition logic
	// reaches these states yet.
	BookingPaymentPending BookingStatus = "payment pending"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingExecuted       BookingStatus = "executed"
)

// Terminal reports whether no further transition is permitted from s.
func (s BookingStatus) Terminal() bool {
	return s != BookingPending
}

type MealCategory string

const (
	CategoryBreakfast MealCategory = "breakfast"
	CategoryLunch     MealCategory = "lunch"
	CategoryDinner    MealCategory = "dinner"
)

func ValidMealCategory(c MealCategory) bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner:
		return true
	}
	return false
}

// Booking ties a customer, a restaurant and a requested time slot.
// CustomerID and RestaurantID never change after creation; status moves
// only pending -> accepted or pending -> rejected.
type Booking struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customer_id"`
	RestaurantID   string        `json:"restaurant_id"`
	BookingAt      time.Time     `json:"booking_at"`
	NumberOfGuests int           `json:"number_of_guests"`
	Category       MealCategory  `json:"category"`
	Message        string        `json:"message,omitempty"`
	PhoneNumber    string        `json:"phone_number"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

package booking

import "time"

type CreateBookingRequest struct {
	RestaurantID   string `json:"restaurantID" binding:"required" validate:"required"`
	BookingAt      string `json:"bookingAt" binding:"required" validate:"required"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required" validate:"required,min=1"`
	Message        string `json:"message"`
	Category       string `json:"category" binding:"required" validate:"required,oneof=breakfast lunch dinner"`
	PhoneNumber    string `json:"phoneNumber" binding:"required" validate:"required,len=10,numeric"`
}

type ChangeBookingStatusRequest struct {
	BookingID string `json:"bookingID" binding:"required" validate:"required"`
	NewStatus string `json:"newStatus" binding:"required" validate:"required,oneof=accepted rejected"`
}

// NewBookingEvent is the payload broadcast to the restaurant's dashboard
// room when a reservation lands.
type NewBookingEvent struct {
	Message string         `json:"message"`
	Data    NewBookingData `json:"data"`
}

type NewBookingData struct {
	BookingID      string    `json:"bookingID"`
	RestaurantID   string    `json:"restaurantID"`
	BookingAt      time.Time `json:"bookingAt"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Category       string    `json:"category"`
	Message        string    `json:"message"`
	PhoneNumber    string    `json:"phoneNumber"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
}

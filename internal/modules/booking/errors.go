package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrForbidden               = errors.New("actor does not own the target restaurant")
	ErrInvalidStatusTransition = errors.New("booking is no longer pending")
)

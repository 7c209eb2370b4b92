package domain

import "time"

type Role string

const (
	RoleCustomer        Role = "customer"
	RoleRestaurantOwner Role = "owner"
)

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name" validate:"required,min=2"`
	LastName     string    `json:"last_name" validate:"required,min=2"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

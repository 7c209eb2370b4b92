package auth

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required" validate:"required,min=2"`
	LastName  string `json:"lastName" binding:"required" validate:"required,min=2"`
	Email     string `json:"email" binding:"required,email" validate:"required,email"`
	Password  string `json:"password" binding:"required,min=8" validate:"required,min=8"`
	Role      string `json:"role" binding:"required" validate:"required,oneof=customer owner"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

package auth

import (
	"context"

	"tablebook/internal/domain"
)

// UserRepository — only the methods the auth service uses
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID, role string) (string, error)
}

package auth

import (
	"context"
	"testing"

	"tablebook/internal/domain"
	"tablebook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = "user-1"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     "Asha@Example.com",
		Password:  "sup3rsecret",
		Role:      "customer",
	}
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockJWT)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokens.On("GenerateToken", "user-1", "customer").Return("signed-token", nil)

	user, token, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "asha@example.com", user.Email) // normalized
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEqual(t, "sup3rsecret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sup3rsecret")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockJWT)
	svc := NewService(users, tokens)

	existing := &domain.User{ID: "user-0", Email: "asha@example.com"}
	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(existing, nil)

	_, _, err := svc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockJWT)
	svc := NewService(users, tokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{
		ID:           "user-1",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(stored, nil)
	tokens.On("GenerateToken", "user-1", "customer").Return("signed-token", nil)

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "user-1", user.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockJWT)
	svc := NewService(users, tokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "user-1", Email: "asha@example.com", PasswordHash: string(hash)}
	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(stored, nil)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockJWT)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package service

import (
	"context"

	"mindease/internal/models"
	"mindease/internal/repository"
	"mindease/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AccountService provides registration and login business logic.
type AccountService struct {
	users repository.UserRepository
}

// NewAccountService returns a new AccountService.
func NewAccountService(users repository.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// RegisterInput is the input for registering a new account.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
	Batch      string
}

// Register validates the input, rejects duplicate emails and stores the new
// user with a bcrypt password hash.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if validation.AnyBlank(in.Name, in.Email, in.Password, in.Department, in.Batch) {
		return nil, models.NewValidationError("All fields are required")
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:       in.Name,
		Email:      in.Email,
		Password:   string(hashed),
		Department: in.Department,
		Batch:      in.Batch,
	}
	// The unique index on email closes the check-then-insert window; a
	// concurrent duplicate registration surfaces as a conflict here.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the matching user. Unknown email
// and wrong password share one generic message so the response never reveals
// which check failed.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if validation.AnyBlank(email, password) {
		return nil, models.NewValidationError("Email and password required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewAuthError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewAuthError("Invalid credentials")
	}

	return user, nil
}

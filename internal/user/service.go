package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmailExists = errors.New("email already exists")

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// Create rejects duplicate emails before inserting. The pre-check is a
// friendlier error path only; the unique constraint in the users table is
// what actually guarantees uniqueness when two creates race.
func (s *service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.Name, req.Email, passwordHash)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete verifies the user exists before removing it, so an unknown id
// reports ErrUserNotFound instead of succeeding as a no-op.
func (s *service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

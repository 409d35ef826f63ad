// Package usecase implements the business logic for user management.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"cms_backend/internal/feature/users/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// ErrUnknownRole is returned when a caller supplies a role label outside
// the recognized set.
var ErrUnknownRole = errors.New("unknown role label")

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAll retrieves every user ordered by role then username.
	FindAll(ctx context.Context) ([]entity.User, error)

	// Create inserts a transient user and assigns its ID in place.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites all mutable fields of a persisted user.
	Update(ctx context.Context, user *entity.User) error

	// Save dispatches to Create or Update based on ID presence.
	Save(ctx context.Context, user *entity.User) error

	// DeleteByID removes a user; absent ids are a no-op.
	DeleteByID(ctx context.Context, id uint) error
}

// UserUsecase provides the administrative user-management operations.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// ListUsers returns every user, ordered by role then username so that role
// groupings stay contiguous in admin views.
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// GetUser returns a single user by id.
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// CreateUser registers a new user with a bcrypt-hashed password.
// The salt column stays empty: bcrypt embeds its own salt.
func (u *UserUsecase) CreateUser(ctx context.Context, username, password, role string) (*entity.User, error) {
	if !entity.KnownRole(role) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser overwrites a persisted user's fields. An empty password keeps
// the stored hash; a non-empty one is validated and re-hashed.
func (u *UserUsecase) UpdateUser(ctx context.Context, id uint, username, password, role string) (*entity.User, error) {
	if !entity.KnownRole(role) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Role = role
	if password != "" {
		if err := validatePassword(password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
		// A re-hash moves legacy rows onto the self-salting scheme.
		user.Salt = ""
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by id.
func (u *UserUsecase) DeleteUser(ctx context.Context, id uint) error {
	return u.users.DeleteByID(ctx, id)
}

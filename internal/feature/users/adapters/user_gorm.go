// Package adapters provides the repository implementation for the users feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	authusecase "cms_backend/internal/feature/auth/usecase"
	"cms_backend/internal/feature/users/domain"
	"cms_backend/internal/feature/users/domain/entity"
	"cms_backend/internal/feature/users/usecase"
	"cms_backend/internal/platform/dao"
)

// userGorm is the GORM implementation of the user repository. It serves two
// contracts off the same table: administrative CRUD (usecase.UserRepository)
// and the credential lookups the authentication subsystem depends on
// (authusecase.UserProvider). It is stateless beyond the borrowed handle:
// no caching, no identity map, every call re-reads storage.
type userGorm struct {
	*dao.DAO
}

var (
	_ usecase.UserRepository   = (*userGorm)(nil)
	_ authusecase.UserProvider = (*userGorm)(nil)
)

// NewUserGorm creates a user repository over the given base DAO.
func NewUserGorm(d *dao.DAO) *userGorm {
	return &userGorm{DAO: d}
}

// FindByID retrieves a user by primary key.
// Returns domain.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.Conn(ctx).Where("usr_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr(err)
	}
	return &u, nil
}

// FindAll returns every user ordered by usr_role then usr_name, both
// ascending. The ordering is plain lexicographic, so ROLE_ADMIN rows sort
// before ROLE_USER rows. An empty table yields an empty slice, not an error.
func (r *userGorm) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.Conn(ctx).
		Order("usr_role ASC, usr_name ASC").
		Find(&users).Error; err != nil {
		return nil, storageErr(err)
	}
	return users, nil
}

// Create inserts a transient user and writes the assigned id back into the
// caller's object. Returns domain.ErrDuplicateUsername when usr_name is taken.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.Conn(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateUsername
		}
		return storageErr(err)
	}
	return nil
}

// Update overwrites all mutable fields of the row keyed by u.ID. Unlike a
// bare UPDATE, a missing row is reported as domain.ErrUserNotFound instead
// of completing silently.
func (r *userGorm) Update(ctx context.Context, u *entity.User) error {
	res := r.Conn(ctx).Model(&entity.User{}).
		Where("usr_id = ?", u.ID).
		Updates(map[string]any{
			"usr_name":     u.Username,
			"usr_password": u.Password,
			"usr_salt":     u.Salt,
			"usr_role":     u.Role,
		})
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return domain.ErrDuplicateUsername
		}
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Save upserts by presence of id: transient users are inserted, persisted
// ones updated. Kept as a thin dispatcher so callers that relied on the
// combined form keep working.
func (r *userGorm) Save(ctx context.Context, u *entity.User) error {
	if u.IsTransient() {
		return r.Create(ctx, u)
	}
	return r.Update(ctx, u)
}

// DeleteByID removes the row keyed by id. Deleting an absent id completes
// without error, matching storage-layer delete semantics.
func (r *userGorm) DeleteByID(ctx context.Context, id uint) error {
	if err := r.Conn(ctx).Where("usr_id = ?", id).Delete(&entity.User{}).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// LoadByUsername retrieves a user by exact username match. No normalization
// or case folding happens here; callers that want case-insensitive login
// must normalize before calling. Returns domain.ErrUnknownUsername when no
// row matches.
func (r *userGorm) LoadByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.Conn(ctx).Where("usr_name = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownUsername
		}
		return nil, storageErr(err)
	}
	return &u, nil
}

// Refresh re-fetches the current row for the given principal so that
// session-bound role claims are validated against live data. Principals of
// a foreign kind are rejected with domain.ErrUnsupportedPrincipal; a
// principal whose row has since been deleted surfaces as
// domain.ErrUnknownUsername via LoadByUsername.
func (r *userGorm) Refresh(ctx context.Context, p entity.Principal) (*entity.User, error) {
	if !r.Supports(p.PrincipalKind()) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPrincipal, p.PrincipalKind())
	}
	return r.LoadByUsername(ctx, p.PrincipalUsername())
}

// Supports reports whether this repository handles the given principal kind.
func (r *userGorm) Supports(kind string) bool {
	return kind == entity.KindUser
}

// isDuplicateKey detects unique-constraint violations across the drivers in
// use: GORM's translated sentinel covers sqlite, pgconn code 23505 covers
// the Postgres path.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// storageErr wraps connection-level failures so callers can match on the
// sentinel without seeing raw driver text at the HTTP boundary.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

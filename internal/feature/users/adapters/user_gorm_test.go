package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cms_backend/internal/feature/users/domain"
	"cms_backend/internal/feature/users/domain/entity"
	"cms_backend/internal/platform/dao"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError mirrors the production config so unique violations
// surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *dao.DAO {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return dao.New(db)
}

func newTestUser(username, role string) *entity.User {
	return &entity.User{
		Username: username,
		Password: "$2a$10$hashhashhashhashhashha",
		Salt:     "",
		Role:     role,
	}
}

func TestNewUserGorm(t *testing.T) {
	repo := NewUserGorm(setupTestDB(t))
	assert.NotNil(t, repo, "repository is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("assigns id to transient user", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		user := newTestUser("alice", entity.RoleUser)
		require.True(t, user.IsTransient())

		err := repo.Create(context.Background(), user)

		require.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set on the caller's object")

		// Round trip: the persisted row equals the in-memory object.
		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, *user, *found, "stored row differs from saved user")
	})

	t.Run("duplicate username error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		require.NoError(t, repo.Create(context.Background(), newTestUser("dup", entity.RoleUser)))

		err := repo.Create(context.Background(), newTestUser("dup", entity.RoleAdmin))

		assert.ErrorIs(t, err, domain.ErrDuplicateUsername, "should report the duplicate")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("finds persisted user", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		expected := newTestUser("bob", entity.RoleAdmin)
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err)
		assert.Equal(t, expected.Username, found.Username)
		assert.Equal(t, expected.Password, found.Password)
		assert.Equal(t, expected.Salt, found.Salt)
		assert.Equal(t, expected.Role, found.Role)
	})

	t.Run("not found on empty table", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), 999999)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserGorm_FindAll(t *testing.T) {
	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		users, err := repo.FindAll(context.Background())

		require.NoError(t, err, "empty result must not be an error")
		assert.Empty(t, users)
	})

	t.Run("ordered by role then username, both lexicographic", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		// Insertion order deliberately scrambled.
		require.NoError(t, repo.Create(ctx, newTestUser("zed", entity.RoleAdmin)))
		require.NoError(t, repo.Create(ctx, newTestUser("bob", entity.RoleUser)))
		require.NoError(t, repo.Create(ctx, newTestUser("amy", entity.RoleUser)))

		users, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)

		// ROLE_ADMIN < ROLE_USER lexicographically, so zed sorts first
		// despite the username ordering within each role group.
		assert.Equal(t, "zed", users[0].Username)
		assert.Equal(t, entity.RoleAdmin, users[0].Role)
		assert.Equal(t, "amy", users[1].Username)
		assert.Equal(t, "bob", users[2].Username)
	})
}

func TestUserGorm_Update(t *testing.T) {
	t.Run("overwrites every mutable field", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		user := newTestUser("carol", entity.RoleUser)
		require.NoError(t, repo.Create(ctx, user))

		user.Username = "caroline"
		user.Password = "$2a$10$newhashnewhashnewhash"
		user.Salt = "legacy-salt"
		user.Role = entity.RoleAdmin
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "caroline", found.Username, "update must not keep pre-update values")
		assert.Equal(t, user.Password, found.Password)
		assert.Equal(t, "legacy-salt", found.Salt)
		assert.Equal(t, entity.RoleAdmin, found.Role)
	})

	t.Run("missing row is reported, not silently ignored", func(t *testing.T) {
		// The silent no-op of the legacy layer is deliberately tightened
		// here: updating a row that does not exist returns not-found.
		repo := NewUserGorm(setupTestDB(t))

		ghost := newTestUser("ghost", entity.RoleUser)
		ghost.ID = 4242

		err := repo.Update(context.Background(), ghost)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("renaming onto a taken username is a duplicate", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, newTestUser("first", entity.RoleUser)))
		second := newTestUser("second", entity.RoleUser)
		require.NoError(t, repo.Create(ctx, second))

		second.Username = "first"
		err := repo.Update(ctx, second)

		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})
}

func TestUserGorm_Save(t *testing.T) {
	t.Run("dispatches to insert for transient users", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		user := newTestUser("dana", entity.RoleUser)
		require.NoError(t, repo.Save(context.Background(), user))

		assert.NotZero(t, user.ID)
	})

	t.Run("dispatches to update for persisted users", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		user := newTestUser("erin", entity.RoleUser)
		require.NoError(t, repo.Save(ctx, user))
		id := user.ID

		user.Role = entity.RoleAdmin
		require.NoError(t, repo.Save(ctx, user))

		assert.Equal(t, id, user.ID, "save must not reassign the id")
		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, found.Role)
	})
}

func TestUserGorm_DeleteByID(t *testing.T) {
	t.Run("deleted user is gone", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		user := newTestUser("frank", entity.RoleUser)
		require.NoError(t, repo.Create(ctx, user))

		require.NoError(t, repo.DeleteByID(ctx, user.ID))

		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("absent id completes without error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		err := repo.DeleteByID(context.Background(), 999999)

		assert.NoError(t, err)
	})
}

func TestUserGorm_LoadByUsername(t *testing.T) {
	t.Run("exact match returns current row", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		expected := newTestUser("grace", entity.RoleAdmin)
		require.NoError(t, repo.Create(ctx, expected))

		// Two consecutive reads with no writes in between are identical.
		first, err := repo.LoadByUsername(ctx, "grace")
		require.NoError(t, err)
		second, err := repo.LoadByUsername(ctx, "grace")
		require.NoError(t, err)
		assert.Equal(t, *first, *second)
		assert.Equal(t, expected.ID, first.ID)
	})

	t.Run("no case folding", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, newTestUser("Heidi", entity.RoleUser)))

		_, err := repo.LoadByUsername(ctx, "heidi")

		assert.ErrorIs(t, err, domain.ErrUnknownUsername, "lookup must be exact-match")
	})

	t.Run("unknown username", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		found, err := repo.LoadByUsername(context.Background(), "nobody")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrUnknownUsername)
	})
}

func TestUserGorm_Refresh(t *testing.T) {
	t.Run("returns the current stored role", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		user := newTestUser("ivan", entity.RoleUser)
		require.NoError(t, repo.Create(ctx, user))

		// Promote behind the session's back.
		user.Role = entity.RoleAdmin
		require.NoError(t, repo.Update(ctx, user))

		refreshed, err := repo.Refresh(ctx, &entity.User{Username: "ivan"})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, refreshed.Role, "refresh must re-read storage")
	})

	t.Run("deleted user surfaces as unknown username", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))
		ctx := context.Background()

		user := newTestUser("judy", entity.RoleUser)
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, repo.DeleteByID(ctx, user.ID))

		_, err := repo.Refresh(ctx, user)

		assert.ErrorIs(t, err, domain.ErrUnknownUsername)
	})

	t.Run("foreign principal kind is rejected", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		_, err := repo.Refresh(context.Background(), foreignPrincipal{})

		assert.ErrorIs(t, err, domain.ErrUnsupportedPrincipal)
	})
}

func TestUserGorm_Supports(t *testing.T) {
	repo := NewUserGorm(setupTestDB(t))

	assert.True(t, repo.Supports(entity.KindUser))
	assert.False(t, repo.Supports("api-client"))
	assert.False(t, repo.Supports(""))
}

// foreignPrincipal simulates a principal from a repository wired for a
// different entity kind.
type foreignPrincipal struct{}

func (foreignPrincipal) PrincipalKind() string     { return "api-client" }
func (foreignPrincipal) PrincipalUsername() string { return "svc-1" }

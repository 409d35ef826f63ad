package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cms_backend/internal/feature/auth/domain/entity"
	usersdomain "cms_backend/internal/feature/users/domain"
	usersentity "cms_backend/internal/feature/users/domain/entity"
)

// UserProvider is the credential-lookup contract this subsystem consumes.
// The user repository implements it; following Go convention the interface
// is defined here, by the consumer.
type UserProvider interface {
	// LoadByUsername resolves a user by exact username match.
	// Returns usersdomain.ErrUnknownUsername when no row matches.
	LoadByUsername(ctx context.Context, username string) (*usersentity.User, error)

	// Refresh re-fetches the current row for a session-bound principal so
	// stored role claims are validated against live data.
	Refresh(ctx context.Context, p usersentity.Principal) (*usersentity.User, error)

	// Supports reports whether the provider handles the given principal kind.
	Supports(kind string) bool
}

// TokenGenerator abstracts access-token issuance.
type TokenGenerator interface {
	// GenerateToken creates a signed token carrying the user's identity and role.
	GenerateToken(userID uint, username, role string) (string, error)
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// ClientInfo carries request metadata recorded on the session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// sessionPrincipal adapts a stored session back into the principal shape
// the credential-lookup contract accepts.
type sessionPrincipal struct {
	username string
}

func (p sessionPrincipal) PrincipalKind() string     { return usersentity.KindUser }
func (p sessionPrincipal) PrincipalUsername() string { return p.username }

// AuthUsecase implements login, token refresh, and logout on top of the
// credential-lookup contract and a session store.
type AuthUsecase struct {
	users      UserProvider
	sessions   SessionRepository
	tokens     TokenGenerator
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserProvider, sessions SessionRepository, tokens TokenGenerator,
	accessTTL, refreshTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Login authenticates a user and issues a token pair.
// The bcrypt comparison runs even when the username is unknown, so response
// timing does not reveal whether the account exists. Lookup failures and
// password mismatches both surface as ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, username, password string, client ClientInfo) (*TokenPair, error) {
	user, err := u.users.LoadByUsername(ctx, username)
	if err != nil && !errors.Is(err, usersdomain.ErrUnknownUsername) {
		// Storage failures are not credential failures.
		return nil, err
	}

	// Dummy hash keeps the compare cost constant when the user is unknown.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	salt := ""
	if err == nil {
		passwordHash = user.Password
		salt = user.Salt
	}

	// Rows hashed under a salted legacy scheme carry their salt in usr_salt;
	// bcrypt rows leave it empty.
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password+salt))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user, client)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The principal is re-resolved through the provider on every refresh, so the
// new access token always carries the currently stored role. A user deleted
// since login surfaces as ErrInvalidRefreshToken.
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string, client ClientInfo) (*TokenPair, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	user, err := u.users.Refresh(ctx, sessionPrincipal{username: session.Username})
	if err != nil {
		if errors.Is(err, usersdomain.ErrUnknownUsername) {
			// The account is gone; the session is dead with it.
			_ = u.sessions.Revoke(ctx, session.ID)
			return nil, ErrInvalidRefreshToken
		}
		// ErrUnsupportedPrincipal and storage failures propagate as-is.
		return nil, err
	}

	// Rotate: the old token is single-use.
	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, err
	}
	return u.issueTokens(ctx, user, client)
}

// Logout revokes the session behind the given refresh token.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	return nil
}

func (u *AuthUsecase) issueTokens(ctx context.Context, user *usersentity.User, client ClientInfo) (*TokenPair, error) {
	access, err := u.tokens.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.refreshTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: session.ID,
		ExpiresIn:    int64(u.accessTTL.Seconds()),
	}, nil
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_backend/internal/feature/auth/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	LoginFunc        func(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	RefreshTokenFunc func(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error)
	LogoutFunc       func(ctx context.Context, refreshToken string) error
}

func (m *mockAuthUsecase) Login(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password, client)
	}
	return nil, usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken, client)
	}
	return nil, usecase.ErrInvalidRefreshToken
}

func (m *mockAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

// denyAllLimiter refuses every attempt.
type denyAllLimiter struct{}

func (denyAllLimiter) Allow(key string) bool { return false }

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func authRouter(h *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/refresh", h.Refresh)
	r.POST("/logout", h.Logout)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns the token pair", func(t *testing.T) {
		auth := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "s3cret-pass", password)
				return &usecase.TokenPair{AccessToken: "jwt", RefreshToken: "refresh", ExpiresIn: 900}, nil
			},
		}
		r := authRouter(NewAuthHandler(auth, nil))

		w := postJSON(r, "/login", `{"username":"alice","password":"s3cret-pass"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"access_token":"jwt","refresh_token":"refresh","expires_in":900}`, w.Body.String())
	})

	t.Run("bad credentials yield an opaque 401", func(t *testing.T) {
		r := authRouter(NewAuthHandler(&mockAuthUsecase{}, nil))

		w := postJSON(r, "/login", `{"username":"alice","password":"wrong-pass"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid username or password"}`, w.Body.String())
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		r := authRouter(NewAuthHandler(&mockAuthUsecase{}, nil))

		w := postJSON(r, "/login", `{"username":"alice"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("throttled clients get a 429 before any lookup", func(t *testing.T) {
		called := false
		auth := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				called = true
				return nil, usecase.ErrInvalidCredentials
			},
		}
		r := authRouter(NewAuthHandler(auth, denyAllLimiter{}))

		w := postJSON(r, "/login", `{"username":"alice","password":"s3cret-pass"}`)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.False(t, called, "throttling must short-circuit the usecase")
	})

	t.Run("storage failure is a 500 with a generic body", func(t *testing.T) {
		auth := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, username, password string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				return nil, errors.New("pq: connection refused")
			},
		}
		r := authRouter(NewAuthHandler(auth, nil))

		w := postJSON(r, "/login", `{"username":"alice","password":"s3cret-pass"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused", "driver text must not leak")
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := &mockAuthUsecase{
			RefreshTokenFunc: func(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
				assert.Equal(t, "old-token", refreshToken)
				return &usecase.TokenPair{AccessToken: "new-jwt", RefreshToken: "new-token", ExpiresIn: 900}, nil
			},
		}
		r := authRouter(NewAuthHandler(auth, nil))

		w := postJSON(r, "/refresh", `{"refresh_token":"old-token"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"refresh_token":"new-token"`)
	})

	t.Run("revoked and expired sessions are the same 401", func(t *testing.T) {
		for _, failure := range []error{
			usecase.ErrInvalidRefreshToken,
			usecase.ErrSessionRevoked,
			usecase.ErrSessionExpired,
		} {
			auth := &mockAuthUsecase{
				RefreshTokenFunc: func(ctx context.Context, refreshToken string, client usecase.ClientInfo) (*usecase.TokenPair, error) {
					return nil, failure
				},
			}
			r := authRouter(NewAuthHandler(auth, nil))

			w := postJSON(r, "/refresh", `{"refresh_token":"tok"}`)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"invalid refresh token"}`, w.Body.String())
		}
	})

	t.Run("missing token is a 400", func(t *testing.T) {
		r := authRouter(NewAuthHandler(&mockAuthUsecase{}, nil))

		w := postJSON(r, "/refresh", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var revoked string
		auth := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				revoked = refreshToken
				return nil
			},
		}
		r := authRouter(NewAuthHandler(auth, nil))

		w := postJSON(r, "/logout", `{"refresh_token":"live-token"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "live-token", revoked)
	})

	t.Run("unknown token is a 401", func(t *testing.T) {
		auth := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, refreshToken string) error {
				return usecase.ErrInvalidRefreshToken
			},
		}
		r := authRouter(NewAuthHandler(auth, nil))

		w := postJSON(r, "/logout", `{"refresh_token":"gone"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// Package handler provides the admin HTTP handlers for user management.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/feature/users/domain"
	"cms_backend/internal/feature/users/domain/entity"
	"cms_backend/internal/feature/users/transport/http/dto"
	"cms_backend/internal/feature/users/usecase"
)

// UserUsecase defines the user-management operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	CreateUser(ctx context.Context, username, password, role string) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint, username, password, role string) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// UserHandler handles the admin user-management endpoints.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// List returns every user, grouped by role then username.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	out := make([]dto.UserRes, 0, len(users))
	for i := range users {
		out = append(out, dto.UserResFromEntity(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single user by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResFromEntity(user))
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.CreateUser(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("user created", "id", user.ID, "username", user.Username, "role", user.Role)
	c.JSON(http.StatusCreated, dto.UserResFromEntity(user))
}

// Update overwrites an existing user's fields.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.UpdateUser(c.Request.Context(), id, req.Username, req.Password, req.Role)
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("user updated", "id", user.ID, "username", user.Username, "role", user.Role)
	c.JSON(http.StatusOK, dto.UserResFromEntity(user))
}

// Delete removes a user by id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("user deleted", "id", id)
	c.Status(http.StatusNoContent)
}

// writeError translates domain errors into HTTP statuses. Storage failures
// never leak raw driver text to the client.
func (h *UserHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case errors.Is(err, usecase.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
	default:
		slog.Error("user operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}

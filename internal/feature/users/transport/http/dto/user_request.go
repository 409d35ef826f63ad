// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import "cms_backend/internal/feature/users/domain/entity"

// UserCreateReq represents the request body for creating a user.
type UserCreateReq struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// UserUpdateReq represents the request body for updating a user.
// An empty password keeps the stored credential.
type UserUpdateReq struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Role     string `json:"role" binding:"required"`
}

// UserRes represents a user in responses. Credential material never
// leaves the server.
type UserRes struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserResFromEntity converts a domain user into its response shape.
func UserResFromEntity(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Username: u.Username, Role: u.Role}
}

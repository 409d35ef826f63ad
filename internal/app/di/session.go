// Package di provides small dependency-selection helpers for main.
package di

import (
	"github.com/redis/go-redis/v9"

	authadapters "cms_backend/internal/feature/auth/adapters"
	"cms_backend/internal/feature/auth/usecase"
	"cms_backend/internal/platform/dao"
	"cms_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the relational store.
func NewSessionRepository(rdb *redis.Client, d *dao.DAO) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionGorm(d)
}

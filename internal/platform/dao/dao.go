// Package dao provides the base record mapper shared by all repositories.
package dao

import (
	"context"

	"gorm.io/gorm"
)

// DAO owns a single borrowed database handle and exposes it to entity-specific
// repositories. It carries no entity knowledge and never opens or closes the
// connection itself; the handle's lifecycle belongs to the caller that built it.
type DAO struct {
	db *gorm.DB
}

// New creates a DAO around an already-open handle.
// A nil handle is a wiring bug, not a runtime condition, so it panics.
func New(db *gorm.DB) *DAO {
	if db == nil {
		panic("dao: constructed without a database handle")
	}
	return &DAO{db: db}
}

// Conn returns the owned handle bound to the given context so that
// cancellation and deadlines propagate into every statement.
func (d *DAO) Conn(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base holds the GORM handle shared by the catalog, cart and review
// repositories. Embedding it keeps context plumbing in one place; a
// repository running inside a transaction rebases on the tx handle.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB binds the connection to ctx so cancellation propagates into queries.
// A nil ctx returns the raw handle.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

package repository

import (
	"context"

	"github.com/polkiloo/opsdash/internal/domain/model"
)

// SalesRepository describes read access to the yearly sales rows.
// Rows are written by an external data-entry process.
type SalesRepository interface {
	// MaxYear returns the newest year present, or ErrNotFound when the
	// table is empty.
	MaxYear(ctx context.Context) (int, error)

	GetByYear(ctx context.Context, year int) (*model.SalesRecord, error)
}

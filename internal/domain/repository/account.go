package repository

import (
	"context"

	"github.com/polkiloo/opsdash/internal/domain/model"
)

// AccountRepository describes persistence operations for staff accounts.
// Accounts are created out-of-band; the service only reads and mutates them.
type AccountRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Account, error)

	// UpdatePassword atomically replaces the stored password hash. The
	// current hash is read under a row lock and passed to verify; when
	// verify returns an error the update is abandoned and the error is
	// returned unchanged. Concurrent changes for the same account never
	// interleave.
	UpdatePassword(ctx context.Context, username, newHash string, verify func(currentHash string) error) error

	// UpdateAvatar replaces the avatar blob in full.
	UpdateAvatar(ctx context.Context, username string, avatar []byte) error

	// ClearAvatar removes the stored avatar.
	ClearAvatar(ctx context.Context, username string) error
}

package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/domain/model"
	"github.com/polkiloo/opsdash/internal/domain/repository"
	pkgAuth "github.com/polkiloo/opsdash/internal/pkg/auth"
)

// AccountUseCase handles credential verification and account mutations.
type AccountUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, hasher: hasher, tokens: strategy}
}

// Login verifies credentials and returns the account with a session token.
// An unknown username and a wrong password produce the same
// ErrInvalidCredentials so account existence is never leaked.
func (u *AccountUseCase) Login(ctx context.Context, username, password string) (*model.Account, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	acc, err := u.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(acc.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(acc.Username)
	if err != nil {
		return nil, "", err
	}

	return acc, token, nil
}

// ChangePassword verifies the old password and atomically replaces the
// stored hash. The verification runs under the repository's row lock so
// concurrent changes for one account cannot interleave.
func (u *AccountUseCase) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domainErrors.ErrNotFound
	}
	if newPassword == "" {
		return domainErrors.ErrEmptyPassword
	}

	newHash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return u.accounts.UpdatePassword(ctx, username, newHash, func(currentHash string) error {
		if err := u.hasher.Compare(currentHash, oldPassword); err != nil {
			return domainErrors.ErrInvalidCredentials
		}
		return nil
	})
}

// ChangeAvatar replaces the stored avatar in full and returns the bytes
// that were written.
func (u *AccountUseCase) ChangeAvatar(ctx context.Context, username string, avatar []byte) ([]byte, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domainErrors.ErrNotFound
	}
	if len(avatar) == 0 {
		return nil, domainErrors.ErrEmptyAvatar
	}

	if err := u.accounts.UpdateAvatar(ctx, username, avatar); err != nil {
		return nil, err
	}
	return avatar, nil
}

// RemoveAvatar clears the stored avatar for the account.
func (u *AccountUseCase) RemoveAvatar(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domainErrors.ErrNotFound
	}
	return u.accounts.ClearAvatar(ctx, username)
}

// Profile fetches the account for the given username.
func (u *AccountUseCase) Profile(ctx context.Context, username string) (*model.Account, error) {
	return u.accounts.GetByUsername(ctx, username)
}

// ParseToken extracts the username from a session token.
func (u *AccountUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

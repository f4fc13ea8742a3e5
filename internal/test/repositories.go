package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	mu       sync.Mutex
	Accounts map[string]*model.Account
	Err      error

	GetFn            func(context.Context, string) (*model.Account, error)
	UpdatePasswordFn func(context.Context, string, string, func(string) error) error
	UpdateAvatarFn   func(context.Context, string, []byte) error
	ClearAvatarFn    func(context.Context, string) error
}

// NewAccountRepositoryStub constructs stub repository with an initialized map.
func NewAccountRepositoryStub(accounts ...*model.Account) *AccountRepositoryStub {
	stub := &AccountRepositoryStub{Accounts: make(map[string]*model.Account)}
	for _, acc := range accounts {
		stub.Accounts[acc.Username] = acc
	}
	return stub
}

// GetByUsername fetches account by username or returns not found.
func (s *AccountRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, username)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok := s.Accounts[username]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdatePassword mimics the storage contract: the verify callback runs against
// the current hash while the account record is held exclusively.
func (s *AccountRepositoryStub) UpdatePassword(ctx context.Context, username, newHash string, verify func(currentHash string) error) error {
	if s.UpdatePasswordFn != nil {
		return s.UpdatePasswordFn(ctx, username, newHash, verify)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.Accounts[username]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if verify != nil {
		if err := verify(acc.PasswordHash); err != nil {
			return err
		}
	}
	acc.PasswordHash = newHash
	return nil
}

// UpdateAvatar stores avatar bytes or reports a missing account.
func (s *AccountRepositoryStub) UpdateAvatar(ctx context.Context, username string, avatar []byte) error {
	if s.UpdateAvatarFn != nil {
		return s.UpdateAvatarFn(ctx, username, avatar)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.Accounts[username]
	if !ok {
		return domainErrors.ErrNotFound
	}
	acc.Avatar = append([]byte(nil), avatar...)
	return nil
}

// ClearAvatar removes stored avatar or reports a missing account.
func (s *AccountRepositoryStub) ClearAvatar(ctx context.Context, username string) error {
	if s.ClearAvatarFn != nil {
		return s.ClearAvatarFn(ctx, username)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.Accounts[username]
	if !ok {
		return domainErrors.ErrNotFound
	}
	acc.Avatar = nil
	return nil
}

// SalesRepositoryStub lets tests control sales data per year.
type SalesRepositoryStub struct {
	Records map[int]*model.SalesRecord
	Err     error

	MaxYearFn   func(context.Context) (int, error)
	GetByYearFn func(context.Context, int) (*model.SalesRecord, error)
}

// NewSalesRepositoryStub constructs stub repository from records.
func NewSalesRepositoryStub(records ...*model.SalesRecord) *SalesRepositoryStub {
	stub := &SalesRepositoryStub{Records: make(map[int]*model.SalesRecord)}
	for _, r := range records {
		stub.Records[r.Year] = r
	}
	return stub
}

// MaxYear returns the latest year present or not found when empty.
func (s *SalesRepositoryStub) MaxYear(ctx context.Context) (int, error) {
	if s.MaxYearFn != nil {
		return s.MaxYearFn(ctx)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	max := 0
	for year := range s.Records {
		if year > max {
			max = year
		}
	}
	if max == 0 {
		return 0, domainErrors.ErrNotFound
	}
	return max, nil
}

// GetByYear fetches a record by year or returns not found.
func (s *SalesRepositoryStub) GetByYear(ctx context.Context, year int) (*model.SalesRecord, error) {
	if s.GetByYearFn != nil {
		return s.GetByYearFn(ctx, year)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if rec, ok := s.Records[year]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

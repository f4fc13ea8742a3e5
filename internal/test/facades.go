package test

import (
	"context"

	"github.com/polkiloo/opsdash/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (*model.Account, string, error)
	ParseFn func(string) (string, error)
}

// Login delegates to provided function or returns a default account.
func (s AuthFacadeStub) Login(ctx context.Context, username, password string) (*model.Account, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &model.Account{Username: username, DisplayName: username}, "token", nil
}

// ParseToken delegates to provided function or echoes a default subject.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user", nil
}

// ProfileFacadeStub simulates account mutations.
type ProfileFacadeStub struct {
	ProfileFn        func(context.Context, string) (*model.Account, error)
	ChangePasswordFn func(context.Context, string, string, string) error
	ChangeAvatarFn   func(context.Context, string, []byte) ([]byte, error)
	RemoveAvatarFn   func(context.Context, string) error
}

// Profile returns configured account or a default one.
func (s ProfileFacadeStub) Profile(ctx context.Context, username string) (*model.Account, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, username)
	}
	return &model.Account{Username: username, DisplayName: username}, nil
}

// ChangePassword executes configured handler.
func (s ProfileFacadeStub) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, username, oldPassword, newPassword)
	}
	return nil
}

// ChangeAvatar executes configured handler or echoes the payload.
func (s ProfileFacadeStub) ChangeAvatar(ctx context.Context, username string, avatar []byte) ([]byte, error) {
	if s.ChangeAvatarFn != nil {
		return s.ChangeAvatarFn(ctx, username, avatar)
	}
	return avatar, nil
}

// RemoveAvatar executes configured handler.
func (s ProfileFacadeStub) RemoveAvatar(ctx context.Context, username string) error {
	if s.RemoveAvatarFn != nil {
		return s.RemoveAvatarFn(ctx, username)
	}
	return nil
}

// SalesFacadeStub returns preconfigured sales reports.
type SalesFacadeStub struct {
	ReportFn func(context.Context) (*model.SalesReport, error)
	Report   *model.SalesReport
}

// SalesReport returns stored report or delegates to override.
func (s SalesFacadeStub) SalesReport(ctx context.Context) (*model.SalesReport, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx)
	}
	if s.Report != nil {
		return s.Report, nil
	}
	return &model.SalesReport{Current: &model.SalesRecord{Year: 2024, Target: 100}}, nil
}

// HealthFacadeStub simulates readiness probes.
type HealthFacadeStub struct {
	PingFn func(context.Context) error
}

// Ping executes configured probe or reports healthy.
func (s HealthFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}

// DashboardFacadeStub aggregates all facade stubs for router level tests.
type DashboardFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	SalesFacadeStub
	HealthFacadeStub
}

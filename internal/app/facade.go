package app

import (
	"context"

	"github.com/polkiloo/opsdash/internal/domain/model"
	"github.com/polkiloo/opsdash/internal/usecase"
)

// HealthChecker reports storage connectivity for readiness probes.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// DashboardFacade aggregates the use cases behind one surface for the
// HTTP layer.
type DashboardFacade struct {
	accounts *usecase.AccountUseCase
	sales    *usecase.SalesUseCase
	health   HealthChecker
}

func NewDashboardFacade(accounts *usecase.AccountUseCase, sales *usecase.SalesUseCase, health HealthChecker) *DashboardFacade {
	return &DashboardFacade{accounts: accounts, sales: sales, health: health}
}

func (f *DashboardFacade) Login(ctx context.Context, username, password string) (*model.Account, string, error) {
	return f.accounts.Login(ctx, username, password)
}

func (f *DashboardFacade) ParseToken(token string) (string, error) {
	return f.accounts.ParseToken(token)
}

func (f *DashboardFacade) Profile(ctx context.Context, username string) (*model.Account, error) {
	return f.accounts.Profile(ctx, username)
}

func (f *DashboardFacade) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	return f.accounts.ChangePassword(ctx, username, oldPassword, newPassword)
}

func (f *DashboardFacade) ChangeAvatar(ctx context.Context, username string, avatar []byte) ([]byte, error) {
	return f.accounts.ChangeAvatar(ctx, username, avatar)
}

func (f *DashboardFacade) RemoveAvatar(ctx context.Context, username string) error {
	return f.accounts.RemoveAvatar(ctx, username)
}

func (f *DashboardFacade) SalesReport(ctx context.Context) (*model.SalesReport, error) {
	return f.sales.Report(ctx)
}

func (f *DashboardFacade) Ping(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}

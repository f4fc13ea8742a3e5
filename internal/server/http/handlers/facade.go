package handlers

import (
	"context"

	"github.com/polkiloo/opsdash/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, username, password string) (*model.Account, string, error)
	ParseToken(token string) (string, error)
}

// ProfileFacade encapsulates account mutations exposed via HTTP.
type ProfileFacade interface {
	Profile(ctx context.Context, username string) (*model.Account, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	ChangeAvatar(ctx context.Context, username string, avatar []byte) ([]byte, error)
	RemoveAvatar(ctx context.Context, username string) error
}

// SalesFacade provides the sales performance report.
type SalesFacade interface {
	SalesReport(ctx context.Context) (*model.SalesReport, error)
}

// HealthFacade exposes the storage readiness probe.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	AuthFacade
	ProfileFacade
	SalesFacade
	HealthFacade
}

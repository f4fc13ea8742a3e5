package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/domain/model"
	testhelpers "github.com/polkiloo/opsdash/internal/test"
	"github.com/polkiloo/opsdash/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error { return s.err }

func newTestFacade(health HealthChecker, accounts ...*model.Account) *DashboardFacade {
	accountUC := usecase.NewAccountUseCase(
		testhelpers.NewAccountRepositoryStub(accounts...),
		testhelpers.HasherStub{},
		testhelpers.StrategyStub{},
	)
	salesUC := usecase.NewSalesUseCase(testhelpers.NewSalesRepositoryStub(
		&model.SalesRecord{Year: 2024, Target: 100, June: 40},
	))
	return NewDashboardFacade(accountUC, salesUC, health)
}

func TestDashboardFacadeDelegation(t *testing.T) {
	facade := newTestFacade(healthCheckerStub{}, &model.Account{Username: "alice", PasswordHash: "hash:secret"})
	ctx := context.Background()

	acc, token, err := facade.Login(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if acc.Username != "alice" || token == "" {
		t.Fatalf("unexpected login result %+v %q", acc, token)
	}

	username, err := facade.ParseToken(token)
	if err != nil || username != "alice" {
		t.Fatalf("parse token failed: %q %v", username, err)
	}

	if _, err := facade.Profile(ctx, "alice"); err != nil {
		t.Fatalf("profile failed: %v", err)
	}

	if err := facade.ChangePassword(ctx, "alice", "secret", "fresh"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, err := facade.Login(ctx, "alice", "fresh"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}

	stored, err := facade.ChangeAvatar(ctx, "alice", []byte{1, 2, 3})
	if err != nil || len(stored) != 3 {
		t.Fatalf("change avatar failed: %v %v", stored, err)
	}
	if err := facade.RemoveAvatar(ctx, "alice"); err != nil {
		t.Fatalf("remove avatar failed: %v", err)
	}

	report, err := facade.SalesReport(ctx)
	if err != nil {
		t.Fatalf("sales report failed: %v", err)
	}
	if report.Current.Year != 2024 {
		t.Fatalf("unexpected report %+v", report)
	}

	if err := facade.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestDashboardFacadePingFailure(t *testing.T) {
	pingErr := errors.New("storage down")
	facade := newTestFacade(healthCheckerStub{err: pingErr})

	if err := facade.Ping(context.Background()); !errors.Is(err, pingErr) {
		t.Fatalf("expected ping error, got %v", err)
	}
}

func TestDashboardFacadePingWithoutChecker(t *testing.T) {
	facade := newTestFacade(nil)

	if err := facade.Ping(context.Background()); err != nil {
		t.Fatalf("expected nil checker to report healthy, got %v", err)
	}
}

func TestDashboardFacadeLoginPropagatesErrors(t *testing.T) {
	facade := newTestFacade(healthCheckerStub{})

	if _, _, err := facade.Login(context.Background(), "ghost", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/opsdash/internal/app"
	"github.com/polkiloo/opsdash/internal/config"
	"github.com/polkiloo/opsdash/internal/domain/repository"
	"github.com/polkiloo/opsdash/internal/storage/postgres"
	"github.com/polkiloo/opsdash/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		AuthSecret:      "secret",
		TokenStrategy:   "hmac",
		TokenTTL:        time.Minute,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	accountRepo := test.NewAccountRepositoryStub()
	salesRepo := test.NewSalesRepositoryStub()

	var facade *app.DashboardFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.AccountRepository(accountRepo)),
			fx.Replace(repository.SalesRepository(salesRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected dashboard facade instance")
	}
}

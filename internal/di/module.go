package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/opsdash/internal/app"
	"github.com/polkiloo/opsdash/internal/config"
	"github.com/polkiloo/opsdash/internal/logger"
	"github.com/polkiloo/opsdash/internal/pkg/auth"
	"github.com/polkiloo/opsdash/internal/server/http/handlers"
	"github.com/polkiloo/opsdash/internal/server/http/router"
	"github.com/polkiloo/opsdash/internal/storage/postgres"
	"github.com/polkiloo/opsdash/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.DashboardFacade) handlers.DashboardFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

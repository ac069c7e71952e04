package di

import (
	"go.uber.org/fx"

	"github.com/erpre/backoffice/internal/app"
	"github.com/erpre/backoffice/internal/config"
	"github.com/erpre/backoffice/internal/logger"
	"github.com/erpre/backoffice/internal/pkg/auth"
	"github.com/erpre/backoffice/internal/server/http/handlers"
	"github.com/erpre/backoffice/internal/server/http/router"
	"github.com/erpre/backoffice/internal/storage/postgres"
	"github.com/erpre/backoffice/internal/usecase"
)

// Module composes the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.BackofficeFacade) handlers.BackofficeFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

package di

import (
	"go.uber.org/fx"

	"github.com/pvlbrzn/ITSchool/internal/adapter/scraper"
	"github.com/pvlbrzn/ITSchool/internal/adapter/telegram"
	"github.com/pvlbrzn/ITSchool/internal/app"
	"github.com/pvlbrzn/ITSchool/internal/config"
	"github.com/pvlbrzn/ITSchool/internal/logger"
	"github.com/pvlbrzn/ITSchool/internal/pkg/auth"
	"github.com/pvlbrzn/ITSchool/internal/server/http/router"
	"github.com/pvlbrzn/ITSchool/internal/storage/postgres"
	"github.com/pvlbrzn/ITSchool/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		telegram.Module,
		scraper.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

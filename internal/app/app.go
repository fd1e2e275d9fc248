package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/pvlbrzn/ITSchool/internal/adapter/telegram"
	"github.com/pvlbrzn/ITSchool/internal/config"
	"github.com/pvlbrzn/ITSchool/internal/server/http/handlers"
	"github.com/pvlbrzn/ITSchool/internal/storage/postgres"
	"github.com/pvlbrzn/ITSchool/internal/usecase"
	"github.com/pvlbrzn/ITSchool/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewSchoolFacade,
		newHTTPServer,
		newNotificationDispatcher,
		newIngestionScheduler,
		func(f *SchoolFacade) handlers.SchoolFacade { return f },
		func(f *SchoolFacade) managerSeeder { return f },
		func(s *postgres.Storage) handlers.HealthChecker { return s },
		func(d *worker.NotificationDispatcher) usecase.EventPublisher { return d },
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type dispatcherParams struct {
	fx.In

	Telegram *telegram.HTTPNotifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newNotificationDispatcher(p dispatcherParams) *worker.NotificationDispatcher {
	var notifier worker.Notifier = worker.LogNotifier{Logger: p.Logger}
	if p.Telegram != nil {
		notifier = p.Telegram
	}
	return worker.NewNotificationDispatcher(notifier, p.Config.NotifyQueueSize, p.Config.NotifyMaxAttempts, p.Logger)
}

type schedulerParams struct {
	fx.In

	Ingestion *usecase.IngestionUseCase
	Config    *config.Config
	Logger    *slog.Logger
}

func newIngestionScheduler(p schedulerParams) (*worker.IngestionScheduler, error) {
	return worker.NewIngestionScheduler(p.Config.BlogSchedule, p.Ingestion, p.Logger)
}

// managerSeeder creates the back-office account configured at start.
type managerSeeder interface {
	EnsureManager(ctx context.Context, login, password, fullName string) (bool, error)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Dispatcher *worker.NotificationDispatcher
	Scheduler  *worker.IngestionScheduler
	Seeder     managerSeeder
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting itschool", slog.String("addr", p.Server.Addr))
			seedManager(ctx, p)
			p.Dispatcher.Start(ctx)
			p.Scheduler.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			// In-flight requests may still publish events, so the server
			// goes first and the dispatcher drains last.
			err := p.Server.Shutdown(shutdownCtx)
			p.Scheduler.Stop()
			p.Dispatcher.Stop()

			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("itschool stopped")
			return nil
		},
	})
}

func seedManager(ctx context.Context, p lifecycleParams) {
	if p.Seeder == nil || p.Config.ManagerLogin == "" {
		return
	}
	created, err := p.Seeder.EnsureManager(ctx, p.Config.ManagerLogin, p.Config.ManagerPassword, p.Config.ManagerFullName)
	if err != nil {
		p.Logger.Error("seed manager account", slog.String("login", p.Config.ManagerLogin), slog.String("error", err.Error()))
		return
	}
	if created {
		p.Logger.Info("manager account created", slog.String("login", p.Config.ManagerLogin))
	}
}

package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/pvlbrzn/ITSchool/internal/adapter/telegram"
	"github.com/pvlbrzn/ITSchool/internal/config"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	testhelpers "github.com/pvlbrzn/ITSchool/internal/test"
	"github.com/pvlbrzn/ITSchool/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type seederStub struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *seederStub) EnsureManager(_ context.Context, login, _, _ string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, login)
	return s.err == nil, s.err
}

func (s *seederStub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func newTestRuntime(t *testing.T) (*worker.NotificationDispatcher, *worker.IngestionScheduler) {
	t.Helper()
	logger := discardLogger()
	dispatcher := worker.NewNotificationDispatcher(worker.LogNotifier{Logger: logger}, 4, 1, logger)
	scheduler, err := worker.NewIngestionScheduler("", &testhelpers.IngestorStub{}, logger)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	return dispatcher, scheduler
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewNotificationDispatcher(t *testing.T) {
	cfg := &config.Config{NotifyQueueSize: 2, NotifyMaxAttempts: 2}
	if d := newNotificationDispatcher(dispatcherParams{Config: cfg, Logger: discardLogger()}); d == nil {
		t.Fatal("expected dispatcher with log notifier")
	}

	notifier, err := telegram.NewHTTPNotifier("http://127.0.0.1:1", "token", "chat", "UTC", discardLogger())
	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}
	if d := newNotificationDispatcher(dispatcherParams{Telegram: notifier, Config: cfg, Logger: discardLogger()}); d == nil {
		t.Fatal("expected dispatcher with telegram notifier")
	}
}

func TestNewIngestionSchedulerUsesConfig(t *testing.T) {
	scheduler, err := newIngestionScheduler(schedulerParams{Config: &config.Config{BlogSchedule: "@daily"}, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scheduler.Enabled() {
		t.Fatal("expected enabled scheduler")
	}

	if _, err := newIngestionScheduler(schedulerParams{Config: &config.Config{BlogSchedule: "every tuesday"}, Logger: discardLogger()}); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	dispatcher, scheduler := newTestRuntime(t)
	seeder := &seederStub{}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond, ManagerLogin: "admin", ManagerPassword: "password1"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Dispatcher: dispatcher,
		Scheduler:  scheduler,
		Seeder:     seeder,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := recorder.Start(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	if calls := seeder.Calls(); len(calls) != 1 || calls[0] != "admin" {
		t.Fatalf("expected manager seeded once, got %v", calls)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = recorder.Stop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func TestRegisterLifecycleDeliversEventsFromInFlightRequests(t *testing.T) {
	notifier := &testhelpers.NotifierStub{}
	dispatcher := worker.NewNotificationDispatcher(notifier, 4, 1, discardLogger())
	scheduler, err := worker.NewIngestionScheduler("", &testhelpers.IngestorStub{}, discardLogger())
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	entered := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		time.Sleep(100 * time.Millisecond)
		dispatcher.Publish(model.EnrollmentEvent{EventID: "in-flight", RequestID: 1})
		w.WriteHeader(http.StatusCreated)
	})
	addr := freeAddr(t)
	server := &http.Server{Addr: addr, Handler: mux}

	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     discardLogger(),
		Server:     server,
		Dispatcher: dispatcher,
		Scheduler:  scheduler,
		Seeder:     &seederStub{},
		Config:     &config.Config{ShutdownTimeout: 2 * time.Second},
	})
	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	go func() {
		for i := 0; i < 50; i++ {
			resp, err := http.Get("http://" + addr + "/submit")
			if err == nil {
				_ = resp.Body.Close()
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("request never reached the server")
	}

	if err := recorder.Stop(context.Background()); err != nil {
		t.Fatalf("on stop failed: %v", err)
	}

	delivered := notifier.Delivered()
	if len(delivered) != 1 || delivered[0].EventID != "in-flight" {
		t.Fatalf("expected in-flight event delivered on stop, got %+v", delivered)
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "bad addr"}
	dispatcher, scheduler := newTestRuntime(t)

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Dispatcher: dispatcher,
		Scheduler:  scheduler,
		Seeder:     &seederStub{},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestSeedManager(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	seeder := &seederStub{}
	seedManager(context.Background(), lifecycleParams{Logger: logger, Seeder: seeder, Config: &config.Config{}})
	if len(seeder.Calls()) != 0 {
		t.Fatal("expected no seeding without configured login")
	}

	seeder.err = errors.New("db down")
	seedManager(context.Background(), lifecycleParams{Logger: logger, Seeder: seeder, Config: &config.Config{ManagerLogin: "admin"}})
	if len(seeder.Calls()) != 1 {
		t.Fatal("expected seeding attempt")
	}
	if !strings.Contains(buf.String(), `"level":"ERROR"`) {
		t.Fatalf("expected error log, got %s", buf.String())
	}
}

func TestLifecycleRecorderOrder(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	var order []string
	for _, name := range []string{"a", "b"} {
		recorder.Append(fx.Hook{
			OnStart: func(context.Context) error { order = append(order, "start "+name); return nil },
			OnStop:  func(context.Context) error { order = append(order, "stop "+name); return nil },
		})
	}
	recorder.Append(fx.Hook{})

	_ = recorder.Start(context.Background())
	_ = recorder.Stop(context.Background())
	want := []string{"start a", "start b", "stop b", "stop a"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected hook order %v", order)
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}

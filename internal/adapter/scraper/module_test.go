package scraper

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/pvlbrzn/ITSchool/internal/config"
)

func TestModuleProvidesHTTPFetcher(t *testing.T) {
	var (
		fetcher Fetcher
		s       *Scraper
	)
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(&config.Config{BlogFetchTimeout: 5 * time.Second}),
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Module,
		fx.Populate(&fetcher, &s),
	)
	app.RequireStart()
	defer app.RequireStop()

	httpFetcher, ok := fetcher.(*HTTPFetcher)
	if !ok {
		t.Fatalf("expected http fetcher, got %T", fetcher)
	}
	if httpFetcher.httpClient.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", httpFetcher.httpClient.Timeout)
	}
	if s == nil {
		t.Fatal("expected scraper")
	}
}

func TestModuleProvidesChromeFetcher(t *testing.T) {
	var fetcher Fetcher
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(&config.Config{BlogBrowser: true}),
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Module,
		fx.Populate(&fetcher),
	)
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, ok := fetcher.(*ChromeFetcher); !ok {
		t.Fatalf("expected chrome fetcher, got %T", fetcher)
	}
	app.RequireStop()
}

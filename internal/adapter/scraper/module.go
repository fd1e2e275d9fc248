package scraper

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/pvlbrzn/ITSchool/internal/config"
	"github.com/pvlbrzn/ITSchool/internal/usecase"
)

// Module provides the blog scraper with a fetcher chosen by configuration.
var Module = fx.Options(
	fx.Provide(newFetcher),
	fx.Provide(New),
	fx.Provide(func(s *Scraper) usecase.BlogScraper { return s }),
)

type fetcherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newFetcher(p fetcherParams) Fetcher {
	if !p.Config.BlogBrowser {
		return NewHTTPFetcher(p.Config.BlogFetchTimeout)
	}

	p.Logger.Info("blog pages will be rendered in headless chrome")
	chrome := NewChromeFetcher()
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			chrome.Close()
			return nil
		},
	})
	return chrome
}

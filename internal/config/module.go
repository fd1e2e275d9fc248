package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes configuration loader for fx graphs and logs the effective
// settings once the logger is available.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(logSummary),
)

// logSummary reports non-secret settings.
func logSummary(cfg *Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("run_address", cfg.RunAddress),
		slog.String("public_base_url", cfg.PublicBaseURL),
		slog.Bool("telegram", cfg.TelegramEnabled()),
		slog.String("blog_index_url", cfg.BlogIndexURL),
		slog.String("blog_schedule", cfg.BlogSchedule),
		slog.Bool("blog_browser", cfg.BlogBrowser),
		slog.Bool("manager_seed", cfg.ManagerLogin != ""),
	)
}

package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/pvlbrzn/ITSchool/internal/config"
)

// Module exposes the chat notifier to fx graph. It provides nil when the
// bot is not configured.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) (*HTTPNotifier, error) {
	if !p.Config.TelegramEnabled() {
		p.Logger.Info("telegram notifications disabled")
		return nil, nil
	}
	return NewHTTPNotifier(p.Config.TelegramAPIURL, p.Config.TelegramBotToken, p.Config.TelegramChatID, p.Config.NotifyTimezone, p.Logger)
}

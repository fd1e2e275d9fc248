package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	ShutdownTimeout time.Duration
	LogLevel        string
	PublicBaseURL   string

	TelegramBotToken string
	TelegramChatID   string
	TelegramAPIURL   string

	NotifyTimezone    string
	NotifyQueueSize   int
	NotifyMaxAttempts int

	BlogIndexURL     string
	BlogMaxArticles  int
	BlogFetchTimeout time.Duration
	BlogAuthor       string
	BlogSchedule     string
	BlogBrowser      bool

	ManagerLogin    string
	ManagerPassword string
	ManagerFullName string
}

const (
	defaultRunAddress        = ":8080"
	defaultJWTSecret         = "change-me-in-production"
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "info"
	defaultPublicBaseURL     = "http://localhost:8080"
	defaultTelegramAPIURL    = "https://api.telegram.org"
	defaultNotifyTimezone    = "Europe/Moscow"
	defaultNotifyQueueSize   = 64
	defaultNotifyMaxAttempts = 3
	defaultBlogIndexURL      = "https://teachmeskills.by/blog"
	defaultBlogMaxArticles   = 15
	defaultBlogFetchTimeout  = 30 * time.Second
	defaultBlogAuthor        = "TeachMeSkills"
	defaultManagerFullName   = "Manager"

	defaultDotEnvFile = ".env"
)

// Load parses configuration from flags, environment variables and an optional .env file.
func Load() (*Config, error) {
	path := defaultDotEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		path = v
	}
	lookup, err := withDotEnv(os.LookupEnv, path)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

// withDotEnv layers values from a .env file under the process environment.
// A missing file is not an error.
func withDotEnv(lookup envLookup, path string) (envLookup, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		PublicBaseURL:     getString(lookup, "PUBLIC_BASE_URL", defaultPublicBaseURL),
		TelegramBotToken:  getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    getString(lookup, "TELEGRAM_CHAT_ID", ""),
		TelegramAPIURL:    getString(lookup, "TELEGRAM_API_URL", defaultTelegramAPIURL),
		NotifyTimezone:    getString(lookup, "NOTIFY_TIMEZONE", defaultNotifyTimezone),
		NotifyQueueSize:   getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyMaxAttempts: getInt(lookup, "NOTIFY_MAX_ATTEMPTS", defaultNotifyMaxAttempts),
		BlogIndexURL:      getString(lookup, "BLOG_INDEX_URL", defaultBlogIndexURL),
		BlogMaxArticles:   getInt(lookup, "BLOG_MAX_ARTICLES", defaultBlogMaxArticles),
		BlogFetchTimeout:  getDuration(lookup, "BLOG_FETCH_TIMEOUT", defaultBlogFetchTimeout),
		BlogAuthor:        getString(lookup, "BLOG_AUTHOR", defaultBlogAuthor),
		BlogSchedule:      getString(lookup, "BLOG_SCHEDULE", ""),
		BlogBrowser:       getBool(lookup, "BLOG_BROWSER", false),
		ManagerLogin:      getString(lookup, "MANAGER_LOGIN", ""),
		ManagerPassword:   getString(lookup, "MANAGER_PASSWORD", ""),
		ManagerFullName:   getString(lookup, "MANAGER_FULL_NAME", defaultManagerFullName),
	}

	fs := flag.NewFlagSet("itschool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		fetchTimeoutStr    = cfg.BlogFetchTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.PublicBaseURL, "public-url", cfg.PublicBaseURL, "Public base URL used in notification links")
	fs.StringVar(&cfg.BlogIndexURL, "blog-url", cfg.BlogIndexURL, "Blog index page to ingest")
	fs.IntVar(&cfg.BlogMaxArticles, "blog-max", cfg.BlogMaxArticles, "Maximum articles per ingestion run")
	fs.StringVar(&fetchTimeoutStr, "blog-fetch-timeout", fetchTimeoutStr, "Per-page fetch timeout")
	fs.StringVar(&cfg.BlogSchedule, "blog-schedule", cfg.BlogSchedule, "Cron spec for scheduled ingestion")
	fs.BoolVar(&cfg.BlogBrowser, "blog-browser", cfg.BlogBrowser, "Fetch blog pages with headless Chrome")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.BlogFetchTimeout, err = time.ParseDuration(fetchTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid blog fetch timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.BlogFetchTimeout <= 0 {
		cfg.BlogFetchTimeout = defaultBlogFetchTimeout
	}

	if cfg.BlogMaxArticles <= 0 {
		cfg.BlogMaxArticles = defaultBlogMaxArticles
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyMaxAttempts <= 0 {
		cfg.NotifyMaxAttempts = defaultNotifyMaxAttempts
	}

	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if _, err := time.LoadLocation(cfg.NotifyTimezone); err != nil {
		return nil, fmt.Errorf("invalid notify timezone: %w", err)
	}

	return cfg, nil
}

// TelegramEnabled reports whether chat notifications are configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

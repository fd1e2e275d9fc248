package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// Ingestor runs a blog ingestion.
type Ingestor interface {
	Ingest(ctx context.Context, opts model.IngestOptions) (*model.IngestReport, error)
}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// IngestionScheduler triggers incremental blog ingestion on a cron schedule.
type IngestionScheduler struct {
	cron     *cron.Cron
	spec     string
	ingestor Ingestor
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewIngestionScheduler validates spec and builds a scheduler. An empty
// spec yields a scheduler whose Start and Stop do nothing.
func NewIngestionScheduler(spec string, ingestor Ingestor, logger *slog.Logger) (*IngestionScheduler, error) {
	s := &IngestionScheduler{spec: spec, ingestor: ingestor, logger: logger}
	if spec == "" {
		return s, nil
	}

	s.cron = cron.New(
		cron.WithParser(cronParser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid blog schedule %q: %w", spec, err)
	}
	return s, nil
}

// Enabled reports whether a schedule is configured.
func (s *IngestionScheduler) Enabled() bool {
	return s.cron != nil
}

// Start begins firing scheduled runs.
func (s *IngestionScheduler) Start(ctx context.Context) {
	if s.cron == nil {
		return
	}
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("blog ingestion scheduled", slog.String("spec", s.spec))
}

// Stop cancels an in-flight run and waits for it to return.
func (s *IngestionScheduler) Stop() {
	if s.cron == nil {
		return
	}
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	<-s.cron.Stop().Done()
}

func (s *IngestionScheduler) runContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

func (s *IngestionScheduler) run() {
	report, err := s.ingestor.Ingest(s.runContext(), model.IngestOptions{})
	if err != nil {
		if errors.Is(err, domainErrors.ErrIngestionRunning) {
			s.logger.Info("scheduled blog ingestion skipped: run in progress")
			return
		}
		s.logger.Error("scheduled blog ingestion failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("scheduled blog ingestion done",
		slog.Int("created", report.Created),
		slog.Int("failed", report.Failed),
	)
}

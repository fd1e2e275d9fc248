package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	testhelpers "github.com/pvlbrzn/ITSchool/internal/test"
)

func TestIngestionSchedulerDisabled(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s, err := NewIngestionScheduler("", &testhelpers.IngestorStub{}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enabled() {
		t.Fatal("empty spec must disable scheduling")
	}
	s.Start(context.Background())
	s.Stop()
}

func TestIngestionSchedulerInvalidSpec(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := NewIngestionScheduler("every tuesday", &testhelpers.IngestorStub{}, logger); err == nil {
		t.Fatal("expected invalid schedule error")
	}
}

func TestIngestionSchedulerAcceptsDescriptors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	for _, spec := range []string{"@daily", "@every 6h", "0 3 * * *", "0 0 3 * * *"} {
		s, err := NewIngestionScheduler(spec, &testhelpers.IngestorStub{}, logger)
		if err != nil {
			t.Fatalf("spec %q: unexpected error: %v", spec, err)
		}
		if !s.Enabled() {
			t.Fatalf("spec %q: expected scheduler to be enabled", spec)
		}
	}
}

func TestIngestionSchedulerRunIsIncremental(t *testing.T) {
	logs := &lockedBuffer{}
	ingestor := &testhelpers.IngestorStub{}
	s, _ := NewIngestionScheduler("@daily", ingestor, slog.New(slog.NewJSONHandler(logs, nil)))

	s.run()

	calls := ingestor.Calls()
	if len(calls) != 1 || calls[0].FullRefresh {
		t.Fatalf("expected one incremental run, got %+v", calls)
	}
	if !strings.Contains(logs.String(), "scheduled blog ingestion done") {
		t.Fatal("expected completion log")
	}
}

func TestIngestionSchedulerRunErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
		level   string
	}{
		{"already running", domainErrors.ErrIngestionRunning, "run in progress", "INFO"},
		{"fetch failure", domainErrors.ErrIngestionFetch, "scheduled blog ingestion failed", "ERROR"},
		{"other", errors.New("boom"), "scheduled blog ingestion failed", "ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &lockedBuffer{}
			ingestor := &testhelpers.IngestorStub{IngestFn: func(context.Context, model.IngestOptions) (*model.IngestReport, error) {
				return nil, tc.err
			}}
			s, _ := NewIngestionScheduler("@daily", ingestor, slog.New(slog.NewJSONHandler(logs, nil)))

			s.run()

			out := logs.String()
			if !strings.Contains(out, tc.message) || !strings.Contains(out, `"level":"`+tc.level+`"`) {
				t.Fatalf("unexpected log output %s", out)
			}
		})
	}
}

func TestIngestionSchedulerFiresAndStops(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ingestor := &testhelpers.IngestorStub{}
	s, err := NewIngestionScheduler("* * * * * *", ingestor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Start(context.Background())
	waitFor(t, 3*time.Second, func() bool { return len(ingestor.Calls()) > 0 })
	s.Stop()

	fired := len(ingestor.Calls())
	time.Sleep(1100 * time.Millisecond)
	if len(ingestor.Calls()) != fired {
		t.Fatal("no runs expected after stop")
	}
}

func TestIngestionSchedulerStopCancelsRun(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	started := make(chan struct{}, 1)
	ingestor := &testhelpers.IngestorStub{IngestFn: func(ctx context.Context, _ model.IngestOptions) (*model.IngestReport, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	s, _ := NewIngestionScheduler("* * * * * *", ingestor, logger)

	s.Start(context.Background())
	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled run did not start")
	}

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("stop must cancel in-flight run")
	}
}

package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/pvlbrzn/ITSchool/internal/adapter/telegram"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// Notifier delivers an enrollment event to managers.
type Notifier interface {
	Notify(ctx context.Context, event model.EnrollmentEvent) error
}

const (
	defaultRetryDelay   = time.Second
	defaultDrainTimeout = 5 * time.Second
)

// NotificationDispatcher delivers enrollment events in the background so
// that request submission never waits on the chat service.
type NotificationDispatcher struct {
	notifier     Notifier
	maxAttempts  int
	retryDelay   time.Duration
	drainTimeout time.Duration
	logger       *slog.Logger

	queue   chan model.EnrollmentEvent
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	stopped bool
	mu      sync.Mutex
}

// NewNotificationDispatcher constructs dispatcher with a bounded queue.
func NewNotificationDispatcher(notifier Notifier, queueSize, maxAttempts int, logger *slog.Logger) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &NotificationDispatcher{
		notifier:     notifier,
		maxAttempts:  maxAttempts,
		retryDelay:   defaultRetryDelay,
		drainTimeout: defaultDrainTimeout,
		logger:       logger,
		queue:        make(chan model.EnrollmentEvent, queueSize),
	}
}

// Publish enqueues event without blocking. A full queue or a stopped
// dispatcher drops the event with a warning.
func (d *NotificationDispatcher) Publish(event model.EnrollmentEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.logger.Warn("notification dropped: dispatcher stopped",
			slog.String("event_id", event.EventID),
			slog.Int64("request_id", event.RequestID),
		)
		return
	}

	select {
	case d.queue <- event:
	default:
		d.logger.Warn("notification queue full, event dropped",
			slog.String("event_id", event.EventID),
			slog.Int64("request_id", event.RequestID),
		)
	}
}

// Start launches the delivery loop.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil || d.stopped {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel

	d.wg.Add(1)
	go d.run(runCtx)
}

// Stop terminates the delivery loop, then delivers what is still queued
// within the drain timeout. Events that do not fit are logged as undelivered.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
	d.drain()
}

func (d *NotificationDispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), d.drainTimeout)
	defer cancel()

	for {
		select {
		case event := <-d.queue:
			if ctx.Err() != nil {
				d.logger.Warn("notification left undelivered on stop",
					slog.String("event_id", event.EventID),
					slog.Int64("request_id", event.RequestID),
				)
				continue
			}
			d.deliver(ctx, event)
		default:
			return
		}
	}
}

func (d *NotificationDispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.queue:
			d.deliver(ctx, event)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, event model.EnrollmentEvent) {
	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if err = d.notifier.Notify(ctx, event); err == nil {
			d.logger.Debug("enrollment notification sent",
				slog.String("event_id", event.EventID),
				slog.Int("attempt", attempt),
			)
			return
		}
		if attempt == d.maxAttempts {
			break
		}

		delay := d.retryDelay * time.Duration(attempt)
		var rateLimited telegram.TooManyRequestsError
		if errors.As(err, &rateLimited) {
			d.logger.Warn("notification rate limited", slog.Duration("retry_after", rateLimited.RetryAfter))
			delay = rateLimited.RetryAfter
		}
		if !sleepContext(ctx, delay) {
			break
		}
	}

	d.logger.Error("enrollment notification failed",
		slog.String("event_id", event.EventID),
		slog.Int64("request_id", event.RequestID),
		slog.String("error", err.Error()),
	)
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// LogNotifier records events in the log. It stands in when no chat is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(_ context.Context, event model.EnrollmentEvent) error {
	n.Logger.Info("new enrollment request",
		slog.String("event_id", event.EventID),
		slog.Int64("request_id", event.RequestID),
		slog.String("user", event.RequesterName),
		slog.String("course", event.CourseTitle),
		slog.String("manage_url", event.ManageURL),
	)
	return nil
}

package test

import (
	"context"
	"sync"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// EventPublisherStub collects published enrollment events.
type EventPublisherStub struct {
	mu     sync.Mutex
	events []model.EnrollmentEvent
}

// Publish records event.
func (s *EventPublisherStub) Publish(event model.EnrollmentEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a copy of recorded events.
func (s *EventPublisherStub) Events() []model.EnrollmentEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.EnrollmentEvent(nil), s.events...)
}

// NotifierStub records delivery attempts.
type NotifierStub struct {
	NotifyFn func(context.Context, model.EnrollmentEvent) error

	mu        sync.Mutex
	delivered []model.EnrollmentEvent
	attempts  int
}

// Notify delegates to NotifyFn and records successful deliveries.
func (s *NotifierStub) Notify(ctx context.Context, event model.EnrollmentEvent) error {
	s.mu.Lock()
	s.attempts++
	s.mu.Unlock()

	if s.NotifyFn != nil {
		if err := s.NotifyFn(ctx, event); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.delivered = append(s.delivered, event)
	s.mu.Unlock()
	return nil
}

// Delivered returns successfully delivered events.
func (s *NotifierStub) Delivered() []model.EnrollmentEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.EnrollmentEvent(nil), s.delivered...)
}

// Attempts returns number of Notify calls.
func (s *NotifierStub) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// BlogScraperStub serves canned index links and articles and counts fetches.
type BlogScraperStub struct {
	Links       []string
	IndexErr    error
	Articles    map[string]model.BlogPost
	ArticleErrs map[string]error
	ArticleFn   func(context.Context, string) (model.BlogPost, error)

	mu         sync.Mutex
	indexCalls int
	calls      map[string]int
}

// IndexLinks returns configured links.
func (s *BlogScraperStub) IndexLinks(ctx context.Context, indexURL string) ([]string, error) {
	s.mu.Lock()
	s.indexCalls++
	s.mu.Unlock()
	if s.IndexErr != nil {
		return nil, s.IndexErr
	}
	return append([]string(nil), s.Links...), nil
}

// Article returns configured article for url.
func (s *BlogScraperStub) Article(ctx context.Context, articleURL string) (model.BlogPost, error) {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[articleURL]++
	s.mu.Unlock()

	if s.ArticleFn != nil {
		return s.ArticleFn(ctx, articleURL)
	}
	if err, ok := s.ArticleErrs[articleURL]; ok {
		return model.BlogPost{}, err
	}
	return s.Articles[articleURL], nil
}

// Calls returns how many times url was fetched.
func (s *BlogScraperStub) Calls(articleURL string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[articleURL]
}

// TotalCalls returns the number of article fetches.
func (s *BlogScraperStub) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// IndexCalls returns the number of index fetches.
func (s *BlogScraperStub) IndexCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexCalls
}

// IngestorStub implements scheduled ingestion contract.
type IngestorStub struct {
	IngestFn func(context.Context, model.IngestOptions) (*model.IngestReport, error)

	mu    sync.Mutex
	calls []model.IngestOptions
}

// Ingest records options and delegates to IngestFn.
func (s *IngestorStub) Ingest(ctx context.Context, opts model.IngestOptions) (*model.IngestReport, error) {
	s.mu.Lock()
	s.calls = append(s.calls, opts)
	s.mu.Unlock()
	if s.IngestFn != nil {
		return s.IngestFn(ctx, opts)
	}
	return &model.IngestReport{}, nil
}

// Calls returns recorded options.
func (s *IngestorStub) Calls() []model.IngestOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.IngestOptions(nil), s.calls...)
}

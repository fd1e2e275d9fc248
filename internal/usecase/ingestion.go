package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pvlbrzn/ITSchool/internal/config"
	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
)

const defaultFetchTimeout = 30 * time.Second

// BlogScraper reads the external blog.
type BlogScraper interface {
	// IndexLinks returns absolute article links in document order.
	IndexLinks(ctx context.Context, indexURL string) ([]string, error)
	// Article extracts a single post. An empty Title means the page has no heading.
	Article(ctx context.Context, articleURL string) (model.BlogPost, error)
}

// IngestionUseCase mirrors external blog articles into local storage.
type IngestionUseCase struct {
	blogs        repository.BlogRepository
	scraper      BlogScraper
	indexURL     string
	maxArticles  int
	fetchTimeout time.Duration
	author       string
	logger       *slog.Logger
	now          func() time.Time

	running atomic.Bool
}

// NewIngestionUseCase constructs IngestionUseCase.
func NewIngestionUseCase(blogs repository.BlogRepository, scraper BlogScraper, cfg *config.Config, logger *slog.Logger) *IngestionUseCase {
	timeout := cfg.BlogFetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &IngestionUseCase{
		blogs:        blogs,
		scraper:      scraper,
		indexURL:     cfg.BlogIndexURL,
		maxArticles:  cfg.BlogMaxArticles,
		fetchTimeout: timeout,
		author:       cfg.BlogAuthor,
		logger:       logger,
		now:          time.Now,
	}
}

// Ingest fetches the blog index and stores articles not seen before.
// Only the index fetch and the full-refresh wipe abort the run; article
// failures are counted in the report.
func (u *IngestionUseCase) Ingest(ctx context.Context, opts model.IngestOptions) (*model.IngestReport, error) {
	if !u.running.CompareAndSwap(false, true) {
		return nil, domainErrors.ErrIngestionRunning
	}
	defer u.running.Store(false)

	if opts.FullRefresh {
		removed, err := u.blogs.Clear(ctx)
		if err != nil {
			return nil, fmt.Errorf("clear blog posts: %w", err)
		}
		u.logger.Info("blog posts cleared", slog.Int64("removed", removed))
	}

	links, err := u.indexLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrIngestionFetch, err)
	}

	report := &model.IngestReport{Links: len(links)}
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		u.ingestArticle(ctx, link, report)
	}

	u.logger.Info("blog ingestion finished",
		slog.Int("links", report.Links),
		slog.Int("created", report.Created),
		slog.Int("existing", report.Existing),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

// Running reports whether a run is in progress.
func (u *IngestionUseCase) Running() bool {
	return u.running.Load()
}

func (u *IngestionUseCase) indexLinks(ctx context.Context) ([]string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()

	raw, err := u.scraper.IndexLinks(fetchCtx, u.indexURL)
	if err != nil {
		return nil, err
	}
	return dedupLinks(raw, u.maxArticles), nil
}

func (u *IngestionUseCase) ingestArticle(ctx context.Context, link string, report *model.IngestReport) {
	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	post, err := u.scraper.Article(fetchCtx, link)
	cancel()
	if err != nil {
		report.Failed++
		u.logger.Warn("blog article fetch failed", slog.String("url", link), slog.String("error", err.Error()))
		return
	}

	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		report.Skipped++
		u.logger.Warn("blog article skipped: no title", slog.String("url", link))
		return
	}
	post.Author = u.author
	post.Date = u.now()

	created, err := u.blogs.InsertIfAbsent(ctx, post)
	if err != nil {
		report.Failed++
		u.logger.Warn("blog article store failed", slog.String("url", link), slog.String("error", err.Error()))
		return
	}
	if created {
		report.Created++
		u.logger.Info("blog article added", slog.String("title", post.Title))
		return
	}
	report.Existing++
	u.logger.Debug("blog article already stored", slog.String("title", post.Title))
}

// dedupLinks drops repeated and empty links keeping first-seen order and
// truncates the result to limit entries when limit is positive.
func dedupLinks(links []string, limit int) []string {
	seen := make(map[string]struct{}, len(links))
	result := make([]string, 0, len(links))
	for _, link := range links {
		if link == "" {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		result = append(result, link)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

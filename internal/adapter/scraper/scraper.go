package scraper

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// Scraper reads the blog through a Fetcher.
type Scraper struct {
	fetcher Fetcher
}

func New(fetcher Fetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}

// IndexLinks fetches the index page and returns absolute article links.
func (s *Scraper) IndexLinks(ctx context.Context, indexURL string) ([]string, error) {
	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("parse index url: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("index url must be absolute")
	}

	page, err := s.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	return ParseIndexLinks(page, base)
}

// Article fetches and parses a single article page.
func (s *Scraper) Article(ctx context.Context, articleURL string) (model.BlogPost, error) {
	page, err := s.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return model.BlogPost{}, err
	}
	return ParseArticle(page)
}

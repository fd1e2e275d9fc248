package scraper

import (
	"context"
	"sync"

	"github.com/chromedp/chromedp"
)

// ChromeFetcher renders pages in headless Chrome before reading the DOM.
// It serves sites that assemble content with JavaScript.
type ChromeFetcher struct {
	opts []chromedp.ExecAllocatorOption

	mu          sync.Mutex
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeFetcher creates fetcher; the browser process starts on first use.
func NewChromeFetcher(extra ...chromedp.ExecAllocatorOption) *ChromeFetcher {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.UserAgent(defaultUserAgent),
	)
	opts = append(opts, extra...)
	return &ChromeFetcher{opts: opts}
}

func (f *ChromeFetcher) allocator() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.allocCtx == nil {
		f.allocCtx, f.allocCancel = chromedp.NewExecAllocator(context.Background(), f.opts...)
	}
	return f.allocCtx
}

// Fetch navigates to pageURL and returns the rendered document.
func (f *ChromeFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	tabCtx, cancelTab := chromedp.NewContext(f.allocator())
	defer cancelTab()

	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	return html, nil
}

// Close shuts the browser down.
func (f *ChromeFetcher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.allocCancel != nil {
		f.allocCancel()
		f.allocCtx = nil
		f.allocCancel = nil
	}
}

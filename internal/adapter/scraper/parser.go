package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

const (
	selectorArticleLink = "div.t-card__title a[href]"
	selectorTitle       = "h1"
	selectorImage       = "img.t-img[data-original]"
	selectorAnnotation  = "div.t-text.t-text_md"
	selectorContent     = "div.t-col.t-col_10.t-prefix_1"

	contentSeparator = "\n\n"
)

// ParseIndexLinks returns article links of the index page resolved against
// base, in document order. Duplicates are kept.
func ParseIndexLinks(page string, base *url.URL) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	var links []string
	doc.Find(selectorArticleLink).Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})
	return links, nil
}

// ParseArticle extracts a post from an article page. Title is empty when the
// page has no h1.
func ParseArticle(page string) (model.BlogPost, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("parse article: %w", err)
	}

	post := model.BlogPost{
		Title:      cleanText(doc.Find(selectorTitle).First()),
		Image:      strings.TrimSpace(doc.Find(selectorImage).First().AttrOr("data-original", "")),
		Annotation: cleanText(doc.Find(selectorAnnotation).First()),
	}

	var blocks []string
	doc.Find(selectorContent).Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, cleanText(s))
	})
	post.Content = strings.Join(blocks, contentSeparator)

	return post, nil
}

func cleanText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

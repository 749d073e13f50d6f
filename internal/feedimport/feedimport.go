// Package feedimport downloads an RSS feed and converts its entries into
// article payloads for the ingestion endpoint. It stands in for the upstream
// content automation during local development.
package feedimport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/viniwas/newsletter-api/internal/model"
)

const maxSummaryLen = 300

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Importer downloads and parses RSS feeds.
type Importer struct {
	client HTTPClient
}

// New creates an Importer with the given HTTP client.
func New(client HTTPClient) *Importer {
	return &Importer{client: client}
}

// Fetch downloads and parses an RSS feed from the given URL.
func (i *Importer) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsletterSeed/1.0")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	parser := gofeed.NewParser()
	feed, err := parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// Articles converts feed items into article payloads for the given client.
// The category defaults to the feed title so the dashboard has a display
// label to group by.
func Articles(feed *gofeed.Feed, clientID string, limit int) []model.Article {
	category := strings.TrimSpace(feed.Title)
	if category == "" {
		category = "General"
	}

	var out []model.Article
	for _, item := range feed.Items {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, model.Article{
			ClientID: clientID,
			Headline: item.Title,
			Title:    item.Title,
			Summary:  truncate(item.Description, maxSummaryLen),
			Category: category,
			URL:      item.Link,
		})
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Package webhook hands finalized selections off to the downstream
// newsletter-assembly automation.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/viniwas/newsletter-api/internal/model"
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Payload is the body posted to the downstream webhook.
type Payload struct {
	ClientID     string          `json:"client_id"`
	ArticleCount int             `json:"article_count"`
	Articles     []model.Article `json:"articles"`
}

// Notifier posts generation triggers to a webhook target.
type Notifier struct {
	client HTTPClient
}

// New creates a Notifier with the given HTTP client.
func New(client HTTPClient) *Notifier {
	return &Notifier{client: client}
}

// Notify posts the selected articles to the webhook at url. Any non-2xx
// response is an error; the downstream automation owns retries from there.
func (n *Notifier) Notify(ctx context.Context, url string, clientID string, articles []model.Article) error {
	body, err := json.Marshal(Payload{
		ClientID:     clientID,
		ArticleCount: len(articles),
		Articles:     articles,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("http post: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

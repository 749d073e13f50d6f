// Package api is the HTTP client for the newsletter API, used by the
// dashboard and the seed tool.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/viniwas/newsletter-api/internal/model"
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the newsletter API server.
type Client struct {
	client  HTTPClient
	baseURL string
}

// New creates a Client for the API at baseURL.
func New(client HTTPClient, baseURL string) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type listResponse struct {
	Success  bool            `json:"success"`
	Articles []model.Article `json:"articles"`
	ClientID string          `json:"client_id"`
}

type saveResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Article model.Article `json:"article"`
}

type generateRequest struct {
	ClientID           string  `json:"client_id"`
	SelectedArticleIDs []int64 `json:"selected_article_ids"`
	WebhookURL         string  `json:"webhook_url,omitempty"`
}

type generateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ListArticles fetches all articles for the given client, newest first.
func (c *Client) ListArticles(ctx context.Context, clientID string) ([]model.Article, error) {
	var out listResponse
	if err := c.do(ctx, http.MethodGet, "/api/articles/"+clientID, nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("server reported failure")
	}
	if out.Articles == nil {
		out.Articles = []model.Article{}
	}
	return out.Articles, nil
}

// SaveArticle submits a new article to the ingestion endpoint and returns the
// stored record, including its assigned ID and creation timestamp.
func (c *Client) SaveArticle(ctx context.Context, article model.Article) (*model.Article, error) {
	var out saveResponse
	if err := c.do(ctx, http.MethodPost, "/api/articles", article, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("server reported failure")
	}
	return &out.Article, nil
}

// GenerateNewsletter submits the selected article IDs for the client and
// returns the count of articles accepted downstream. webhookURL may be empty
// to use the server's configured default target.
func (c *Client) GenerateNewsletter(ctx context.Context, clientID string, ids []int64, webhookURL string) (int, error) {
	req := generateRequest{
		ClientID:           clientID,
		SelectedArticleIDs: ids,
		WebhookURL:         webhookURL,
	}
	var out generateResponse
	if err := c.do(ctx, http.MethodPost, "/api/generate-newsletter", req, &out); err != nil {
		return 0, err
	}
	if !out.Success {
		return 0, fmt.Errorf("server reported failure")
	}
	return out.Count, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

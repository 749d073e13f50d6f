package storage

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/viniwas/newsletter-api/internal/model"
)

var ignoreTimestamps = cmpopts.IgnoreFields(model.Article{}, "CreatedTime")

func newTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("new sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateArticle(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	tests := []struct {
		name    string
		article model.Article
	}{
		{
			name: "full article",
			article: model.Article{
				ClientID:    "tech_weekly",
				Headline:    "Go 1.26 Released",
				Title:       "Go 1.26",
				Summary:     "The Go team shipped the 1.26 release.",
				KeyTakeaway: "Upgrade for faster builds.",
				TLDR:        "New Go version is out.",
				Category:    "Tech",
				URL:         "https://example.com/go-1-26",
				ImagePrompt: "gopher holding a release banner",
			},
		},
		{
			name: "minimal article",
			article: model.Article{
				ClientID: "tech_weekly",
				Headline: "Short note",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := tt.article
			if err := s.CreateArticle(ctx, &article); err != nil {
				t.Fatalf("create: %v", err)
			}
			if article.ID == 0 {
				t.Fatal("expected non-zero ID")
			}
			if article.CreatedTime.IsZero() {
				t.Fatal("expected creation timestamp to be stamped")
			}
			if article.IsSelected {
				t.Fatal("new article must start unselected")
			}
		})
	}
}

func TestCreateArticleMissingClientID(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	err := s.CreateArticle(ctx, &model.Article{Headline: "No client"})
	if err == nil {
		t.Fatal("expected error for missing client_id, got nil")
	}

	// No row must have been created.
	got, err := s.ListArticles(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestListArticles(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	articles := []model.Article{
		{ClientID: "tech_weekly", Headline: "First", Category: "AI/ML"},
		{ClientID: "tech_weekly", Headline: "Second", Category: "Security"},
		{ClientID: "other_brand", Headline: "Elsewhere"},
	}
	for i := range articles {
		if err := s.CreateArticle(ctx, &articles[i]); err != nil {
			t.Fatalf("create article %d: %v", i, err)
		}
	}

	got, err := s.ListArticles(ctx, "tech_weekly")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	// Same stamped second, so the id tiebreak puts the later insert first.
	want := []model.Article{
		{ID: articles[1].ID, ClientID: "tech_weekly", Headline: "Second", Category: "Security"},
		{ID: articles[0].ID, ClientID: "tech_weekly", Headline: "First", Category: "AI/ML"},
	}
	if diff := cmp.Diff(want, got, ignoreTimestamps); diff != "" {
		t.Errorf("ListArticles mismatch (-want +got):\n%s", diff)
	}
}

func TestListArticlesOrderedByCreatedTime(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	// Plant rows with distinct timestamps out of insertion order.
	rows := []struct {
		headline string
		created  string
	}{
		{"Oldest", "2025-09-01T08:00:00Z"},
		{"Newest", "2025-09-03T10:30:00Z"},
		{"Middle", "2025-09-02T09:15:00Z"},
	}
	for _, r := range rows {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO articles (client_id, headline, created_time) VALUES (?, ?, ?)`,
			"tech_weekly", r.headline, r.created,
		)
		if err != nil {
			t.Fatalf("insert %s: %v", r.headline, err)
		}
	}

	got, err := s.ListArticles(ctx, "tech_weekly")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var headlines []string
	for _, a := range got {
		headlines = append(headlines, a.Headline)
	}
	want := []string{"Newest", "Middle", "Oldest"}
	if diff := cmp.Diff(want, headlines); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedTime.After(got[i-1].CreatedTime) {
			t.Errorf("created_time not non-increasing at index %d", i)
		}
	}
}

func TestListArticlesEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	got, err := s.ListArticles(ctx, "tech_weekly")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 articles, got %d", len(got))
	}
}

func TestListArticlesByID(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	articles := []model.Article{
		{ClientID: "tech_weekly", Headline: "A"},
		{ClientID: "tech_weekly", Headline: "B"},
		{ClientID: "tech_weekly", Headline: "C"},
		{ClientID: "other_brand", Headline: "D"},
	}
	for i := range articles {
		if err := s.CreateArticle(ctx, &articles[i]); err != nil {
			t.Fatalf("create article %d: %v", i, err)
		}
	}

	tests := []struct {
		name          string
		clientID      string
		ids           []int64
		wantHeadlines []string
	}{
		{
			name:          "subset",
			clientID:      "tech_weekly",
			ids:           []int64{articles[0].ID, articles[2].ID},
			wantHeadlines: []string{"C", "A"},
		},
		{
			name:          "foreign ids skipped",
			clientID:      "tech_weekly",
			ids:           []int64{articles[1].ID, articles[3].ID, 9999},
			wantHeadlines: []string{"B"},
		},
		{
			name:          "empty id list",
			clientID:      "tech_weekly",
			ids:           nil,
			wantHeadlines: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListArticlesByID(ctx, tt.clientID, tt.ids)
			if err != nil {
				t.Fatalf("list by id: %v", err)
			}
			headlines := []string{}
			for _, a := range got {
				headlines = append(headlines, a.Headline)
			}
			if diff := cmp.Diff(tt.wantHeadlines, headlines); diff != "" {
				t.Errorf("headlines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

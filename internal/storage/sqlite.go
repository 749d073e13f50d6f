package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"github.com/viniwas/newsletter-api/internal/model"
	"github.com/viniwas/newsletter-api/migrations"
)

const timeLayout = "2006-01-02T15:04:05Z"

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateArticle inserts a new article and populates its ID and CreatedTime.
// The creation timestamp is stamped at insert time; the caller's value is
// ignored.
func (s *SQLite) CreateArticle(ctx context.Context, article *model.Article) error {
	now := time.Now().UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (client_id, headline, title, summary, key_takeaway, tldr, category, url, image_prompt, is_selected, created_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		article.ClientID, article.Headline, article.Title, article.Summary,
		article.KeyTakeaway, article.TLDR, article.Category, article.URL,
		article.ImagePrompt, now,
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	article.ID = id
	article.IsSelected = false
	article.CreatedTime, _ = time.Parse(timeLayout, now)
	return nil
}

// ListArticles returns all articles for the given client, newest first.
func (s *SQLite) ListArticles(ctx context.Context, clientID string) ([]model.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_id, headline, title, summary, key_takeaway, tldr, category, url, image_prompt, is_selected, created_time
		 FROM articles WHERE client_id = ?
		 ORDER BY created_time DESC, id DESC`, clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanArticles(rows)
}

// ListArticlesByID returns the client's articles with the given IDs, newest
// first. IDs that do not belong to the client are silently skipped.
func (s *SQLite) ListArticlesByID(ctx context.Context, clientID string, ids []int64) ([]model.Article, error) {
	if len(ids) == 0 {
		return []model.Article{}, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(ids)+1)
	args = append(args, clientID)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_id, headline, title, summary, key_takeaway, tldr, category, url, image_prompt, is_selected, created_time
		 FROM articles WHERE client_id = ? AND id IN (`+placeholders+`)
		 ORDER BY created_time DESC, id DESC`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query articles by id: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanArticles(rows)
}

func scanArticles(rows *sql.Rows) ([]model.Article, error) {
	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		var isSelected int
		var created string
		err := rows.Scan(&a.ID, &a.ClientID, &a.Headline, &a.Title, &a.Summary,
			&a.KeyTakeaway, &a.TLDR, &a.Category, &a.URL, &a.ImagePrompt,
			&isSelected, &created)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		a.IsSelected = isSelected == 1
		a.CreatedTime, _ = time.Parse(timeLayout, created)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Package storage defines the persistence interface and its implementations.
package storage

import (
	"context"

	"github.com/viniwas/newsletter-api/internal/model"
)

// Storage is the interface for all persistence operations.
type Storage interface {
	CreateArticle(ctx context.Context, article *model.Article) error
	ListArticles(ctx context.Context, clientID string) ([]model.Article, error)
	ListArticlesByID(ctx context.Context, clientID string, ids []int64) ([]model.Article, error)

	Close() error
}

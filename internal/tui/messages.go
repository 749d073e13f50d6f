package tui

import (
	"github.com/viniwas/newsletter-api/internal/model"
)

type articlesLoadedMsg struct {
	articles []model.Article
}

type fetchErrMsg struct {
	err error
}

type generateDoneMsg struct {
	count int
}

type generateErrMsg struct {
	err error
}

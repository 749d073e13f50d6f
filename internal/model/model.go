// Package model defines the domain types used across the application.
package model

import "time"

// Article represents one curated content record awaiting possible
// inclusion in a newsletter issue. Articles are written once by the
// ingestion automation and never mutated afterwards.
type Article struct {
	ID          int64     `json:"id"`
	ClientID    string    `json:"client_id"`
	Headline    string    `json:"headline"`
	Title       string    `json:"title,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	KeyTakeaway string    `json:"key_takeaway,omitempty"`
	TLDR        string    `json:"tldr,omitempty"`
	Category    string    `json:"category,omitempty"`
	URL         string    `json:"url,omitempty"`
	ImagePrompt string    `json:"image_prompt,omitempty"`
	IsSelected  bool      `json:"is_selected"`
	CreatedTime time.Time `json:"created_time"`
}

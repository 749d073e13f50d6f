// Command seed fetches an RSS feed and posts each entry to the ingestion
// endpoint. It stands in for the upstream content automation during local
// development.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/viniwas/newsletter-api/internal/api"
	"github.com/viniwas/newsletter-api/internal/feedimport"
)

func main() {
	feedURL := flag.String("feed", "", "RSS feed URL to import (required)")
	apiBase := flag.String("api", envOrDefault("API_BASE_URL", "http://localhost:3001"), "base URL of the newsletter API")
	clientID := flag.String("client", envOrDefault("CLIENT_ID", "tech_weekly"), "client identifier to ingest for")
	limit := flag.Int("limit", 10, "maximum number of entries to import (0 for all)")
	flag.Parse()

	if *feedURL == "" {
		fmt.Fprintln(os.Stderr, "Usage: seed -feed <url> [-api base] [-client id] [-limit n]")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	httpc := &http.Client{Timeout: 30 * time.Second}
	importer := feedimport.New(httpc)

	feed, err := importer.Fetch(ctx, *feedURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch feed: %v\n", err)
		os.Exit(1)
	}

	client := api.New(httpc, *apiBase)
	saved := 0
	for _, article := range feedimport.Articles(feed, *clientID, *limit) {
		stored, err := client.SaveArticle(ctx, article)
		if err != nil {
			fmt.Fprintf(os.Stderr, "save %q: %v\n", article.Headline, err)
			continue
		}
		fmt.Printf("saved #%d %s\n", stored.ID, stored.Headline)
		saved++
	}

	fmt.Printf("imported %d articles for %s\n", saved, *clientID)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

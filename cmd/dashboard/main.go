package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/viniwas/newsletter-api/internal/api"
	"github.com/viniwas/newsletter-api/internal/tui"
)

func main() {
	apiBase := flag.String("api", envOrDefault("API_BASE_URL", "http://localhost:3001"), "base URL of the newsletter API")
	clientID := flag.String("client", envOrDefault("CLIENT_ID", "tech_weekly"), "client identifier to curate for")
	clientName := flag.String("name", os.Getenv("CLIENT_NAME"), "display name shown in the header")
	webhookURL := flag.String("webhook", os.Getenv("WEBHOOK_URL"), "downstream webhook (empty uses the server default)")
	flag.Parse()

	client := api.New(http.DefaultClient, *apiBase)

	err := tui.Run(tui.Opts{
		Client:     client,
		ClientID:   *clientID,
		ClientName: *clientName,
		WebhookURL: *webhookURL,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
		os.Exit(1)
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

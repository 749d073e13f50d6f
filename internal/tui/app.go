// Package tui implements the curation dashboard: it loads a client's
// articles, lets the user toggle a selection, and submits the selection to
// the generation-trigger endpoint.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/viniwas/newsletter-api/internal/model"
	"github.com/viniwas/newsletter-api/internal/selection"
)

const requestTimeout = 30 * time.Second

type fetchState int

const (
	stateLoading fetchState = iota
	stateReady
	stateError
)

type apiClient interface {
	ListArticles(ctx context.Context, clientID string) ([]model.Article, error)
	GenerateNewsletter(ctx context.Context, clientID string, ids []int64, webhookURL string) (int, error)
}

// App is the dashboard model.
type App struct {
	client     apiClient
	clientID   string
	clientName string
	webhookURL string

	state      fetchState
	articles   []model.Article
	selected   *selection.Set
	cursor     int
	generating bool
	notice     string
	err        error

	spinner spinner.Model
	width   int
	height  int
}

// Opts holds all parameters for launching the dashboard.
type Opts struct {
	Client     apiClient
	ClientID   string
	ClientName string
	WebhookURL string
}

// NewApp creates the dashboard model in its loading state.
func NewApp(opts Opts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	name := opts.ClientName
	if name == "" {
		name = opts.ClientID
	}

	return &App{
		client:     opts.Client,
		clientID:   opts.ClientID,
		clientName: name,
		webhookURL: opts.WebhookURL,
		state:      stateLoading,
		selected:   selection.New(),
		spinner:    sp,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchArticlesCmd(), a.spinner.Tick)
}

// fetchArticlesCmd loads the article list. It runs exactly once per
// loading-state entry; there is no background refresh.
func (a *App) fetchArticlesCmd() tea.Cmd {
	client := a.client
	clientID := a.clientID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		articles, err := client.ListArticles(ctx, clientID)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return articlesLoadedMsg{articles: articles}
	}
}

func (a *App) generateCmd() tea.Cmd {
	client := a.client
	clientID := a.clientID
	webhookURL := a.webhookURL
	ids := a.selected.IDs()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		count, err := client.GenerateNewsletter(ctx, clientID, ids, webhookURL)
		if err != nil {
			return generateErrMsg{err: err}
		}
		return generateDoneMsg{count: count}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case articlesLoadedMsg:
		a.state = stateReady
		a.articles = msg.articles
		a.cursor = 0
		a.err = nil
		// A fresh fetch always starts from an empty selection.
		a.selected.Clear()
		return a, nil

	case fetchErrMsg:
		a.state = stateError
		a.err = msg.err
		return a, nil

	case generateDoneMsg:
		a.generating = false
		// Full reset: the finalized selection now belongs to the
		// downstream automation.
		a.selected.Clear()
		a.notice = fmt.Sprintf("Newsletter generation started with %d articles!", msg.count)
		return a, nil

	case generateErrMsg:
		a.generating = false
		// Selection is kept so the user can retry.
		a.notice = "Failed to generate newsletter. Please try again."
		return a, nil

	case spinner.TickMsg:
		if a.state == stateLoading || a.generating {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	}

	switch a.state {
	case stateError:
		if msg.String() == "r" {
			a.state = stateLoading
			a.err = nil
			return a, tea.Batch(a.fetchArticlesCmd(), a.spinner.Tick)
		}
		return a, nil
	case stateLoading:
		return a, nil
	}

	a.notice = ""

	switch msg.String() {
	case "j", "down":
		if a.cursor < len(a.articles)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case " ", "enter":
		if len(a.articles) > 0 && a.cursor < len(a.articles) {
			a.selected.Toggle(a.articles[a.cursor].ID)
		}
		return a, nil
	case "g":
		if a.generating {
			return a, nil
		}
		if a.selected.Count() == 0 {
			a.notice = "Select at least one article before generating the newsletter."
			return a, nil
		}
		a.generating = true
		return a, tea.Batch(a.generateCmd(), a.spinner.Tick)
	}

	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render(a.clientName)
	}

	switch a.state {
	case stateLoading:
		msg := lipgloss.JoinVertical(lipgloss.Center,
			a.spinner.View()+" "+headlineStyle.Render("Loading Articles"),
			"",
			summaryStyle.Render("Fetching the latest content for you..."),
		)
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)

	case stateError:
		msg := lipgloss.JoinVertical(lipgloss.Center,
			headlineStyle.Render("Connection Error"),
			"",
			errorStyle.Render("Failed to load articles. Please try again later."),
			"",
			hintStyle.Render("r try again · q quit"),
		)
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
	}

	header := a.renderHeader()
	footer := a.renderFooter()
	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)

	if len(a.articles) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			renderEmptyState(a.width, contentHeight),
			footer,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.renderCards(contentHeight),
		footer,
	)
}

func (a *App) renderHeader() string {
	left := headerStyle.Render(a.clientName)
	right := headerCountStyle.Render(fmt.Sprintf("%d of %d selected", a.selected.Count(), len(a.articles)))
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderFooter() string {
	if a.generating {
		return a.spinner.View() + noticeStyle.Render("Generating newsletter...")
	}
	if a.notice != "" {
		return noticeStyle.Render(a.notice)
	}
	generate := "g generate"
	if a.selected.Count() == 0 {
		generate = "g generate (select articles first)"
	}
	return hintStyle.Render("j/k move · space select · " + generate + " · q quit")
}

func (a *App) renderCards(height int) string {
	cardWidth := a.width - 4
	var rendered []string
	heightUsed := 0
	start := a.scrollStart(height, cardWidth)
	for i := start; i < len(a.articles); i++ {
		art := a.articles[i]
		card := renderCard(art, a.selected.Has(art.ID), i == a.cursor, cardWidth)
		h := lipgloss.Height(card)
		if heightUsed+h > height && len(rendered) > 0 {
			break
		}
		rendered = append(rendered, card)
		heightUsed += h
	}
	return strings.Join(rendered, "\n")
}

// scrollStart returns the first visible card index so the cursor stays on
// screen.
func (a *App) scrollStart(height, cardWidth int) int {
	start := 0
	for {
		heightUsed := 0
		visible := 0
		for i := start; i < len(a.articles); i++ {
			art := a.articles[i]
			h := lipgloss.Height(renderCard(art, a.selected.Has(art.ID), i == a.cursor, cardWidth))
			if heightUsed+h > height && visible > 0 {
				break
			}
			heightUsed += h
			visible++
		}
		if a.cursor < start+visible || start >= a.cursor {
			return start
		}
		start++
	}
}

// Run starts the dashboard.
func Run(opts Opts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

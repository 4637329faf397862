// Package oddsapi fetches player prop listings from The Odds API. The fetch
// contract is the one the pipeline depends on: requests are idempotent, and a
// fetch either returns a complete row set or fails explicitly once retries
// are exhausted.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/models"
)

// Fetcher is the boundary the pipeline depends on for external prop rows.
type Fetcher interface {
	FetchProps(ctx context.Context) ([]models.SportsbookProp, error)
	Name() string
}

// Config parameterizes the odds API client.
type Config struct {
	BaseURL    string
	APIKey     string
	Sport      string
	Regions    string
	Markets    []string
	Books      []string
	HTTPConfig HTTPClientConfig
	CacheTTL   time.Duration
}

// Client fetches player props for upcoming events.
type Client struct {
	cfg       Config
	http      *RateLimitedHTTPClient
	respCache *cache.Cache
	books     map[string]bool
	logger    *logrus.Logger
}

// NewClient creates an odds API client. Per-event responses are cached for
// cfg.CacheTTL so back-to-back daemon runs do not burn API quota.
func NewClient(cfg Config, logger *logrus.Logger) *Client {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	books := make(map[string]bool, len(cfg.Books))
	for _, book := range cfg.Books {
		books[strings.ToLower(book)] = true
	}
	return &Client{
		cfg:       cfg,
		http:      NewRateLimitedHTTPClient(cfg.HTTPConfig, logger),
		respCache: cache.New(ttl, ttl*2),
		books:     books,
		logger:    logger,
	}
}

// Name identifies the fetcher.
func (c *Client) Name() string { return "the-odds-api" }

// Close releases HTTP resources.
func (c *Client) Close() error { return c.http.Close() }

// Events retrieves the upcoming events for the configured sport.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/events?%s",
		c.cfg.BaseURL, c.cfg.Sport, url.Values{"apiKey": {c.cfg.APIKey}}.Encode())

	var events []Event
	if err := c.getJSON(ctx, endpoint, &events); err != nil {
		return nil, err
	}
	c.logger.WithField("events", len(events)).Info("Fetched upcoming events")
	return events, nil
}

// FetchProps retrieves player props for all upcoming events and flattens them
// into the props feed shape, pairing over/under outcomes per player and line.
// Any event fetch failure fails the whole call; the pipeline never sees a
// partial row set.
func (c *Client) FetchProps(ctx context.Context) ([]models.SportsbookProp, error) {
	events, err := c.Events(ctx)
	if err != nil {
		return nil, err
	}

	var props []models.SportsbookProp
	for _, event := range events {
		odds, err := c.eventProps(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		props = append(props, c.flatten(odds)...)
	}

	c.logger.WithFields(logrus.Fields{
		"events": len(events),
		"props":  len(props),
	}).Info("Fetched player props")
	return props, nil
}

func (c *Client) eventProps(ctx context.Context, eventID string) (*eventOdds, error) {
	if cached, found := c.respCache.Get(eventID); found {
		return cached.(*eventOdds), nil
	}

	markets := append([]string(nil), c.cfg.Markets...)
	sort.Strings(markets)
	query := url.Values{
		"apiKey":     {c.cfg.APIKey},
		"regions":    {c.cfg.Regions},
		"markets":    {strings.Join(markets, ",")},
		"oddsFormat": {"american"},
	}
	endpoint := fmt.Sprintf("%s/sports/%s/events/%s/odds?%s",
		c.cfg.BaseURL, c.cfg.Sport, eventID, query.Encode())

	odds := &eventOdds{}
	if err := c.getJSON(ctx, endpoint, odds); err != nil {
		return nil, err
	}
	c.respCache.Set(eventID, odds, cache.DefaultExpiration)
	return odds, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	metrics.FetchRequestsTotal.Inc()
	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		metrics.FetchFailuresTotal.Inc()
		return err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != 200 {
		metrics.FetchFailuresTotal.Inc()
		return &models.FetchExhaustedError{
			URL:      redactKey(endpoint),
			Attempts: c.http.maxAttempts,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding odds API response: %w", err)
	}
	return nil
}

// flatten pairs over/under outcomes per bookmaker, market, player and line.
// Rows missing either side are dropped; the edge calculation needs both
// prices.
func (c *Client) flatten(odds *eventOdds) []models.SportsbookProp {
	type propKey struct {
		book   string
		market models.Market
		player string
		line   float64
	}
	type sides struct {
		team        string
		over, under int
		hasOver     bool
		hasUnder    bool
	}

	paired := make(map[propKey]*sides)
	var order []propKey
	for _, book := range odds.Bookmakers {
		if len(c.books) > 0 && !c.allowsBook(book.Title) {
			continue
		}
		for _, market := range book.Markets {
			key, supported := models.NormalizeMarket(market.Key)
			if !supported {
				continue
			}
			for _, out := range market.Outcomes {
				if out.Description == "" || out.Price == 0 {
					continue
				}
				pk := propKey{book: book.Title, market: key, player: out.Description, line: out.Point}
				entry, seen := paired[pk]
				if !seen {
					entry = &sides{}
					paired[pk] = entry
					order = append(order, pk)
				}
				if out.Team != "" {
					entry.team = out.Team
				}
				switch strings.ToLower(out.Name) {
				case "over":
					entry.over = int(out.Price)
					entry.hasOver = true
				case "under":
					entry.under = int(out.Price)
					entry.hasUnder = true
				}
			}
		}
	}

	props := make([]models.SportsbookProp, 0, len(order))
	for _, pk := range order {
		entry := paired[pk]
		if !entry.hasOver || !entry.hasUnder {
			continue
		}
		props = append(props, models.SportsbookProp{
			Identity: models.Identity{
				Name: pk.player,
				Team: entry.team,
			},
			Market:     pk.market,
			Line:       pk.line,
			OverPrice:  models.AmericanPrice(entry.over),
			UnderPrice: models.AmericanPrice(entry.under),
			Book:       pk.book,
		})
	}
	return props
}

func (c *Client) allowsBook(title string) bool {
	lowered := strings.ToLower(title)
	for book := range c.books {
		if strings.Contains(lowered, book) {
			return true
		}
	}
	return false
}

// redactKey strips the API key from a URL before it reaches logs or errors.
func redactKey(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	query := parsed.Query()
	if query.Has("apiKey") {
		query.Set("apiKey", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

// Config controls how the ESPN client reaches the upstream site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches scoreboards from the ESPN site API and maps them to domain events.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchScoreboard retrieves the current scoreboard for a sport.
func (c *Client) FetchScoreboard(ctx context.Context, sport domain.SportKey) ([]domain.Event, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return nil, &domain.InvalidSportError{Sport: string(sport)}
	}

	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("espn: fetch %s scoreboard: %w", sport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("espn: decode %s scoreboard: %w", sport, decodeErr)
	}

	return mapEvents(payload), nil
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(raw, "/")
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	// No client-level timeout: the service bounds each fetch via context.
	return http.DefaultClient
}

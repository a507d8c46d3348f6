package httpdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/providers"
)

// Config controls how the client reaches the static season files.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the manifest and season records from a static file host.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

func (c *Client) Name() string { return providerName }

// Location returns the URL a manifest entry is fetched from.
func (c *Client) Location(name string) string {
	return c.baseURL + "/" + escapeName(name)
}

// FetchManifest retrieves {baseURL}/index.json.
func (c *Client) FetchManifest(ctx context.Context) (seasons.Manifest, error) {
	var m seasons.Manifest
	if err := c.getJSON(ctx, seasons.ManifestFile, &m); err != nil {
		return seasons.Manifest{}, err
	}
	return m, nil
}

// FetchSeason retrieves {baseURL}/{name}.
func (c *Client) FetchSeason(ctx context.Context, name string) (seasons.Record, error) {
	var rec seasons.Record
	if err := c.getJSON(ctx, name, &rec); err != nil {
		return seasons.Record{}, err
	}
	return rec, nil
}

func (c *Client) getJSON(ctx context.Context, name string, dest any) error {
	if c == nil || c.baseURL == "" {
		return providers.ErrProviderUnavailable
	}
	target := c.Location(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			Path:       target,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := providers.DecodeJSON(io.LimitReader(resp.Body, maxBodyBytes), dest); err != nil {
		return &providers.DecodeError{Path: target, Err: fmt.Errorf("%s: %w", providerName, err)}
	}
	return nil
}

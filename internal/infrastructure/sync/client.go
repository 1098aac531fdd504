package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	syncapp "relnotes/internal/application/sync"
	"relnotes/internal/shared/config"
	"relnotes/internal/shared/logger"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 100
	// Maximum response body size per page (8MB)
	maxResponseSize = 8 << 20
)

type releasePage struct {
	Count   int                    `json:"count"`
	Next    *string                `json:"next"`
	Results []syncapp.RemoteRelease `json:"results"`
}

type notePage struct {
	Count   int                 `json:"count"`
	Next    *string             `json:"next"`
	Results []syncapp.RemoteNote `json:"results"`
}

// Client pulls release and note data from a remote instance over its
// REST API, following pagination links.
type Client struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
	logger     logger.Interface
}

// NewClient creates a new sync API client
func NewClient(cfg *config.SyncConfig, log logger.Interface) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		token:    cfg.Token,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// FetchReleases retrieves every remote release modified strictly after
// the given cursor. A nil cursor fetches everything.
func (c *Client) FetchReleases(ctx context.Context, modifiedAfter *time.Time) ([]syncapp.RemoteRelease, error) {
	pageURL := c.listURL("releases", modifiedAfter)

	var all []syncapp.RemoteRelease
	for pageURL != "" {
		var page releasePage
		if err := c.getJSON(ctx, pageURL, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch releases: %w", err)
		}
		all = append(all, page.Results...)
		pageURL = ""
		if page.Next != nil {
			pageURL = *page.Next
		}
	}

	c.logger.Infow("fetched remote releases", "count", len(all))
	return all, nil
}

// FetchNotes retrieves every remote note modified strictly after the
// given cursor. A nil cursor fetches everything.
func (c *Client) FetchNotes(ctx context.Context, modifiedAfter *time.Time) ([]syncapp.RemoteNote, error) {
	pageURL := c.listURL("notes", modifiedAfter)

	var all []syncapp.RemoteNote
	for pageURL != "" {
		var page notePage
		if err := c.getJSON(ctx, pageURL, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch notes: %w", err)
		}
		all = append(all, page.Results...)
		pageURL = ""
		if page.Next != nil {
			pageURL = *page.Next
		}
	}

	c.logger.Infow("fetched remote notes", "count", len(all))
	return all, nil
}

// FetchRelease retrieves a single remote release by its primary key.
// Note relations point at releases that may predate the sync cursor; this
// resolves them on demand.
func (c *Client) FetchRelease(ctx context.Context, id uint) (*syncapp.RemoteRelease, error) {
	var remote syncapp.RemoteRelease
	resourceURL := fmt.Sprintf("%s/rna/releases/%d/", c.baseURL, id)
	if err := c.getJSON(ctx, resourceURL, &remote); err != nil {
		return nil, fmt.Errorf("failed to fetch release %d: %w", id, err)
	}
	return &remote, nil
}

func (c *Client) listURL(resource string, modifiedAfter *time.Time) string {
	values := url.Values{}
	values.Set("page_size", strconv.Itoa(c.pageSize))
	if modifiedAfter != nil {
		values.Set("modified_after", modifiedAfter.UTC().Format(time.RFC3339Nano))
	}
	return fmt.Sprintf("%s/rna/%s/?%s", c.baseURL, resource, values.Encode())
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/vk/readmegen/internal/config"
)

// Client talks to the GitHub API on behalf of one profile.
type Client struct {
	http      *http.Client
	baseURL   string
	username  string
	token     string
	userAgent string
	workers   int

	statsOnce sync.Once
	stats     *Stats
	statsErr  error
}

// NewClient builds a client for the given profile. workers bounds the
// fan-out used when aggregating per-repository language data.
func NewClient(profile *config.Profile, workers int) *Client {
	if workers < 1 {
		workers = 1
	}
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:   profile.APIURL,
		username:  profile.Username,
		token:     profile.Token,
		userAgent: profile.UserAgent,
		workers:   workers,
	}
}

// Username returns the profile username the client is scoped to.
func (c *Client) Username() string {
	return c.username
}

// userPath builds a REST URL under /users/{username}.
func (c *Client) userPath(suffix string) string {
	return c.baseURL + "/users/" + url.PathEscape(c.username) + suffix
}

// getJSON performs an authenticated GET and decodes the JSON response body
// into out. Any non-2xx status is an error carrying the status code.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", u, err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("github request to %s failed: status %d", u, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", u, err)
	}
	return nil
}

// postJSON performs an authenticated POST with a JSON body and decodes the
// JSON response into out.
func (c *Client) postJSON(ctx context.Context, u string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", u, err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("github request to %s failed: status %d", u, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", u, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

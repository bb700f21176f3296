// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package radarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/autobrr/radarr-cleanup/internal/types"
)

const (
	movieEndpoint     = "/api/v3/movie"
	exclusionEndpoint = "/api/v3/importlistexclusion"
	userAgent         = "radarr-cleanup/1.0"
)

// Custom error types for better error handling
type ErrRadarr struct {
	Op       string // Operation that failed
	Err      error  // Underlying error
	HttpCode int    // HTTP status code if applicable
}

func (e *ErrRadarr) Error() string {
	if e.HttpCode > 0 {
		return fmt.Sprintf("radarr %s: server returned %s (%d)", e.Op, http.StatusText(e.HttpCode), e.HttpCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("radarr %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("radarr %s", e.Op)
}

func (e *ErrRadarr) Unwrap() error {
	return e.Err
}

// Client talks to a single Radarr instance
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a client for the Radarr instance at baseURL.
// Requests carry no deadline of their own; the transport defaults apply.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// BaseURL returns the instance URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetMovies fetches the full movie collection
func (c *Client) GetMovies(ctx context.Context) ([]types.RadarrMovie, error) {
	var movies []types.RadarrMovie
	if err := c.do(ctx, "get_movies", http.MethodGet, movieEndpoint, nil, &movies); err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(movies)).Str("url", c.baseURL).Msg("Fetched movies")
	return movies, nil
}

// DeleteMovie removes a movie and its files from Radarr.
// Import exclusions are registered separately through AddImportExclusion.
func (c *Client) DeleteMovie(ctx context.Context, movieID int) error {
	query := url.Values{}
	query.Set("deleteFiles", "true")
	query.Set("addImportExclusion", "false")

	path := fmt.Sprintf("%s/%d?%s", movieEndpoint, movieID, query.Encode())
	return c.do(ctx, "delete_movie", http.MethodDelete, path, nil, nil)
}

// AddImportExclusion prevents the movie from being re-added by import lists
func (c *Client) AddImportExclusion(ctx context.Context, movie types.RadarrMovie) error {
	body := types.NewImportListExclusion(movie)
	return c.do(ctx, "add_import_exclusion", http.MethodPost, exclusionEndpoint, body, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}, out interface{}) error {
	if c.baseURL == "" {
		return &ErrRadarr{Op: op, Err: fmt.Errorf("URL is required")}
	}

	if c.apiKey == "" {
		return &ErrRadarr{Op: op, Err: fmt.Errorf("API key is required")}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &ErrRadarr{Op: op, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &ErrRadarr{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ErrRadarr{Op: op, Err: fmt.Errorf("failed to make request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &ErrRadarr{Op: op, HttpCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ErrRadarr{Op: op, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return nil
}

// Package postgrest is the board's resource store adapter. It speaks the
// PostgREST-flavoured REST dialect: one HTTP round trip per call, equality
// and ordering filters in the query string, JSON bodies in and out. The
// adapter does not cache, retry or batch; consistency is whatever the store
// itself guarantees.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yuzu875641/phpbbs/pkg/config"
)

const (
	restPath       = "/rest/v1/"
	requestTimeout = 10 * time.Second
)

// StoreError is a non-2xx reply from the store. The status code is
// propagated untouched so callers can see exactly what the store said.
type StoreError struct {
	Status int
	Body   string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store returned status %d: %s", e.Status, e.Body)
}

// Client issues CRUD-style calls against named collections. Credentials come
// from the configuration struct handed in at construction; there is no
// ambient global state.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.StoreURL, "/"),
		apiKey:  cfg.StoreAPIKey,
		http:    &http.Client{Timeout: requestTimeout},
		log:     logger,
	}
}

// Select fetches the rows matching query into out (a pointer to a slice).
// An empty or unknown filter selects every row; it never errors.
func (c *Client) Select(ctx context.Context, collection, query string, out any) error {
	return c.do(ctx, http.MethodGet, collection, query, nil, out)
}

// Insert creates one record. When out is non-nil the store's returned
// representation is decoded into it.
func (c *Client) Insert(ctx context.Context, collection string, record, out any) error {
	return c.do(ctx, http.MethodPost, collection, "", record, out)
}

// Update patches the rows matching query with the partial record.
func (c *Client) Update(ctx context.Context, collection, query string, record, out any) error {
	return c.do(ctx, http.MethodPatch, collection, query, record, out)
}

// Delete removes the rows matching query.
func (c *Client) Delete(ctx context.Context, collection, query string) error {
	return c.do(ctx, http.MethodDelete, collection, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, collection, query string, record, out any) error {
	url := c.baseURL + restPath + collection
	if query != "" {
		url += "?" + query
	}

	var body io.Reader
	if record != nil {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode %s record: %w", collection, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", collection, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store call failed: %s %s: %w", method, collection, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read store response: %s %s: %w", method, collection, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("collection", collection).
		Str("query", query).
		Int("status", resp.StatusCode).
		Msg("store call")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StoreError{Status: resp.StatusCode, Body: string(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", collection, err)
		}
	}
	return nil
}

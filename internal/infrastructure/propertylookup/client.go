package propertylookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"
)

const (
	searchPath = "/functions/v1/njpr-properties"

	// Five records with full county data stay well under this.
	maxResponseBytes = 1 << 20
)

var (
	ErrNotConfigured    = errors.New("property lookup not configured")
	ErrResponseTooLarge = errors.New("property lookup response too large")
)

// Client calls the county property-records search function.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ interfaces.IPropertyLookup = (*Client)(nil)

type searchRequest struct {
	Filters searchFilters `json:"filters"`
	Limit   int           `json:"limit"`
}

type searchFilters struct {
	Address string `json:"address"`
}

// The function has answered both a bare array and {"properties": [...]}.
type searchResponse struct {
	Properties []entities.PropertyRecord `json:"properties"`
	Data       []entities.PropertyRecord `json:"data"`
}

func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" || apiKey == "" {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, client: &http.Client{Timeout: timeout}}, nil
}

func (c *Client) Search(ctx context.Context, address string, limit int) ([]entities.PropertyRecord, error) {
	body, err := json.Marshal(searchRequest{Filters: searchFilters{Address: address}, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(raw) > maxResponseBytes {
		return nil, ErrResponseTooLarge
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("property lookup error %d: %s", resp.StatusCode, string(raw))
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []entities.PropertyRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return capRecords(records, limit), nil
	}

	var out searchResponse
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Properties == nil {
		out.Properties = out.Data
	}
	return capRecords(out.Properties, limit), nil
}

func capRecords(records []entities.PropertyRecord, limit int) []entities.PropertyRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

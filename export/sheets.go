/*
sheets.go - Google Sheets sync client

PURPOSE:
  Pushes the formatted rows to a spreadsheet through the Sheets v4
  values REST API, authenticated by API key (the same clear-then-PUT
  flow the browser client used). The sync is a best-effort mirror: the
  target range is cleared and rewritten whole on every run.

CONFIG:
  Spreadsheet id, API key, and sheet name live in the store so the admin
  can change them at runtime. A disabled config makes Sync a no-op
  error; the caller decides whether that is worth surfacing.
*/
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultSheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// SheetsConfig is the admin-managed sync configuration.
type SheetsConfig struct {
	SpreadsheetID string `json:"spreadsheetId"`
	APIKey        string `json:"apiKey"`
	SheetName     string `json:"sheetName"`
	Enabled       bool   `json:"enabled"`
}

// Ready reports whether the config is complete enough to sync.
func (c SheetsConfig) Ready() bool {
	return c.Enabled && c.SpreadsheetID != "" && c.APIKey != ""
}

// SyncRun records one sync attempt.
type SyncRun struct {
	At      time.Time
	Status  string // "success" or "error"
	Records int
	Error   string
}

// ConfigStore persists the sheets configuration and the sync history.
type ConfigStore interface {
	SheetsConfig(ctx context.Context) (SheetsConfig, bool, error)
	PutSheetsConfig(ctx context.Context, cfg SheetsConfig) error
	RecordSyncRun(ctx context.Context, run SyncRun) error
	LastSyncRun(ctx context.Context) (SyncRun, bool, error)
}

var ErrSheetsNotConfigured = errors.New("google sheets sync not configured")

// SheetsClient talks to the Sheets values API.
type SheetsClient struct {
	httpClient *http.Client
	baseURL    string
}

// SheetsOption configures the client.
type SheetsOption func(*SheetsClient)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) SheetsOption {
	return func(c *SheetsClient) { c.httpClient = hc }
}

// WithBaseURL points the client at a different endpoint. For tests.
func WithBaseURL(base string) SheetsOption {
	return func(c *SheetsClient) { c.baseURL = base }
}

func NewSheetsClient(opts ...SheetsOption) *SheetsClient {
	c := &SheetsClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultSheetsBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sync clears the sheet and uploads the rows. Returns the number of
// data rows written (excluding the header).
func (c *SheetsClient) Sync(ctx context.Context, cfg SheetsConfig, rows [][]string) (int, error) {
	if !cfg.Ready() {
		return 0, ErrSheetsNotConfigured
	}
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = "Attendance Data"
	}

	// Clear the existing range first so removed records don't linger.
	clearURL := fmt.Sprintf("%s/%s/values/%s:clear?key=%s",
		c.baseURL, cfg.SpreadsheetID, url.PathEscape(sheet+"!A:P"), url.QueryEscape(cfg.APIKey))
	if err := c.post(ctx, clearURL, nil); err != nil {
		return 0, fmt.Errorf("clear sheet: %w", err)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		values[i] = cells
	}
	body, err := json.Marshal(map[string]interface{}{"values": values})
	if err != nil {
		return 0, err
	}

	writeRange := fmt.Sprintf("%s!A1:P%d", sheet, len(rows))
	putURL := fmt.Sprintf("%s/%s/values/%s?valueInputOption=RAW&key=%s",
		c.baseURL, cfg.SpreadsheetID, url.PathEscape(writeRange), url.QueryEscape(cfg.APIKey))
	if err := c.do(ctx, http.MethodPut, putURL, body); err != nil {
		return 0, fmt.Errorf("upload values: %w", err)
	}

	n := len(rows)
	if n > 0 {
		n-- // header row
	}
	return n, nil
}

// TestConnection fetches the spreadsheet metadata to validate the
// config.
func (c *SheetsClient) TestConnection(ctx context.Context, cfg SheetsConfig) error {
	if cfg.SpreadsheetID == "" || cfg.APIKey == "" {
		return ErrSheetsNotConfigured
	}
	u := fmt.Sprintf("%s/%s?key=%s", c.baseURL, cfg.SpreadsheetID, url.QueryEscape(cfg.APIKey))
	return c.do(ctx, http.MethodGet, u, nil)
}

func (c *SheetsClient) post(ctx context.Context, u string, body []byte) error {
	return c.do(ctx, http.MethodPost, u, body)
}

func (c *SheetsClient) do(ctx context.Context, method, u string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("sheets api: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("sheets api: status %d", resp.StatusCode)
	}
	return nil
}

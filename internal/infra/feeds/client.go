// Package feeds contains the HTTP adapters for the upstream government
// recall feeds. Every adapter normalizes its source-specific payload into
// entity.Recall and fails soft: callers treat errors as an empty result.
package feeds

import (
	"encoding/json"
	"net/http"
	"time"

	"attic/config"

	"github.com/pkg/errors"
)

// NewHTTPClient builds the shared client for all feed adapters with the
// configured per-request timeout.
func NewHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.Feeds.RequestTimeout,
	}
}

// getJSON issues a GET with the descriptive client identifier header and
// decodes the JSON response body into out.
func getJSON(client *http.Client, req *http.Request, userAgent string, out any) error {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

// strPtr returns nil for empty strings so absent upstream fields persist as
// NULL rather than empty text.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// parseFlexibleDate accepts the date layouts seen across the feeds
// (date-only, RFC3339, and timestamp-prefixed strings). Returns nil when
// nothing parses.
func parseFlexibleDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	if len(raw) >= 10 {
		if t, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return &t
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()

		return &t
	}

	return nil
}

package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mbarros/linhatempo/internal/event"
)

// Source identifies one spreadsheet tab to fetch.
type Source struct {
	SheetID string // Google Sheets document ID
	GID     string // tab identifier; empty means the first tab
	URL     string // explicit CSV endpoint; overrides SheetID/GID when set
}

// CSVURL returns the CSV export endpoint for the source.
func (s Source) CSVURL() string {
	if s.URL != "" {
		return s.URL
	}
	u := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv", url.PathEscape(s.SheetID))
	if s.GID != "" {
		u += "&gid=" + url.QueryEscape(s.GID)
	}
	return u
}

// Fetcher retrieves spreadsheet tabs as CSV over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the given HTTP timeout. The
// timeout bounds every fetch; a hanging source fails instead of
// blocking the caller.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves one tab and returns its normalized, derived events.
// The first CSV record is treated as the header row. Errors (network,
// HTTP status, malformed CSV, empty body) are returned to the caller;
// the loader decides whether to degrade.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]event.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.CSVURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "linhatempo/1.0 (+https://github.com/mbarros/linhatempo)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // sheets export ragged rows; pad later
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV response from %s", src.CSVURL())
	}

	return Normalize(records[0], records[1:]), nil
}

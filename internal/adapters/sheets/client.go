package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"clubops/internal/domain"
)

type sheetHTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher that downloads a published spreadsheet as CSV.
func NewHTTPFetcher(client *http.Client) domain.SheetFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &sheetHTTPFetcher{client: client}
}

var docIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// ExportURL rewrites a spreadsheet URL to its CSV export endpoint.
// A "/d/<id>" segment wins; otherwise a trailing "/edit..." suffix is
// replaced. URLs matching neither form pass through unchanged.
func ExportURL(sheetURL string) string {
	if m := docIDPattern.FindStringSubmatch(sheetURL); m != nil {
		return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", m[1])
	}
	if i := strings.Index(sheetURL, "/edit"); i != -1 {
		return sheetURL[:i] + "/export?format=csv"
	}
	return sheetURL
}

func (f *sheetHTTPFetcher) Fetch(ctx context.Context, sheetURL string) (*domain.Table, error) {
	url := ExportURL(sheetURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The common cause is a sheet that is not published to the web.
		return nil, fmt.Errorf("%w: export returned status %d, make sure the sheet is published and accessible", domain.ErrSheetUnavailable, resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: source is not parseable csv: %v", domain.ErrSheetUnavailable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sheet is empty", domain.ErrSheetUnavailable)
	}
	return &domain.Table{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"scope/swipe-service/internal/model"
)

// SourceStartups tags listings scraped from the startup directory.
const SourceStartups = "startups"

// StartupFetcher pulls the startup-directory JSON export. If URL is
// empty, Fetch returns (nil, nil) and the scrape cycle is a no-op.
type StartupFetcher struct {
	URL    string
	client *http.Client
}

// NewStartupFetcher constructs a fetcher with a shared HTTP client.
func NewStartupFetcher(rawURL string) *StartupFetcher {
	return &StartupFetcher{
		URL:    rawURL,
		client: &http.Client{Timeout: httpTimeout},
	}
}

// startupEntry mirrors one company in the directory export.
type startupEntry struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	OneLiner string `json:"one_liner"`
	Location string `json:"location"`
	Website  string `json:"website"`
	IsHiring bool   `json:"is_hiring"`
}

// Fetch retrieves the directory and maps hiring companies into
// Listings under the "startups" source.
func (f *StartupFetcher) Fetch(ctx context.Context) ([]model.Listing, error) {
	if f.URL == "" {
		log.Println("[startups] STARTUP_DIRECTORY_URL not set — skipping scrape")
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned %d: %s", resp.StatusCode, string(body))
	}

	var entries []startupEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	listings := make([]model.Listing, 0, len(entries))
	for _, e := range entries {
		if !e.IsHiring || e.Slug == "" {
			continue
		}
		listings = append(listings, model.Listing{
			Source:      SourceStartups,
			SourceJobID: e.Slug,
			Title:       "Open roles at " + e.Name,
			Company:     e.Name,
			Location:    e.Location,
			Description: e.OneLiner,
			SourceURL:   e.Website,
		})
	}

	return listings, nil
}

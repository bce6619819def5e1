package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"scope/swipe-service/internal/model"
)

const (
	jsearchPageSize = 20
	jsearchMaxPages = 2
	httpTimeout     = 15 * time.Second

	// SourceJSearch tags listings fetched live from the aggregator.
	SourceJSearch = "jsearch"
)

// JSearchFetcher fetches job offers from the JSearch aggregator API.
// If APIKey is empty, Fetch returns (nil, nil) gracefully — the feed
// simply serves curated listings only and logs a warning.
type JSearchFetcher struct {
	APIKey string
	Host   string
	client *http.Client
}

// NewJSearchFetcher constructs a fetcher with a shared HTTP client.
func NewJSearchFetcher(apiKey, host string) *JSearchFetcher {
	return &JSearchFetcher{
		APIKey: apiKey,
		Host:   host,
		client: &http.Client{Timeout: httpTimeout},
	}
}

// jsearchResponse mirrors the top-level JSearch JSON response.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// jsearchJob mirrors a single JSearch job listing.
type jsearchJob struct {
	JobID       string  `json:"job_id"`
	Title       string  `json:"job_title"`
	Employer    string  `json:"employer_name"`
	City        string  `json:"job_city"`
	Country     string  `json:"job_country"`
	Description string  `json:"job_description"`
	SalaryMin   float64 `json:"job_min_salary"`
	SalaryMax   float64 `json:"job_max_salary"`
	ApplyLink   string  `json:"job_apply_link"`
	PostedAt    string  `json:"job_posted_at_datetime_utc"`
}

// Fetch retrieves offers for a query and location, paging until no
// more results or jsearchMaxPages is reached. Returns nil without
// error when credentials are missing.
func (f *JSearchFetcher) Fetch(ctx context.Context, query, location string) ([]model.Listing, error) {
	if f.APIKey == "" {
		log.Println("[jsearch] JSEARCH_API_KEY not set — skipping live results")
		return nil, nil
	}

	var listings []model.Listing

	for page := 1; page <= jsearchMaxPages; page++ {
		batch, err := f.fetchPage(ctx, query, location, page)
		if err != nil {
			return listings, fmt.Errorf("page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break // No more results
		}
		listings = append(listings, batch...)
		if len(batch) < jsearchPageSize {
			break // Last page
		}
	}

	return listings, nil
}

func (f *JSearchFetcher) fetchPage(ctx context.Context, query, location string, page int) ([]model.Listing, error) {
	params := url.Values{}
	q := query
	if location != "" {
		q = query + " in " + location
	}
	params.Set("query", q)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")

	reqURL := fmt.Sprintf("https://%s/search?%s", f.Host, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", f.APIKey)
	req.Header.Set("X-RapidAPI-Host", f.Host)

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
		return nil, fmt.Errorf("jsearch returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp jsearchResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	listings := make([]model.Listing, 0, len(apiResp.Data))
	for _, j := range apiResp.Data {
		listings = append(listings, mapJSearchJob(j))
	}

	return listings, nil
}

// mapJSearchJob converts the provider shape into the canonical Listing
// before any identity logic sees it.
func mapJSearchJob(j jsearchJob) model.Listing {
	location := j.City
	if location == "" {
		location = j.Country
	} else if j.Country != "" {
		location = j.City + ", " + j.Country
	}

	return model.Listing{
		Source:      SourceJSearch,
		SourceJobID: j.JobID,
		Title:       j.Title,
		Company:     j.Employer,
		Location:    location,
		Description: j.Description,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		SourceURL:   j.ApplyLink,
		PostedAt:    j.PostedAt,
	}
}

package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	serperEndpoint = "https://google.serper.dev/search"
	searchTimeout  = 15 * time.Second
)

// SearchClient queries the Serper web-search API for recruiter
// profiles at a company.
type SearchClient struct {
	APIKey string
	client *http.Client
}

// NewSearchClient constructs a client with a shared HTTP client.
func NewSearchClient(apiKey string) *SearchClient {
	return &SearchClient{
		APIKey: apiKey,
		client: &http.Client{Timeout: searchTimeout},
	}
}

// serperResponse mirrors the relevant part of the Serper JSON response.
type serperResponse struct {
	Organic []serperResult `json:"organic"`
}

type serperResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// FindRecruiter searches LinkedIn profiles for a recruiter at the
// given company and returns the noise-stripped name from the first
// usable result. Returns "" when nothing was found.
func (c *SearchClient) FindRecruiter(ctx context.Context, company string) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("SERPER_API_KEY is not configured")
	}

	query := fmt.Sprintf("site:linkedin.com/in recruiter %s", company)
	payload, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("serper returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp serperResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}

	for _, r := range apiResp.Organic {
		if name := StripTitleNoise(r.Title); name != "" {
			return name, nil
		}
	}
	return "", nil
}

package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wayfarer/config"
)

// SearchClient is the web-search dependency used by the IATA resolver and
// the POI client. The Tavily client is the real implementation; tests swap
// in fakes.
type SearchClient interface {
	Search(query, depth string, maxResults int) (*SearchResponse, error)
}

// SearchResult is one ranked hit from the search provider.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// ErrSearchKeyMissing is returned before any network attempt when the
// search provider key is not configured.
var ErrSearchKeyMissing = fmt.Errorf("TAVILY_API_KEY is missing")

// ─── Tavily Client ────────────────────────────────────────────────────────────

type TavilyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewTavilyClient(cfg *config.Config) *TavilyClient {
	return &TavilyClient{
		apiKey:  cfg.TavilyAPIKey,
		baseURL: cfg.TavilyBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

// Search runs one query against the Tavily search API. Depth is "basic"
// or "advanced"; advanced trades latency for result quality.
func (c *TavilyClient) Search(query, depth string, maxResults int) (*SearchResponse, error) {
	if c.apiKey == "" {
		return nil, ErrSearchKeyMissing
	}

	reqBody := tavilyRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: depth,
		MaxResults:  maxResults,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/search", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search error (%d): %s", resp.StatusCode, string(body))
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %v", err)
	}
	return &result, nil
}

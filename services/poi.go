package services

import (
	"fmt"
	"strings"
)

// poiHeader prefixes every POI summary so downstream consumers can tell
// search-derived text from error text.
const poiHeader = "Web Search Results for POIs:\n"

// POIClient finds attractions, restaurants and activity suggestions for
// a destination via web search.
type POIClient struct {
	search SearchClient
}

func NewPOIClient(search SearchClient) *POIClient {
	return &POIClient{search: search}
}

// Lookup runs one deep search for the city's top attractions and returns
// the raw result snippets joined under a header, each separated by a
// divider. No ranking or summarization happens here; the provider's
// ordering is kept as is.
func (c *POIClient) Lookup(cityName string) (string, error) {
	query := fmt.Sprintf(
		"Top 5 must-see tourist attractions, best restaurants, and recommended itinerary "+
			"for a 7-day trip to %s. Focus on names and descriptions.", cityName)

	result, err := c.search.Search(query, "advanced", 5)
	if err != nil {
		return "", fmt.Errorf("POI search failed for %s: %w", cityName, err)
	}

	snippets := make([]string, 0, len(result.Results))
	for _, r := range result.Results {
		snippets = append(snippets, r.Content)
	}

	return poiHeader + strings.Join(snippets, "\n---\n"), nil
}

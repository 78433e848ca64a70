package services

import (
	"fmt"
	"regexp"
	"strings"
)

// iataPattern matches a standalone run of exactly three uppercase
// letters. Word boundaries on both sides keep it from firing inside
// longer uppercase runs.
var iataPattern = regexp.MustCompile(`\b([A-Z]{3})\b`)

// ErrNoCode signals that no airport code could be resolved for a city.
// It is an expected outcome, not a transport failure; callers should
// degrade rather than abort.
var ErrNoCode = fmt.Errorf("no IATA code found")

// ExtractIATACode pulls the first standalone run of three uppercase
// letters out of free text. This is a heuristic: the token is not checked
// against any airport table, and when several candidates appear the first
// one wins. Matching raw text rather than an upper-cased copy keeps
// ordinary words like "The" from being mistaken for codes.
func ExtractIATACode(text string) (string, bool) {
	match := iataPattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return "", false
	}
	return match, true
}

// ─── Location Resolver ────────────────────────────────────────────────────────

// LocationResolver turns a city name into an airport code by searching
// the web and scanning the top hit for a 3-letter token.
type LocationResolver struct {
	search SearchClient
}

func NewLocationResolver(search SearchClient) *LocationResolver {
	return &LocationResolver{search: search}
}

// Resolve looks up the IATA code for a city. A missing code — whether the
// search came back empty or the top result contained no 3-letter token —
// is reported as ErrNoCode so the planner can skip flight search and
// still produce a plan.
func (r *LocationResolver) Resolve(cityName string) (string, error) {
	if strings.TrimSpace(cityName) == "" {
		return "", fmt.Errorf("city name is required")
	}

	query := fmt.Sprintf("IATA airport code %s", cityName)
	result, err := r.search.Search(query, "basic", 1)
	if err != nil {
		return "", fmt.Errorf("IATA lookup failed for %s: %w", cityName, err)
	}

	if len(result.Results) == 0 || result.Results[0].Content == "" {
		return "", fmt.Errorf("%w for %s via search", ErrNoCode, cityName)
	}

	code, ok := ExtractIATACode(result.Results[0].Content)
	if !ok {
		return "", fmt.Errorf("%w in search results for %s", ErrNoCode, cityName)
	}
	return code, nil
}

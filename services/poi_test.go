package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOILookupConcatenatesSnippets(t *testing.T) {
	search := &fakeSearch{resp: &SearchResponse{Results: []SearchResult{
		{Content: "Sagrada Familia"},
		{Content: "Park Guell"},
		{Content: "La Boqueria market"},
		{Content: "Gothic Quarter"},
		{Content: "Tickets bar"},
	}}}

	out, err := NewPOIClient(search).Lookup("Barcelona")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Web Search Results for POIs:\n"))
	assert.Equal(t, 4, strings.Count(out, "\n---\n"), "5 snippets need 4 dividers")
	assert.Contains(t, out, "Sagrada Familia")
	assert.Contains(t, out, "Tickets bar")

	assert.Equal(t, "advanced", search.gotDepth)
	assert.Equal(t, 5, search.gotMax)
	assert.Contains(t, search.gotQuery, "Barcelona")
	assert.Contains(t, search.gotQuery, "7-day trip")
}

func TestPOILookupProviderError(t *testing.T) {
	search := &fakeSearch{err: errors.New("upstream timeout")}

	_, err := NewPOIClient(search).Lookup("Barcelona")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POI search failed for Barcelona")
}

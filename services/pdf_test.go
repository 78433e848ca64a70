package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePDFBytes(t *testing.T) {
	data := PDFData{
		DepartureCity: "New York",
		Destination:   "London",
		TravelDates:   "2026-05-10 to 2026-05-17",
		Flights: []FlightOption{
			{PriceUSD: "480.00", AirlineCode: "BA", Duration: "7h 20m"},
		},
		POISummary: "Web Search Results for POIs:\nBig Ben\n---\nTower of London",
		DailyPlan: map[string]string{
			"Day 1":   "Arrive in London, check-in, rest and explore nearby areas",
			"Day 2-5": "Visit major attractions and landmarks",
			"Day 6":   "Shopping and local cuisine exploration",
			"Day 7":   "Last-minute sightseeing and departure preparation",
		},
	}

	pdf, err := GeneratePDFBytes(data)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGeneratePDFBytesNoFlights(t *testing.T) {
	pdf, err := GeneratePDFBytes(PDFData{
		DepartureCity: "Nowhere",
		Destination:   "Atlantis",
		TravelDates:   "2026-01-01 to 2026-01-08",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

package planner

import (
	"errors"
	"strings"
	"testing"

	"wayfarer/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	codes map[string]string
}

func (f *fakeResolver) Resolve(city string) (string, error) {
	if code, ok := f.codes[city]; ok {
		return code, nil
	}
	return "", services.ErrNoCode
}

type fakeFlights struct {
	options []services.FlightOption
	err     error
	called  bool
}

func (f *fakeFlights) SearchFlights(origin, destination, departureDate, returnDate string) ([]services.FlightOption, error) {
	f.called = true
	return f.options, f.err
}

type fakePOI struct {
	text string
	err  error
}

func (f *fakePOI) Lookup(city string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func demoRequest() ItineraryRequest {
	return ItineraryRequest{
		DepartureCity: "San Francisco",
		ArrivalCity:   "Barcelona",
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-08",
	}
}

func TestPlanTripFullWorkflow(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{
		"San Francisco": "SFO",
		"Barcelona":     "BCN",
	}}
	flights := &fakeFlights{options: []services.FlightOption{
		{PriceUSD: "620.40", AirlineCode: "IB", Duration: "13h 25m"},
		{PriceUSD: "595.10", AirlineCode: "VY", Duration: "15h 10m"},
	}}
	poi := &fakePOI{text: "Web Search Results for POIs:\nSagrada Familia\n---\nPark Guell"}

	plan := New(resolver, flights, poi).PlanTrip(demoRequest())

	assert.Equal(t, "Barcelona", plan.Destination)
	assert.Equal(t, "2026-06-01 to 2026-06-08", plan.TravelDates)

	require.Len(t, plan.Flights, 2)
	assert.Equal(t, "IB", plan.Flights[0].AirlineCode) // provider order kept
	assert.Equal(t, "VY", plan.Flights[1].AirlineCode)

	assert.Contains(t, plan.POISummary, "Sagrada Familia")

	require.Len(t, plan.DailyPlan, 4)
	for _, day := range []string{"Day 1", "Day 2-5", "Day 6", "Day 7"} {
		assert.Contains(t, plan.DailyPlan, day)
	}
	assert.Contains(t, plan.DailyPlan["Day 1"], "Barcelona")
}

func TestPlanTripResolutionFailureSkipsFlights(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{"Barcelona": "BCN"}}
	flights := &fakeFlights{options: []services.FlightOption{{AirlineCode: "IB"}}}
	poi := &fakePOI{text: "some attractions"}

	plan := New(resolver, flights, poi).PlanTrip(demoRequest())

	assert.False(t, flights.called, "flight search must be skipped when a code is unresolved")
	assert.Empty(t, plan.Flights)
	assert.Equal(t, "some attractions", plan.POISummary, "POI data survives partial failure")
}

func TestPlanTripFlightErrorDegradesToEmpty(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{
		"San Francisco": "SFO",
		"Barcelona":     "BCN",
	}}
	flights := &fakeFlights{err: errors.New("amadeus error (500): boom")}
	poi := &fakePOI{text: "attractions"}

	plan := New(resolver, flights, poi).PlanTrip(demoRequest())

	assert.True(t, flights.called)
	assert.NotNil(t, plan.Flights)
	assert.Empty(t, plan.Flights)
}

func TestPlanTripPOIErrorTextEmbedded(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{
		"San Francisco": "SFO",
		"Barcelona":     "BCN",
	}}
	flights := &fakeFlights{}
	poi := &fakePOI{err: errors.New("POI search failed for Barcelona: upstream timeout")}

	plan := New(resolver, flights, poi).PlanTrip(demoRequest())

	// The error text is the summary, deliberately unmasked
	assert.Equal(t, "POI search failed for Barcelona: upstream timeout", plan.POISummary)
}

func TestPlanTripTruncatesPOISummary(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{}}
	long := strings.Repeat("a", 1200)
	poi := &fakePOI{text: long}

	plan := New(resolver, &fakeFlights{}, poi).PlanTrip(demoRequest())

	assert.Len(t, plan.POISummary, 503)
	assert.True(t, strings.HasSuffix(plan.POISummary, "..."))
	assert.Equal(t, long[:500], plan.POISummary[:500])
}

func TestPlanTripTruncationCountsCharactersNotBytes(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{}}

	// 300 characters but 600 bytes; under the 500-character cap, so it
	// must pass through unchanged.
	short := strings.Repeat("é", 300)
	plan := New(resolver, &fakeFlights{}, &fakePOI{text: short}).PlanTrip(demoRequest())
	assert.Equal(t, short, plan.POISummary)

	// 600 characters of multibyte text truncates to 500 runes plus the
	// ellipsis, with no rune split mid-sequence.
	long := strings.Repeat("ü", 600)
	plan = New(resolver, &fakeFlights{}, &fakePOI{text: long}).PlanTrip(demoRequest())
	runes := []rune(plan.POISummary)
	require.Len(t, runes, 503)
	assert.Equal(t, strings.Repeat("ü", 500)+"...", plan.POISummary)
}

func TestPlanTripShortPOISummaryUntouched(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{}}
	short := strings.Repeat("b", 500)
	poi := &fakePOI{text: short}

	plan := New(resolver, &fakeFlights{}, poi).PlanTrip(demoRequest())

	assert.Equal(t, short, plan.POISummary)
}

func TestPlanTripCapsFlightsAtThree(t *testing.T) {
	resolver := &fakeResolver{codes: map[string]string{
		"San Francisco": "SFO",
		"Barcelona":     "BCN",
	}}
	flights := &fakeFlights{options: []services.FlightOption{
		{AirlineCode: "AA"}, {AirlineCode: "BA"}, {AirlineCode: "CA"}, {AirlineCode: "DA"},
	}}

	plan := New(resolver, flights, &fakePOI{text: "x"}).PlanTrip(demoRequest())

	require.Len(t, plan.Flights, 3)
	assert.Equal(t, "AA", plan.Flights[0].AirlineCode)
	assert.Equal(t, "CA", plan.Flights[2].AirlineCode)
}

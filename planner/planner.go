package planner

import (
	"fmt"
	"log"
	"sync"

	"wayfarer/services"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// ItineraryRequest is the raw trip input. Dates are YYYY-MM-DD strings
// and are passed through to the flight provider unparsed.
type ItineraryRequest struct {
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

// ItineraryPlan is the final assembled record. It is built in one shot
// and never mutated afterwards.
type ItineraryPlan struct {
	Destination string                  `json:"destination"`
	TravelDates string                  `json:"travel_dates"`
	Flights     []services.FlightOption `json:"flights"`
	POISummary  string                  `json:"poi_summary"`
	DailyPlan   map[string]string       `json:"daily_plan"`
}

// poiSummaryLimit caps how much POI text makes it into the plan.
const poiSummaryLimit = 500

// CodeResolver resolves a city name to a 3-letter airport code.
type CodeResolver interface {
	Resolve(cityName string) (string, error)
}

// FlightSearcher finds priced flight offers for a round trip.
type FlightSearcher interface {
	SearchFlights(origin, destination, departureDate, returnDate string) ([]services.FlightOption, error)
}

// POISearcher returns attraction/activity text for a city.
type POISearcher interface {
	Lookup(cityName string) (string, error)
}

// ─── Planner ──────────────────────────────────────────────────────────────────

// Planner sequences code resolution, flight search and POI search into
// one itinerary. Every step tolerates failure: a plan always comes back,
// possibly with no flights and with error text as the POI summary.
type Planner struct {
	resolver CodeResolver
	flights  FlightSearcher
	poi      POISearcher
}

func New(resolver CodeResolver, flights FlightSearcher, poi POISearcher) *Planner {
	return &Planner{
		resolver: resolver,
		flights:  flights,
		poi:      poi,
	}
}

// PlanTrip runs the full workflow. The two city resolutions are
// independent and run concurrently; flight search only happens when both
// succeed. POI search is attempted regardless of the flight outcome.
func (p *Planner) PlanTrip(req ItineraryRequest) *ItineraryPlan {
	depCode, arrCode := p.resolveCodes(req.DepartureCity, req.ArrivalCity)

	var flights []services.FlightOption
	if depCode != "" && arrCode != "" {
		found, err := p.flights.SearchFlights(depCode, arrCode, req.StartDate, req.EndDate)
		if err != nil {
			log.Printf("flight search failed: %v — continuing without flights", err)
		} else if len(found) == 0 {
			log.Printf("no flight offers for %s-%s — continuing without flights", depCode, arrCode)
		} else {
			flights = found
		}
	} else {
		log.Printf("IATA resolution incomplete (%q, %q) — skipping flight search", depCode, arrCode)
	}

	poiText, err := p.poi.Lookup(req.ArrivalCity)
	if err != nil {
		// The error text is carried into the plan on purpose: the user
		// sees what went wrong instead of a silently empty summary.
		poiText = err.Error()
	}

	return assemble(req, flights, poiText)
}

// resolveCodes looks up departure and arrival codes concurrently. A
// failed lookup yields an empty string; both results are collected
// before returning.
func (p *Planner) resolveCodes(departureCity, arrivalCity string) (string, string) {
	var depCode, arrCode string
	var wg sync.WaitGroup

	resolve := func(city string, out *string) {
		defer wg.Done()
		code, err := p.resolver.Resolve(city)
		if err != nil {
			log.Printf("IATA lookup for %q: %v", city, err)
			return
		}
		*out = code
	}

	wg.Add(2)
	go resolve(departureCity, &depCode)
	go resolve(arrivalCity, &arrCode)
	wg.Wait()

	return depCode, arrCode
}

// assemble builds the final plan: at most 3 flights in provider order,
// POI text truncated at 500 characters, and the fixed placeholder
// day-by-day schedule. The schedule deliberately ignores the real date
// span; it has always been a 7-day template.
func assemble(req ItineraryRequest, flights []services.FlightOption, poiText string) *ItineraryPlan {
	if len(flights) > 3 {
		flights = flights[:3]
	}
	if flights == nil {
		flights = []services.FlightOption{}
	}

	// Truncate on characters, not bytes: POI text is full of accented
	// place names and slicing mid-rune would corrupt the output.
	if runes := []rune(poiText); len(runes) > poiSummaryLimit {
		poiText = string(runes[:poiSummaryLimit]) + "..."
	}

	return &ItineraryPlan{
		Destination: req.ArrivalCity,
		TravelDates: fmt.Sprintf("%s to %s", req.StartDate, req.EndDate),
		Flights:     flights,
		POISummary:  poiText,
		DailyPlan: map[string]string{
			"Day 1":   fmt.Sprintf("Arrive in %s, check-in, rest and explore nearby areas", req.ArrivalCity),
			"Day 2-5": "Visit major attractions and landmarks",
			"Day 6":   "Shopping and local cuisine exploration",
			"Day 7":   "Last-minute sightseeing and departure preparation",
		},
	}
}

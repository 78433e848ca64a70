package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"wayfarer/config"
	"wayfarer/planner"
	"wayfarer/services"
)

// runInteractive is the console surface: exercise each tool on its own,
// run a canned demo trip, or plan a custom one.
func runInteractive(cfg *config.Config, trip *planner.Planner) {
	if !cfg.HasTavily() {
		fmt.Println("TAVILY_API_KEY is missing. Cannot perform IATA lookup or POI search.")
		return
	}

	fmt.Println("\n🚀 WAYFARER TRIP PLANNER")
	fmt.Println("Choose a mode:")
	fmt.Println("1. Test individual tools")
	fmt.Println("2. Run demo trip")
	fmt.Println("3. Custom trip planning")

	reader := bufio.NewReader(os.Stdin)
	choice := prompt(reader, "\nEnter your choice (1/2/3): ")

	switch choice {
	case "1":
		testIndividualTools(cfg)
	case "2":
		runTrip(trip, planner.ItineraryRequest{
			DepartureCity: "San Francisco",
			ArrivalCity:   "Barcelona",
			StartDate:     "2026-06-01",
			EndDate:       "2026-06-08",
		})
	case "3":
		req := planner.ItineraryRequest{
			DepartureCity: prompt(reader, "Enter departure city: "),
			ArrivalCity:   prompt(reader, "Enter destination city: "),
			StartDate:     prompt(reader, "Enter start date (YYYY-MM-DD): "),
			EndDate:       prompt(reader, "Enter end date (YYYY-MM-DD): "),
		}
		runTrip(trip, req)
	default:
		fmt.Println("Invalid choice. Running demo trip...")
		runTrip(trip, planner.ItineraryRequest{
			DepartureCity: "San Francisco",
			ArrivalCity:   "Barcelona",
			StartDate:     "2026-06-01",
			EndDate:       "2026-06-08",
		})
	}
}

func testIndividualTools(cfg *config.Config) {
	search := services.NewTavilyClient(cfg)

	fmt.Println("\n--- IATA lookup: London ---")
	code, err := services.NewLocationResolver(search).Resolve("London")
	if err != nil {
		fmt.Println("Result:", err)
	} else {
		fmt.Println("Result:", code)
	}

	fmt.Println("\n--- POI search: Paris ---")
	poi, err := services.NewPOIClient(search).Lookup("Paris")
	if err != nil {
		fmt.Println("Result:", err)
	} else {
		fmt.Println(poi)
	}

	fmt.Println("\n--- Flight search: JFK → LHR ---")
	flights, err := services.NewAmadeusClient(cfg).SearchFlights("JFK", "LHR", "2026-05-10", "2026-05-17")
	switch {
	case err != nil:
		fmt.Println("Result:", err)
	case len(flights) == 0:
		fmt.Println("No flight offers found for the specified criteria.")
	default:
		for i, f := range flights {
			fmt.Printf("  %d. %s — $%s USD (%s)\n", i+1, f.AirlineCode, f.PriceUSD, f.Duration)
		}
	}
}

func runTrip(trip *planner.Planner, req planner.ItineraryRequest) {
	fmt.Printf("\nPlanning %s → %s, %s to %s\n",
		req.DepartureCity, req.ArrivalCity, req.StartDate, req.EndDate)

	plan := trip.PlanTrip(req)

	out, _ := json.MarshalIndent(plan, "", "  ")
	fmt.Println("\n📋 YOUR TRAVEL ITINERARY")
	fmt.Println(string(out))
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"wayfarer/config"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// FlightOption is the display-ready projection of one Amadeus flight
// offer: total price, the carrier operating the first outbound segment,
// and the outbound duration in "10h 30m" form.
type FlightOption struct {
	PriceUSD    string `json:"price_usd"`
	AirlineCode string `json:"airline_code"`
	Duration    string `json:"duration"`
}

// maxOffers caps how many offers are requested and kept per search.
const maxOffers = 3

// ─── Amadeus Client ───────────────────────────────────────────────────────────

type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *http.Client
}

func NewAmadeusClient(cfg *config.Config) *AmadeusClient {
	return &AmadeusClient{
		clientID:     cfg.AmadeusClientID,
		clientSecret: cfg.AmadeusClientSecret,
		baseURL:      cfg.AmadeusBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken() error {
	if c.clientID == "" || c.clientSecret == "" {
		return fmt.Errorf("AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set")
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequest("POST",
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %v", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken() (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doRequest(method, path string) ([]byte, error) {
	token, err := c.getToken()
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// ─── Flight Search ────────────────────────────────────────────────────────────

// SearchFlights queries the Amadeus Flight Offers Search API for a
// round trip and returns up to 3 options in provider order. Zero matching
// offers is not an error: the caller gets an empty slice and decides how
// to proceed.
func (c *AmadeusClient) SearchFlights(origin, destination, departureDate, returnDate string) ([]FlightOption, error) {
	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&returnDate=%s&adults=1&max=%d&currencyCode=USD",
		url.QueryEscape(strings.ToUpper(origin)),
		url.QueryEscape(strings.ToUpper(destination)),
		url.QueryEscape(departureDate),
		url.QueryEscape(returnDate),
		maxOffers,
	)

	body, err := c.doRequest("GET", path)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	return parseFlightOffers(body)
}

// Amadeus flight offers response structures
type amadeusFlightOffersResponse struct {
	Data []amadeusFlightOffer `json:"data"`
}

type amadeusFlightOffer struct {
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			CarrierCode string `json:"carrierCode"`
		} `json:"segments"`
	} `json:"itineraries"`
}

func parseFlightOffers(data []byte) ([]FlightOption, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	options := make([]FlightOption, 0, len(resp.Data))
	for _, offer := range resp.Data {
		if len(options) == maxOffers {
			break
		}
		if len(offer.Itineraries) < 1 || len(offer.Itineraries[0].Segments) < 1 {
			continue
		}

		outbound := offer.Itineraries[0]
		options = append(options, FlightOption{
			PriceUSD:    offer.Price.Total,
			AirlineCode: outbound.Segments[0].CarrierCode,
			Duration:    reformatDuration(outbound.Duration),
		})
	}
	return options, nil
}

// reformatDuration rewrites an Amadeus duration token like "PT10H30M"
// into "10h 30m" by literal substitution. "PT5H" becomes "5h " with a
// trailing space, and day or second components pass through the same
// replacements; downstream formatting depends on exactly this output.
func reformatDuration(iso string) string {
	return strings.NewReplacer("PT", "", "H", "h ", "M", "m").Replace(iso)
}

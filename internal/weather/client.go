// Package weather is the gateway to the external weather provider.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
)

// DefaultTimeout bounds the provider call so one slow response cannot pin a
// request worker.
const DefaultTimeout = 10 * time.Second

// Snapshot is the fixed set of display fields mapped from the provider
// response. Humidity is a percentage, Time is already formatted for display.
type Snapshot struct {
	Time        string  `json:"time"`
	Summary     string  `json:"summary"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
}

// providerResponse mirrors the provider's JSON: humidity is a 0-1 fraction
// and time is a unix epoch.
type providerResponse struct {
	Currently struct {
		Time        int64   `json:"time"`
		Summary     string  `json:"summary"`
		Temperature float64 `json:"temperature"`
		Humidity    float64 `json:"humidity"`
		Pressure    float64 `json:"pressure"`
		WindSpeed   float64 `json:"windSpeed"`
	} `json:"currently"`
}

// Client issues one outbound HTTP request per lookup, keyed by the API
// credential.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// GetCurrentWeather fetches current conditions for the coordinates. Any
// transport failure, non-200 status or malformed body maps to the gateway
// sentinel so callers can degrade instead of crashing the page.
func (c *Client) GetCurrentWeather(lat, long float64) (*Snapshot, error) {
	url := fmt.Sprintf("%s/%s/%f,%f?units=si", c.baseURL, c.apiKey, lat, long)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrGateway, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(apperrors.ErrGateway, "provider returned status %d", resp.StatusCode)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(apperrors.ErrGateway, "malformed provider response")
	}

	return &Snapshot{
		Time:        time.Unix(body.Currently.Time, 0).Format("2006-01-02 15:04:05"),
		Summary:     body.Currently.Summary,
		Temperature: body.Currently.Temperature,
		Humidity:    body.Currently.Humidity * 100,
		Pressure:    body.Currently.Pressure,
		WindSpeed:   body.Currently.WindSpeed,
	}, nil
}

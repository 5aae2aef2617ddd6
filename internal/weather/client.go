package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1"

// Current holds the current-conditions block of an Open-Meteo forecast
// response, limited to the variables the bot reports.
type Current struct {
	WeatherCode         int     `json:"weather_code"`
	Temperature         float64 `json:"temperature_2m"`
	RelativeHumidity    float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               int     `json:"is_day"`
	CloudCover          float64 `json:"cloud_cover"`
	WindSpeed           float64 `json:"wind_speed_10m"`
}

// Units maps each requested variable to the unit Open-Meteo reports it in.
type Units struct {
	Temperature         string `json:"temperature_2m"`
	RelativeHumidity    string `json:"relative_humidity_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	CloudCover          string `json:"cloud_cover"`
	WindSpeed           string `json:"wind_speed_10m"`
}

type forecastResponse struct {
	Current Current `json:"current"`
	Units   Units   `json:"current_units"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var currentVariables = []string{
	"weather_code",
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"is_day",
	"cloud_cover",
	"wind_speed_10m",
}

// CurrentConditions fetches the current weather at the given coordinate.
func (c *Client) CurrentConditions(ctx context.Context, latitude, longitude float64) (*Current, *Units, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", latitude))
	query.Set("longitude", fmt.Sprintf("%f", longitude))
	current := ""
	for i, variable := range currentVariables {
		if i > 0 {
			current += ","
		}
		current += variable
	}
	query.Set("current", current)

	endpoint := fmt.Sprintf("%s/forecast?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read weather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var forecast forecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return &forecast.Current, &forecast.Units, nil
}

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrentConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("path = %q, want /forecast", r.URL.Path)
		}
		if got := r.URL.Query().Get("current"); got == "" {
			t.Error("missing current query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current": {
				"weather_code": 3,
				"temperature_2m": 21.4,
				"relative_humidity_2m": 60,
				"apparent_temperature": 22.1,
				"is_day": 1,
				"cloud_cover": 85,
				"wind_speed_10m": 12.3
			},
			"current_units": {
				"temperature_2m": "°C",
				"relative_humidity_2m": "%",
				"apparent_temperature": "°C",
				"cloud_cover": "%",
				"wind_speed_10m": "km/h"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	current, units, err := client.CurrentConditions(context.Background(), 41.9, 12.5)
	if err != nil {
		t.Fatalf("CurrentConditions error: %v", err)
	}
	if current.WeatherCode != 3 || current.Temperature != 21.4 || current.IsDay != 1 {
		t.Errorf("unexpected current block: %+v", current)
	}
	if units.Temperature != "°C" || units.WindSpeed != "km/h" {
		t.Errorf("unexpected units block: %+v", units)
	}
}

func TestCurrentConditionsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	if _, _, err := client.CurrentConditions(context.Background(), 41.9, 12.5); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe(0); got != "Clear sky" {
		t.Errorf("Describe(0) = %q", got)
	}
	if got := Describe(42); got != "Unknown conditions" {
		t.Errorf("Describe(42) = %q", got)
	}
}

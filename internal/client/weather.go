package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hridayavayu/internal/logger"
)

// PollenUnavailable is shown where a pollen level would go; the weather
// provider does not supply one.
const PollenUnavailable = "unavailable"

type WeatherReport struct {
	TempC    float64
	Humidity float64
	PM10     float64
	Pollen   string
}

type Weather struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      logger.Logger
}

func NewWeather(endpoint, apiKey string) *Weather {
	return &Weather{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: defaultTimeout},
		log:      logger.New("client").File("weather"),
	}
}

// Current fetches current conditions for display on the dashboard.
func (w *Weather) Current(ctx context.Context) (*WeatherReport, error) {
	log := w.log.Function("Current")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint, nil)
	if err != nil {
		return nil, log.Err("failed to build weather request", err)
	}
	if w.apiKey != "" {
		q := req.URL.Query()
		q.Set("key", w.apiKey)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := w.http.Do(req)
	if err != nil {
		return nil, log.Err("weather request failed", err, "endpoint", w.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, log.Error("weather provider returned non-OK status", "status", resp.StatusCode)
	}

	var payload struct {
		Current struct {
			TempC      float64 `json:"temp_c"`
			Humidity   float64 `json:"humidity"`
			AirQuality struct {
				PM10 float64 `json:"pm10"`
			} `json:"air_quality"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, log.Err("failed to decode weather response", err)
	}

	return &WeatherReport{
		TempC:    payload.Current.TempC,
		Humidity: payload.Current.Humidity,
		PM10:     payload.Current.AirQuality.PM10,
		Pollen:   PollenUnavailable,
	}, nil
}

func (r *WeatherReport) Summary() string {
	return fmt.Sprintf("%.1f°C, humidity %.0f%%, AQI(PM10) %.0f, pollen %s",
		r.TempC, r.Humidity, r.PM10, r.Pollen)
}

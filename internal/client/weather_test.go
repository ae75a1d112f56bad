package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeather_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"current": {
				"temp_c": 31.4,
				"humidity": 68,
				"air_quality": {"pm10": 42.5}
			}
		}`))
	}))
	defer server.Close()

	weather := NewWeather(server.URL, "test-key")
	report, err := weather.Current(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 31.4, report.TempC, 0.0001)
	assert.InDelta(t, 68, report.Humidity, 0.0001)
	assert.InDelta(t, 42.5, report.PM10, 0.0001)
	assert.Equal(t, PollenUnavailable, report.Pollen)
}

func TestWeather_Current_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	weather := NewWeather(server.URL, "bad-key")
	_, err := weather.Current(context.Background())

	assert.Error(t, err)
}

func TestWeatherReport_Summary(t *testing.T) {
	report := &WeatherReport{TempC: 31.4, Humidity: 68, PM10: 42, Pollen: PollenUnavailable}
	assert.Equal(t, "31.4°C, humidity 68%, AQI(PM10) 42, pollen unavailable", report.Summary())
}

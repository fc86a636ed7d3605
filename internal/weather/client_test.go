package weather

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syntaxkim/project1/internal/apperrors"
)

func TestGetCurrentWeatherMapsProviderFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"currently":{"time":1700000000,"summary":"Clear","temperature":21.5,"humidity":0.63,"pressure":1013.2,"windSpeed":3.4}}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")

	snapshot, err := client.GetCurrentWeather(40.75, -73.99)
	require.NoError(t, err)

	assert.Equal(t, "Clear", snapshot.Summary)
	assert.Equal(t, 21.5, snapshot.Temperature)
	assert.InDelta(t, 63.0, snapshot.Humidity, 0.0001)
	assert.Equal(t, 1013.2, snapshot.Pressure)
	assert.Equal(t, 3.4, snapshot.WindSpeed)
	assert.Equal(t, time.Unix(1700000000, 0).Format("2006-01-02 15:04:05"), snapshot.Time)
}

func TestGetCurrentWeatherProviderDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")

	_, err := client.GetCurrentWeather(40.75, -73.99)
	require.Error(t, err)
	assert.True(t, apperrors.IsGateway(err))
}

func TestGetCurrentWeatherMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key")

	_, err := client.GetCurrentWeather(40.75, -73.99)
	require.Error(t, err)
	assert.True(t, apperrors.IsGateway(err))
}

func TestGetCurrentWeatherUnreachableProvider(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "test-key")

	_, err := client.GetCurrentWeather(40.75, -73.99)
	require.Error(t, err)
	assert.True(t, apperrors.IsGateway(err))
}

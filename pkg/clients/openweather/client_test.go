package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencoders/soilcard/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.WeatherConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
}

func TestCurrentParsesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Delhi", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather":[{"main":"Haze"}],"main":{"temp":31.4,"humidity":52}}`))
	})

	snapshot, err := client.Current(context.Background(), "Delhi")
	require.NoError(t, err)
	assert.Equal(t, 31.4, snapshot.TemperatureC)
	assert.Equal(t, 52.0, snapshot.HumidityPct)
	assert.Equal(t, "Haze", snapshot.ConditionLabel)
}

func TestCurrentSurfacesAPIErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	})

	_, err := client.Current(context.Background(), "Delhi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestCurrentHandlesMissingConditions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather":[],"main":{"temp":20,"humidity":60}}`))
	})

	snapshot, err := client.Current(context.Background(), "Delhi")
	require.NoError(t, err)
	assert.Empty(t, snapshot.ConditionLabel)
}

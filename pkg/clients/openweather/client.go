package openweather

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/greencoders/soilcard/internal/config"
	"github.com/greencoders/soilcard/internal/domain/models"
)

// Client exposes the weather lookup used by the advisory pipeline.
type Client interface {
	Current(ctx context.Context, city string) (models.WeatherSnapshot, error)
}

// APIClient is a resty-backed implementation of Client against the
// OpenWeatherMap current-weather endpoint.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds an OpenWeather API client from configuration values.
func NewClient(cfg config.WeatherConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetTimeout(10 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		apiKey:     cfg.APIKey,
	}
}

// currentResponse mirrors the subset of the OpenWeather payload we consume.
type currentResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

// apiError represents an OpenWeather error payload.
type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// Current fetches the live weather for a city in metric units.
func (c *APIClient) Current(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	result := new(currentResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(result).
		SetError(apiErr).
		Get("/data/2.5/weather")
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("fetch weather for %s: %w", city, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return models.WeatherSnapshot{}, fmt.Errorf("openweather api error: status=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}

	condition := ""
	if len(result.Weather) > 0 {
		condition = result.Weather[0].Main
	}

	return models.WeatherSnapshot{
		TemperatureC:   result.Main.Temp,
		HumidityPct:    result.Main.Humidity,
		ConditionLabel: condition,
	}, nil
}

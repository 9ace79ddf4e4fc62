package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"dreamtrip/pkg/utils"
)

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// Gateway is the uniform contract to the four data collaborators. Transport
// failures and non-2xx responses come back as utils.ErrProviderUnavailable
// and utils.ErrProviderFailure respectively; the orchestrator treats both as
// "this sub-fetch failed". No retries at this layer.
type Gateway interface {
	FetchRoute(ctx context.Context, req RouteRequest) (*RouteResult, error)
	FetchWeather(ctx context.Context, req WeatherRequest) (*WeatherResult, error)
	FetchPois(ctx context.Context, req POIRequest) (*POIResult, error)
	Summarize(ctx context.Context, req SummaryRequest) (*SummaryResult, error)
	CheckHealth(ctx context.Context, category Category) string
}

type Client struct {
	baseURLs map[Category]string
	// Data calls get a generous timeout, health checks a tight one.
	dataHTTP   *http.Client
	healthHTTP *http.Client
}

func NewClientFromEnv() *Client {
	return NewClient(map[Category]string{
		CategoryRoute:   os.Getenv("ROUTE_SERVICE_URL"),
		CategoryWeather: os.Getenv("WEATHER_SERVICE_URL"),
		CategoryPOI:     os.Getenv("POI_SERVICE_URL"),
		CategoryAI:      os.Getenv("AI_SERVICE_URL"),
	})
}

func NewClient(baseURLs map[Category]string) *Client {
	return &Client{
		baseURLs:   baseURLs,
		dataHTTP:   &http.Client{Timeout: 30 * time.Second},
		healthHTTP: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) FetchRoute(ctx context.Context, req RouteRequest) (*RouteResult, error) {
	var out RouteResult
	if err := c.call(ctx, CategoryRoute, "/route", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchWeather(ctx context.Context, req WeatherRequest) (*WeatherResult, error) {
	var out WeatherResult
	if err := c.call(ctx, CategoryWeather, "/weather/forecast", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchPois(ctx context.Context, req POIRequest) (*POIResult, error) {
	var out POIResult
	if err := c.call(ctx, CategoryPOI, "/poi/recommendations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Summarize(ctx context.Context, req SummaryRequest) (*SummaryResult, error) {
	var out SummaryResult
	if err := c.call(ctx, CategoryAI, "/ai/summarize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckHealth(ctx context.Context, category Category) string {
	base, ok := c.baseURLs[category]
	if !ok || base == "" {
		return HealthStatusUnhealthy
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/health", nil)
	if err != nil {
		return HealthStatusUnhealthy
	}

	resp, err := c.healthHTTP.Do(req)
	if err != nil {
		return HealthStatusUnhealthy
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HealthStatusUnhealthy
	}
	return HealthStatusHealthy
}

func (c *Client) call(ctx context.Context, category Category, endpoint string, payload interface{}, out interface{}) error {
	base, ok := c.baseURLs[category]
	if !ok || base == "" {
		return fmt.Errorf("%w: no base URL for %s", utils.ErrProviderUnavailable, category)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s request encode: %w", category, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s request build: %w", category, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.dataHTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", utils.ErrProviderUnavailable, category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: %s: %s", utils.ErrProviderFailure, category, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", utils.ErrProviderFailure, category, err)
	}
	return nil
}

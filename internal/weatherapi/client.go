package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/glasscast/glasscast/internal/httputil"
	"github.com/glasscast/glasscast/internal/metrics"
	"github.com/glasscast/glasscast/internal/models"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// forecastDays matches the dashboard's 7-day horizon.
const forecastDays = 7

// Client fetches forecast snapshots from weatherapi.com. Each Fetch is a
// single round trip: no retry, no caching. The rate limiter only guards
// the provider quota against runaway callers.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httputil.NewClient(),
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// SetRateLimit replaces the outbound limiter. rps may be fractional for
// less than one request per second.
func (c *Client) SetRateLimit(rps float64, burst int) {
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// Fetch retrieves the 7-day forecast snapshot for a free-text location
// query ("London" or "51.5,-0.1"). Blank queries fail fast with
// *InvalidInputError before any network call. Non-2xx responses return
// *UpstreamError; structurally incomplete payloads return
// *MalformedResponseError. Raw units are preserved: temperatures stay in
// Celsius, wind in km/h.
func (c *Client) Fetch(ctx context.Context, query string) (*models.WeatherSnapshot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &InvalidInputError{Query: query}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("days", strconv.Itoa(forecastDays))
	params.Set("aqi", "yes")
	params.Set("alerts", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("transport_error").Inc()
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	metrics.UpstreamCallsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			Status:  resp.StatusCode,
			Body:    string(body),
			Message: gjson.GetBytes(body, "error.message").String(),
		}
	}

	var payload forecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if payload.Location == nil {
		return nil, &MalformedResponseError{Reason: "missing location"}
	}
	if payload.Current == nil {
		return nil, &MalformedResponseError{Reason: "missing current"}
	}

	return payload.toSnapshot(time.Now().UTC()), nil
}

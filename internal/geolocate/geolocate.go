package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/glasscast/glasscast/internal/httputil"
)

// DefaultEndpoint resolves approximate coordinates from the machine's
// public IP. The free tier needs no key.
const DefaultEndpoint = "http://ip-api.com/json"

// DefaultTimeout bounds the whole lookup; past it the caller falls back
// to its default location.
const DefaultTimeout = 10 * time.Second

// Position is a resolved coordinate pair.
type Position struct {
	Latitude  float64
	Longitude float64
	City      string
}

// Error wraps any geolocation failure. Callers recover from it locally by
// falling back; it is never shown to the user.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("geolocation: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Resolver looks up the session's approximate position.
type Resolver struct {
	endpoint   string
	httpClient *http.Client
}

func NewResolver() *Resolver {
	return NewResolverWithEndpoint(DefaultEndpoint)
}

func NewResolverWithEndpoint(endpoint string) *Resolver {
	return &Resolver{
		endpoint:   endpoint,
		httpClient: httputil.NewClientWithTimeout(DefaultTimeout),
	}
}

type resolveResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

// Resolve performs one lookup, honouring ctx for the timeout bound.
func (r *Resolver) Resolve(ctx context.Context) (Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return Position{}, &Error{Err: err}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Position{}, &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Position{}, &Error{Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(b))}
	}

	var data resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Position{}, &Error{Err: fmt.Errorf("decode: %w", err)}
	}
	if data.Status != "success" {
		return Position{}, &Error{Err: fmt.Errorf("lookup failed: %s", data.Message)}
	}

	return Position{Latitude: data.Lat, Longitude: data.Lon, City: data.City}, nil
}

package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/glasscast/glasscast/internal/geolocate"
	"github.com/glasscast/glasscast/internal/metrics"
	"github.com/glasscast/glasscast/internal/models"
	"github.com/glasscast/glasscast/internal/weatherapi"
)

// State is the orchestrator's lifecycle phase.
type State string

const (
	StateIdle     State = "idle"
	StateLocating State = "locating"
	StateFetching State = "fetching"
	StateReady    State = "ready"
	StateFailed   State = "failed"
)

const (
	defaultGeoTimeout      = 10 * time.Second
	defaultRefreshInterval = 15 * time.Minute
)

// Fetcher retrieves a snapshot for a location query.
type Fetcher interface {
	Fetch(ctx context.Context, query string) (*models.WeatherSnapshot, error)
}

// Locator resolves the session's approximate position.
type Locator interface {
	Resolve(ctx context.Context) (geolocate.Position, error)
}

// Notifier surfaces session events as dashboard notifications.
type Notifier interface {
	Enqueue(title, message string, sev models.Severity, ttl time.Duration) string
}

// Session coordinates geolocation, fetching, and the single live snapshot
// for one dashboard session. A failed fetch never blanks the display: the
// previous snapshot stays, or the offline placeholder is installed when
// nothing has loaded yet.
type Session struct {
	fetcher         Fetcher
	locator         Locator
	defaultLocation string
	geoTimeout      time.Duration
	refreshInterval time.Duration
	notifier        Notifier

	mu         sync.Mutex
	state      State
	snapshot   *models.WeatherSnapshot
	lastErr    error
	query      string
	useCelsius bool
	lightMode  bool
	seq        uint64
	applied    uint64
}

func New(fetcher Fetcher, locator Locator, defaultLocation string) *Session {
	return &Session{
		fetcher:         fetcher,
		locator:         locator,
		defaultLocation: defaultLocation,
		geoTimeout:      defaultGeoTimeout,
		refreshInterval: defaultRefreshInterval,
		state:           StateIdle,
		useCelsius:      true,
	}
}

// SetNotifier configures the session to report refresh failures.
func (s *Session) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// SetGeoTimeout overrides the geolocation bound.
func (s *Session) SetGeoTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geoTimeout = d
}

// SetRefreshInterval overrides the background refresh cadence.
func (s *Session) SetRefreshInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshInterval = d
}

// Start resolves the session position and fetches the first snapshot.
// Geolocation failure or timeout is recovered locally: the session falls
// back to the configured default location and never surfaces a
// geolocation error to the user.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	s.state = StateLocating
	timeout := s.geoTimeout
	s.mu.Unlock()

	query := s.defaultLocation
	if s.locator != nil {
		geoCtx, cancel := context.WithTimeout(ctx, timeout)
		pos, err := s.locator.Resolve(geoCtx)
		cancel()
		if err != nil {
			log.Printf("session: geolocation failed, using default %q: %v", s.defaultLocation, err)
			metrics.GeolocationFallbacks.Inc()
		} else {
			query = fmt.Sprintf("%.4f,%.4f", pos.Latitude, pos.Longitude)
		}
	} else {
		metrics.GeolocationFallbacks.Inc()
	}

	s.fetch(ctx, query)
}

// SetLocation re-enters Fetching directly with a user-supplied query,
// bypassing geolocation. Callable from any state. Validation failures are
// returned synchronously; fetch failures are recorded on the session.
func (s *Session) SetLocation(ctx context.Context, query string) error {
	err := s.fetch(ctx, query)

	var invalid *weatherapi.InvalidInputError
	if errors.As(err, &invalid) {
		return err
	}
	return nil
}

// fetch runs one fetch attempt and applies the result unless a
// later-started request has already been applied (stale-result
// suppression, last-started-wins).
func (s *Session) fetch(ctx context.Context, query string) error {
	s.mu.Lock()
	s.seq++
	my := s.seq
	prevState := s.state
	prevQuery := s.query
	s.state = StateFetching
	s.query = query
	s.mu.Unlock()

	snap, err := s.fetcher.Fetch(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	var invalid *weatherapi.InvalidInputError
	if errors.As(err, &invalid) {
		// Nothing was fetched; restore the prior display state.
		if s.state == StateFetching && s.seq == my {
			s.state = prevState
			s.query = prevQuery
		}
		return err
	}

	if my < s.applied {
		metrics.SnapshotRefreshes.WithLabelValues("stale").Inc()
		return err
	}
	s.applied = my

	if err != nil {
		s.lastErr = err
		if s.snapshot == nil {
			s.snapshot = Placeholder()
		}
		s.state = StateFailed
		metrics.SnapshotRefreshes.WithLabelValues("error").Inc()
		log.Printf("session: fetch %q: %v", query, err)
		return err
	}

	s.snapshot = snap
	s.lastErr = nil
	s.state = StateReady
	metrics.SnapshotRefreshes.WithLabelValues("ok").Inc()
	return nil
}

// Refresh reruns the full geolocation-then-fetch path.
func (s *Session) Refresh(ctx context.Context) {
	s.Start(ctx)
}

// Run starts the session and keeps the snapshot current on a ticker until
// the context is cancelled. Interval changes via SetRefreshInterval take
// effect from the next tick.
func (s *Session) Run(ctx context.Context) {
	s.Start(ctx)

	s.mu.Lock()
	interval := s.refreshInterval
	s.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("session: shutting down")
			return
		case <-ticker.C:
			s.mu.Lock()
			query := s.query
			notifier := s.notifier
			current := s.refreshInterval
			s.mu.Unlock()
			if current != interval {
				interval = current
				ticker.Reset(interval)
			}
			if query == "" {
				query = s.defaultLocation
			}
			if err := s.fetch(ctx, query); err != nil && notifier != nil {
				notifier.Enqueue("Refresh failed", err.Error(), models.SeverityWarning, 0)
			}
		}
	}
}

// View returns the current snapshot, state, and displayable error. The
// snapshot pointer is replaced wholesale on every successful fetch and
// must not be mutated by callers.
func (s *Session) View() (*models.WeatherSnapshot, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.state, s.lastErr
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentQuery returns the query backing the live snapshot.
func (s *Session) CurrentQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// UseCelsius reports the session's display unit preference.
func (s *Session) UseCelsius() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useCelsius
}

// SetUseCelsius toggles the display unit. Presentation only: stored
// values stay Celsius.
func (s *Session) SetUseCelsius(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.useCelsius = v
}

// LightMode reports the theme toggle.
func (s *Session) LightMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lightMode
}

// SetLightMode toggles the theme.
func (s *Session) SetLightMode(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lightMode = v
}

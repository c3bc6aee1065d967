package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glasscast/glasscast/internal/models"
	"github.com/glasscast/glasscast/internal/notify"
	"github.com/glasscast/glasscast/internal/session"
	"github.com/glasscast/glasscast/internal/store"
	"github.com/glasscast/glasscast/internal/weatherapi"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(ctx context.Context, query string) (*models.WeatherSnapshot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &weatherapi.InvalidInputError{Query: query}
	}
	return &models.WeatherSnapshot{
		Location: models.Location{Name: query, CountryCode: "GB"},
		Current: models.CurrentConditions{
			TemperatureC: 14,
			Condition:    "Partly cloudy",
			HumidityPct:  72,
			WindSpeedKph: 20,
			VisibilityKm: 10,
			UVIndex:      3,
		},
		Days: []models.DayForecast{
			{Label: "Today", Date: "2026-03-02", HighC: 15, LowC: 8, Condition: "Light rain"},
		},
		Hours: []models.HourForecast{
			{TimeLabel: "Now", TemperatureC: 14, Condition: "Partly cloudy"},
		},
		Astro:     models.Astro{Sunrise: "6:48 AM", Sunset: "5:43 PM"},
		FetchedAt: time.Now(),
	}, nil
}

func newTestServer(t *testing.T, history *store.Store) (*Server, *session.Session, *notify.Center) {
	t.Helper()
	sess := session.New(stubFetcher{}, nil, "London")
	sess.Start(context.Background())

	center := notify.NewCenter()
	return NewServer(sess, center, history, "0"), sess, center
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	rec := doRequest(t, srv.Handler(), "GET", "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["state"] != "ready" {
		t.Errorf("body = %v", body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestWeatherEndpoint(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	rec := doRequest(t, srv.Handler(), "GET", "/api/weather", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var view DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.State != "ready" {
		t.Errorf("State = %q, want ready", view.State)
	}
	if view.Current.Location != "London, GB" {
		t.Errorf("Location = %q", view.Current.Location)
	}
	if view.Current.Temperature != "14°C" {
		t.Errorf("Temperature = %q, want Celsius by default", view.Current.Temperature)
	}
	if view.Current.Icon == "" || view.Background == "" {
		t.Errorf("presentation fields empty: icon=%q background=%q", view.Current.Icon, view.Background)
	}
	if view.Current.UVLevel != "Moderate" {
		t.Errorf("UVLevel = %q, want Moderate for UV 3", view.Current.UVLevel)
	}
	if view.Current.AirLevel != "Moderate" {
		t.Errorf("AirLevel = %q, want cloudy-sky estimate without a reading", view.Current.AirLevel)
	}
	wantRatings := map[string]string{"running": "Fair", "cycling": "Fair", "driving": "Good"}
	if len(view.Activities) != len(wantRatings) {
		t.Fatalf("Activities = %+v, want %d entries", view.Activities, len(wantRatings))
	}
	for _, a := range view.Activities {
		if want := wantRatings[a.Name]; a.Rating != want {
			t.Errorf("activity %s rating = %q, want %q", a.Name, a.Rating, want)
		}
	}
	if len(view.Days) != 1 || view.Days[0].Label != "Today" {
		t.Errorf("Days = %+v", view.Days)
	}
	if view.Sunrise != "6:48 AM" {
		t.Errorf("Sunrise = %q", view.Sunrise)
	}
}

func TestSettingsToggleUnits(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doRequest(t, h, "POST", "/api/settings", `{"use_celsius": false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var view DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.UseCelsius {
		t.Error("UseCelsius still true after toggle")
	}
	if view.Current.Temperature != "57°F" {
		t.Errorf("Temperature = %q, want 57°F", view.Current.Temperature)
	}
}

func TestSettingsRejectsInvalidJSON(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	rec := doRequest(t, srv.Handler(), "POST", "/api/settings", `{broken`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSetLocation(t *testing.T) {
	t.Parallel()
	srv, sess, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doRequest(t, h, "POST", "/api/location", `{"query": "Paris"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if sess.CurrentQuery() != "Paris" {
		t.Errorf("CurrentQuery = %q, want Paris", sess.CurrentQuery())
	}

	rec = doRequest(t, h, "POST", "/api/location", `{"query": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank query status = %d, want 400", rec.Code)
	}
	if sess.CurrentQuery() != "Paris" {
		t.Errorf("CurrentQuery = %q, want unchanged after invalid input", sess.CurrentQuery())
	}
}

func TestNotificationLifecycle(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	h := srv.Handler()

	rec := doRequest(t, h, "POST", "/api/notifications", `{"title": "Storm watch", "message": "wind advisory", "severity": "warning", "ttl_ms": 60000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	var created map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	id := created["id"]
	if id == "" {
		t.Fatal("create returned empty id")
	}

	rec = doRequest(t, h, "GET", "/api/notifications", "")
	var listed struct {
		Notifications []models.Notification `json:"notifications"`
		Permission    string                `json:"permission"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed.Notifications) != 1 || listed.Notifications[0].ID != id {
		t.Fatalf("listed = %+v", listed.Notifications)
	}
	if listed.Notifications[0].TTL != time.Minute {
		t.Errorf("TTL over the wire = %v, want 1m", listed.Notifications[0].TTL)
	}
	if listed.Permission != "default" {
		t.Errorf("permission = %q, want default", listed.Permission)
	}

	rec = doRequest(t, h, "DELETE", "/api/notifications/"+id, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("dismiss status = %d, want 204", rec.Code)
	}

	rec = doRequest(t, h, "GET", "/api/notifications", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed.Notifications) != 0 {
		t.Errorf("after dismiss, listed = %+v", listed.Notifications)
	}
}

func TestEnqueueValidation(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	h := srv.Handler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing title", `{"message": "no title"}`, http.StatusBadRequest},
		{"unknown severity", `{"title": "x", "severity": "critical"}`, http.StatusBadRequest},
		{"severity defaults to info", `{"title": "x"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, "POST", "/api/notifications", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequestPermissionWithoutPusher(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	rec := doRequest(t, srv.Handler(), "POST", "/api/notifications/permission", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["permission"] != "denied" {
		t.Errorf("permission = %q, want denied without a configured channel", body["permission"])
	}
}

func TestAlertHistoryWithoutDatabase(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	rec := doRequest(t, srv.Handler(), "GET", "/api/alerts/history", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Alerts []models.Notification `json:"alerts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Alerts == nil || len(body.Alerts) != 0 {
		t.Errorf("alerts = %v, want empty list", body.Alerts)
	}
}

func TestAlertHistoryReturnsStoredEntries(t *testing.T) {
	t.Parallel()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	history := store.New(db)
	if err := history.Migrate(); err != nil {
		t.Fatal(err)
	}
	if err := history.InsertNotification(models.Notification{
		ID:        "1",
		Title:     "Storm watch",
		Severity:  models.SeverityWarning,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatal(err)
	}

	srv, _, _ := newTestServer(t, history)
	rec := doRequest(t, srv.Handler(), "GET", "/api/alerts/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Alerts []models.Notification `json:"alerts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Alerts) != 1 || body.Alerts[0].Title != "Storm watch" {
		t.Errorf("alerts = %+v", body.Alerts)
	}
}

func TestIndexRendersDashboard(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	rec := doRequest(t, srv.Handler(), "GET", "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	html := rec.Body.String()
	for _, want := range []string{"London, GB", "14°C", "6:48 AM"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil)
	rec := doRequest(t, srv.Handler(), "GET", "/metrics", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "glasscast_") {
		t.Error("metrics output missing glasscast collectors")
	}
}

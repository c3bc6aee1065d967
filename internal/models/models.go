package models

import (
	"encoding/json"
	"time"
)

// Location identifies the query target of a snapshot. It is replaced
// wholesale on every successful fetch, never mutated in place.
type Location struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"country"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
}

// AirQuality carries the optional pollutant readings from the provider.
type AirQuality struct {
	CO         float64 `json:"co"`
	NO2        float64 `json:"no2"`
	O3         float64 `json:"o3"`
	SO2        float64 `json:"so2"`
	PM25       float64 `json:"pm2_5"`
	PM10       float64 `json:"pm10"`
	USEPAIndex int     `json:"us_epa_index"`
}

// CurrentConditions is produced fresh on every successful fetch.
// Temperatures are canonical Celsius; display conversion happens at
// render time and is never stored.
type CurrentConditions struct {
	TemperatureC float64     `json:"temp_c"`
	Condition    string      `json:"condition"`
	HumidityPct  int         `json:"humidity"`
	WindSpeedKph float64     `json:"wind_kph"`
	VisibilityKm float64     `json:"vis_km"`
	FeelsLikeC   float64     `json:"feelslike_c"`
	UVIndex      float64     `json:"uv"`
	PressureMb   float64     `json:"pressure_mb"`
	AirQuality   *AirQuality `json:"air_quality,omitempty"`
}

// DayForecast is one entry of the ordered daily sequence; index 0 is today.
type DayForecast struct {
	Date         string  `json:"date"`
	Label        string  `json:"label"`
	HighC        float64 `json:"maxtemp_c"`
	LowC         float64 `json:"mintemp_c"`
	Condition    string  `json:"condition"`
	PrecipChance int     `json:"daily_chance_of_rain"`
	HumidityPct  int     `json:"avghumidity"`
	WindSpeedKph float64 `json:"maxwind_kph"`
}

// HourForecast is one entry of the ordered hourly sequence; index 0 is "now".
type HourForecast struct {
	TimeLabel    string  `json:"time"`
	TemperatureC float64 `json:"temp_c"`
	Condition    string  `json:"condition"`
}

// Astro holds the sunrise/sunset strings for the current day.
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// WeatherSnapshot aggregates everything fetched for one location. Exactly
// one snapshot is live per session; a new successful fetch replaces it
// atomically. Day and hour sequences preserve source ordering.
type WeatherSnapshot struct {
	Location  Location          `json:"location"`
	Current   CurrentConditions `json:"current"`
	Days      []DayForecast     `json:"days"`
	Hours     []HourForecast    `json:"hours"`
	Astro     Astro             `json:"astro"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient timed message owned by the notification
// center. Consumers only read it and request removal by id.
type Notification struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Severity  Severity      `json:"severity"`
	CreatedAt time.Time     `json:"created_at"`
	TTL       time.Duration `json:"-"`
}

// MarshalJSON serializes TTL as whole milliseconds under ttl_ms, matching
// the wire shape of the rest of the entity.
func (n Notification) MarshalJSON() ([]byte, error) {
	type plain Notification
	return json.Marshal(struct {
		plain
		TTLMs int64 `json:"ttl_ms"`
	}{plain(n), n.TTL.Milliseconds()})
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type plain Notification
	aux := struct {
		*plain
		TTLMs int64 `json:"ttl_ms"`
	}{plain: (*plain)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.TTL = time.Duration(aux.TTLMs) * time.Millisecond
	return nil
}

package api

import (
	"html/template"
	"math"
	"time"

	"github.com/glasscast/glasscast/internal/conditions"
	"github.com/glasscast/glasscast/internal/models"
	"github.com/glasscast/glasscast/internal/session"
	"github.com/glasscast/glasscast/internal/theme"
	"github.com/glasscast/glasscast/internal/units"
)

const (
	maxDisplayDays  = 7
	maxDisplayHours = 8
)

type CurrentView struct {
	Location    string              `json:"location"`
	Temperature string              `json:"temperature"`
	Condition   string              `json:"condition"`
	Category    conditions.Category `json:"category"`
	Icon        string              `json:"icon"`
	FeelsLike   string              `json:"feels_like"`
	HumidityPct int                 `json:"humidity"`
	WindKph     int                 `json:"wind_kph"`
	VisKm       float64             `json:"vis_km"`
	UVIndex     float64             `json:"uv"`
	UVLevel     string              `json:"uv_level"`
	PressureMb  float64             `json:"pressure_mb"`
	AirQuality  *models.AirQuality  `json:"air_quality,omitempty"`
	AirLevel    string              `json:"air_quality_level"`
}

// ActivityView is one rated outdoor activity for the conditions strip.
type ActivityView struct {
	Name   string `json:"name"`
	Rating string `json:"rating"`
}

type DayView struct {
	Label        string `json:"label"`
	Date         string `json:"date"`
	High         string `json:"high"`
	Low          string `json:"low"`
	Condition    string `json:"condition"`
	Icon         string `json:"icon"`
	PrecipChance int    `json:"precip_chance"`
	HumidityPct  int    `json:"humidity"`
	WindKph      int    `json:"wind_kph"`
}

type HourView struct {
	Label       string `json:"label"`
	Temperature string `json:"temperature"`
	Icon        string `json:"icon"`
}

// OrbStyle carries the orb accent colors as pre-approved CSS so the
// rgba() values survive template escaping.
type OrbStyle struct {
	Primary   template.CSS
	Secondary template.CSS
	Tertiary  template.CSS
}

func orbStyle(p theme.OrbPalette) OrbStyle {
	return OrbStyle{
		Primary:   template.CSS(p.Primary),
		Secondary: template.CSS(p.Secondary),
		Tertiary:  template.CSS(p.Tertiary),
	}
}

// DashboardView is the display-ready projection of the live snapshot:
// formatted temperatures in the session's unit, classified categories,
// and the time-of-day visual theme.
type DashboardView struct {
	State      string            `json:"state"`
	Error      string            `json:"error,omitempty"`
	UseCelsius bool              `json:"use_celsius"`
	LightMode  bool              `json:"light_mode"`
	Current    CurrentView       `json:"current"`
	Activities []ActivityView    `json:"activities"`
	Days       []DayView         `json:"days"`
	Hours      []HourView        `json:"hours"`
	Sunrise    string            `json:"sunrise"`
	Sunset     string            `json:"sunset"`
	Background theme.BackgroundKey `json:"background"`
	Gradient   theme.Gradient    `json:"-"`
	Orbs       OrbStyle          `json:"-"`
}

// buildDashboardView projects the session state at the given wall-clock
// time. Slicing to the display horizon never reorders the source
// sequences.
func buildDashboardView(sess *session.Session, now time.Time) DashboardView {
	snap, state, lastErr := sess.View()
	useCelsius := sess.UseCelsius()

	view := DashboardView{
		State:      string(state),
		UseCelsius: useCelsius,
		LightMode:  sess.LightMode(),
	}
	if lastErr != nil {
		view.Error = lastErr.Error()
	}
	if snap == nil {
		view.Background = theme.SelectBackground(now.Hour(), conditions.Unknown)
		view.Gradient = theme.GetGradient(view.Background)
		view.Orbs = orbStyle(theme.SelectOrbs(now.Hour(), conditions.Unknown))
		return view
	}

	cat := conditions.Classify(snap.Current.Condition)
	feels := conditions.FeelsLike(snap.Current.TemperatureC, snap.Current.WindSpeedKph, float64(snap.Current.HumidityPct))

	aqIndex := 0
	if snap.Current.AirQuality != nil {
		aqIndex = snap.Current.AirQuality.USEPAIndex
	}

	view.Current = CurrentView{
		Location:    snap.Location.Name + ", " + snap.Location.CountryCode,
		Temperature: units.FormatTemperature(snap.Current.TemperatureC, useCelsius),
		Condition:   snap.Current.Condition,
		Category:    cat,
		Icon:        conditions.IconKey(cat),
		FeelsLike:   units.FormatTemperature(feels, useCelsius),
		HumidityPct: snap.Current.HumidityPct,
		WindKph:     int(math.Round(snap.Current.WindSpeedKph)),
		VisKm:       snap.Current.VisibilityKm,
		UVIndex:     snap.Current.UVIndex,
		UVLevel:     conditions.UVLevel(snap.Current.UVIndex),
		PressureMb:  snap.Current.PressureMb,
		AirQuality:  snap.Current.AirQuality,
		AirLevel:    conditions.AirQualityLevel(aqIndex, snap.Current.Condition, snap.Current.UVIndex),
	}

	for _, a := range conditions.Activities {
		view.Activities = append(view.Activities, ActivityView{
			Name:   string(a),
			Rating: conditions.ActivityRating(snap.Current.Condition, snap.Current.WindSpeedKph, snap.Current.VisibilityKm, a),
		})
	}

	days := snap.Days
	if len(days) > maxDisplayDays {
		days = days[:maxDisplayDays]
	}
	for _, d := range days {
		dcat := conditions.Classify(d.Condition)
		view.Days = append(view.Days, DayView{
			Label:        d.Label,
			Date:         d.Date,
			High:         units.FormatTemperature(d.HighC, useCelsius),
			Low:          units.FormatTemperature(d.LowC, useCelsius),
			Condition:    d.Condition,
			Icon:         conditions.IconKey(dcat),
			PrecipChance: d.PrecipChance,
			HumidityPct:  d.HumidityPct,
			WindKph:      int(math.Round(d.WindSpeedKph)),
		})
	}

	hours := snap.Hours
	if len(hours) > maxDisplayHours {
		hours = hours[:maxDisplayHours]
	}
	for _, h := range hours {
		hcat := conditions.Classify(h.Condition)
		view.Hours = append(view.Hours, HourView{
			Label:       h.TimeLabel,
			Temperature: units.FormatTemperature(h.TemperatureC, useCelsius),
			Icon:        conditions.IconKey(hcat),
		})
	}

	view.Sunrise = snap.Astro.Sunrise
	view.Sunset = snap.Astro.Sunset
	view.Background = theme.SelectBackground(now.Hour(), cat)
	view.Gradient = theme.GetGradient(view.Background)
	view.Orbs = orbStyle(theme.SelectOrbs(now.Hour(), cat))
	return view
}

package weatherapi

import (
	"time"

	"github.com/glasscast/glasscast/internal/models"
)

// forecastResponse mirrors the provider's forecast.json shape. Location
// and Current are pointers so a structurally incomplete success payload
// is detectable.
type forecastResponse struct {
	Location *locationPayload `json:"location"`
	Current  *currentPayload  `json:"current"`
	Forecast struct {
		ForecastDay []dayPayload `json:"forecastday"`
	} `json:"forecast"`
}

type locationPayload struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type conditionPayload struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

type currentPayload struct {
	TempC      float64          `json:"temp_c"`
	Condition  conditionPayload `json:"condition"`
	Humidity   int              `json:"humidity"`
	WindKph    float64          `json:"wind_kph"`
	VisKm      float64          `json:"vis_km"`
	UV         float64          `json:"uv"`
	PressureMb float64          `json:"pressure_mb"`
	FeelsLikeC float64          `json:"feelslike_c"`
	AirQuality *struct {
		CO         float64 `json:"co"`
		NO2        float64 `json:"no2"`
		O3         float64 `json:"o3"`
		SO2        float64 `json:"so2"`
		PM25       float64 `json:"pm2_5"`
		PM10       float64 `json:"pm10"`
		USEPAIndex int     `json:"us_epa_index"`
	} `json:"air_quality"`
}

type dayPayload struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC     float64          `json:"maxtemp_c"`
		MinTempC     float64          `json:"mintemp_c"`
		Condition    conditionPayload `json:"condition"`
		ChanceOfRain int              `json:"daily_chance_of_rain"`
		AvgHumidity  float64          `json:"avghumidity"`
		MaxWindKph   float64          `json:"maxwind_kph"`
	} `json:"day"`
	Astro struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"astro"`
	Hour []struct {
		Time      string           `json:"time"`
		TempC     float64          `json:"temp_c"`
		Condition conditionPayload `json:"condition"`
	} `json:"hour"`
}

// toSnapshot converts the raw payload into the canonical snapshot,
// preserving source ordering of days and hours. Labels are derived from
// the provider's own date/time strings: index 0 is "Today"/"Now".
func (p *forecastResponse) toSnapshot(fetchedAt time.Time) *models.WeatherSnapshot {
	snap := &models.WeatherSnapshot{
		Location: models.Location{
			Name:        p.Location.Name,
			CountryCode: p.Location.Country,
			Latitude:    p.Location.Lat,
			Longitude:   p.Location.Lon,
		},
		Current: models.CurrentConditions{
			TemperatureC: p.Current.TempC,
			Condition:    p.Current.Condition.Text,
			HumidityPct:  p.Current.Humidity,
			WindSpeedKph: p.Current.WindKph,
			VisibilityKm: p.Current.VisKm,
			FeelsLikeC:   p.Current.FeelsLikeC,
			UVIndex:      p.Current.UV,
			PressureMb:   p.Current.PressureMb,
		},
		FetchedAt: fetchedAt,
	}

	if aq := p.Current.AirQuality; aq != nil {
		snap.Current.AirQuality = &models.AirQuality{
			CO:         aq.CO,
			NO2:        aq.NO2,
			O3:         aq.O3,
			SO2:        aq.SO2,
			PM25:       aq.PM25,
			PM10:       aq.PM10,
			USEPAIndex: aq.USEPAIndex,
		}
	}

	for i, fd := range p.Forecast.ForecastDay {
		label := "Today"
		if i > 0 {
			if d, err := time.Parse("2006-01-02", fd.Date); err == nil {
				label = d.Format("Mon")
			} else {
				label = fd.Date
			}
		}
		snap.Days = append(snap.Days, models.DayForecast{
			Date:         fd.Date,
			Label:        label,
			HighC:        fd.Day.MaxTempC,
			LowC:         fd.Day.MinTempC,
			Condition:    fd.Day.Condition.Text,
			PrecipChance: fd.Day.ChanceOfRain,
			HumidityPct:  int(fd.Day.AvgHumidity),
			WindSpeedKph: fd.Day.MaxWindKph,
		})
	}

	if len(p.Forecast.ForecastDay) > 0 {
		today := p.Forecast.ForecastDay[0]
		snap.Astro = models.Astro{
			Sunrise: today.Astro.Sunrise,
			Sunset:  today.Astro.Sunset,
		}
		for i, h := range today.Hour {
			label := "Now"
			if i > 0 {
				if t, err := time.Parse("2006-01-02 15:04", h.Time); err == nil {
					label = t.Format("3PM")
				} else {
					label = h.Time
				}
			}
			snap.Hours = append(snap.Hours, models.HourForecast{
				TimeLabel:    label,
				TemperatureC: h.TempC,
				Condition:    h.Condition.Text,
			})
		}
	}

	return snap
}

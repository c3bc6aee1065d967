package session

import "github.com/glasscast/glasscast/internal/models"

// Placeholder returns the static offline snapshot shown when the very
// first fetch fails. Values are plausible mild-spring Amsterdam numbers;
// the UI stays populated and interactive while errors display alongside.
func Placeholder() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Location: models.Location{
			Name:        "Amsterdam",
			CountryCode: "NL",
			Latitude:    52.37,
			Longitude:   4.89,
		},
		Current: models.CurrentConditions{
			TemperatureC: 22,
			Condition:    "Partly Cloudy",
			HumidityPct:  65,
			WindSpeedKph: 19,
			VisibilityKm: 10,
			FeelsLikeC:   22,
			UVIndex:      5,
			PressureMb:   1013,
		},
		Days: []models.DayForecast{
			{Label: "Today", HighC: 24, LowC: 17, Condition: "Sunny", PrecipChance: 5, HumidityPct: 55, WindSpeedKph: 14},
			{Label: "Tue", HighC: 23, LowC: 16, Condition: "Partly Cloudy", PrecipChance: 10, HumidityPct: 60, WindSpeedKph: 16},
			{Label: "Wed", HighC: 20, LowC: 14, Condition: "Cloudy", PrecipChance: 30, HumidityPct: 70, WindSpeedKph: 18},
			{Label: "Thu", HighC: 21, LowC: 15, Condition: "Rain", PrecipChance: 70, HumidityPct: 80, WindSpeedKph: 22},
			{Label: "Fri", HighC: 23, LowC: 16, Condition: "Sunny", PrecipChance: 5, HumidityPct: 55, WindSpeedKph: 13},
			{Label: "Sat", HighC: 24, LowC: 17, Condition: "Sunny", PrecipChance: 5, HumidityPct: 50, WindSpeedKph: 12},
			{Label: "Sun", HighC: 22, LowC: 15, Condition: "Partly Cloudy", PrecipChance: 15, HumidityPct: 60, WindSpeedKph: 15},
		},
		Hours: []models.HourForecast{
			{TimeLabel: "Now", TemperatureC: 22, Condition: "Partly Cloudy"},
			{TimeLabel: "1PM", TemperatureC: 23, Condition: "Sunny"},
			{TimeLabel: "2PM", TemperatureC: 24, Condition: "Sunny"},
			{TimeLabel: "3PM", TemperatureC: 24, Condition: "Sunny"},
			{TimeLabel: "4PM", TemperatureC: 24, Condition: "Partly Cloudy"},
			{TimeLabel: "5PM", TemperatureC: 23, Condition: "Partly Cloudy"},
			{TimeLabel: "6PM", TemperatureC: 21, Condition: "Cloudy"},
			{TimeLabel: "7PM", TemperatureC: 20, Condition: "Cloudy"},
		},
		Astro: models.Astro{
			Sunrise: "6:42 AM",
			Sunset:  "7:38 PM",
		},
	}
}

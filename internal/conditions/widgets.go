package conditions

import "strings"

// UVLevel maps a UV index reading to its display level.
func UVLevel(uv float64) string {
	switch {
	case uv <= 2:
		return "Low"
	case uv <= 5:
		return "Moderate"
	case uv <= 7:
		return "High"
	case uv <= 10:
		return "Very High"
	default:
		return "Extreme"
	}
}

// AirQualityLevel maps the US EPA air quality index to a display level.
// When no reading is present (index below 1) the level is estimated from
// the current condition text and UV index instead.
func AirQualityLevel(usEPAIndex int, condition string, uv float64) string {
	switch usEPAIndex {
	case 1:
		return "Good"
	case 2:
		return "Moderate"
	case 3:
		return "Unhealthy for Sensitive"
	case 4:
		return "Unhealthy"
	case 5:
		return "Very Unhealthy"
	}
	if usEPAIndex > 5 {
		return "Hazardous"
	}

	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "rain"):
		return "Good"
	case strings.Contains(c, "cloud") || uv < 3:
		return "Moderate"
	default:
		return "Unhealthy"
	}
}

// Activity names an outdoor activity rated against current conditions.
type Activity string

const (
	ActivityRunning Activity = "running"
	ActivityCycling Activity = "cycling"
	ActivityDriving Activity = "driving"
)

// Activities lists every rated activity in display order.
var Activities = []Activity{ActivityRunning, ActivityCycling, ActivityDriving}

// ActivityRating scores an activity as Good, Fair, or Poor. Driving cares
// about visibility; running and cycling are harder hit by wind.
func ActivityRating(condition string, windKph, visKm float64, activity Activity) string {
	c := strings.ToLower(condition)
	rainy := strings.Contains(c, "rain") || strings.Contains(c, "storm")
	cloudy := strings.Contains(c, "cloud")

	switch activity {
	case ActivityDriving:
		switch {
		case rainy || visKm < 5:
			return "Poor"
		case windKph > 25:
			return "Fair"
		default:
			return "Good"
		}
	case ActivityRunning, ActivityCycling:
		switch {
		case rainy || windKph > 30:
			return "Poor"
		case windKph > 20 || cloudy:
			return "Fair"
		default:
			return "Good"
		}
	}
	return "Good"
}

package conditions

import "strings"

// Category is the coarse weather classification used for icon and
// background selection.
type Category string

const (
	Sunny        Category = "sunny"
	Drizzle      Category = "drizzle"
	Rain         Category = "rain"
	Snow         Category = "snow"
	Thunderstorm Category = "thunderstorm"
	PartlyCloudy Category = "partly_cloudy"
	Cloudy       Category = "cloudy"
	Windy        Category = "windy"
	Fog          Category = "fog"
	Unknown      Category = "unknown"
)

// phraseTable maps exact provider condition texts to categories. Checked
// before the substring fallback so quirky provider phrases like
// "patchy rain possible" keep their curated mapping.
var phraseTable = map[string]Category{
	"sunny":                      Sunny,
	"clear":                      Sunny,
	"light drizzle":              Drizzle,
	"patchy light drizzle":       Drizzle,
	"drizzle":                    Drizzle,
	"light rain":                 Rain,
	"patchy light rain":          Rain,
	"moderate rain":              Rain,
	"heavy rain":                 Rain,
	"rain":                       Rain,
	"rainy":                      Rain,
	"snow":                       Snow,
	"snowy":                      Snow,
	"light snow":                 Snow,
	"heavy snow":                 Snow,
	"cloudy":                     Cloudy,
	"overcast":                   Cloudy,
	"partly cloudy":              PartlyCloudy,
	"patchy rain possible":       PartlyCloudy,
	"windy":                      Windy,
	"thunderstorm":               Thunderstorm,
	"storm":                      Thunderstorm,
	"thundery outbreaks possible": Thunderstorm,
	"mist":                       Fog,
	"fog":                        Fog,
}

// Classify maps a free-text condition to exactly one Category. The
// substring checks run in a fixed precedence order; rain must be tested
// before the generic cloud checks or phrases like "rain with clouds"
// would reclassify.
func Classify(text string) Category {
	normalized := strings.TrimSpace(strings.ToLower(text))

	if cat, ok := phraseTable[normalized]; ok {
		return cat
	}

	switch {
	case strings.Contains(normalized, "sun") || strings.Contains(normalized, "clear"):
		return Sunny
	case strings.Contains(normalized, "drizzle"):
		return Drizzle
	case strings.Contains(normalized, "rain"):
		return Rain
	case strings.Contains(normalized, "snow"):
		return Snow
	case strings.Contains(normalized, "thunder") || strings.Contains(normalized, "storm"):
		return Thunderstorm
	case strings.Contains(normalized, "cloud") && strings.Contains(normalized, "partly"):
		return PartlyCloudy
	case strings.Contains(normalized, "cloud") || strings.Contains(normalized, "overcast"):
		return Cloudy
	case strings.Contains(normalized, "wind"):
		return Windy
	case strings.Contains(normalized, "fog") || strings.Contains(normalized, "mist"):
		return Fog
	default:
		return Unknown
	}
}

// IconKey returns the dashboard icon name for a category. Unknown falls
// back to the generic cloud icon.
func IconKey(cat Category) string {
	switch cat {
	case Sunny:
		return "sun"
	case Drizzle:
		return "cloud-drizzle"
	case Rain:
		return "cloud-rain"
	case Snow:
		return "cloud-snow"
	case Thunderstorm:
		return "cloud-lightning"
	case PartlyCloudy:
		return "cloud"
	case Cloudy:
		return "cloudy"
	case Windy:
		return "wind"
	case Fog:
		return "cloud"
	default:
		return "cloud"
	}
}

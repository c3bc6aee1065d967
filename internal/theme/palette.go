package theme

// Gradient defines the three color stops of a dashboard background.
type Gradient struct {
	// From is the top-left stop
	From string
	// Via is the midpoint stop
	Via string
	// To is the bottom-right stop
	To string
	// Starry enables the star-field overlay for clear night skies
	Starry bool
}

// DefaultGradient is the fallback clear-day look.
var DefaultGradient = Gradient{
	From: "#60a5fa",
	Via:  "#67e8f9",
	To:   "#3b82f6",
}

// gradients maps each background key to its curated color stops. Night
// variants run dark, dawn and dusk carry the warm horizon tones.
var gradients = map[BackgroundKey]Gradient{
	NightStorm: {
		From: "#111827",
		Via:  "#0f172a",
		To:   "#000000",
	},
	NightCloudy: {
		From: "#1f2937",
		Via:  "#111827",
		To:   "#000000",
	},
	NightClear: {
		From:   "#1e3a8a",
		Via:    "#0c1a3d",
		To:     "#000000",
		Starry: true,
	},
	SunriseStorm: {
		From: "#6b7280",
		Via:  "#fdba74",
		To:   "#4b5563",
	},
	SunriseCloudy: {
		From: "#fdba74",
		Via:  "#9ca3af",
		To:   "#93c5fd",
	},
	SunriseClear: {
		From: "#fb923c",
		Via:  "#f472b6",
		To:   "#60a5fa",
	},
	SunsetStorm: {
		From: "#4b5563",
		Via:  "#fb923c",
		To:   "#374151",
	},
	SunsetCloudy: {
		From: "#fb923c",
		Via:  "#6b7280",
		To:   "#c084fc",
	},
	SunsetClear: {
		From: "#f97316",
		Via:  "#f87171",
		To:   "#a855f7",
	},
	DaySnow: {
		From: "#d1d5db",
		Via:  "#bfdbfe",
		To:   "#ffffff",
	},
	DayStorm: {
		From: "#6b7280",
		Via:  "#475569",
		To:   "#374151",
	},
	DayFog: {
		From: "#d1d5db",
		Via:  "#9ca3af",
		To:   "#6b7280",
	},
	DayCloudy: {
		From: "#9ca3af",
		Via:  "#64748b",
		To:   "#4b5563",
	},
	DayClear: {
		From: "#60a5fa",
		Via:  "#67e8f9",
		To:   "#3b82f6",
	},
}

// GetGradient returns the color stops for a background key.
func GetGradient(key BackgroundKey) Gradient {
	if g, ok := gradients[key]; ok {
		return g
	}
	return DefaultGradient
}

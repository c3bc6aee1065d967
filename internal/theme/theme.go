package theme

import "github.com/glasscast/glasscast/internal/conditions"

// Band is a contiguous time-of-day interval used for background selection.
type Band string

const (
	BandNight   Band = "night"
	BandSunrise Band = "sunrise"
	BandDay     Band = "day"
	BandSunset  Band = "sunset"
)

// BandForHour maps an hour of day [0,23] to its band. Bands are contiguous
// and exhaustive: Night [22,24)+[0,6), Sunrise [6,8), Day [8,18),
// Sunset [18,22).
func BandForHour(hour int) Band {
	switch {
	case hour >= 22 || hour < 6:
		return BandNight
	case hour < 8:
		return BandSunrise
	case hour < 18:
		return BandDay
	default:
		return BandSunset
	}
}

// BackgroundKey names a visual theme variant for the dashboard background.
type BackgroundKey string

const (
	NightStorm    BackgroundKey = "night_storm"
	NightCloudy   BackgroundKey = "night_cloudy"
	NightClear    BackgroundKey = "night_clear"
	SunriseStorm  BackgroundKey = "sunrise_storm"
	SunriseCloudy BackgroundKey = "sunrise_cloudy"
	SunriseClear  BackgroundKey = "sunrise_clear"
	SunsetStorm   BackgroundKey = "sunset_storm"
	SunsetCloudy  BackgroundKey = "sunset_cloudy"
	SunsetClear   BackgroundKey = "sunset_clear"
	DaySnow       BackgroundKey = "day_snow"
	DayStorm      BackgroundKey = "day_storm"
	DayFog        BackgroundKey = "day_fog"
	DayCloudy     BackgroundKey = "day_cloudy"
	DayClear      BackgroundKey = "day_clear"
)

func isWet(cat conditions.Category) bool {
	return cat == conditions.Rain || cat == conditions.Drizzle || cat == conditions.Thunderstorm
}

func isCloudy(cat conditions.Category) bool {
	return cat == conditions.Cloudy || cat == conditions.PartlyCloudy
}

// SelectBackground combines hour of day and condition category into a
// background key. Total over all (hour, category) pairs: snow and fog only
// have daytime variants, everything unmatched falls through to the band's
// clear default.
func SelectBackground(hour int, cat conditions.Category) BackgroundKey {
	switch BandForHour(hour) {
	case BandNight:
		switch {
		case isWet(cat):
			return NightStorm
		case isCloudy(cat):
			return NightCloudy
		default:
			return NightClear
		}
	case BandSunrise:
		switch {
		case isWet(cat):
			return SunriseStorm
		case isCloudy(cat):
			return SunriseCloudy
		default:
			return SunriseClear
		}
	case BandSunset:
		switch {
		case isWet(cat):
			return SunsetStorm
		case isCloudy(cat):
			return SunsetCloudy
		default:
			return SunsetClear
		}
	default:
		switch {
		case cat == conditions.Snow:
			return DaySnow
		case isWet(cat):
			return DayStorm
		case cat == conditions.Fog:
			return DayFog
		case isCloudy(cat):
			return DayCloudy
		default:
			return DayClear
		}
	}
}

// OrbPalette holds the three accent colors for the floating background orbs.
type OrbPalette struct {
	Primary   string
	Secondary string
	Tertiary  string
}

var (
	orbsTransparent = OrbPalette{Primary: "transparent", Secondary: "transparent", Tertiary: "transparent"}
	orbsMuted       = OrbPalette{Primary: "rgba(156,163,175,0.30)", Secondary: "rgba(148,163,184,0.20)", Tertiary: "rgba(209,213,219,0.15)"}
	orbsWarm        = OrbPalette{Primary: "rgba(253,224,71,0.40)", Secondary: "rgba(253,186,116,0.25)", Tertiary: "rgba(103,232,249,0.20)"}
)

// SelectOrbs returns the orb accent palette for the hour and category. At
// night the palette collapses to fully transparent regardless of category;
// cloudy or wet conditions mute the daytime set.
func SelectOrbs(hour int, cat conditions.Category) OrbPalette {
	if BandForHour(hour) == BandNight {
		return orbsTransparent
	}
	if isCloudy(cat) || isWet(cat) {
		return orbsMuted
	}
	return orbsWarm
}

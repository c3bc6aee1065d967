package conditions

import "math"

// FeelsLike computes apparent temperature from air temperature (°C), wind
// speed (km/h), and relative humidity (%). Three mutually exclusive regimes
// selected by temperature:
//
//   - at or below 10°C, the standard wind chill formula
//   - at or above 26°C, an Australian apparent-temperature style heat index
//   - otherwise a small adjustment for strong wind and humidity extremes
//
// Inputs are not range-checked; callers feed provider data.
func FeelsLike(tempC, windKph, humidityPct float64) float64 {
	if tempC <= 10 {
		wp := math.Pow(windKph, 0.16)
		chill := 13.12 + 0.6215*tempC - 11.37*wp + 0.3965*tempC*wp
		return math.Round(chill)
	}

	if tempC >= 26 {
		vapor := 0.33 * (humidityPct / 100) * 6.105 * math.Exp(17.27*tempC/(237.7+tempC))
		return math.Round(tempC + vapor - 0.70*windKph - 4.25)
	}

	adjustment := 0.0
	if windKph > 10 {
		adjustment--
	}
	switch {
	case humidityPct > 80:
		adjustment++
	case humidityPct < 30:
		adjustment--
	}
	return math.Round(tempC + adjustment)
}

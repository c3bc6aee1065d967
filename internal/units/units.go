package units

import (
	"fmt"
	"math"
)

// CelsiusToFahrenheit converts and rounds to the nearest whole degree.
func CelsiusToFahrenheit(c float64) int {
	return int(math.Round(c*9/5 + 32))
}

// FormatTemperature renders a labeled temperature string from a canonical
// Celsius value. Celsius output rounds directly; Fahrenheit converts first.
// Non-finite inputs render as "--" rather than leaking NaN into the UI.
func FormatTemperature(tempC float64, useCelsius bool) string {
	unit := "F"
	if useCelsius {
		unit = "C"
	}
	if math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		return fmt.Sprintf("--°%s", unit)
	}
	value := CelsiusToFahrenheit(tempC)
	if useCelsius {
		value = int(math.Round(tempC))
	}
	return fmt.Sprintf("%d°%s", value, unit)
}

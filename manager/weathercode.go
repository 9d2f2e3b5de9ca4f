package manager

import (
	"fmt"
	"strconv"
	"strings"
)

// WeatherCode is a WMO weather interpretation code as reported by Open-Meteo.
type WeatherCode int

type condition struct {
	description string
	icon        string
}

var conditions = map[WeatherCode]condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	71: {"Slight snow", "❄️"},
	73: {"Moderate snow", "🌨️"},
	75: {"Heavy snow", "🌨️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌧️"},
	82: {"Violent rain showers", "⛈️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

func (c WeatherCode) Description() string {
	if cond, ok := conditions[c]; ok {
		return cond.description
	}

	return fmt.Sprintf("Code %d", int(c))
}

// Icon returns an empty string for unknown codes.
func (c WeatherCode) Icon() string {
	return conditions[c].icon
}

// Summary renders the report on one line, e.g.
// "18.5°C, Partly cloudy in Helsinki, Finland, Europe".
func (r Report) Summary() string {
	parts := []string{r.Location.City, r.Location.Country}
	if r.Location.Continent != "" {
		parts = append(parts, r.Location.Continent)
	}

	return fmt.Sprintf("%s°C, %s in %s",
		FormatFloat(r.Weather.TemperatureC),
		r.Weather.WeatherCode.Description(),
		strings.Join(parts, ", "),
	)
}

// FormatFloat prints the shortest representation of v, keeping one decimal
// for whole numbers so 22 reads as "22.0".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}

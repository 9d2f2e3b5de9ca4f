package manager

import (
	"context"
)

type Geolocation interface {
	Locate(ctx context.Context) (Location, error)
}

type Forecast interface {
	Current(ctx context.Context, latitude, longitude float64) (Weather, error)
}

// Location is where the caller's public IP resolves to. Continent is only
// filled when the geolocation client is configured to request it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Continent string  `json:"continent,omitempty"`
}

type Weather struct {
	TemperatureC float64     `json:"temperature_c"`
	WeatherCode  WeatherCode `json:"weather_code"`
	WindSpeedKmh float64     `json:"wind_speed_kmh"`
}

type Report struct {
	Location Location `json:"location"`
	Weather  Weather  `json:"weather"`
}

func (l Location) Map() map[string]any {
	m := map[string]any{
		"latitude":  l.Latitude,
		"longitude": l.Longitude,
		"city":      l.City,
		"country":   l.Country,
	}
	if l.Continent != "" {
		m["continent"] = l.Continent
	}

	return m
}

func (w Weather) Map() map[string]any {
	return map[string]any{
		"temperature_c":  w.TemperatureC,
		"weather_code":   int(w.WeatherCode),
		"wind_speed_kmh": w.WindSpeedKmh,
	}
}

// Map is the nested view of the report, the same shape the JSON output has.
func (r Report) Map() map[string]any {
	return map[string]any{
		"location": r.Location.Map(),
		"weather":  r.Weather.Map(),
	}
}

package manager

import (
	"context"
	"errors"
	"log"
)

var ErrNotConfigured = errors.New("geolocation and forecast clients are required")

func New(geolocation Geolocation, forecast Forecast) *Reporter {
	return &Reporter{
		geolocation: geolocation,
		forecast:    forecast,
	}
}

type Reporter struct {
	geolocation Geolocation
	forecast    Forecast
}

// Build locates the caller and fetches current weather for those exact
// coordinates. Errors from either client are returned as is.
func (r *Reporter) Build(ctx context.Context) (Report, error) {
	if r.geolocation == nil || r.forecast == nil {
		return Report{}, ErrNotConfigured
	}

	location, err := r.geolocation.Locate(ctx)
	if err != nil {
		return Report{}, err
	}
	log.Printf("located %s, %s (%v, %v)", location.City, location.Country, location.Latitude, location.Longitude)

	weather, err := r.forecast.Current(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return Report{}, err
	}
	log.Printf("weather code %d, %v°C", weather.WeatherCode, weather.TemperatureC)

	return Report{Location: location, Weather: weather}, nil
}

package openmeteo

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"

	"weatherreport/apis"
	"weatherreport/config"
	"weatherreport/manager"
)

const currentFields = "temperature_2m,weather_code,wind_speed_10m"

func New(cfg config.Config) *forecast {
	return &forecast{
		url:    cfg.Forecast.URL,
		client: apis.NewClient(cfg.Timeout),
	}
}

type forecast struct {
	url    string
	client *resty.Client
}

type response struct {
	Current *struct {
		Temperature *float64 `json:"temperature_2m" validate:"required"`
		WeatherCode *int     `json:"weather_code" validate:"required"`
		WindSpeed   *float64 `json:"wind_speed_10m" validate:"required"`
	} `json:"current" validate:"required"`
}

// Current fetches the current conditions at the given coordinates.
func (f forecast) Current(ctx context.Context, latitude, longitude float64) (manager.Weather, error) {
	params := map[string]string{
		"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
		"current":   currentFields,
	}

	body, err := apis.Get(ctx, f.client, f.url, params)
	if err != nil {
		return manager.Weather{}, err
	}

	return parse(body)
}

func parse(body []byte) (manager.Weather, error) {
	var r response
	if err := apis.Decode(body, &r); err != nil {
		return manager.Weather{}, err
	}

	return manager.Weather{
		TemperatureC: *r.Current.Temperature,
		WeatherCode:  manager.WeatherCode(*r.Current.WeatherCode),
		WindSpeedKmh: *r.Current.WindSpeed,
	}, nil
}

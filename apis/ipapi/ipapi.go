package ipapi

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"

	"weatherreport/apis"
	"weatherreport/config"
	"weatherreport/manager"
)

const statusSuccess = "success"

var fields = []string{"status", "message", "city", "country", "lat", "lon"}

func New(cfg config.Config) *geolocation {
	return &geolocation{
		url:       cfg.Geolocation.URL,
		continent: cfg.Geolocation.Continent,
		client:    apis.NewClient(cfg.Timeout),
	}
}

type geolocation struct {
	url       string
	continent bool
	client    *resty.Client
}

type response struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	City      *string  `json:"city" validate:"required"`
	Country   *string  `json:"country" validate:"required"`
	Continent *string  `json:"continent"`
	Lat       *float64 `json:"lat" validate:"required"`
	Lon       *float64 `json:"lon" validate:"required"`
}

// Locate resolves the caller's public IP to a location.
func (g geolocation) Locate(ctx context.Context) (manager.Location, error) {
	requested := fields
	if g.continent {
		requested = append(requested[:len(requested):len(requested)], "continent")
	}

	body, err := apis.Get(ctx, g.client, g.url, map[string]string{
		"fields": strings.Join(requested, ","),
	})
	if err != nil {
		return manager.Location{}, err
	}

	return parse(body)
}

func parse(body []byte) (manager.Location, error) {
	var status struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := apis.Decode(body, &status); err != nil {
		return manager.Location{}, err
	}

	if status.Status != statusSuccess {
		return manager.Location{}, &manager.GeolocationError{Message: status.Message}
	}

	var r response
	if err := apis.Decode(body, &r); err != nil {
		return manager.Location{}, err
	}

	location := manager.Location{
		Latitude:  *r.Lat,
		Longitude: *r.Lon,
		City:      *r.City,
		Country:   *r.Country,
	}
	if r.Continent != nil {
		location.Continent = *r.Continent
	}

	return location, nil
}

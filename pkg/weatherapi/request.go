package weatherapi

import (
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// CurrentWeatherRequest defines the input for current weather query
type CurrentWeatherRequest struct {
	Query      string `json:"query" jsonschema:"Location query (city name, coordinates, IP, etc.)"`
	AirQuality bool   `json:"air_quality,omitempty" jsonschema:"Enable air quality data"`
	Language   string `json:"language,omitempty" jsonschema:"Language code (e.g., 'en', 'fr', 'es')"`
}

// GetWeatherRequest is the input of the get_weather tool
type GetWeatherRequest struct {
	City string `json:"city" jsonschema:"Name of the city, for example London or New York"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts CurrentWeatherRequest to URL query parameters
func (r *CurrentWeatherRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("key", apiKey)
	result.Set("q", r.Query)
	if r.AirQuality {
		result.Set("aqi", "yes")
	}
	if r.Language != "" {
		result.Set("lang", r.Language)
	}
	return result
}

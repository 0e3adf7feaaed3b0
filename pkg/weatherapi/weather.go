package weatherapi

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	aura "github.com/mutablelogic/go-aura"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// RESPONSE TYPES

// Weather is the response of the current.json endpoint. Fields the lookup
// depends on are pointers so a missing value can be told from a zero one.
type Weather struct {
	Query    string    `json:"-"`
	Location *Location `json:"location,omitempty"`
	Current  *Current  `json:"current,omitempty"`

	// Set when the body could not be decoded
	err error
}

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzId      string  `json:"tz_id,omitempty"`
	LocalTime string  `json:"localtime,omitempty"`
}

type Current struct {
	LastUpdated string     `json:"last_updated,omitempty"`
	TempC       *float64   `json:"temp_c"`
	TempF       *float64   `json:"temp_f,omitempty"`
	FeelsLikeC  *float64   `json:"feelslike_c,omitempty"`
	IsDay       int        `json:"is_day"`
	Condition   *Condition `json:"condition"`
	WindKph     float64    `json:"wind_kph"`
	WindDir     string     `json:"wind_dir,omitempty"`
	PressureMb  float64    `json:"pressure_mb"`
	PrecipMm    float64    `json:"precip_mm"`
	Humidity    int        `json:"humidity"`
	Cloud       int        `json:"cloud"`
	UV          float64    `json:"uv"`
}

type Condition struct {
	Text *string `json:"text"`
	Icon string  `json:"icon,omitempty"`
	Code int     `json:"code,omitempty"`
}

var _ client.Unmarshaler = (*Weather)(nil)

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

// Unmarshal decodes the response body. An error reading the body is
// returned and reported as a transport error. Decoding errors are kept on
// the response, so they are reported as a data error.
func (w *Weather) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, w); err != nil {
		w.err = aura.ErrUnexpectedResponse.Withf("invalid JSON: %v", err)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (w *Weather) validate() error {
	switch {
	case w.err != nil:
		return w.err
	case w.Current == nil:
		return aura.ErrUnexpectedResponse.Withf("missing %q", "current")
	case w.Current.TempC == nil:
		return aura.ErrUnexpectedResponse.Withf("missing %q", "current.temp_c")
	case w.Current.Condition == nil || w.Current.Condition.Text == nil:
		return aura.ErrUnexpectedResponse.Withf("missing %q", "current.condition.text")
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (w Weather) String() string {
	return types.Stringify(w)
}

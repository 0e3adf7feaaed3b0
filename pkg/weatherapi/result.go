package weatherapi

import (
	"fmt"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Outcome is the kind of result of a lookup
type Outcome uint

// Reading is a successful current conditions lookup
type Reading struct {
	City      string  `json:"city"`
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
}

// Result is the outcome of a lookup: a reading on success, otherwise the
// error which caused the failure
type Result struct {
	Outcome Outcome  `json:"outcome"`
	Reading *Reading `json:"reading,omitempty"`
	Err     error    `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	OutcomeSuccess Outcome = iota
	OutcomeNetworkFailure
	OutcomeDataFailure
)

// Markers which lead each rendered result
const (
	MarkerSuccess        = "📍"
	MarkerNetworkFailure = "❌"
	MarkerDataFailure    = "⛔"
)

var markers = strings.NewReplacer(MarkerSuccess, "", MarkerNetworkFailure, "", MarkerDataFailure, "")

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Failed returns true if the lookup did not produce a reading
func (r Result) Failed() bool {
	return r.Outcome != OutcomeSuccess || r.Reading == nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNetworkFailure:
		return "network_failure"
	case OutcomeDataFailure:
		return "data_failure"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// String renders the result as the text handed back to the model. Each
// string carries exactly one marker.
func (r Result) String() string {
	switch {
	case r.Outcome == OutcomeSuccess && r.Reading != nil:
		return fmt.Sprintf("%s Weather in %s: %s°C 🌡️ with %s ☁️",
			MarkerSuccess,
			clean(r.Reading.City),
			strconv.FormatFloat(r.Reading.TempC, 'f', -1, 64),
			clean(r.Reading.Condition),
		)
	case r.Outcome == OutcomeNetworkFailure:
		return fmt.Sprintf("%s Sorry, I couldn't fetch the weather data due to a network error: %s. Please try again later.", MarkerNetworkFailure, detail(r.Err))
	default:
		return fmt.Sprintf("%s An unexpected error occurred while processing weather data: %s. Please try again later.", MarkerDataFailure, detail(r.Err))
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func clean(s string) string {
	return strings.TrimSpace(markers.Replace(s))
}

func detail(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.TrimSuffix(clean(err.Error()), ".")
}

// Package banner validates city input and decides how an answer from the
// weather agent is displayed: as an error, a success or plain information.
package banner

import (
	"strings"

	// Packages
	aura "github.com/mutablelogic/go-aura"
	weatherapi "github.com/mutablelogic/go-aura/pkg/weatherapi"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Style is the kind of banner used to display a message
type Style uint

// Banner is a message with the style used to display it
type Banner struct {
	Style Style  `json:"style"`
	Text  string `json:"text"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StyleInfo Style = iota
	StyleSuccess
	StyleWarning
	StyleError
)

const (
	// Shown when the city is empty
	InvalidCity = "Please enter a valid city name."
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ValidateCity trims the city and returns an error if nothing is left
func ValidateCity(city string) (string, error) {
	if city = strings.TrimSpace(city); city == "" {
		return "", aura.ErrBadParameter.With(InvalidCity)
	}
	return city, nil
}

// Classify returns the style for an answer. Any failure marker selects the
// error style, even when a success marker is also present; otherwise the
// success marker selects the success style and anything else is information.
func Classify(answer string) Style {
	switch {
	case strings.Contains(answer, weatherapi.MarkerNetworkFailure), strings.Contains(answer, weatherapi.MarkerDataFailure):
		return StyleError
	case strings.Contains(answer, weatherapi.MarkerSuccess):
		return StyleSuccess
	default:
		return StyleInfo
	}
}

// New returns the banner for an answer
func New(answer string) Banner {
	return Banner{Style: Classify(answer), Text: answer}
}

// Warning returns a warning banner
func Warning(text string) Banner {
	return Banner{Style: StyleWarning, Text: text}
}

// Failure returns an error banner for an error which ended a request
func Failure(err error) Banner {
	return Banner{Style: StyleError, Text: err.Error()}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Style) String() string {
	switch s {
	case StyleInfo:
		return "info"
	case StyleSuccess:
		return "success"
	case StyleWarning:
		return "warning"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

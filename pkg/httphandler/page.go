package httphandler

import (
	_ "embed"
	"html/template"
	"net/http"

	// Packages
	banner "github.com/mutablelogic/go-aura/pkg/banner"
	metrics "github.com/mutablelogic/go-aura/pkg/metrics"
	version "github.com/mutablelogic/go-aura/pkg/version"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type page struct {
	Title       string
	Subtitle    string
	Badge       string
	Placeholder string
	Footer      string
	Version     string
	City        string
	Banner      *banner.Banner
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	PageTitle       = "HG Aura Weather Agent"
	PageSubtitle    = "Ask for the current weather in any city"
	PageBadge       = "AI-Powered Weather Agent"
	PagePlaceholder = "e.g., London, New York"
	PageFooter      = "Weather data from WeatherAPI.com"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /
func PageHandler(asker Asker, metrics *metrics.Metrics) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				renderPage(w, r, http.StatusOK, newPage("", nil))
			case http.MethodPost:
				city := r.PostFormValue("city")
				if city, err := banner.ValidateCity(city); err != nil {
					renderPage(w, r, http.StatusOK, newPage("", types.Ptr(display(metrics, banner.Warning(banner.InvalidCity)))))
				} else if answer, err := ask(r.Context(), asker, metrics, city); err != nil {
					renderPage(w, r, http.StatusBadGateway, newPage(city, types.Ptr(display(metrics, banner.Failure(err)))))
				} else {
					renderPage(w, r, http.StatusOK, newPage(city, types.Ptr(display(metrics, banner.New(answer)))))
				}
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Return the weather page",
			},
			Post: &openapi.Operation{
				Description: "Ask for the weather in the submitted city and return the page with the answer",
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newPage(city string, b *banner.Banner) page {
	return page{
		Title:       PageTitle,
		Subtitle:    PageSubtitle,
		Badge:       PageBadge,
		Placeholder: PagePlaceholder,
		Footer:      PageFooter,
		Version:     version.Version(),
		City:        city,
		Banner:      b,
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render page")
	}
}

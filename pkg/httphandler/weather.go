package httphandler

import (
	"net/http"

	// Packages
	banner "github.com/mutablelogic/go-aura/pkg/banner"
	metrics "github.com/mutablelogic/go-aura/pkg/metrics"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /api/weather
func WeatherHandler(asker Asker, metrics *metrics.Metrics) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/api/weather", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				var req schema.WeatherRequest
				if err := httprequest.Read(r, &req); err != nil {
					_ = httpresponse.Error(w, err)
					return
				}

				// An empty city is a warning, and the agent is not run
				city, err := banner.ValidateCity(req.City)
				if err != nil {
					display(metrics, banner.Warning(banner.InvalidCity))
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
					return
				}

				// Run the agent and classify the answer
				answer, err := ask(r.Context(), asker, metrics, city)
				if err != nil {
					display(metrics, banner.Failure(err))
					_ = httpresponse.Error(w, agentErr(err))
					return
				}
				b := display(metrics, banner.New(answer))
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.WeatherResponse{
					City:  city,
					Text:  b.Text,
					Style: b.Style.String(),
				})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Post: &openapi.Operation{
				Description: "Ask the weather agent about the current weather in a city",
			},
		})
}

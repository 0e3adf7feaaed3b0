package httphandler

import (
	"net/http"

	// Packages
	metrics "github.com/mutablelogic/go-aura/pkg/metrics"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	version "github.com/mutablelogic/go-aura/pkg/version"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /api/health
func HealthHandler() (string, http.HandlerFunc, *openapi.PathItem) {
	return "/api/health", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.HealthResponse{
					Status:  "ok",
					Version: version.Version(),
				})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Return the service status and version",
			},
		})
}

// Path: /api
func PathsHandler(paths Paths) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/api", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), paths)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Describe the registered paths",
			},
		})
}

// Path: /metrics
func MetricsHandler(metrics *metrics.Metrics) (string, http.HandlerFunc, *openapi.PathItem) {
	handler := metrics.Handler()
	return "/metrics", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				handler.ServeHTTP(w, r)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Return metrics in the Prometheus text format",
			},
		})
}

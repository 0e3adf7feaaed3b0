package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	// Packages
	httphandler "github.com/mutablelogic/go-aura/pkg/httphandler"
	metrics "github.com/mutablelogic/go-aura/pkg/metrics"
	schema "github.com/mutablelogic/go-aura/pkg/schema"
	zerolog "github.com/rs/zerolog"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// FAKES

type fakeAsker struct {
	sync.Mutex
	answer string
	err    error
	cities []string
}

func (a *fakeAsker) Ask(_ context.Context, city string) (string, error) {
	a.Lock()
	defer a.Unlock()
	a.cities = append(a.cities, city)
	return a.answer, a.err
}

func serve(t *testing.T, asker *fakeAsker) (http.Handler, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	router, err := httphandler.NewRouter(zerolog.Nop(), asker, m)
	if err != nil {
		t.Fatal(err)
	}
	return router, m
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)
	return w
}

func postForm(router http.Handler, city string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"city": {city}}.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, r)
	return w
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_register_001(t *testing.T) {
	assert := assert.New(t)
	_, err := httphandler.NewRouter(zerolog.Nop(), nil, nil)
	assert.Error(err)

	// Metrics are optional
	router, err := httphandler.NewRouter(zerolog.Nop(), &fakeAsker{}, nil)
	if assert.NoError(err) {
		assert.Equal(http.StatusNotFound, get(router, "/metrics").Code)
	}
}

func Test_page_001(t *testing.T) {
	assert := assert.New(t)
	asker := &fakeAsker{}
	router, _ := serve(t, asker)

	w := get(router, "/")
	assert.Equal(http.StatusOK, w.Code)
	assert.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	body := w.Body.String()
	assert.Contains(body, httphandler.PageTitle)
	assert.Contains(body, httphandler.PageBadge)
	assert.Contains(body, "e.g., London, New York")
	assert.Contains(body, "Get Weather")
	assert.NotContains(body, `class="banner`)
	assert.Empty(asker.cities)
}

func Test_page_002(t *testing.T) {
	// An empty city shows a warning without running the agent
	assert := assert.New(t)
	asker := &fakeAsker{answer: "unused"}
	router, _ := serve(t, asker)

	w := postForm(router, "   ")
	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), `class="banner warning"`)
	assert.Contains(w.Body.String(), "Please enter a valid city name.")
	assert.Empty(asker.cities)
}

func Test_page_003(t *testing.T) {
	assert := assert.New(t)
	asker := &fakeAsker{answer: "📍 Weather in London: 18°C 🌡️ with Cloudy ☁️"}
	router, _ := serve(t, asker)

	w := postForm(router, " London ")
	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), `class="banner success"`)
	assert.Contains(w.Body.String(), "Weather in London: 18°C")
	assert.Contains(w.Body.String(), `value="London"`)
	assert.Equal([]string{"London"}, asker.cities)
}

func Test_page_004(t *testing.T) {
	assert := assert.New(t)
	router, _ := serve(t, &fakeAsker{answer: "❌ Sorry, I couldn't fetch the weather data due to a network error: timeout. Please try again later."})
	w := postForm(router, "Paris")
	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), `class="banner error"`)

	router, _ = serve(t, &fakeAsker{answer: "I only know about the weather."})
	w = postForm(router, "Paris")
	assert.Contains(w.Body.String(), `class="banner info"`)
}

func Test_page_005(t *testing.T) {
	// A failed agent run is shown as an error
	assert := assert.New(t)
	router, _ := serve(t, &fakeAsker{err: errors.New("model unavailable")})
	w := postForm(router, "Paris")
	assert.Equal(http.StatusBadGateway, w.Code)
	assert.Contains(w.Body.String(), `class="banner error"`)
	assert.Contains(w.Body.String(), "model unavailable")
}

func Test_page_006(t *testing.T) {
	// Answers are escaped
	assert := assert.New(t)
	router, _ := serve(t, &fakeAsker{answer: "<script>alert(1)</script>"})
	w := postForm(router, "Paris")
	assert.NotContains(w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(w.Body.String(), "&lt;script&gt;")
}

func Test_weather_001(t *testing.T) {
	assert := assert.New(t)
	asker := &fakeAsker{answer: "📍 Weather in London: 18°C 🌡️ with Cloudy ☁️"}
	router, _ := serve(t, asker)

	w := postJSON(router, "/api/weather", `{"city":" London "}`)
	if !assert.Equal(http.StatusOK, w.Code, w.Body.String()) {
		t.FailNow()
	}
	var resp schema.WeatherResponse
	if assert.NoError(json.NewDecoder(w.Body).Decode(&resp)) {
		assert.Equal("London", resp.City)
		assert.Equal("success", resp.Style)
		assert.Equal(asker.answer, resp.Text)
	}
	assert.Equal([]string{"London"}, asker.cities)
}

func Test_weather_002(t *testing.T) {
	assert := assert.New(t)
	asker := &fakeAsker{answer: "unused"}
	router, _ := serve(t, asker)

	w := postJSON(router, "/api/weather", `{"city":"  "}`)
	assert.Equal(http.StatusBadRequest, w.Code)
	assert.Contains(w.Body.String(), "Please enter a valid city name.")
	assert.Empty(asker.cities)
}

func Test_weather_003(t *testing.T) {
	assert := assert.New(t)
	router, _ := serve(t, &fakeAsker{err: errors.New("model unavailable")})

	w := postJSON(router, "/api/weather", `{"city":"Paris"}`)
	assert.Equal(http.StatusBadGateway, w.Code)

	w = postJSON(router, "/api/weather", `{"city":"Paris"}`)
	assert.Equal(http.StatusBadGateway, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather", nil))
	assert.Equal(http.StatusMethodNotAllowed, w.Code)
}

func Test_weather_004(t *testing.T) {
	// A run which times out is a gateway timeout
	assert := assert.New(t)
	router, _ := serve(t, &fakeAsker{err: context.DeadlineExceeded})
	w := postJSON(router, "/api/weather", `{"city":"Paris"}`)
	assert.Equal(http.StatusGatewayTimeout, w.Code)
}

func Test_health_001(t *testing.T) {
	assert := assert.New(t)
	router, _ := serve(t, &fakeAsker{})

	w := get(router, "/api/health")
	assert.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	if assert.NoError(json.NewDecoder(w.Body).Decode(&resp)) {
		assert.Equal("ok", resp["status"])
		assert.NotEmpty(resp["version"])
	}

	w = get(router, "/api")
	assert.Equal(http.StatusOK, w.Code)
	for _, path := range []string{"/", "/api/weather", "/api/health", "/metrics"} {
		assert.Contains(w.Body.String(), `"`+path+`"`)
	}
}

func Test_metrics_001(t *testing.T) {
	assert := assert.New(t)
	router, _ := serve(t, &fakeAsker{answer: "📍 Weather in London: 18°C"})
	postJSON(router, "/api/weather", `{"city":"London"}`)
	postForm(router, "")

	w := get(router, "/metrics")
	assert.Equal(http.StatusOK, w.Code)
	data, err := io.ReadAll(w.Body)
	if !assert.NoError(err) {
		t.FailNow()
	}
	body := string(data)
	assert.Contains(body, `aura_banners_total{style="success"} 1`)
	assert.Contains(body, `aura_banners_total{style="warning"} 1`)
	assert.Contains(body, `aura_agent_runs_total{status="success"} 1`)
}

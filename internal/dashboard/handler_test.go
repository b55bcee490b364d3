package dashboard

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/api"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/charts"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

func newTestHandler(backend Backend) *Handler {
	return NewHandler(newTestController(backend), charts.NewPNGRenderer())
}

func postForm(t *testing.T, h *Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPageListsTabs(t *testing.T) {
	h := newTestHandler(&fakeBackend{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Twitter Sentiment Dashboard")
	assert.Contains(t, body, FlowSearch)
	assert.Contains(t, body, FlowSentimentTest)
}

func TestPageTabQuerySwitchesActiveTab(t *testing.T) {
	h := newTestHandler(&fakeBackend{})

	req := httptest.NewRequest(http.MethodGet, "/?tab=search", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, FlowSearch, h.controller.Tabs().Active())
}

func TestFlowEndpointRendersFragment(t *testing.T) {
	backend := &fakeBackend{
		userInfo: func(username string) (*api.UserInfoResponse, error) {
			return &api.UserInfoResponse{
				Success:  true,
				UserInfo: &twitter.User{Username: "nasa", Name: "NASA", Followers: 1000},
			}, nil
		},
	}
	h := newTestHandler(backend)

	rec := postForm(t, h, "/dashboard/user-info", url.Values{"username": {"nasa"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "@nasa")
	assert.Contains(t, rec.Body.String(), "1,000")
}

func TestFlowEndpointRendersErrorFragment(t *testing.T) {
	backend := &fakeBackend{
		userInfo: func(username string) (*api.UserInfoResponse, error) {
			return nil, &api.Error{StatusCode: 404, Message: "User @ghost not found"}
		},
	}
	h := newTestHandler(backend)

	rec := postForm(t, h, "/dashboard/user-info", url.Values{"username": {"ghost"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="error-message"`)
	assert.Contains(t, rec.Body.String(), "User @ghost not found")
}

func TestUnknownFlowIs404(t *testing.T) {
	h := newTestHandler(&fakeBackend{})
	rec := postForm(t, h, "/dashboard/no-such-flow", url.Values{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChartEndpointServesLiveChartsOnly(t *testing.T) {
	h := newTestHandler(&fakeBackend{})

	req := httptest.NewRequest(http.MethodGet, "/charts/sentimentPieChart.png", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code, "no chart registered yet")

	series := &charts.Series{
		Labels: []string{"Positive", "Neutral", "Negative"},
		Data:   []float64{3, 2, 1},
	}
	h.controller.Registry().Acquire("sentimentPieChart", charts.KindPie, series)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts/sentimentPieChart.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())

	handle, ok := h.controller.Registry().Get("sentimentPieChart")
	require.True(t, ok)
	handle.Dispose()

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts/sentimentPieChart.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "disposed charts are not served")
}

func TestDiagnosticsEndpoint(t *testing.T) {
	h := newTestHandler(&fakeBackend{})
	h.controller.Console().Infof("search", "warmup")

	req := httptest.NewRequest(http.MethodGet, "/diagnostics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "warmup")
}

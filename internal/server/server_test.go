package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stembills-dashboard/internal/bootstrap"
	"stembills-dashboard/internal/config"
	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/internal/repository/implementation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `congress,Intro_bills,passed_house,paassed_senate,enacted_signed_by_pres,enacted_included_in_other_bill
94,60,12,9,7,3
93,50,10,8,5,2
95,40,20,4,1,0
`

func newTestServer(t *testing.T) (*Server, *bootstrap.Container) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "stembillsus.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))

	cfg := &config.Config{
		App: config.AppConfig{
			Host:               "127.0.0.1",
			Port:               "8050",
			Title:              "STEM Bills Passed by Congress since 1973",
			WsLogFilePath:      filepath.Join(dir, "ws.log"),
			CorsAllowedOrigins: "*",
		},
		Dataset: config.DatasetConfig{Path: path},
	}

	log := logger.NewNopLogger()
	repo, err := implementation.NewCSVBillRepository(path, log)
	require.NoError(t, err)

	container, err := bootstrap.NewContainer(cfg, repo, log)
	require.NoError(t, err)
	t.Cleanup(func() { container.PubSub.Close() })

	return New(cfg, container), container
}

func do(t *testing.T, srv *Server, method, target, body string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestIndexAndScript(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := do(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<title>STEM Bills Passed by Congress since 1973</title>")

	code, body = do(t, srv, http.MethodGet, "/assets/dashboard.js", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "_dash-layout")
}

func TestLayoutAndDependencies(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := do(t, srv, http.MethodGet, "/_dash-layout", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"id":"crossfilter-feature"`)
	assert.Contains(t, body, `"id":"congress-slider"`)

	code, body = do(t, srv, http.MethodGet, "/_dash-dependencies", "")
	require.Equal(t, http.StatusOK, code)
	var deps []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &deps))
	assert.Len(t, deps, 3)
}

func TestUpdateComponent(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		contains string
	}{
		{
			name: "scatter renders",
			body: `{"output":"scatter-plot.figure","inputs":[
				{"id":"crossfilter-feature","property":"value","value":"enacted_signed_by_pres"},
				{"id":"first-model","property":"value","value":"Bills Passed Per Congress"},
				{"id":"gradient-scheme","property":"value","value":"Split"}]}`,
			wantCode: http.StatusOK,
			contains: `"scatter-plot":{"figure":{"theme":"dark"`,
		},
		{
			name: "invalid gradient",
			body: `{"output":"scatter-plot.figure","inputs":[
				{"id":"crossfilter-feature","property":"value","value":"None"},
				{"id":"first-model","property":"value","value":"Total Bills"},
				{"id":"gradient-scheme","property":"value","value":"Sideways"}]}`,
			wantCode: http.StatusInternalServerError,
			contains: `"code":500`,
		},
		{
			name:     "bar chart from default hover",
			body:     `{"output":"point-plot.figure","inputs":[{"id":"scatter-plot","property":"hoverData","value":{"points":[{"billspassed":0}]}}]}`,
			wantCode: http.StatusOK,
			contains: `"type":"bar"`,
		},
		{
			name:     "bar chart from real hover",
			body:     `{"output":"point-plot.figure","inputs":[{"id":"scatter-plot","property":"hoverData","value":{"points":[{"pointIndex":1}]}}]}`,
			wantCode: http.StatusInternalServerError,
			contains: "billspassed",
		},
		{
			name:     "slider",
			body:     `{"output":"graph-with-slider.figure","inputs":[{"id":"congress-slider","property":"value","value":94}]}`,
			wantCode: http.StatusInternalServerError,
			contains: "government filter unavailable",
		},
		{
			name:     "unknown output",
			body:     `{"output":"nowhere.figure","inputs":[]}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "missing input",
			body:     `{"output":"graph-with-slider.figure","inputs":[]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing output",
			body:     `{"inputs":[]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed",
			body:     `{"output":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, srv, http.MethodPost, "/_dash-update-component", tt.body)
			assert.Equal(t, tt.wantCode, code, body)
			if tt.contains != "" {
				assert.Contains(t, body, tt.contains)
			}
		})
	}
}

func TestDatasetStatsAndHealth(t *testing.T) {
	srv, container := newTestServer(t)
	require.NoError(t, container.CallbackStats.Consume(t.Context()))

	code, body := do(t, srv, http.MethodGet, "/api/dataset", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"rows":3`)
	assert.Contains(t, body, `"Intro_bills":150`)

	code, _ = do(t, srv, http.MethodPost, "/_dash-update-component",
		`{"output":"graph-with-slider.figure","inputs":[{"id":"congress-slider","property":"value","value":93}]}`)
	require.Equal(t, http.StatusInternalServerError, code)

	assert.Eventually(t, func() bool {
		_, body := do(t, srv, http.MethodGet, "/api/stats", "")
		return strings.Contains(body, `"output":"graph-with-slider.figure"`) && strings.Contains(body, `"failures":1`)
	}, time.Second, 10*time.Millisecond)

	code, body = do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestWebsocketRouteRejectsPlainRequests(t *testing.T) {
	srv, _ := newTestServer(t)

	code, _ := do(t, srv, http.MethodGet, "/_dash-ws", "")
	assert.Equal(t, http.StatusUpgradeRequired, code)
}

// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/cama/route"
	"github.com/xmidt-org/cama/secure"
	"github.com/xmidt-org/cama/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type testApp struct {
	primary string
	metrics string
	issuer  *secure.Issuer
	table   route.Table
	client  *http.Client
}

func startTestApp(t *testing.T) *testApp {
	require := require.New(t)

	primary, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(err)

	metrics, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(err)

	var c Config
	c.Token = secure.Options{SigningKey: "camad-test-key"}
	c.Study.Driver = MemoryDriver
	c.Metrics = xmetrics.Options{DisableGoCollector: true, DisableProcessCollector: true}
	c.Servers.Primary.Listener = primary
	c.Servers.Metrics.Listener = metrics

	ta := &testApp{
		primary: "http://" + primary.Addr().String(),
		metrics: "http://" + metrics.Addr().String(),
		client: &http.Client{
			Transport: &http.Transport{DisableKeepAlives: true},
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}

	app := newApp(c, zap.NewNop(), fx.Populate(&ta.issuer, &ta.table))
	require.NoError(app.Err())
	require.NoError(app.Start(context.Background()))
	t.Cleanup(func() {
		assert.NoError(t, app.Stop(context.Background()))
	})

	return ta
}

func (ta *testApp) do(t *testing.T, request *http.Request) (*http.Response, string) {
	response, err := ta.client.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response, string(body)
}

func (ta *testApp) get(t *testing.T, path string) (*http.Response, string) {
	request, err := http.NewRequest("GET", ta.primary+path, nil)
	require.NoError(t, err)
	return ta.do(t, request)
}

func testAppHealthCheck(t *testing.T) {
	var (
		assert = assert.New(t)
		ta     = startTestApp(t)
	)

	response, body := ta.get(t, "/api/health/")
	assert.Equal(http.StatusOK, response.StatusCode)
	assert.Equal("OK", body)
	assert.Equal("nosniff", response.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(response.Header.Get("X-Request-Id"))

	response, _ = ta.get(t, "/api/health")
	assert.Equal(http.StatusMovedPermanently, response.StatusCode)
	assert.Equal("/api/health/", response.Header.Get("Location"))
}

func testAppErrors(t *testing.T) {
	var (
		assert = assert.New(t)
		ta     = startTestApp(t)
	)

	response, body := ta.get(t, "/nowhere/")
	assert.Equal(http.StatusNotFound, response.StatusCode)
	assert.JSONEq(`{"message": "Not Found"}`, body)

	response, _ = ta.get(t, "/api/token/refresh/")
	assert.Equal(http.StatusMethodNotAllowed, response.StatusCode)

	response, _ = ta.get(t, "/admin/")
	assert.Equal(http.StatusUnauthorized, response.StatusCode)
}

func testAppTokenRefresh(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		ta      = startTestApp(t)
	)

	pair, err := ta.issuer.IssuePair(secure.Subject{UserID: "0000-0002-1825-0097", IsAdmin: true})
	require.NoError(err)

	request, err := http.NewRequest("POST", ta.primary+"/api/token/refresh/", strings.NewReader(url.Values{"refresh": {pair.Refresh}}.Encode()))
	require.NoError(err)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, body := ta.do(t, request)
	assert.Equal(http.StatusOK, response.StatusCode)
	assert.Contains(body, `"access"`)

	request, err = http.NewRequest("GET", ta.primary+"/admin/", nil)
	require.NoError(err)
	request.Header.Set("Authorization", "Bearer "+pair.Access)

	response, body = ta.do(t, request)
	assert.Equal(http.StatusOK, response.StatusCode)
	assert.Contains(body, `"health_check"`)
	assert.Contains(body, `"/api/token/refresh/"`)

	request, err = http.NewRequest("GET", ta.primary+"/admin/health/", nil)
	require.NoError(err)
	request.Header.Set("Authorization", "Bearer "+pair.Access)

	response, body = ta.do(t, request)
	assert.Equal(http.StatusOK, response.StatusCode)
	assert.Contains(body, "TotalRequestsReceived")
}

func testAppMetrics(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		ta      = startTestApp(t)
	)

	ta.get(t, "/api/health/")

	request, err := http.NewRequest("GET", ta.metrics+"/", nil)
	require.NoError(err)

	response, body := ta.do(t, request)
	assert.Equal(http.StatusOK, response.StatusCode)
	assert.Contains(body, "cama_backend_api_requests_total")
	assert.Contains(body, "cama_backend_request_duration_seconds")
	assert.Contains(body, `cama_backend_active_connections{server="primary"}`)
}

func TestApp(t *testing.T) {
	t.Run("HealthCheck", testAppHealthCheck)
	t.Run("Errors", testAppErrors)
	t.Run("TokenRefresh", testAppTokenRefresh)
	t.Run("Metrics", testAppMetrics)
}

func TestURLsOrder(t *testing.T) {
	var (
		assert = assert.New(t)
		ta     = startTestApp(t)
		names  []string
	)

	for _, r := range ta.table {
		names = append(names, r.Name)
	}

	if assert.GreaterOrEqual(len(names), 2) {
		assert.Equal([]string{HealthCheckRoute, TokenRefreshRoute}, names[len(names)-2:])
	}

	assert.Equal("admin:index", names[0])
}

func TestNewAppMissingSigningKey(t *testing.T) {
	var c Config
	c.Study.Driver = MemoryDriver
	c.Metrics = xmetrics.Options{DisableGoCollector: true, DisableProcessCollector: true}

	app := newApp(c, zap.NewNop())
	assert.Error(t, app.Err())
}

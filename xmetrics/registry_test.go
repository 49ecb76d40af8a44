// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModule() []Metric {
	return []Metric{
		{Name: "outcome", Type: CounterType, LabelNames: []string{"outcome"}},
		{Name: "level", Type: GaugeType},
		{Name: "latency", Type: HistogramType, Buckets: []float64{0.1, 1}},
	}
}

func testRegistryOptions() Options {
	return Options{Pedantic: true, DisableGoCollector: true, DisableProcessCollector: true}
}

func TestNewCollector(t *testing.T) {
	t.Run("NoName", func(t *testing.T) {
		c, err := NewCollector("a", "b", Metric{Type: CounterType})
		assert.Nil(t, c)
		assert.Error(t, err)
	})

	t.Run("BadType", func(t *testing.T) {
		c, err := NewCollector("a", "b", Metric{Name: "x", Type: "nosuch"})
		assert.Nil(t, c)
		assert.Error(t, err)
	})
}

func TestNewRegistry(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
		)

		r, err := NewRegistry(testRegistryOptions(), testModule)
		require.NoError(err)
		assert.Equal(DefaultNamespace, r.Namespace())
		assert.Equal(DefaultSubsystem, r.Subsystem())

		r.NewCounter("outcome").With("outcome", "accepted").Add(2)
		assert.Equal(2.0, testutil.ToFloat64(r.CounterVec("outcome").WithLabelValues("accepted")))

		r.NewGauge("level").Set(7)
		assert.Equal(7.0, testutil.ToFloat64(r.GaugeVec("level").WithLabelValues()))

		r.NewHistogram("latency").Observe(0.5)
		assert.Equal(1, testutil.CollectAndCount(r.HistogramVec("latency")))
	})

	t.Run("Duplicate", func(t *testing.T) {
		r, err := NewRegistry(testRegistryOptions(), testModule, testModule)
		assert.Nil(t, r)
		assert.Error(t, err)
	})

	t.Run("WrongType", func(t *testing.T) {
		r, err := NewRegistry(testRegistryOptions(), testModule)
		require.NoError(t, err)
		assert.Panics(t, func() { r.GaugeVec("outcome") })
		assert.Panics(t, func() { r.CounterVec("nosuch") })
	})
}

func TestInstrumentHandler(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := NewRegistry(testRegistryOptions(), RequestMetrics)
	require.NoError(err)

	handler := InstrumentHandler(r)(http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
		response.WriteHeader(http.StatusTeapot)
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}

	assert.Equal(3.0, testutil.ToFloat64(r.CounterVec(APIRequestsTotal).WithLabelValues("418", "get")))
	assert.Equal(0.0, testutil.ToFloat64(r.GaugeVec(InFlightRequests).WithLabelValues()))

	scrape := httptest.NewRecorder()
	r.Handler().ServeHTTP(scrape, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(http.StatusOK, scrape.Code)
	assert.True(strings.Contains(scrape.Body.String(), "cama_backend_api_requests_total"))
}

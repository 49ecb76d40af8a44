// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"
	"net/http"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is a Prometheus registry preloaded with the metrics of one or more modules.
// Preregistered metrics are handed out as go-kit metrics by name.
type Registry struct {
	*prometheus.Registry

	namespace string
	subsystem string
	cache     map[string]prometheus.Collector
}

// NewRegistry creates a Registry and preregisters every metric returned by the given modules.
// Duplicate names are an error.
func NewRegistry(o Options, modules ...Module) (*Registry, error) {
	r := &Registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}

	for _, module := range modules {
		for _, m := range module() {
			if _, ok := r.cache[m.Name]; ok {
				return nil, fmt.Errorf("duplicate metric with name: %s", m.Name)
			}

			c, err := NewCollector(r.namespace, r.subsystem, m)
			if err != nil {
				return nil, err
			}

			if err := r.Registry.Register(c); err != nil {
				return nil, fmt.Errorf("error while preregistering metric %s: %s", m.Name, err)
			}

			r.cache[m.Name] = c
		}
	}

	return r, nil
}

// Namespace returns the default namespace applied to this registry's metrics
func (r *Registry) Namespace() string {
	return r.namespace
}

// Subsystem returns the default subsystem applied to this registry's metrics
func (r *Registry) Subsystem() string {
	return r.subsystem
}

// CounterVec returns the preregistered counter vector with the given name.  This method panics
// if no such counter exists, since that is a wiring error.
func (r *Registry) CounterVec(name string) *prometheus.CounterVec {
	if cv, ok := r.cache[name].(*prometheus.CounterVec); ok {
		return cv
	}

	panic(fmt.Errorf("the metric %s is not a preregistered counter", name))
}

// GaugeVec returns the preregistered gauge vector with the given name.
func (r *Registry) GaugeVec(name string) *prometheus.GaugeVec {
	if gv, ok := r.cache[name].(*prometheus.GaugeVec); ok {
		return gv
	}

	panic(fmt.Errorf("the metric %s is not a preregistered gauge", name))
}

// HistogramVec returns the preregistered histogram vector with the given name.
func (r *Registry) HistogramVec(name string) *prometheus.HistogramVec {
	if hv, ok := r.cache[name].(*prometheus.HistogramVec); ok {
		return hv
	}

	panic(fmt.Errorf("the metric %s is not a preregistered histogram", name))
}

func (r *Registry) NewCounter(name string) metrics.Counter {
	return gokitprometheus.NewCounter(r.CounterVec(name))
}

func (r *Registry) NewGauge(name string) metrics.Gauge {
	return gokitprometheus.NewGauge(r.GaugeVec(name))
}

func (r *Registry) NewHistogram(name string) metrics.Histogram {
	return gokitprometheus.NewHistogram(r.HistogramVec(name))
}

// Handler returns the scrape handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		r.Registry,
		promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{}),
	)
}

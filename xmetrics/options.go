// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	DefaultNamespace = "cama"
	DefaultSubsystem = "backend"
)

// Options is the configurable options for creating a Prometheus registry
type Options struct {
	// Namespace is the default namespace for all metrics.  If not supplied, DefaultNamespace is used.
	Namespace string

	// Subsystem is the default subsystem for all metrics.  If not supplied, DefaultSubsystem is used.
	Subsystem string

	// Pedantic indicates whether the registry is created via NewPedanticRegistry().  Set
	// to true for testing or development.
	Pedantic bool

	// DisableGoCollector controls whether the Go Collector is registered with the Registry.
	DisableGoCollector bool

	// DisableProcessCollector controls whether the Process Collector is registered with the Registry.
	DisableProcessCollector bool
}

func (o Options) namespace() string {
	if len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o Options) subsystem() string {
	if len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o Options) registry() *prometheus.Registry {
	var pr *prometheus.Registry
	if o.Pedantic {
		pr = prometheus.NewPedanticRegistry()
	} else {
		pr = prometheus.NewRegistry()
	}

	if !o.DisableGoCollector {
		pr.MustRegister(collectors.NewGoCollector())
	}

	if !o.DisableProcessCollector {
		pr.MustRegister(collectors.NewProcessCollector(
			collectors.ProcessCollectorOpts{Namespace: o.namespace()},
		))
	}

	return pr
}

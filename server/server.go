// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"net/http"
	"net/http/pprof"

	"github.com/pkg/errors"
	"github.com/xmidt-org/cama/xhttp"
	"github.com/xmidt-org/cama/xlistener"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Bind ties one HTTP server to an fx lifecycle.  The listener is opened during
// OnStart, so bind errors abort application startup.  OnStop gracefully shuts the
// server down.  The returned server has not been started yet.
//
// Connections are counted through m, which may be nil, and limited by o.MaxConnections.
func Bind(lc fx.Lifecycle, name string, o xhttp.ServerOptions, handler http.Handler, logger *zap.Logger, m *xlistener.Measures) *http.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	o.Logger = logger.With(zap.String("server", name))
	s := xhttp.NewServer(o, handler)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			rejected, active := m.For(name)
			l, err := xlistener.New(xlistener.Options{
				Logger:         o.Logger,
				MaxConnections: o.MaxConnections,
				Rejected:       rejected,
				Active:         active,
				Address:        o.Address,
				Next:           o.Listener,
			})

			if err != nil {
				return errors.Wrapf(err, "unable to listen on %s for the %s server", o.Address, name)
			}

			o.Listener = l

			go xhttp.NewStarter(o.StartOptions(), s)()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			o.Logger.Info("stopping server")
			return s.Shutdown(ctx)
		},
	})

	return s
}

// PprofHandler serves the net/http/pprof endpoints under /debug/pprof/
func PprofHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// Handlers are the root handlers of each server
type Handlers struct {
	Primary http.Handler
	Metrics http.Handler
}

// Start binds every configured server to the lifecycle.  The pprof server is
// only bound when its address is configured.
func Start(lc fx.Lifecycle, o Options, h Handlers, logger *zap.Logger, m *xlistener.Measures) {
	o = o.withDefaults()
	Bind(lc, PrimaryName, o.Primary, h.Primary, logger, m)
	Bind(lc, MetricsName, o.Metrics, h.Metrics, logger, m)
	if len(o.Pprof.Address) > 0 {
		Bind(lc, PprofName, o.Pprof, PprofHandler(), logger, m)
	}
}

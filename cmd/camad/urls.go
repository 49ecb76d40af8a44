// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/cama/admin"
	"github.com/xmidt-org/cama/health"
	"github.com/xmidt-org/cama/logging/logginghttp"
	"github.com/xmidt-org/cama/route"
	"github.com/xmidt-org/cama/secure"
	"github.com/xmidt-org/cama/secure/handler"
	"github.com/xmidt-org/cama/study"
	"github.com/xmidt-org/cama/xhttp"
	"github.com/xmidt-org/cama/xmetrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	HealthCheckRoute  = "health_check"
	TokenRefreshRoute = "token_refresh"
)

func newErrorHandlers() route.ErrorHandlers {
	return route.ErrorHandlers{
		BadRequest:       route.MessageHandler(http.StatusBadRequest),
		PermissionDenied: http.HandlerFunc(handler.PermissionDenied),
		NotFound:         route.MessageHandler(http.StatusNotFound),
		MethodNotAllowed: route.MessageHandler(http.StatusMethodNotAllowed),
		ServerError:      route.MessageHandler(http.StatusInternalServerError),
	}
}

type urlsIn struct {
	fx.In

	Issuer   *secure.Issuer
	Measures *secure.Measures
	Store    study.Store
	Health   *health.Health
	Errors   route.ErrorHandlers
}

// urls is the server's route table.  Order matters: the first matching route wins.
func urls(in urlsIn) route.Table {
	var (
		table route.Table

		auth = handler.AuthorizationHandler{
			Validator: secure.JWTValidator{Issuer: in.Issuer, Measures: in.Measures},
			Measures:  in.Measures,
		}

		site = admin.Site{
			Describe: func() []route.Description { return table.Describe() },
			Health:   in.Health,
			Studies:  in.Store,
			Errors:   in.Errors,
		}
	)

	table = append(table, route.Include("/admin", admin.Routes(site, auth))...)
	table = append(table, route.Include("/api", study.Routes(study.NewHandlers(in.Store, in.Errors), auth))...)
	table = append(table,
		route.Route{
			Pattern: "/api/health/",
			Name:    HealthCheckRoute,
			Handler: xhttp.Text(http.StatusOK, "OK"),
		},
		route.Route{
			Pattern: "/api/token/refresh/",
			Methods: []string{http.MethodPost},
			Name:    TokenRefreshRoute,
			Handler: handler.RefreshHandler{Issuer: in.Issuer},
		},
	)

	return table
}

type primaryIn struct {
	fx.In

	Config   Config
	Logger   *zap.Logger
	Table    route.Table
	Errors   route.ErrorHandlers
	Registry *xmetrics.Registry
	Health   *health.Health
}

// newPrimaryHandler builds the router for the route table and wraps it in the
// middleware every API request passes through
func newPrimaryHandler(in primaryIn) (http.Handler, error) {
	router, err := in.Table.Build(mux.NewRouter(), in.Errors)
	if err != nil {
		return nil, err
	}

	headers := in.Config.Headers
	if len(headers) == 0 {
		headers = xhttp.DefaultHeaders()
	}

	chain := alice.New(
		route.Recover(in.Errors, in.Logger),
		logginghttp.PopulateLogger(in.Logger),
		logginghttp.AccessLog(),
		xmetrics.InstrumentHandler(in.Registry),
		in.Health.RequestTracker,
		xhttp.StaticHeaders(headers),
		xhttp.Timeout(in.Config.Servers.RequestTimeout),
		xhttp.Busy(in.Config.Servers.MaxConcurrentRequests),
	)

	return otelhttp.NewHandler(chain.Then(router), applicationName), nil
}

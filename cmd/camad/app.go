// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/pkg/errors"
	"github.com/xmidt-org/cama/clock"
	"github.com/xmidt-org/cama/health"
	"github.com/xmidt-org/cama/secure"
	"github.com/xmidt-org/cama/server"
	"github.com/xmidt-org/cama/study"
	"github.com/xmidt-org/cama/xlistener"
	"github.com/xmidt-org/cama/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newRegistry(c Config) (*xmetrics.Registry, error) {
	return xmetrics.NewRegistry(c.Metrics, xmetrics.RequestMetrics, secure.Metrics, xlistener.Metrics)
}

func newIssuer(c Config, m *secure.Measures) (*secure.Issuer, error) {
	return secure.NewIssuer(c.Token, clock.System(), m)
}

func newHealth(c Config, logger *zap.Logger) *health.Health {
	return health.New(c.Servers.HealthInterval, logger.Named("health"))
}

// openStudyDB opens the postgres pool, applying migrations when configured
func openStudyDB(ctx context.Context, c StudyConfig, logger *zap.Logger) (*sql.DB, error) {
	db, err := study.OpenPostgres(ctx, c.Postgres)
	if err != nil {
		return nil, err
	}

	if c.Migrate {
		logger.Info("applying study migrations")
		if err := study.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

func newStore(lc fx.Lifecycle, c Config, logger *zap.Logger) (study.Store, error) {
	switch c.Study.Driver {
	case MemoryDriver:
		logger.Warn("studies are kept in memory and will not survive a restart")
		return study.NewMemoryStore(), nil

	case PostgresDriver:
		db, err := openStudyDB(context.Background(), c.Study, logger)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(db.Close))
		return study.NewPostgresStore(db), nil

	default:
		return nil, errors.Errorf("unsupported study driver: %q", c.Study.Driver)
	}
}

type handlersIn struct {
	fx.In

	Primary  http.Handler
	Registry *xmetrics.Registry
}

func newServerHandlers(in handlersIn) server.Handlers {
	return server.Handlers{
		Primary: in.Primary,
		Metrics: in.Registry.Handler(),
	}
}

func startServers(lc fx.Lifecycle, c Config, h server.Handlers, logger *zap.Logger, m *xlistener.Measures) {
	server.Start(lc, c.Servers, h, logger, m)
}

// newApp assembles camad.  Additional options are appended, which allows tests
// to populate values from the graph.
func newApp(c Config, logger *zap.Logger, options ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(c, logger),
		fx.WithLogger(server.EventLogger),
		fx.Provide(
			newRegistry,
			secure.NewMeasures,
			xlistener.NewMeasures,
			newIssuer,
			newHealth,
			newStore,
			newErrorHandlers,
			urls,
			newPrimaryHandler,
			newServerHandlers,
		),
		fx.Invoke(
			server.BindHealth,
			startServers,
		),
		fx.Options(options...),
	)
}

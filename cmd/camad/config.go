// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/cama/secure"
	"github.com/xmidt-org/cama/server"
	"github.com/xmidt-org/cama/study"
	"github.com/xmidt-org/cama/xmetrics"
	"github.com/xmidt-org/cama/xviper"
	"github.com/xmidt-org/sallust"
)

const (
	MemoryDriver   = "memory"
	PostgresDriver = "postgres"
)

// StudyConfig selects and configures the study store
type StudyConfig struct {
	// Driver is either MemoryDriver or PostgresDriver
	Driver string

	Postgres study.PostgresOptions

	// Migrate applies the embedded migrations when the postgres store starts
	Migrate bool
}

// Config is the complete camad configuration
type Config struct {
	Logging sallust.Config
	Token   secure.Options
	Study   StudyConfig
	Servers server.Options
	Metrics xmetrics.Options

	// Headers are added to every API response.  When unset, xhttp.DefaultHeaders applies.
	Headers http.Header
}

var defaults = xviper.Defaults{
	"study.driver":            MemoryDriver,
	"study.migrate":           true,
	"study.postgres.dsn":      "",
	"token.signingKey":        "",
	"token.issuer":            "",
	"token.accessLifetime":    secure.DefaultAccessLifetime,
	"token.refreshLifetime":   secure.DefaultRefreshLifetime,
	"servers.primary.address": server.DefaultPrimaryAddress,
	"servers.metrics.address": server.DefaultMetricsAddress,
	"servers.pprof.address":   "",
	"logging.level":           "info",
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	xviper.ApplyDefaults(v, defaults)
	return xviper.Configure(v, xviper.StdOptions(applicationName, fs), xviper.ReadInConfig(false))
}

// unmarshalConfig decodes and checks the configuration
func unmarshalConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := xviper.Unmarshal(v, &c); err != nil {
		return Config{}, err
	}

	switch c.Study.Driver {
	case MemoryDriver, PostgresDriver:
	default:
		return Config{}, errors.Errorf("unsupported study driver: %q", c.Study.Driver)
	}

	return c, nil
}

func loadConfig(fs *pflag.FlagSet) (Config, error) {
	v, err := newViper(fs)
	if err != nil {
		return Config{}, err
	}

	return unmarshalConfig(v)
}

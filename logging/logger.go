// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"

	"github.com/pkg/errors"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// DefaultLevel is the level used when configuration does not name one
	DefaultLevel = "info"

	// DefaultEncoding is the zap encoding used when configuration does not name one
	DefaultEncoding = "json"
)

// DefaultConfig returns the sallust configuration used when no logging section is configured:
// JSON to stdout at info level.
func DefaultConfig() sallust.Config {
	return sallust.Config{
		Level:            DefaultLevel,
		Encoding:         DefaultEncoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// New builds a zap Logger from a sallust configuration, filling in defaults for
// any blank level, encoding, or output.  The returned logger is named after the application.
func New(applicationName string, c sallust.Config) (*zap.Logger, error) {
	defaults := DefaultConfig()
	if len(c.Level) == 0 {
		c.Level = defaults.Level
	}

	if len(c.Encoding) == 0 {
		c.Encoding = defaults.Encoding
	}

	if len(c.OutputPaths) == 0 {
		c.OutputPaths = defaults.OutputPaths
	}

	if len(c.ErrorOutputPaths) == 0 {
		c.ErrorOutputPaths = defaults.ErrorOutputPaths
	}

	logger, err := c.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	if len(applicationName) > 0 {
		logger = logger.Named(applicationName)
	}

	return logger, nil
}

// GetLogger returns the request-scoped logger from the context, or the default logger
// if none was placed there.
func GetLogger(ctx context.Context) *zap.Logger {
	return sallust.Get(ctx)
}

// WithLogger places a logger into the context for downstream code to retrieve with GetLogger
func WithLogger(parent context.Context, logger *zap.Logger) context.Context {
	return sallust.With(parent, logger)
}

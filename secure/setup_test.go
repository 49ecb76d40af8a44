// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/cama/clock"
	"github.com/xmidt-org/cama/xmetrics"
)

var testStart = time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		SigningKey: "test-signing-key",
		Issuer:     "cama-test",
	}
}

func newTestRegistry(t *testing.T) *xmetrics.Registry {
	r, err := xmetrics.NewRegistry(
		xmetrics.Options{Pedantic: true, DisableGoCollector: true, DisableProcessCollector: true},
		Metrics,
	)

	require.NoError(t, err)
	return r
}

func newTestIssuer(t *testing.T, o Options) (*Issuer, *clock.Manual, *xmetrics.Registry) {
	var (
		c = clock.NewManual(testStart)
		r = newTestRegistry(t)
	)

	i, err := NewIssuer(o, c, NewMeasures(r))
	require.NoError(t, err)
	require.NotNil(t, i)
	return i, c, r
}

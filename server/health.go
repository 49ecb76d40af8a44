// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"sync"

	"github.com/xmidt-org/cama/health"
	"go.uber.org/fx"
)

// BindHealth runs the health monitor for the life of the application
func BindHealth(lc fx.Lifecycle, h *health.Health) {
	var (
		waitGroup sync.WaitGroup
		shutdown  = make(chan struct{})
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return h.Run(&waitGroup, shutdown)
		},
		OnStop: func(ctx context.Context) error {
			close(shutdown)

			done := make(chan struct{})
			go func() {
				waitGroup.Wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

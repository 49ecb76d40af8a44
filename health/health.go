// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/xmidt-org/cama/httperror"
	"github.com/xmidt-org/cama/xhttp"
	"go.uber.org/zap"
)

const DefaultInterval = 15 * time.Second

// StatsListener receives Stats on regular intervals.
type StatsListener interface {
	// OnStats is called with a copy of the health's stats map
	// at regular intervals.
	OnStats(Stats)
}

// StatsListenerFunc is a function type that implements StatsListener.
type StatsListenerFunc func(Stats)

func (f StatsListenerFunc) OnStats(stats Stats) {
	f(stats)
}

// Health is the central type of this package.  It defines and endpoint for tracking
// and updating various statistics.  It also dispatches events to one or more StatsListeners
// at regular intervals.
type Health struct {
	stats            Stats
	statDumpInterval time.Duration
	logger           *zap.Logger
	events           chan HealthFunc
	statsListeners   []StatsListener
	once             sync.Once
}

// New creates a Health object with the given statistics.  A nonpositive interval
// is replaced with DefaultInterval.
func New(interval time.Duration, logger *zap.Logger, options ...Option) *Health {
	if interval <= 0 {
		interval = DefaultInterval
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Health{
		stats:            NewStats(options),
		statDumpInterval: interval,
		logger:           logger,
		events:           make(chan HealthFunc, 100),
	}
}

// AddStatsListener adds a new listener to this Health.  This method
// is asynchronous.  The listener will eventually receive events, but callers
// should not assume events will be dispatched immediately after this method call.
func (h *Health) AddStatsListener(listener StatsListener) {
	h.SendEvent(func(Stats) {
		h.statsListeners = append(h.statsListeners, listener)
	})
}

// SendEvent dispatches a HealthFunc to the internal event queue
func (h *Health) SendEvent(healthFunc HealthFunc) {
	h.events <- healthFunc
}

// Run executes this Health object.  This method is idempotent:  once a
// Health object is Run, it cannot be Run again.  The event goroutine exits
// when shutdown is closed.
func (h *Health) Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
	h.once.Do(func() {
		h.logger.Debug("health monitor started", zap.Duration("interval", h.statDumpInterval))

		waitGroup.Add(1)
		go func() {
			ticker := time.NewTicker(h.statDumpInterval)

			defer waitGroup.Done()
			defer h.logger.Debug("health monitor stopped")
			defer ticker.Stop()

			for {
				select {
				case <-shutdown:
					return

				case hf := <-h.events:
					hf(h.stats)

				case <-ticker.C:
					h.stats.UpdateMemory(MemInfoPath)
					dispatchStats := h.stats.Clone()
					for _, statsListener := range h.statsListeners {
						statsListener.OnStats(dispatchStats)
					}
				}
			}
		}()
	})

	return nil
}

// Snapshot returns a copy of the current stats with refreshed memory figures.  This
// method blocks until the event goroutine services the request.
func (h *Health) Snapshot() Stats {
	result := make(chan Stats, 1)
	h.SendEvent(func(stats Stats) {
		stats.UpdateMemory(MemInfoPath)
		result <- stats.Clone()
	})

	return <-result
}

// ServeHTTP writes the current stats as a JSON object
func (h *Health) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	stats := h.Snapshot()
	response.Header().Set("Content-Type", httperror.ContentType)
	if err := json.NewEncoder(response).Encode(stats); err != nil {
		h.logger.Error("could not write stats", zap.Error(err))
	}
}

// RequestTracker decorates a handler so that every request updates the request stats.
// A panicking delegate is counted as denied and answered with a 500.
func (h *Health) RequestTracker(delegate http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		h.SendEvent(Inc(TotalRequestsReceived, 1))
		wrapped := xhttp.WrapResponseWriter(response)

		defer func() {
			if r := recover(); r != nil {
				h.logger.Error("delegate handler panicked", zap.Any("panic", r))
				h.SendEvent(Inc(TotalRequestsDenied, 1))
				httperror.WriteMessage(wrapped, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError, nil)
				return
			}

			if wrapped.StatusCode() < http.StatusBadRequest {
				h.SendEvent(Inc(TotalRequestsSuccessfullyServiced, 1))
			} else {
				h.SendEvent(Inc(TotalRequestsDenied, 1))
			}
		}()

		delegate.ServeHTTP(wrapped, request)
	})
}

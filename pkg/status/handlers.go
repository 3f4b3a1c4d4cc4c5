// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	httptypes "github.com/canonical/event-crm/internal/http/types"
	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/internal/monitoring"
	"github.com/canonical/event-crm/internal/tracing"
	"github.com/canonical/event-crm/internal/version"
)

const (
	checkTimeout = 3 * time.Second
	serviceName  = "event-crm"
)

type API struct {
	checkers map[string]HealthChecker

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(checkers map[string]HealthChecker, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	if checkers == nil {
		checkers = map[string]HealthChecker{}
	}

	return &API{
		checkers: checkers,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/status", a.alive)
	mux.Get("/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	info := &BuildInfo{Version: version.Version, Name: serviceName}
	if commit := commitHash(); commit != "" {
		info.CommitHash = commit
	}

	if err := httptypes.WriteJSON(w, http.StatusOK, Status{Status: StatusOK, BuildInfo: info}); err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}

// ready pings every dependency concurrently and fails when any of them does.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	names := make([]string, 0, len(a.checkers))
	for name := range a.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu     sync.Mutex
		checks = make(map[string]string, len(names))
	)

	g := new(errgroup.Group)
	for _, name := range names {
		checker := a.checkers[name]
		g.Go(func() error {
			err := checker.Ping(ctx)

			result, available := StatusOK, 1.0
			if err != nil {
				a.logger.Errorf("dependency %s is not ready: %v", name, err)
				result, available = StatusFailing, 0.0
			}

			if merr := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); merr != nil {
				a.logger.Debugf("failed to record availability of %s: %v", name, merr)
			}

			mu.Lock()
			checks[name] = result
			mu.Unlock()

			return err
		})
	}

	readiness := Readiness{Status: StatusOK, Checks: checks}
	code := http.StatusOK

	if err := g.Wait(); err != nil {
		readiness.Status = StatusFailing
		code = http.StatusServiceUnavailable
	}

	if err := httptypes.WriteJSON(w, code, readiness); err != nil {
		a.logger.Errorf("failed to encode readiness: %v", err)
	}
}

func commitHash() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return ""
}

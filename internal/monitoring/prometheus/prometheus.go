// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/event-crm/internal/logging"
)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	histograms := make(map[string]*prometheus.HistogramVec)

	histograms["responseTime"] = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	for k, v := range histograms {
		if err := prometheus.Register(v); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				m.logger.Errorf("metric %s could not be registered: %s", k, err)
				continue
			}
			v = are.ExistingCollector.(*prometheus.HistogramVec)
		}

		if k == "responseTime" {
			m.responseTime = v
		}
	}
}

func (m *Monitor) registerGauges() {
	gauges := make(map[string]*prometheus.GaugeVec)

	gauges["dependencyAvailability"] = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	for k, v := range gauges {
		if err := prometheus.Register(v); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				m.logger.Errorf("metric %s could not be registered: %s", k, err)
				continue
			}
			v = are.ExistingCollector.(*prometheus.GaugeVec)
		}

		if k == "dependencyAvailability" {
			m.dependencyAvailability = v
		}
	}
}

// NewMonitor creates a Prometheus backed monitor and registers its
// collectors on the default registry.
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}

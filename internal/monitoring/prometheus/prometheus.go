// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/inventory-service/internal/logging"
	"github.com/canonical/inventory-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime         *prometheus.HistogramVec
	dependencyAvailabity *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}

	h, err := m.responseTime.GetMetricWith(labels)
	if err != nil {
		return err
	}

	h.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailabity == nil {
		return fmt.Errorf("metric not instantiated")
	}

	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}

	g, err := m.dependencyAvailabity.GetMetricWith(labels)
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "http_response_time_seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status", "service"},
	)

	m.responseTime = register(histogram, m.logger)
}

func (m *Monitor) registerGauges() {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)

	m.dependencyAvailabity = register(gauge, m.logger)
}

// register returns the already registered collector when one with the same
// descriptor exists, so monitors can be built more than once per process
func register[T prometheus.Collector](c T, logger logging.LoggerInterface) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}

	logger.Errorf("failed to register collector: %v", err)
	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}

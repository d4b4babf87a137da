// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/inventory-service/internal/logging"
)

func TestMonitorCanBeCreatedTwice(t *testing.T) {
	first := NewMonitor("inventory-service", logging.NewNoopLogger())
	second := NewMonitor("inventory-service", logging.NewNoopLogger())

	if first.responseTime != second.responseTime {
		t.Errorf("expected the histogram to be shared between monitors")
	}
}

func TestSetDependencyAvailability(t *testing.T) {
	m := NewMonitor("inventory-service", logging.NewNoopLogger())

	if err := m.SetDependencyAvailability(map[string]string{"component": "postgres"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value := testutil.ToFloat64(m.dependencyAvailabity.WithLabelValues("postgres", "inventory-service"))
	if value != 1 {
		t.Errorf("expected gauge value 1, got %v", value)
	}
}

func TestSetResponseTimeMetricRejectsUnknownLabels(t *testing.T) {
	m := NewMonitor("inventory-service", logging.NewNoopLogger())

	err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "200", "unknown": "x"}, 0.1)
	if err == nil {
		t.Errorf("expected an error for an unknown label")
	}
}

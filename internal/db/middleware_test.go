// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/inventory-service/internal/logging"
)

type recordingRunner struct {
	calls int
	err   error
}

func (r *recordingRunner) WithTx(ctx context.Context, fn func(context.Context) error) error {
	r.calls++
	r.err = fn(ctx)
	return r.err
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		status        int
		expectedCalls int
		expectFailure bool
	}{
		{name: "GET skips the transaction", method: http.MethodGet, status: http.StatusOK, expectedCalls: 0},
		{name: "HEAD skips the transaction", method: http.MethodHead, status: http.StatusOK, expectedCalls: 0},
		{name: "POST success commits", method: http.MethodPost, status: http.StatusOK, expectedCalls: 1},
		{name: "PATCH conflict rolls back", method: http.MethodPatch, status: http.StatusConflict, expectedCalls: 1, expectFailure: true},
		{name: "DELETE internal error rolls back", method: http.MethodDelete, status: http.StatusInternalServerError, expectedCalls: 1, expectFailure: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			runner := new(recordingRunner)

			handler := TransactionMiddleware(runner, logging.NewNoopLogger())(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(test.status)
				}),
			)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(test.method, "/api/v0/devices", nil))

			if w.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, w.Code)
			}

			if runner.calls != test.expectedCalls {
				t.Fatalf("expected %d transactions, got %d", test.expectedCalls, runner.calls)
			}

			if test.expectFailure != (runner.err != nil) {
				t.Errorf("unexpected transaction result: %v", runner.err)
			}

			if runner.err != nil && !errors.Is(runner.err, errRequestFailed) {
				t.Errorf("expected a request failure, got %v", runner.err)
			}
		})
	}
}

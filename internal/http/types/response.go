// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"

	"github.com/canonical/inventory-service/internal/result"
)

// HTTPStatusFromKind maps an error kind onto the status code written next to the envelope.
// The envelope itself carries no code, clients keep branching on success only.
func HTTPStatusFromKind(kind result.Kind) int {
	switch kind {
	case result.KindValidationError:
		return http.StatusBadRequest
	case result.KindAccessDenied:
		return http.StatusForbidden
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindConflict:
		return http.StatusConflict
	case result.KindInvalidOperation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteResult renders (data, err) as the {success, data, message} envelope.
func WriteResult[T any](w http.ResponseWriter, data T, err error, message string) {
	status := http.StatusOK
	if err != nil {
		status = HTTPStatusFromKind(result.KindOf(err))
	}

	WriteJSON(w, status, result.From(data, err, message))
}

// WriteError renders a failed envelope with no data.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, HTTPStatusFromKind(result.KindOf(err)), result.Fail[any](err))
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

const maxBodyBytes = 1 << 20

// DecodeJSON reads a single JSON document from the request body into dst.
// Malformed bodies are reported as validation errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return result.NewValidationError("Invalid JSON body: " + err.Error())
	}

	if dec.More() {
		return result.NewValidationError("Invalid JSON body: unexpected extra content.")
	}

	return nil
}

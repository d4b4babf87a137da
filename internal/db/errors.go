// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import "errors"

var errRequestFailed = errors.New("request failed")

func isRequestFailure(err error) bool {
	return errors.Is(err, errRequestFailed)
}

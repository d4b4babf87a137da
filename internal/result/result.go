// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package result

// Result is the uniform envelope returned by every operation exposed to callers.
// Callers branch on Success only, Message is meant to be displayed verbatim.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func OK[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func Fail[T any](err error) Result[T] {
	var zero T
	return Result[T]{Success: false, Data: zero, Message: MessageOf(err)}
}

// From folds the (value, error) pair returned by an engine into the envelope.
func From[T any](data T, err error, message string) Result[T] {
	if err != nil {
		return Fail[T](err)
	}

	return OK(data, message)
}

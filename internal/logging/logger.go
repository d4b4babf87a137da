// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

const securityEventType = "security"

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

// AuthzFailure records a denied request, user is the requester id and resource
// describes what was being accessed.
func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", "authz_fail:"+user+","+resource),
		zap.String("user", user),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(user, action, resource string) {
	s.l.Info(
		"administrative action",
		zap.String("event", "admin_action:"+user+","+action+","+resource),
		zap.String("user", user),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	var lvl string

	switch strings.ToLower(l) {
	case "debug":
		lvl = "debug"
	case "info":
		lvl = "info"
	case "warning", "warn":
		lvl = "warn"
	default:
		lvl = "error"
	}

	rawJSON := []byte(
		`{
			"level": "` + lvl + `",
			"encoding": "json",
			"outputPaths": ["stdout"],
			"errorOutputPaths": ["stderr"],
			"encoderConfig": {
				"messageKey": "message",
				"levelKey": "severity",
				"levelEncoder": "lowercase",
				"timeKey": "@timestamp",
				"timeEncoder": "rfc3339nano",
				"callerKey": "caller",
				"callerEncoder": "short"
			}
		}`,
	)

	var config zap.Config
	if err := json.Unmarshal(rawJSON, &config); err != nil {
		panic(err)
	}

	logger := zap.Must(config.Build())

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security: &SecurityLogger{
			l: logger.With(zap.String("type", securityEventType)),
		},
	}
}

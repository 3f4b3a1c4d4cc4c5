// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventAuthnFailure   = "authn_login_fail"
	eventAuthzFailure   = "authz_fail"
	eventAdminAction    = "admin_action"
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
)

type SecurityLogger struct {
	l *zap.Logger
}

// AuthnFailure records a rejected session. attrs are key/value pairs.
func (s *SecurityLogger) AuthnFailure(reason string, attrs ...string) {
	fields := []zap.Field{
		zap.String("event", eventAuthnFailure),
		zap.String("reason", reason),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		fields = append(fields, zap.String(attrs[i], attrs[i+1]))
	}

	s.l.Warn("authentication failure", fields...)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", eventAuthzFailure+":"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(actorID, action, target string) {
	s.l.Info(
		"administrative action",
		zap.String("event", eventAdminAction+":"+actorID+","+action),
		zap.String("actor_id", actorID),
		zap.String("action", action),
		zap.String("target", target),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", eventSystemShutdown))
}

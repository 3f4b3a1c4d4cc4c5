// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits structured security events, kept apart
// from the application log stream so they can be shipped to an audit sink.
type SecurityLoggerInterface interface {
	AuthnFailure(reason string, attrs ...string)
	AuthzFailure(userID, resource string)
	AdminAction(actorID, action, target string)
	SystemStartup()
	SystemShutdown()
}

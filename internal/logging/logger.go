// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Desugar().Sync()
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

	logLevel, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		logLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	c := zap.Config{
		Level:             logLevel,
		Encoding:          "json",
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "@timestamp",
			LevelKey:       "log.level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
	}

	base := zap.Must(c.Build())

	// security events are emitted whatever the configured level
	sc := c
	sc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	logger := new(Logger)
	logger.SugaredLogger = base.Sugar()
	logger.security = &SecurityLogger{l: zap.Must(sc.Build()).Named("security")}

	logger.Debugf("Logging level set to %s", lvl)

	return logger
}

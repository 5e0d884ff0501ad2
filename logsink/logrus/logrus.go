// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package llogrus provides a logr.LogSink that writes to a logrus logger.
package llogrus

import (
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/gldispatch/logsink/internal"
)

type sink struct {
	entry *logrus.Entry
	name  string
}

var _ logr.LogSink = (*sink)(nil)

// NewSink returns a sink that writes to l. The logger name is recorded in
// the "logger" field.
func NewSink(l *logrus.Logger) logr.LogSink {
	return &sink{entry: logrus.NewEntry(l)}
}

// New returns a logger that writes to l.
func New(l *logrus.Logger) logr.Logger {
	return logr.New(NewSink(l))
}

func (s *sink) Init(logr.RuntimeInfo) {}

// logrusLevel maps V(0) to Info, V(1) to Debug and anything more verbose
// to Trace.
func logrusLevel(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.InfoLevel
	case v == 1:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}

func (s *sink) Enabled(level int) bool {
	return s.entry.Logger.IsLevelEnabled(logrusLevel(level))
}

func (s *sink) Info(level int, msg string, keysAndValues ...any) {
	s.with(keysAndValues).Log(logrusLevel(level), msg)
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	s.with(keysAndValues).WithError(err).Error(msg)
}

func (s *sink) with(keysAndValues []any) *logrus.Entry {
	fs := fields(keysAndValues)
	if s.name != "" {
		fs[internal.NameKey] = s.name
	}
	return s.entry.WithFields(fs)
}

func fields(keysAndValues []any) logrus.Fields {
	fs := make(logrus.Fields, len(keysAndValues)/2+1)
	internal.Pairs(keysAndValues, func(k string, v any) { fs[k] = v })
	return fs
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	s2 := *s
	s2.entry = s.entry.WithFields(fields(keysAndValues))
	return &s2
}

func (s *sink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = internal.JoinName(s.name, name)
	return &s2
}

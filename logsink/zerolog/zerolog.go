// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzerolog provides a logr.LogSink that writes to a zerolog logger.
//
// Filtering is left to the zerolog logger's level: V(0) writes at Info,
// V(1) at Debug and higher verbosities at Trace.
package lzerolog

import (
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
	"golang.org/x/exp/gldispatch/logsink/internal"
)

type sink struct {
	l    zerolog.Logger
	name string
}

var _ logr.LogSink = (*sink)(nil)

// NewSink returns a sink that writes to l. The logger name is recorded in
// the "logger" field.
func NewSink(l zerolog.Logger) logr.LogSink {
	return &sink{l: l}
}

// New returns a logger that writes to l.
func New(l zerolog.Logger) logr.Logger {
	return logr.New(NewSink(l))
}

func (s *sink) Init(logr.RuntimeInfo) {}

func zerologLevel(v int) zerolog.Level {
	switch {
	case v <= 0:
		return zerolog.InfoLevel
	case v == 1:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}

func (s *sink) Enabled(int) bool { return true }

func (s *sink) Info(level int, msg string, keysAndValues ...any) {
	s.write(s.l.WithLevel(zerologLevel(level)), msg, keysAndValues)
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	s.write(s.l.Error().Err(err), msg, keysAndValues)
}

// write adds the name and keysAndValues to e and sends it. e is nil when
// its level is disabled.
func (s *sink) write(e *zerolog.Event, msg string, keysAndValues []any) {
	if e == nil {
		return
	}
	if s.name != "" {
		e = e.Str(internal.NameKey, s.name)
	}
	internal.Pairs(keysAndValues, func(k string, v any) {
		e = e.Interface(k, v)
	})
	e.Msg(msg)
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	ctx := s.l.With()
	internal.Pairs(keysAndValues, func(k string, v any) {
		ctx = ctx.Interface(k, v)
	})
	return &sink{l: ctx.Logger(), name: s.name}
}

func (s *sink) WithName(name string) logr.LogSink {
	return &sink{l: s.l, name: internal.JoinName(s.name, name)}
}

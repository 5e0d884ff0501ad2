// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzap provides a logr.LogSink that writes to a zap logger.
//
// logr verbosity V(n) maps to zap level -n, so V(0) is Info and V(1),
// where the gl package writes its debug call traces, is Debug.
package lzap

import (
	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/gldispatch/logsink/internal"
)

type sink struct {
	l *zap.Logger
}

var _ logr.LogSink = (*sink)(nil)

// NewSink returns a sink that writes to l.
func NewSink(l *zap.Logger) logr.LogSink {
	return &sink{l: l}
}

// New returns a logger that writes to l.
func New(l *zap.Logger) logr.Logger {
	return logr.New(NewSink(l))
}

func (s *sink) Init(info logr.RuntimeInfo) {
	s.l = s.l.WithOptions(zap.AddCallerSkip(info.CallDepth))
}

func zapLevel(v int) zapcore.Level {
	return zapcore.Level(-v)
}

func (s *sink) Enabled(level int) bool {
	return s.l.Core().Enabled(zapLevel(level))
}

func (s *sink) Info(level int, msg string, keysAndValues ...any) {
	if ce := s.l.Check(zapLevel(level), msg); ce != nil {
		ce.Write(fields(keysAndValues)...)
	}
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	s.l.Error(msg, append(fields(keysAndValues), zap.Error(err))...)
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	return &sink{l: s.l.With(fields(keysAndValues)...)}
}

func (s *sink) WithName(name string) logr.LogSink {
	return &sink{l: s.l.Named(name)}
}

func fields(keysAndValues []any) []zap.Field {
	fs := make([]zap.Field, 0, len(keysAndValues)/2+1)
	internal.Pairs(keysAndValues, func(k string, v any) {
		fs = append(fs, zap.Any(k, v))
	})
	return fs
}

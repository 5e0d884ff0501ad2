// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lgokit provides a logr.LogSink that writes to a go-kit logger.
//
// Records carry a go-kit level: V(0) is info and more verbose calls are
// debug. Wrap the logger with level.NewFilter to drop debug call traces.
package lgokit

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-logr/logr"
	"golang.org/x/exp/gldispatch/logsink/internal"
)

type sink struct {
	l    log.Logger
	name string
}

var _ logr.LogSink = (*sink)(nil)

// NewSink returns a sink that writes to l.
func NewSink(l log.Logger) logr.LogSink {
	return &sink{l: l}
}

// New returns a logger that writes to l.
func New(l log.Logger) logr.Logger {
	return logr.New(NewSink(l))
}

func (s *sink) Init(logr.RuntimeInfo) {}

func (s *sink) Enabled(int) bool { return true }

func (s *sink) Info(lvl int, msg string, keysAndValues ...any) {
	l := level.Info(s.l)
	if lvl > 0 {
		l = level.Debug(s.l)
	}
	l.Log(s.keyvals(msg, nil, keysAndValues)...)
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	level.Error(s.l).Log(s.keyvals(msg, err, keysAndValues)...)
}

func (s *sink) keyvals(msg string, err error, keysAndValues []any) []any {
	kvs := make([]any, 0, len(keysAndValues)+6)
	if s.name != "" {
		kvs = append(kvs, internal.NameKey, s.name)
	}
	kvs = append(kvs, "msg", msg)
	if err != nil {
		kvs = append(kvs, "err", err)
	}
	internal.Pairs(keysAndValues, func(k string, v any) {
		kvs = append(kvs, k, v)
	})
	return kvs
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	var kvs []any
	internal.Pairs(keysAndValues, func(k string, v any) {
		kvs = append(kvs, k, v)
	})
	return &sink{l: log.With(s.l, kvs...), name: s.name}
}

func (s *sink) WithName(name string) logr.LogSink {
	return &sink{l: s.l, name: internal.JoinName(s.name, name)}
}

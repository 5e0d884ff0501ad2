// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"context"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/gldispatch/config"
)

// An Option configures a Facade.
type Option func(*Facade)

// WithRegistry resolves backend names in r instead of DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(f *Facade) { f.registry = r }
}

// WithConfig uses cfg instead of the environment configuration. cfg is
// read on every Use, so changes to it apply to the next selection.
func WithConfig(cfg *config.Config) Option {
	return func(f *Facade) { f.cfg = cfg }
}

// WithLogger sets the logger. Backend selection is logged at V(0) and
// debug call traces at V(1). By default nothing is logged.
func WithLogger(l logr.Logger) Option {
	return func(f *Facade) { f.log = l }
}

// WithTracerProvider makes debug mode record a span for every GL call.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(f *Facade) { f.tracer = tp.Tracer(tracerName) }
}

// WithContext sets the parent context of debug spans.
func WithContext(ctx context.Context) Option {
	return func(f *Facade) { f.ctx = ctx }
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"context"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/xerrors"
)

const tracerName = "golang.org/x/exp/gldispatch/gl"

// A Facade exposes one stable GL namespace backed by whichever backend was
// last selected with Use.
//
// A Facade is not safe for concurrent use. GL contexts are bound to a
// single thread, and Use must not run while other calls are in flight.
type Facade struct {
	registry *Registry
	cfg      *config.Config
	log      logr.Logger
	tracer   trace.Tracer
	ctx      context.Context

	backend  Backend
	ns       *Namespace
	allow    map[string]bool
	proxy    Proxy
	debugFns Table
	debug    bool
}

// New returns a facade with no backend selected. Its namespace already
// holds the ES 2.0 constants; its functions return ErrNoBackend until
// Use succeeds.
func New(opts ...Option) *Facade {
	f := &Facade{
		registry: DefaultRegistry,
		log:      logr.Discard(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.cfg == nil {
		cfg, err := config.FromEnv()
		if err != nil {
			f.log.Error(err, "ignoring environment configuration")
			cfg = config.Default()
		}
		f.cfg = cfg
	}
	if f.tracer == nil {
		f.tracer = trace.NewNoopTracerProvider().Tracer(tracerName)
	}
	f.ns = newNamespace()
	f.ns.copyFrom(ES2, true, nil)
	f.allow = allowList(ES2)
	f.proxy = directProxy{f}
	f.debugFns = proxyTable(debugProxy{f}, es2Functions)
	return f
}

// Use selects the backend named by target and rebuilds the namespace.
//
// The target is a backend name optionally followed by a space and
// options; the only option is "debug", which logs every call and checks
// for GL errors after it. A "+" in the name is read as "plus", so "gl+"
// selects the extended "glplus" backend. Extended backends expose their
// whole API and constants and are never instrumented. An empty target
// selects the configured default. Debug instrumentation is also enabled
// by the configuration's Debug setting.
//
// On failure Use returns a *ConfigError and the previous backend remains
// selected.
func (f *Facade) Use(target string) error {
	if target == "" {
		target = f.cfg.Target
	}
	if target == "" {
		target = config.DefaultTarget
	}
	target = strings.ReplaceAll(target, "+", "plus")
	name, options, _ := strings.Cut(target, " ")
	debug := f.cfg.Debug || hasOption(options, "debug")
	extended := strings.Contains(name, "plus")

	b, err := f.registry.Open(name, f.cfg)
	if err != nil {
		return &ConfigError{Target: name, Err: err}
	}
	if err := validate(b, extended); err != nil {
		closeBackend(b)
		return &ConfigError{Target: name, Err: err}
	}

	prev := f.backend
	f.backend = b
	f.ns.clear(f.allow)
	switch {
	case extended:
		if x, ok := b.(Extended); ok {
			f.ns.copyFrom(x.ES2(), false, nil)
		}
		f.ns.copyFrom(b, true, nil)
		f.proxy = directProxy{f}
	case debug:
		f.ns.copyFrom(f.debugFns, false, f.allow)
		f.proxy = debugProxy{f}
	default:
		// Constants stay from the reference table loaded by New.
		f.ns.copyFrom(b, false, f.allow)
		f.proxy = directProxy{f}
	}
	f.debug = debug && !extended
	f.log.Info("using GL backend", "backend", name, "debug", f.debug)

	if prev != nil && !sameBackend(prev, b) {
		closeBackend(prev)
	}
	return nil
}

func hasOption(options, opt string) bool {
	for _, o := range strings.Fields(options) {
		if o == opt {
			return true
		}
	}
	return false
}

// validate checks that b, together with its ES 2.0 table when extended,
// defines every canonical function.
func validate(b Backend, extended bool) error {
	src := Source(b)
	if x, ok := b.(Extended); ok && extended {
		merged := make(Table)
		for name, v := range x.ES2().Symbols() {
			merged[name] = v
		}
		for name, v := range b.Symbols() {
			merged[name] = v
		}
		src = merged
	}
	missing := missingFunctions(ES2, src)
	if len(missing) == 0 {
		return nil
	}
	const show = 5
	list := missing
	if len(list) > show {
		list = list[:show]
	}
	return xerrors.Errorf("%d missing, including %s: %w", len(missing), strings.Join(list, ", "), ErrMissingFunctions)
}

func sameBackend(a, b Backend) bool {
	ta := reflect.TypeOf(a)
	return ta == reflect.TypeOf(b) && ta.Comparable() && a == b
}

func closeBackend(b Backend) {
	if c, ok := b.(io.Closer); ok {
		c.Close()
	}
}

// Call calls the function stored under name in the namespace.
func (f *Facade) Call(name string, args ...any) (any, error) {
	fn, ok := f.ns.Function(name)
	if !ok {
		return nil, xerrors.Errorf("%s: %w", name, ErrUnknownFunction)
	}
	return fn.Call(args...)
}

// Constant returns the GL_ constant stored under name.
func (f *Facade) Constant(name string) (Enum, bool) {
	return f.ns.Constant(name)
}

// MustConstant is like Constant but panics if name is not defined.
func (f *Facade) MustConstant(name string) Enum {
	e, ok := f.ns.Constant(name)
	if !ok {
		panic("gl: undefined constant " + name)
	}
	return e
}

// Namespace returns the facade's namespace. It is rebuilt in place by Use,
// so callers should look functions up by name rather than keep them.
func (f *Facade) Namespace() *Namespace { return f.ns }

// Backend returns the selected backend, or nil before the first Use.
func (f *Facade) Backend() Backend { return f.backend }

// Proxy returns the call strategy chosen by the last Use: a debug proxy
// when instrumentation is enabled, a direct one otherwise.
func (f *Facade) Proxy() Proxy { return f.proxy }

// Debug reports whether calls are logged and checked for errors.
func (f *Facade) Debug() bool { return f.debug }

// Close deselects the current backend and closes it if it holds
// resources. The namespace is reset to the reference functions, so calls
// fail with ErrNoBackend until Use selects a backend again.
func (f *Facade) Close() error {
	b := f.backend
	if b == nil {
		return nil
	}
	f.backend = nil
	f.ns.clear(f.allow)
	f.ns.copyFrom(ES2, true, nil)
	f.proxy = directProxy{f}
	f.debug = false
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (f *Facade) backendFunction(name string) (*Function, error) {
	if f.backend == nil {
		return nil, ErrNoBackend
	}
	fn, ok := f.backend.Symbols()[name].(*Function)
	if !ok {
		return nil, xerrors.Errorf("%s: backend %q: %w", name, f.backend.Name(), ErrUnknownFunction)
	}
	return fn, nil
}

// CheckError drains the GL error queue through the namespace's glGetError
// and returns an *Error listing the codes found, or nil if there were
// none. when is reported in the error and defaults to "periodic check".
//
// Draining stops at GL_NO_ERROR, or when the same code is reported twice
// in a row, since some drivers never clear their error flag.
func (f *Facade) CheckError(when string) error {
	if when == "" {
		when = "periodic check"
	}
	getError, ok := f.ns.Function("glGetError")
	if !ok {
		return xerrors.Errorf("glGetError: %w", ErrUnknownFunction)
	}
	var errs []Enum
	for {
		v, err := getError.Call()
		if err != nil {
			return err
		}
		code, ok := toEnum(v)
		if !ok {
			return xerrors.Errorf("glGetError returned %T, not an error code", v)
		}
		if code == NO_ERROR || (len(errs) > 0 && code == errs[len(errs)-1]) {
			break
		}
		errs = append(errs, code)
	}
	if len(errs) == 0 {
		return nil
	}
	return &Error{When: when, Errors: errs, Err: errs[len(errs)-1]}
}

var (
	stdOnce sync.Once
	std     *Facade
)

// Std returns the process-wide facade used by the package-level functions.
// It is created on first use with the environment configuration.
func Std() *Facade {
	stdOnce.Do(func() { std = New() })
	return std
}

// Use selects a backend for the process-wide facade.
func Use(target string) error { return Std().Use(target) }

// Call calls a function of the process-wide facade.
func Call(name string, args ...any) (any, error) { return Std().Call(name, args...) }

// CheckError drains the GL error queue of the process-wide facade.
func CheckError(when string) error { return Std().CheckError(when) }

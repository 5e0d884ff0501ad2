// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// A Proxy invokes GL functions of a facade's current backend by name.
// Because the backend is resolved on every call, a Proxy keeps working
// across backend switches.
type Proxy interface {
	// Invoke calls the function name with args. returns reports whether the
	// function produces a value.
	Invoke(name string, returns bool, args ...any) (any, error)
}

// directProxy forwards calls without logging or error checking.
type directProxy struct {
	f *Facade
}

func (p directProxy) Invoke(name string, returns bool, args ...any) (any, error) {
	fn, err := p.f.backendFunction(name)
	if err != nil {
		return nil, err
	}
	return fn.Call(args...)
}

// debugProxy logs every call and its result, then drains the backend's
// error queue.
type debugProxy struct {
	f *Facade
}

func (p debugProxy) Invoke(name string, returns bool, args ...any) (any, error) {
	fn, err := p.f.backendFunction(name)
	if err != nil {
		return nil, err
	}
	// The error checker calls glGetError through this proxy.
	if name == "glGetError" {
		return fn.Call(args...)
	}

	reprs := make([]string, len(args))
	for i, a := range args {
		reprs[i] = argRepr(a)
	}
	argstr := strings.Join(reprs, ", ")
	log := p.f.log.V(1)
	log.Info(name + "(" + argstr + ")")

	_, span := p.f.tracer.Start(p.f.ctx, name, trace.WithAttributes(attribute.String("gl.args", argstr)))
	defer span.End()

	ret, err := fn.Call(args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if returns {
		log.Info(" <= " + repr(ret))
	}
	if err := p.f.CheckError(name); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return ret, nil
}

// proxyTable returns a table whose functions named by sigs call p.
func proxyTable(p Proxy, sigs []Signature) Table {
	t := make(Table, len(sigs))
	for _, sig := range sigs {
		sig := sig
		t.Add(&Function{
			Name:    sig.Name,
			Returns: sig.Returns,
			Call: func(args ...any) (any, error) {
				return p.Invoke(sig.Name, sig.Returns, args...)
			},
		})
	}
	return t
}

// maxArgRepr bounds the length of an argument in a debug log line.
const maxArgRepr = 40

// A Shaper is an array-like value with dimensions, such as a matrix.
// Debug logs summarize long Shaper arguments by their shape.
type Shaper interface {
	Shape() []int
}

// argRepr returns a short representation of a call argument. Long
// array-like values are replaced by their shape, as in "array:3x4"; other
// long values are cut and end in "...".
func argRepr(arg any) string {
	r := repr(arg)
	if len(r) <= maxArgRepr {
		return r
	}
	if shape, ok := shapeOf(arg); ok {
		dims := make([]string, len(shape))
		for i, n := range shape {
			dims[i] = strconv.Itoa(n)
		}
		return "array:" + strings.Join(dims, "x")
	}
	cut := maxArgRepr - 3
	for cut > 0 && !utf8.RuneStart(r[cut]) {
		cut--
	}
	return r[:cut] + "..."
}

func repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	}
	return fmt.Sprintf("%v", v)
}

// shapeOf returns the dimensions of a Shaper, slice or array, following
// the first element of nested slices and arrays.
func shapeOf(v any) ([]int, bool) {
	if s, ok := v.(Shaper); ok {
		return s.Shape(), true
	}
	var shape []int
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			break
		}
		rv = rv.Index(0)
		if rv.Kind() == reflect.Interface {
			rv = rv.Elem()
		}
	}
	return shape, len(shape) > 0
}

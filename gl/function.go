// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"reflect"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// A Func calls a GL entry point with positional arguments.
type Func func(args ...any) (any, error)

// A Function is a named GL entry point.
type Function struct {
	Name string
	// Returns reports whether the entry point produces a value.
	Returns bool
	Call    Func
}

// A Source exposes GL symbols by name: *Function values under gl-prefixed
// names and Enum values under GL_-prefixed names. Backends, proxy tables
// and plain Tables all implement Source, so the facade reads them the same
// way.
type Source interface {
	Symbols() map[string]any
}

// Table is a Source backed by a plain map.
type Table map[string]any

func (t Table) Symbols() map[string]any { return t }

// Add adds fn to t under its name.
func (t Table) Add(fn *Function) { t[fn.Name] = fn }

// AddConstants adds cs to t.
func (t Table) AddConstants(cs ...Constant) {
	for _, c := range cs {
		t[c.Name] = c.Value
	}
}

// Functions returns the sorted names of the functions in src.
func Functions(src Source) []string {
	var names []string
	for name, v := range src.Symbols() {
		if _, ok := v.(*Function); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Constants returns the sorted names of the constants in src.
func Constants(src Source) []string {
	var names []string
	for name, v := range src.Symbols() {
		if _, ok := v.(Enum); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Methods wraps the methods of v named by the interface type iface as
// Functions called prefix+MethodName. Arguments are converted to the
// method's parameter types when Go allows the conversion, so an Enum
// argument is accepted where the implementation declares its own
// uint32-based enum type. Methods with more than one result return them
// as a []any.
//
// Methods panics if iface is not an interface type or v does not
// implement it.
func Methods(v any, iface reflect.Type, prefix string) Table {
	if iface.Kind() != reflect.Interface {
		panic("gl: Methods of non-interface type " + iface.String())
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().Implements(iface) {
		panic("gl: " + rv.Type().String() + " does not implement " + iface.String())
	}
	t := make(Table, iface.NumMethod())
	for i := 0; i < iface.NumMethod(); i++ {
		name := iface.Method(i).Name
		m := rv.MethodByName(name)
		t.Add(&Function{
			Name:    prefix + name,
			Returns: m.Type().NumOut() > 0,
			Call:    reflectFunc(prefix+name, m),
		})
	}
	return t
}

func reflectFunc(name string, m reflect.Value) Func {
	mt := m.Type()
	return func(args ...any) (any, error) {
		if len(args) != mt.NumIn() {
			return nil, xerrors.Errorf("%s: got %d arguments, want %d: %w", name, len(args), mt.NumIn(), ErrArgument)
		}
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			pt := mt.In(i)
			if a == nil {
				in[i] = reflect.Zero(pt)
				continue
			}
			av := reflect.ValueOf(a)
			switch {
			case av.Type().AssignableTo(pt):
				in[i] = av
			case av.Type().ConvertibleTo(pt) && convertible(av, pt.Kind()):
				in[i] = av.Convert(pt)
			default:
				return nil, xerrors.Errorf("%s: argument %d: cannot use %T as %v: %w", name, i, a, pt, ErrArgument)
			}
		}
		out := m.Call(in)
		switch len(out) {
		case 0:
			return nil, nil
		case 1:
			return out[0].Interface(), nil
		}
		res := make([]any, len(out))
		for i, o := range out {
			res[i] = o.Interface()
		}
		return res, nil
	}
}

// convertible reports whether v may be converted to a value of kind to
// without changing its meaning. Numbers do not become strings, floats do
// not become integers, and negative integers do not become unsigned.
func convertible(v reflect.Value, to reflect.Kind) bool {
	from := v.Kind()
	switch {
	case to == reflect.String:
		return from == reflect.String
	case isFloat(from):
		return isFloat(to)
	case isInt(from) && isUint(to):
		return v.Int() >= 0
	}
	return true
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// hasGLPrefix reports whether name belongs to the GL namespace, ignoring
// case: it matches both gl functions and GL_ constants.
func hasGLPrefix(name string) bool {
	return len(name) >= 2 && strings.EqualFold(name[:2], "gl")
}

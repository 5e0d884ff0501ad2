// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"sort"
	"strings"
)

// retainedNames are backend selector aliases. They share the gl prefix
// with the GL symbols but are never removed by a namespace rebuild. Nothing
// in this module stores values under them; they keep whatever a caller
// has Set there, such as its own handle on the gl2 or glplus backend.
var retainedNames = []string{"gl2", "glplus"}

// A Namespace is the set of names through which rendering code reaches
// the selected backend: *Function values under gl names and Enum values
// under GL_ names. Other values may be stored under any name.
type Namespace struct {
	syms map[string]any
}

func newNamespace() *Namespace {
	return &Namespace{syms: make(map[string]any)}
}

// Lookup returns the value stored under name.
func (ns *Namespace) Lookup(name string) (any, bool) {
	v, ok := ns.syms[name]
	return v, ok
}

// Function returns the function stored under name.
func (ns *Namespace) Function(name string) (*Function, bool) {
	fn, ok := ns.syms[name].(*Function)
	return fn, ok
}

// Constant returns the constant stored under name.
func (ns *Namespace) Constant(name string) (Enum, bool) {
	e, ok := ns.syms[name].(Enum)
	return e, ok
}

// Set stores v under name.
func (ns *Namespace) Set(name string, v any) { ns.syms[name] = v }

// Delete removes name.
func (ns *Namespace) Delete(name string) { delete(ns.syms, name) }

// Names returns every name in the namespace, sorted.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, len(ns.syms))
	for name := range ns.syms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Symbols implements Source, so a namespace can seed another.
func (ns *Namespace) Symbols() map[string]any { return ns.syms }

// clear deletes every name with a case-insensitive gl prefix that is not
// in allow.
func (ns *Namespace) clear(allow map[string]bool) {
	for name := range ns.syms {
		if hasGLPrefix(name) && !allow[name] {
			delete(ns.syms, name)
		}
	}
}

// copyFrom copies the gl functions of src into ns, and its GL_ constants
// too when constants is set. When allow is non-nil only names it contains
// are copied.
func (ns *Namespace) copyFrom(src Source, constants bool, allow map[string]bool) {
	for name, v := range src.Symbols() {
		if allow != nil && !allow[name] {
			continue
		}
		switch v := v.(type) {
		case *Function:
			if strings.HasPrefix(name, "gl") {
				ns.syms[name] = v
			}
		case Enum:
			if constants && strings.HasPrefix(name, "GL_") {
				ns.syms[name] = v
			}
		}
	}
}

// allowList returns the names a rebuild keeps: everything the reference
// source defines plus the retained aliases.
func allowList(ref Source) map[string]bool {
	allow := make(map[string]bool, len(ref.Symbols())+len(retainedNames))
	for name := range ref.Symbols() {
		allow[name] = true
	}
	for _, name := range retainedNames {
		allow[name] = true
	}
	return allow
}

// missingFunctions returns the sorted names of the reference functions
// that src does not define.
func missingFunctions(ref, src Source) []string {
	var missing []string
	syms := src.Symbols()
	for _, name := range Functions(ref) {
		if _, ok := syms[name].(*Function); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

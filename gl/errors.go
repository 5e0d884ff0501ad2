// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

var (
	// ErrUnknownBackend is wrapped by the error returned when a backend
	// name is not registered.
	ErrUnknownBackend = xerrors.New("gl: unknown backend")

	// ErrNoBackend is returned by calls made before any backend has been
	// selected.
	ErrNoBackend = xerrors.New("gl: no backend selected")

	// ErrUnknownFunction is wrapped by the error returned when a function
	// name is not in the namespace.
	ErrUnknownFunction = xerrors.New("gl: unknown function")

	// ErrArgument is wrapped by the error returned when call arguments do
	// not match the backend function.
	ErrArgument = xerrors.New("gl: bad argument")

	// ErrMissingFunctions is wrapped by the error returned when a backend
	// lacks canonical ES 2.0 functions.
	ErrMissingFunctions = xerrors.New("gl: backend is missing ES 2.0 functions")

	// ErrDummy is returned by every function of the dummy backend.
	ErrDummy = xerrors.New("gl: the dummy backend does not provide OpenGL")
)

// A ConfigError reports that a backend could not be selected.
// The previously selected backend remains current.
type ConfigError struct {
	Target string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gl: could not use gl target %q: %v", e.Target, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// An Error reports GL error codes drained from a backend.
type Error struct {
	// When describes the call or check that found the errors.
	When string
	// Errors holds the codes in the order the backend reported them.
	Errors []Enum
	// Err is the most recent code, for callers that expect a single one.
	Err Enum
}

func (e *Error) Error() string {
	names := make([]string, len(e.Errors))
	for i, code := range e.Errors {
		names[i] = errorName(code)
	}
	return fmt.Sprintf("gl: OpenGL got errors (%s): %s", e.When, strings.Join(names, ", "))
}

// Is reports whether target is an *Error with the same most recent code,
// so xerrors.Is(err, &Error{Err: INVALID_ENUM}) matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Err == e.Err
}

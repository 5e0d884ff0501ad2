// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds helpers shared by the logr sinks.
package internal

import "fmt"

// NameKey is the key under which sinks without native logger names record
// the name built by logr.Logger.WithName.
const NameKey = "logger"

// missingValue pairs a trailing key that has no value.
const missingValue = "(MISSING)"

// JoinName appends name to a logger name, separating segments with "/".
func JoinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// Pairs calls f for each key and value in keysAndValues. Keys that are not
// strings are formatted with fmt.Sprint.
func Pairs(keysAndValues []any, f func(key string, value any)) {
	for i := 0; i < len(keysAndValues); i += 2 {
		var v any = missingValue
		if i+1 < len(keysAndValues) {
			v = keysAndValues[i+1]
		}
		f(Key(keysAndValues[i]), v)
	}
}

// Key returns k as a string key.
func Key(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings consulted when a GL backend is selected.
//
// Settings come from an optional TOML file:
//
//	target = "gl2"
//	gl_debug = true
//
// and are overridden by the environment variables GLDISPATCH_TARGET and
// GLDISPATCH_GL_DEBUG.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
)

// DefaultTarget is the backend selected when neither the caller nor the
// configuration names one.
const DefaultTarget = "gl2"

// Environment variables read by FromEnv and Load.
const (
	TargetEnv     = "GLDISPATCH_TARGET"
	DebugEnv      = "GLDISPATCH_GL_DEBUG"
	TestingAppEnv = "_GLDISPATCH_TESTING_APP"
)

// Config is the backend selection configuration.
type Config struct {
	// Target is the backend used when Use is called with an empty target.
	Target string `toml:"target"`

	// Debug enables per-call logging and error checking on every backend
	// selection, as if the target carried the "debug" option.
	Debug bool `toml:"gl_debug"`

	// TestingApp names the application a test suite runs under. The value
	// "osmesa" makes native backends request an off-screen OSMesa context.
	// It is only read from the environment.
	TestingApp string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Target: DefaultTarget}
}

// FromEnv returns the built-in configuration overridden by the
// environment.
func FromEnv() (*Config, error) {
	c := Default()
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the TOML file at path and applies the environment on top.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, xerrors.Errorf("config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, xerrors.Errorf("config: %s: unknown key %q", path, undec[0].String())
	}
	if c.Target == "" {
		c.Target = DefaultTarget
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(TargetEnv); v != "" {
		c.Target = v
	}
	if v := os.Getenv(DebugEnv); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return xerrors.Errorf("config: %s=%q: %w", DebugEnv, v, err)
		}
		c.Debug = b
	}
	c.TestingApp = os.Getenv(TestingAppEnv)
	return nil
}

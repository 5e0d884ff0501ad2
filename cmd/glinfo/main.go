// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The glinfo command selects a GL backend and reports what it provides.
//
// Usage:
//
//	glinfo [-target name] [-config file] [-log kind] [-v n] [-list] [-snapshot file.bmp]
//
// It prints the backend name and the driver's vendor, renderer and version
// strings. With -list it also prints every GL name the backend exposes.
// With -snapshot it renders a cleared off-screen framebuffer and writes it
// as a BMP image.
//
// The target is a backend name optionally followed by " debug", as in
//
//	glinfo -target "gl2 debug" -v 1
//
// which logs every GL call made.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "golang.org/x/exp/gldispatch/driver/gldriver"
	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/exp/gldispatch/gl"
)

var (
	target     = flag.String("target", "", "backend `name`, optionally followed by \" debug\" (default: configured target)")
	configFile = flag.String("config", "", "TOML configuration `file`")
	logKind    = flag.String("log", "std", "logger: std, zap, logrus, zerolog or gokit")
	verbosity  = flag.Int("v", 0, "log verbosity; 1 traces GL calls in debug mode")
	list       = flag.Bool("list", false, "list the GL names the backend exposes")
	backends   = flag.Bool("backends", false, "list the registered backends and exit")
	snapshot   = flag.String("snapshot", "", "write a cleared framebuffer to `file.bmp`")
	width      = flag.Int("width", 64, "snapshot width")
	height     = flag.Int("height", 64, "snapshot height")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("glinfo: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: glinfo [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *backends {
		for _, name := range gl.Available() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := newLogger(*logKind, *verbosity, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	f := gl.New(gl.WithConfig(cfg), gl.WithLogger(logger))
	err = run(os.Stdout, f, options{
		target:   *target,
		list:     *list,
		snapshot: *snapshot,
		width:    *width,
		height:   *height,
	})
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv()
	}
	return config.Load(path)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lgokit "golang.org/x/exp/gldispatch/logsink/gokit"
	llogrus "golang.org/x/exp/gldispatch/logsink/logrus"
	lzap "golang.org/x/exp/gldispatch/logsink/zap"
	lzerolog "golang.org/x/exp/gldispatch/logsink/zerolog"
	"golang.org/x/xerrors"
)

// newLogger returns a logger of the given kind writing to w. v is the
// highest logr verbosity that is written.
func newLogger(kind string, v int, w io.Writer) (logr.Logger, error) {
	switch kind {
	case "std":
		stdr.SetVerbosity(v)
		return stdr.New(log.New(w, "", log.LstdFlags)), nil

	case "zap":
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.Level(-v))
		return lzap.New(zap.New(core)), nil

	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		switch {
		case v <= 0:
			l.SetLevel(logrus.InfoLevel)
		case v == 1:
			l.SetLevel(logrus.DebugLevel)
		default:
			l.SetLevel(logrus.TraceLevel)
		}
		return llogrus.New(l), nil

	case "zerolog":
		lvl := zerolog.InfoLevel
		switch {
		case v == 1:
			lvl = zerolog.DebugLevel
		case v > 1:
			lvl = zerolog.TraceLevel
		}
		l := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(lvl).With().Timestamp().Logger()
		return lzerolog.New(l), nil

	case "gokit":
		l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
		allow := level.AllowInfo()
		if v > 0 {
			allow = level.AllowDebug()
		}
		return lgokit.New(level.NewFilter(l, allow)), nil
	}
	return logr.Logger{}, xerrors.Errorf("unknown logger %q (want std, zap, logrus, zerolog or gokit)", kind)
}

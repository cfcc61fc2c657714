// Package logger builds the zap logger shared by the command line tools.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level maps the integer verbosity used on the command line onto zap levels.
// Higher values give more output.
func Level(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New returns a console logger writing to stderr.
func New(name string, verbosity int) *zap.SugaredLogger {
	return NewWithSink(name, verbosity, zapcore.Lock(os.Stderr))
}

func NewWithSink(name string, verbosity int, sink zapcore.WriteSyncer) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, zap.NewAtomicLevelAt(Level(verbosity)))
	return zap.New(core).Named(name).Sugar()
}

// Func adapts l to the printf style callbacks taken by library configs.
// Level 1 messages are logged at info, anything above at debug.
func Func(l *zap.SugaredLogger) func(level int, format string, param ...interface{}) {
	return func(level int, format string, param ...interface{}) {
		if level <= 1 {
			l.Infof(format, param...)
		} else {
			l.Debugf(format, param...)
		}
	}
}

// Package log is the zap based logger shared by jsonsum packages.
package log

import (
	"github.com/tableauio/jsonsum/options"
)

// Init set the log options.
func Init(opt *options.LogOption) error {
	if opt == nil {
		return nil
	}
	sinkType, err := GetSinkType(opt.Sink)
	if err != nil {
		return err
	}
	switch sinkType {
	case SinkFile:
		return InitFileLog(opt.Mode, opt.Level, opt.Filename)
	case SinkMulti:
		return InitMultiLog(opt.Mode, opt.Level, opt.Filename)
	default:
		return InitConsoleLog(opt.Mode, opt.Level)
	}
}

// Level returns the current log level, e.g.: "INFO".
func Level() string {
	return curLevel
}

// Mode returns the current log mode: SIMPLE or FULL.
func Mode() string {
	return curMode
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = zaplogger.Sync()
}

func Debug(args ...any) { sugar.Debug(args...) }
func Info(args ...any)  { sugar.Info(args...) }
func Warn(args ...any)  { sugar.Warn(args...) }
func Error(args ...any) { sugar.Error(args...) }

func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }
func Infof(format string, args ...any)  { sugar.Infof(format, args...) }
func Warnf(format string, args ...any)  { sugar.Warnf(format, args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }

// Debugw logs a message with some additional context. The variadic
// key-value pairs are treated as they are in zap's SugaredLogger.With.
func Debugw(msg string, keysAndValues ...any) { sugar.Debugw(msg, keysAndValues...) }
func Infow(msg string, keysAndValues ...any)  { sugar.Infow(msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...any)  { sugar.Warnw(msg, keysAndValues...) }
func Errorw(msg string, keysAndValues ...any) { sugar.Errorw(msg, keysAndValues...) }

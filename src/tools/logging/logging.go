// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package logging gives postore components a context logger backed by zap.
//
// Loggers returned by GetLogger are silent until Initialize is called.
package logging

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/hexya-erp/postore/src/config"
	"github.com/hexya-erp/postore/src/tools/exceptions"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// log is the base logger of the application
var log = &zapLogger{}

// A Logger writes logs to a handler
type Logger interface {
	// Panic logs a error level message then panics
	Panic(msg string, ctx ...interface{})
	// Error logs an error level message
	Error(msg string, ctx ...interface{})
	// Warn logs a warning level message
	Warn(msg string, ctx ...interface{})
	// Info logs an information level message
	Info(msg string, ctx ...interface{})
	// Debug logs a debug level message. This may be very verbose
	Debug(msg string, ctx ...interface{})
	// New returns a child logger with the given context
	New(ctx ...interface{}) Logger
	// Sync the logger cache
	Sync() error
}

// zapLogger is an implementation of logger using Uber's zap library
type zapLogger struct {
	zap    *zap.SugaredLogger
	ctx    []interface{}
	parent *zapLogger
}

// Panic logs a error level message then panics
func (l *zapLogger) Panic(msg string, ctx ...interface{}) {
	if l.checkParent() {
		l.zap.Errorw(msg, ctx...)
	}
	panicData := msg + "\n"
	for i := 0; i < len(ctx); i += 2 {
		panicData += fmt.Sprintf("\t%v : %v\n", ctx[i], ctx[i+1])
	}
	panic(panicData)
}

// Error logs an error level message
func (l *zapLogger) Error(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Errorw(msg, ctx...)
}

// Warn logs a warning level message
func (l *zapLogger) Warn(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Warnw(msg, ctx...)
}

// Info logs an information level message
func (l *zapLogger) Info(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Infow(msg, ctx...)
}

// Debug logs a debug level message. This may be very verbose
func (l *zapLogger) Debug(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Debugw(msg, ctx...)
}

// Sync the logger cache
func (l *zapLogger) Sync() error {
	if !l.checkParent() {
		return errors.New("syncing a non-initialized logger")
	}
	return l.zap.Sync()
}

// New returns a child logger with the given context
func (l *zapLogger) New(ctx ...interface{}) Logger {
	return &zapLogger{
		ctx:    ctx,
		parent: l,
	}
}

// checkParent recursively looks for an ancestor with a valid zap logger backend.
//
// If one is found, all children zap loggers are instantiated and checkParent returns true.
// Otherwise, it returns false.
func (l *zapLogger) checkParent() bool {
	if l.zap != nil || l.parent == nil {
		return true
	}
	l.parent.checkParent()
	if l.parent.zap != nil {
		l.zap = l.parent.zap.With(l.ctx...)
		return true
	}
	return false
}

// Initialize starts the base logger used by all postore components with
// the logging settings currently held by viper.
func Initialize() {
	logConfig, levelErr := buildConfig(viper.GetViper())
	plainLog, err := logConfig.Build()
	if err != nil {
		panic(err)
	}
	log.zap = plainLog.Sugar()
	if levelErr != nil {
		log.Warn("Invalid log level, falling back to default", "level", viper.GetString(config.KeyLogLevel),
			"default", config.DefaultLogLevel, "error", levelErr)
	}
	log.Debug("Logger initialized", "level", logConfig.Level.String(), "outputs", logConfig.OutputPaths)
}

// buildConfig returns the zap configuration of the logging settings of v.
// An unreadable level is returned as error alongside a configuration at
// the default level.
func buildConfig(v *viper.Viper) (zap.Config, error) {
	logConfig := zap.NewProductionConfig()
	if v.GetBool(config.KeyDebug) {
		logConfig = zap.NewDevelopmentConfig()
	}

	var levelErr error
	logLevel := zap.NewAtomicLevel()
	if levelErr = logLevel.UnmarshalText([]byte(v.GetString(config.KeyLogLevel))); levelErr != nil {
		logLevel = zap.NewAtomicLevel()
		logLevel.UnmarshalText([]byte(config.DefaultLogLevel))
	}
	logConfig.Level = logLevel

	var outputPaths []string
	if v.GetBool(config.KeyLogStdout) {
		outputPaths = append(outputPaths, "stdout")
	}
	if path := v.GetString(config.KeyLogFile); path != "" {
		outputPaths = append(outputPaths, path)
	}
	if len(outputPaths) == 0 {
		outputPaths = []string{config.DefaultLogOutput}
	}
	logConfig.OutputPaths = outputPaths
	logConfig.ErrorOutputPaths = []string{config.DefaultLogOutput}
	return logConfig, levelErr
}

// GetLogger returns a context logger for the given module
func GetLogger(moduleName string) Logger {
	l := log.New("module", moduleName)
	return l
}

// LogPanicData logs the panic data with stacktrace and returns a UserError
// holding the panic message. Commands call it from a deferred recover so
// that log.Panic calls end up as a clean exit code.
func LogPanicData(panicData interface{}) error {
	msg := fmt.Sprintf("%v", panicData)
	log.Error("postore panicked", "msg", msg)

	return exceptions.UserError{
		Message: msg,
		Debug:   fmt.Sprintf("%s\n\n%s", msg, debug.Stack()),
	}
}

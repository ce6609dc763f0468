// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commons

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging surface used across the service. It mirrors the
// zap sugared logger and adds a couple of helpers for timing and tracing.
type Logger interface {
	Level() zapcore.Level
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	DPanic(args ...interface{})
	DPanicf(template string, args ...interface{})
	Panic(args ...interface{})
	Panicf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})

	// Benchmark logs how long the named function took.
	Benchmark(functionName string, duration time.Duration)

	// Tracef logs at debug level with the request id carried by ctx, if any.
	Tracef(ctx context.Context, format string, args ...interface{})
	Sync() error
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the request id picked up by Tracef.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID extracts the request id stored by WithRequestID.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

type applicationLogger struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

type loggerOptions struct {
	name       string
	level      string
	path       string
	production bool
}

// LoggerOption configures NewApplicationLogger.
type LoggerOption func(*loggerOptions)

func Name(name string) LoggerOption {
	return func(o *loggerOptions) { o.name = name }
}

func Level(level string) LoggerOption {
	return func(o *loggerOptions) { o.level = level }
}

// Path enables an additional rotated file sink.
func Path(path string) LoggerOption {
	return func(o *loggerOptions) { o.path = path }
}

func EnableProduction() LoggerOption {
	return func(o *loggerOptions) { o.production = true }
}

// NewApplicationLogger builds the zap backed Logger. Without options it logs
// debug and above to stdout using the console encoder.
func NewApplicationLogger(opts ...LoggerOption) (Logger, error) {
	o := &loggerOptions{name: "tts-utils", level: "debug"}
	for _, opt := range opts {
		opt(o)
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(o.level))); err != nil {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderCfg)
	if o.production {
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}
	if o.path != "" {
		rotator := &lumberjack.Logger{
			Filename:   o.path,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Named(o.name)
	return &applicationLogger{SugaredLogger: logger.Sugar(), level: level}, nil
}

func (l *applicationLogger) Level() zapcore.Level {
	return l.level.Level()
}

func (l *applicationLogger) Benchmark(functionName string, duration time.Duration) {
	l.SugaredLogger.Debugw("benchmark", "function", functionName, "duration", duration.String())
}

func (l *applicationLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
	if id := RequestID(ctx); id != "" {
		l.SugaredLogger.With("request_id", id).Debugf(format, args...)
		return
	}
	l.SugaredLogger.Debugf(format, args...)
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &applicationLogger{
		SugaredLogger: zap.NewNop().Sugar(),
		level:         zap.NewAtomicLevelAt(zapcore.FatalLevel),
	}
}

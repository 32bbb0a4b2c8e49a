package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger = zap.NewNop().Sugar()

// Entry is a logger carrying preset fields.
type Entry struct {
	s *zap.SugaredLogger
}

func (e *Entry) Info(msg string, keysAndValues ...interface{}) {
	e.s.Infow(msg, keysAndValues...)
}

func (e *Entry) Warn(msg string, keysAndValues ...interface{}) {
	e.s.Warnw(msg, keysAndValues...)
}

func (e *Entry) Error(msg string, keysAndValues ...interface{}) {
	e.s.Errorw(msg, keysAndValues...)
}

func (e *Entry) Debug(msg string, keysAndValues ...interface{}) {
	e.s.Debugw(msg, keysAndValues...)
}

// Init installs a development logger. Configure replaces it once config is loaded.
func Init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("logger: %v", err))
	}
	log = l.Sugar()
}

// Configure builds a production JSON logger for env "production" and a
// console logger otherwise.
func Configure(env, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	log = l.Sugar()
	return nil
}

// New wraps a core, mostly for tests.
func New(core zapcore.Core) *zap.SugaredLogger {
	return zap.New(core).Sugar()
}

func Sync() {
	_ = log.Sync()
}

func Info(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, keysAndValues...)
}

func Infof(format string, v ...interface{}) {
	log.Infof(format, v...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}

func Errorf(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

func Debug(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

func Debugf(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func WithError(err error) *Entry {
	return &Entry{s: log.With(zap.Error(err))}
}

func WithFields(fields map[string]interface{}) *Entry {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Entry{s: log.With(args...)}
}

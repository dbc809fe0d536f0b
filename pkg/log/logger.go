package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the service.
// All methods take a context first so call sites stay uniform even when
// the implementation does not consume it yet.
type Logger interface {
	Debug(ctx context.Context, args ...interface{})
	Debugf(ctx context.Context, format string, args ...interface{})
	Info(ctx context.Context, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warn(ctx context.Context, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Error(ctx context.Context, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service logger from config. Falls back to sane
// defaults when values are missing so logging never fails startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, args ...interface{}) {
	l.sugar.Debug(args...)
}

func (l *zapLogger) Debugf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Info(_ context.Context, args ...interface{}) {
	l.sugar.Info(args...)
}

func (l *zapLogger) Infof(_ context.Context, format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warn(_ context.Context, args ...interface{}) {
	l.sugar.Warn(args...)
}

func (l *zapLogger) Warnf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Error(_ context.Context, args ...interface{}) {
	l.sugar.Error(args...)
}

func (l *zapLogger) Errorf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

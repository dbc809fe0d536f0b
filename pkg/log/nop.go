package log

import "context"

type nopLogger struct{}

// NewNop returns a Logger that discards everything. Used in tests.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(_ context.Context, _ ...interface{})            {}
func (nopLogger) Debugf(_ context.Context, _ string, _ ...interface{}) {}
func (nopLogger) Info(_ context.Context, _ ...interface{})             {}
func (nopLogger) Infof(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Warn(_ context.Context, _ ...interface{})             {}
func (nopLogger) Warnf(_ context.Context, _ string, _ ...interface{})  {}
func (nopLogger) Error(_ context.Context, _ ...interface{})            {}
func (nopLogger) Errorf(_ context.Context, _ string, _ ...interface{}) {}

package logger

import "go.uber.org/zap"

var Log *zap.Logger

func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

// NewNop installs a discard logger; used by tests.
func NewNop() *zap.Logger {
	Log = zap.NewNop()
	return Log
}

package fn

import (
	"sync"

	"go.uber.org/zap"
)

// logging holds the package-level logger used for events that have no caller
// to return an error to (delayed calls, cache maintenance).
var logging struct {
	mu     sync.RWMutex
	logger *zap.Logger
}

func init() {
	logging.logger = zap.NewNop()
}

// SetLogger replaces the package logger and returns a function restoring the
// previous one. A nil logger silences the package. Safe to call from multiple
// goroutines.
//
//	restore := fn.SetLogger(zap.Must(zap.NewProduction()))
//	defer restore()
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	logging.mu.Lock()
	prev := logging.logger
	logging.logger = l
	logging.mu.Unlock()

	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.logger = prev
	}
}

func logger() *zap.Logger {
	logging.mu.RLock()
	defer logging.mu.RUnlock()
	return logging.logger
}

package util

import (
	"io"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// NewLogger creates a development logger that writes to w. Verbosity follows the logr
// convention: a level of -10 shows everything up to V(10).
func NewLogger(level int, w io.Writer) logr.Logger {
	return zap.New(zap.UseFlagOptions(&zap.Options{
		Development:     true,
		DestWriter:      w,
		StacktraceLevel: zapcore.Level(3),
		TimeEncoder:     zapcore.RFC3339NanoTimeEncoder,
		Level:           zapcore.Level(level),
	}))
}

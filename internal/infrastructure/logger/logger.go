package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger. It starts with logrus defaults
// so packages can log before Init runs (e.g. in tests).
var Log = logrus.New()

// Init configures level and format. Unknown levels fall back to info.
func Init(level, format string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		SetTextFormatter()
		return
	}
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter switches to human readable output (local development).
func SetTextFormatter() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// Silence discards all output; used by tests.
func Silence() {
	Log.SetOutput(io.Discard)
}

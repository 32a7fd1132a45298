package tracer

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(parseLogLevel())
	return l
}

func parseLogLevel() logrus.Level {
	if os.Getenv("SCTRACE_DEBUG") != "" {
		return logrus.DebugLevel
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SCTRACE_LOG_LEVEL"))) {
	case "debug", "verbose", "2":
		return logrus.DebugLevel
	case "info", "1":
		return logrus.InfoLevel
	case "", "warn", "0":
		return logrus.WarnLevel
	case "off", "none":
		return logrus.PanicLevel
	default:
		return logrus.WarnLevel
	}
}

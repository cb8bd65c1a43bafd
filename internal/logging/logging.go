// Package logging configures the logrus logger shared by the CLI and the
// pipeline stages.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to w at the given level. Format is "text"
// (default) or "json".
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if level == "" {
		lvl, err = logrus.InfoLevel, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return logger, nil
}

// Component returns an entry tagged with the component name.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger.WithField("component", name)
}

// Discard returns an entry that drops everything; used by tests.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

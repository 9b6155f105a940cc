// Package logging builds the logrus logger shared by both binaries.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Mr-Dark-debug/abxdash/internal/config"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger at cfg.Level. Output goes to cfg.File when set
// (appending, parent directories created) and to fallback otherwise. The
// returned closer releases the log file; it is always non-nil.
func New(cfg config.LogConfig, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "log level %q", cfg.Level)
		}
		level = parsed
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat})

	if cfg.File == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		log.SetOutput(fallback)
		return log, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "creating log directory for %s", cfg.File)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", cfg.File)
	}
	log.SetOutput(f)
	return log, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

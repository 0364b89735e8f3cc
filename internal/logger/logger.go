package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config selects the log level and output format.
type Config struct {
	Level  string // panic, fatal, error, warn, info, debug, trace
	Format string // text or json
	Output io.Writer
}

// New builds a logrus logger from cfg. Output defaults to stderr so that
// command output on stdout stays machine-readable.
func New(cfg Config) (*logrus.Logger, error) {
	log := logrus.New()

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	level := logrus.WarnLevel
	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = lvl
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}
	return log, nil
}

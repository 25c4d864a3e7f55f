package logger

import (
	"io"
	"os"

	"go-minirt/config"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = &logger.Logger{
	Out:   os.Stderr,
	Level: logger.InfoLevel,
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
	Hooks: make(logger.LevelHooks),
}

// Configure applies cfg to the shared logger L.
func Configure(cfg *config.LoggerConfig) error {
	lvl, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level '%s'", cfg.Level)
	}
	L.SetLevel(lvl)
	return nil
}

// Discard returns a logger that drops everything. Packages fall back to it
// when no logger is configured.
func Discard() *logger.Logger {
	l := logger.New()
	l.Out = io.Discard
	l.Level = logger.PanicLevel
	return l
}

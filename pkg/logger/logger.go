// Package logger configures the logrus logger used by the labelprep command.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options contains the configuration values of the logger.
type Options struct {
	Output io.Writer
	Level  string
	JSON   bool
}

// Init sets up the standard logrus logger.
func Init(opt Options) error {
	level := opt.Level
	if level == "" {
		level = "info"
	}
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	setupLogger(logrus.StandardLogger(), logLevel, opt)
	return nil
}

func setupLogger(logger *logrus.Logger, lvl logrus.Level, opt Options) {
	logger.SetLevel(lvl)
	if opt.Output != nil {
		logger.SetOutput(opt.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}
	if opt.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
}

// WithNamespace returns a logger with the specified nspace field.
func WithNamespace(nspace string) *logrus.Entry {
	return logrus.WithField("nspace", nspace)
}

// Package log is a thin wrapper around a single process-wide logrus logger.
// The geometry packages never log; only the command line tool does.
package log

import (
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

var log *Logger

// Logger ...
type Logger struct {
	*logrus.Logger
}

func init() {
	log = &Logger{
		logrus.New(),
	}
	log.SetOutput(os.Stderr)
}

// Instance returns the underlying logger instance
func Instance() *logrus.Logger {
	return log.Logger
}

// SetLevel sets the logging level of the logger instance.
func SetLevel(v string) error {
	level, err := logrus.ParseLevel(v)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.Logger.SetLevel(level)
	return nil
}

// SetOutput sets the logging output of the logger instance.
func SetOutput(v string) error {
	switch v {
	case "none":
		log.Logger.SetOutput(ioutil.Discard)
	case "stdout":
		log.Logger.SetOutput(os.Stdout)
	case "stderr":
		log.Logger.SetOutput(os.Stderr)
	default:
		return errors.Errorf("invalid log output %q", v)
	}
	return nil
}

// SetWriter sends log output to w. Used by tests.
func SetWriter(w io.Writer) {
	log.Logger.SetOutput(w)
}

// SetFormat sets the logging format of the logger instance.
func SetFormat(v string) error {
	switch v {
	case "json":
		log.Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	case "text":
		log.Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return errors.Errorf("invalid log format %q", v)
	}
	return nil
}

// WithField prepares a log entry with a single data field.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}

// WithFields prepares a log entry with multiple data fields.
func WithFields(fields Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// WithError prepares a log entry with an error field.
func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}

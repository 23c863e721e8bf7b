// Package logger holds the process-wide structured logger. Components get
// tagged subloggers so every line carries its origin.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
}

// Init configures level, output and format. Called once at startup, after
// configuration is loaded.
func Init(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(parsed)
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}

// NewSublogger returns an entry tagged with the component name.
func NewSublogger(tag string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{"module": "boatcloser." + tag})
}

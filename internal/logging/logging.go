// Package logging builds the logrus logger shared by the commands.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger on stderr. debug lowers the level to Debug.
func New(debug bool) *logrus.Logger {
	return NewWithOutput(os.Stderr, debug)
}

func NewWithOutput(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !debug,
		FullTimestamp:    debug,
	})
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Discard is a logger that drops everything; handy as a default.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

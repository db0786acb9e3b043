package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a logger for diagnostics on w. Only warnings are shown
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokerhand-evaluator/internal/config"
)

// Setup configures the standard logrus logger from the log configuration
// When no format is configured, JSON is used unless the output is a terminal.
func Setup(cfg config.Config, out *os.File) error {
	logrus.SetOutput(out)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)
	}

	logrus.SetFormatter(formatter(cfg.Log.Format, term.IsTerminal(int(out.Fd()))))
	return nil
}

func formatter(format string, isTerminal bool) logrus.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{}
	case "text":
		return &logrus.TextFormatter{}
	}

	if isTerminal {
		return &logrus.TextFormatter{FullTimestamp: true}
	}

	return &logrus.JSONFormatter{}
}

package infra

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ConfigureLogger sets json formatter and level for standard logrus logger
func ConfigureLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level - %w", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(lvl)
	return nil
}

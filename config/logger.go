package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the global logrus logger. Production emits JSON,
// everything else uses the colored text formatter.
func InitLogger() {
	logrus.SetOutput(os.Stdout)

	if IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		logrus.Warnf("⚠️ invalid LOG_LEVEL %q, using info", os.Getenv("LOG_LEVEL"))
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

package logger

import (
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the access logger used by the request logging middleware.
// Production appends JSON lines to LOGGER_ACCESS_LOG_FILENAME, falling back to stderr.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	accessLogger := logrus.New()
	accessLogger.SetLevel(logrus.InfoLevel)

	if internalConfig.App.Env != constvars.AppEnvProduction {
		accessLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return accessLogger
	}

	accessLogger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile(driverConfig.Logger.AccessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		accessLogger.WithError(err).Warn("Failed to open access log file, using default stderr")
		return accessLogger
	}
	accessLogger.SetOutput(file)
	return accessLogger
}

package logger

import (
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/pkg/constvars"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"Debug level", "debug", zapcore.DebugLevel},
		{"Error level", "error", zapcore.ErrorLevel},
		{"Unknown level falls back to info", "loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverConfig := &config.DriverConfig{Logger: config.Logger{Level: tt.level}}
			internalConfig := &config.InternalConfig{App: config.App{Env: constvars.AppEnvDevelopment}}

			log := NewZapLogger(driverConfig, internalConfig)

			require.NotNil(t, log)
			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewLogrusLogger(t *testing.T) {
	t.Run("Development uses the text formatter", func(t *testing.T) {
		accessLogger := NewLogrusLogger(&config.DriverConfig{}, &config.InternalConfig{App: config.App{Env: constvars.AppEnvDevelopment}})

		assert.IsType(t, &logrus.TextFormatter{}, accessLogger.Formatter)
	})

	t.Run("Production writes JSON to the access log file", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{AccessLogFileName: filepath.Join(t.TempDir(), "access.log")}}

		accessLogger := NewLogrusLogger(driverConfig, &config.InternalConfig{App: config.App{Env: constvars.AppEnvProduction}})

		assert.IsType(t, &logrus.JSONFormatter{}, accessLogger.Formatter)
		assert.FileExists(t, driverConfig.Logger.AccessLogFileName)
	})
}

package config

import (
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "logrus.log"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			Region:   utils.GetEnvString("MINIO_REGION", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                        utils.GetEnvString("APP_PORT", ":8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                     utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:              utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:   utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInKilobyte:  utils.GetEnvInt64("APP_REQUEST_BODY_LIMIT_IN_KILOBYTE", 64),
			PredictionTimeoutInSeconds:  utils.GetEnvInt("APP_PREDICTION_TIMEOUT_IN_SECONDS", 10),
			PredictionRequestsPerMinute: utils.GetEnvInt("APP_PREDICTION_MAX_REQUESTS_PER_MINUTE", 60),
		},
		Prediction: Prediction{
			ArtifactURI:          utils.GetEnvString("MODEL_ARTIFACT_URI", ""),
			Format:               utils.GetEnvString("MODEL_FORMAT", constvars.ModelFormatForest),
			ModelFileName:        utils.GetEnvString("MODEL_FILE_NAME", ""),
			DescriptionFileName:  utils.GetEnvString("MODEL_DESCRIPTION_FILE_NAME", constvars.DefaultDescriptionFileName),
			PrecautionFileName:   utils.GetEnvString("MODEL_PRECAUTION_FILE_NAME", constvars.DefaultPrecautionFileName),
			ONNXSharedLibrary:    utils.GetEnvString("MODEL_ONNX_SHARED_LIBRARY_PATH", ""),
			ONNXInputName:        utils.GetEnvString("MODEL_ONNX_INPUT_NAME", constvars.DefaultONNXInputName),
			ONNXOutputName:       utils.GetEnvString("MODEL_ONNX_OUTPUT_NAME", constvars.DefaultONNXOutputName),
			LoadTimeoutInSeconds: utils.GetEnvInt("MODEL_LOAD_TIMEOUT_IN_SECONDS", 30),
			RequiredAtStartup:    utils.GetEnvBool("MODEL_REQUIRED_AT_STARTUP", false),
		},
	}
}

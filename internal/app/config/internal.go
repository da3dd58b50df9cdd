package config

import "diagnosis-service/internal/pkg/constvars"

type InternalConfig struct {
	App        App        `mapstructure:"app"`
	Prediction Prediction `mapstructure:"prediction"`
}

type App struct {
	Env                         string   `mapstructure:"env"`
	Port                        string   `mapstructure:"port"`
	Version                     string   `mapstructure:"version"`
	Address                     string   `mapstructure:"address"`
	Timezone                    string   `mapstructure:"timezone"`
	EndpointPrefix              string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins              []string `mapstructure:"allowed_origins"`
	MaxRequests                 int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds    int      `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds   int      `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInKilobyte  int64    `mapstructure:"request_body_limit_in_kilobyte"`
	PredictionTimeoutInSeconds  int      `mapstructure:"prediction_timeout_in_seconds"`
	PredictionRequestsPerMinute int      `mapstructure:"prediction_requests_per_minute"`
}

// Prediction locates the model artifacts. ArtifactURI is resolved once at startup.
type Prediction struct {
	ArtifactURI          string `mapstructure:"artifact_uri"`
	Format               string `mapstructure:"format"`
	ModelFileName        string `mapstructure:"model_file_name"`
	DescriptionFileName  string `mapstructure:"description_file_name"`
	PrecautionFileName   string `mapstructure:"precaution_file_name"`
	ONNXSharedLibrary    string `mapstructure:"onnx_shared_library"`
	ONNXInputName        string `mapstructure:"onnx_input_name"`
	ONNXOutputName       string `mapstructure:"onnx_output_name"`
	LoadTimeoutInSeconds int    `mapstructure:"load_timeout_in_seconds"`
	RequiredAtStartup    bool   `mapstructure:"required_at_startup"`
}

// ResolvedModelFileName falls back to the default artifact name for the configured format.
func (p Prediction) ResolvedModelFileName() string {
	if p.ModelFileName != "" {
		return p.ModelFileName
	}
	if p.Format == constvars.ModelFormatONNX {
		return constvars.DefaultONNXArtifactFileName
	}
	return constvars.DefaultForestArtifactFileName
}

func (a App) RequestBodyLimitInBytes() int64 {
	return a.RequestBodyLimitInKilobyte * 1024
}

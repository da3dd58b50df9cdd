package responses

type HealthStatus struct {
	Status           string `json:"status"`
	ModelLoaded      bool   `json:"model_loaded"`
	ModelFormat      string `json:"model_format,omitempty"`
	ArtifactLocation string `json:"artifact_location,omitempty"`
	Error            string `json:"error,omitempty"`
}

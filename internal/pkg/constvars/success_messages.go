package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Prediction-related messages
	GetSymptomsSuccessMessage         = "get symptoms successfully"
	GetDiseasesSuccessMessage         = "get diseases successfully"
	GetDiseaseReferenceSuccessMessage = "get disease reference successfully"

	// Health messages
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

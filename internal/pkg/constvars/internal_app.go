package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourcePredictions = "predictions"
	ResourceSymptoms    = "symptoms"
	ResourceDiseases    = "diseases"
	ResourceHealth      = "health"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	URLParamDisease = "disease"
)

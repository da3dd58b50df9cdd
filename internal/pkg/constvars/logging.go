package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingSymptomKey        = "symptom"
	LoggingSymptomCountKey   = "symptom_count"
	LoggingMatchedCountKey   = "matched_count"
	LoggingDiseaseKey        = "disease"
	LoggingProbabilityKey    = "probability"
	LoggingMaxProbabilityKey = "max_probability"
	LoggingResultCountKey    = "result_count"
	LoggingArtifactKey       = "artifact"
	LoggingArtifactLocation  = "artifact_location"
	LoggingModelFormatKey    = "model_format"
	LoggingFeatureCountKey   = "feature_count"
	LoggingColumnCountKey    = "column_count"
	LoggingClassCountKey     = "class_count"
	LoggingTreeCountKey      = "tree_count"
	LoggingReferenceCountKey = "reference_count"
)

package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must contain at least %s items",
	"max":          "must contain at most %s items",
	"symptom_list": "must contain at least one symptom",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientTooManyRequests               = "too many requests on single time-frame"
	ErrClientRouteNotFound                 = "the requested resource does not exist"
	ErrClientMethodNotAllowed              = "the requested method is not allowed on this resource"
	ErrClientRequestBodyTooLarge           = "request body is too large"

	ErrClientNoSymptomsProvided           = "No symptoms provided"
	ErrClientInvalidSymptomList           = "Invalid symptom list. Please send a JSON array of symptom names."
	ErrClientNotEnoughSymptoms            = "At least 2 symptoms are required for accurate prediction"
	ErrClientNotEnoughRecognizedSymptoms  = "Not enough recognized symptoms. Please provide more symptoms."
	ErrClientLowConfidencePrediction      = "The symptom combination does not match known disease patterns. Please provide more specific symptoms."
	ErrClientPredictionModelUnavailable   = "Disease prediction model is unavailable"
	ErrClientPredictionServiceUnavailable = "The prediction service is currently unavailable. Please contact support."
	ErrClientPredictionFailed             = "Prediction failed."
	ErrClientPredictionFailedDetail       = "An error occurred while predicting disease. Please try again later."
	ErrClientUnexpectedErrorDetail        = "An unexpected error occurred. Please try again later."
)

// Error messages for developers
const (
	ErrDevInvalidInput        = "invalid input"
	ErrDevValidationFailed    = "validation failed"
	ErrDevCannotParseJSON     = "cannot parse JSON"
	ErrDevServerProcess       = "server process error"
	ErrDevPanicRecovered      = "panic recovered"
	ErrDevRouteNotFound       = "route %s %s not found"
	ErrDevMethodNotAllowed    = "method %s not allowed on %s"
	ErrDevRequestBodyTooLarge = "request body exceeds %d bytes"
	ErrDevTooManyRequests     = "rate limit exceeded for %s"

	ErrDevSymptomListMissing          = "symptom list is missing or empty"
	ErrDevSymptomListNotArray         = "symptom list is not a JSON array of strings"
	ErrDevSymptomListTooShort         = "symptom list has %d entries, need at least %d"
	ErrDevRecognizedSymptomsTooFew    = "only %d of %d symptoms matched the vocabulary, need at least %d"
	ErrDevLowConfidencePrediction     = "max probability %.4f below confidence floor %.2f"
	ErrDevPredictionModelNotLoaded    = "prediction model not loaded"
	ErrDevClassifierScoreFailed       = "classifier scoring failed"
	ErrDevDistributionLengthMismatch  = "classifier returned %d probabilities, catalog has %d diseases"
	ErrDevArtifactLocationMissing     = "model artifact location is not configured"
	ErrDevArtifactLocationInvalid     = "model artifact location %q is invalid"
	ErrDevArtifactStoreUnavailable    = "model artifact store %s is unavailable"
	ErrDevArtifactOpenFailed          = "cannot open model artifact %s"
	ErrDevArtifactDecodeFailed        = "cannot decode model artifact %s"
	ErrDevArtifactContractMismatch    = "model artifact %s does not match the prediction contract"
	ErrDevUnsupportedModelFormat      = "unsupported model format %q"
	ErrDevInferenceRuntimeUnavailable = "inference runtime unavailable"
)

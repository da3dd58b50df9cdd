package exceptions

import (
	"diagnosis-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Request
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrRequestBodyTooLarge = func(err error, limit int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrClientRequestBodyTooLarge, fmt.Sprintf(constvars.ErrDevRequestBodyTooLarge, limit))
	}
	ErrRouteNotFound = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientRouteNotFound, fmt.Sprintf(constvars.ErrDevRouteNotFound, method, path))
	}
	ErrMethodNotAllowed = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusMethodNotAllowed, constvars.ErrClientMethodNotAllowed, fmt.Sprintf(constvars.ErrDevMethodNotAllowed, method, path))
	}
	ErrTooManyRequests = func(remoteAddr string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, remoteAddr))
	}

	// Prediction input
	ErrMalformedSymptoms = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNoSymptomsProvided, constvars.ErrDevSymptomListMissing)
	}
	ErrInvalidSymptomList = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidSymptomList, constvars.ErrDevSymptomListNotArray)
	}
	ErrInsufficientSymptoms = func(supplied int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientNotEnoughSymptoms, fmt.Sprintf(constvars.ErrDevSymptomListTooShort, supplied, constvars.PredictionMinimumSymptoms))
	}
	ErrInsufficientRecognizedSymptoms = func(matched, supplied int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientNotEnoughRecognizedSymptoms, fmt.Sprintf(constvars.ErrDevRecognizedSymptomsTooFew, matched, supplied, constvars.PredictionMinimumSymptoms))
	}
	ErrLowConfidencePrediction = func(maxProbability float64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientLowConfidencePrediction, fmt.Sprintf(constvars.ErrDevLowConfidencePrediction, maxProbability, constvars.PredictionConfidenceFloor))
	}

	// Prediction service
	ErrModelUnavailable = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, constvars.ErrDevPredictionModelNotLoaded)
	}
	ErrPredictionFailed = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientPredictionFailed, constvars.ErrClientPredictionFailedDetail, constvars.ErrDevClassifierScoreFailed)
	}
	ErrDistributionLengthMismatch = func(got, want int) *CustomError {
		return BuildNewCustomErrorWithDetail(nil, constvars.StatusInternalServerError, constvars.ErrClientPredictionFailed, constvars.ErrClientPredictionFailedDetail, fmt.Sprintf(constvars.ErrDevDistributionLengthMismatch, got, want))
	}

	// Model artifacts
	ErrArtifactLocationMissing = func() *CustomError {
		return BuildNewCustomErrorWithDetail(nil, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, constvars.ErrDevArtifactLocationMissing)
	}
	ErrArtifactLocationInvalid = func(err error, location string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, fmt.Sprintf(constvars.ErrDevArtifactLocationInvalid, location))
	}
	ErrArtifactStoreUnavailable = func(err error, location string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, fmt.Sprintf(constvars.ErrDevArtifactStoreUnavailable, location))
	}
	ErrArtifactOpen = func(err error, artifact string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, fmt.Sprintf(constvars.ErrDevArtifactOpenFailed, artifact))
	}
	ErrArtifactDecode = func(err error, artifact string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, fmt.Sprintf(constvars.ErrDevArtifactDecodeFailed, artifact))
	}
	ErrArtifactContractMismatch = func(err error, artifact string) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, fmt.Sprintf(constvars.ErrDevArtifactContractMismatch, artifact))
	}
	ErrUnsupportedModelFormat = func(format string) *CustomError {
		return BuildNewCustomErrorWithDetail(nil, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, fmt.Sprintf(constvars.ErrDevUnsupportedModelFormat, format))
	}
	ErrInferenceRuntimeUnavailable = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionModelUnavailable, constvars.ErrClientPredictionServiceUnavailable, constvars.ErrDevInferenceRuntimeUnavailable)
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrClientUnexpectedErrorDetail, constvars.ErrDevServerProcess)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomErrorWithDetail(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrClientUnexpectedErrorDetail, constvars.ErrDevPanicRecovered)
	}
)

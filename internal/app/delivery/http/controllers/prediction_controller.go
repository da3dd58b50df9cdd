package controllers

import (
	"bytes"
	"context"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/exceptions"
	"diagnosis-service/internal/pkg/utils"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PredictionController struct {
	Log               *zap.Logger
	PredictionUsecase contracts.PredictionUsecase
	InternalConfig    *config.InternalConfig
}

func NewPredictionController(logger *zap.Logger, predictionUsecase contracts.PredictionUsecase, internalConfig *config.InternalConfig) *PredictionController {
	return &PredictionController{
		Log:               logger,
		PredictionUsecase: predictionUsecase,
		InternalConfig:    internalConfig,
	}
}

// Predict reads a bare JSON array of symptom names and answers with a bare
// JSON array of ranked disease predictions.
func (ctrl *PredictionController) Predict(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PredictionController.Predict called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Availability is checked before the body is read.
	if status := ctrl.PredictionUsecase.Health(r.Context()); !status.ModelLoaded {
		cause := errors.New(constvars.ErrDevPredictionModelNotLoaded)
		if status.Error != "" {
			cause = errors.New(status.Error)
		}
		ctrl.Log.Error("PredictionController.Predict model unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(cause),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrModelUnavailable(cause))
		return
	}

	symptoms, err := ctrl.decodeSymptoms(r.Body)
	if err != nil {
		ctrl.Log.Error("PredictionController.Predict error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.predictionTimeout())
	defer cancel()

	result, err := ctrl.PredictionUsecase.Predict(ctx, symptoms)
	if err != nil {
		ctrl.Log.Error("PredictionController.Predict error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	ctrl.Log.Info("PredictionController.Predict succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(result)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *PredictionController) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PredictionController.ListSymptoms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.predictionTimeout())
	defer cancel()

	result, err := ctrl.PredictionUsecase.ListSymptoms(ctx)
	if err != nil {
		ctrl.Log.Error("PredictionController.ListSymptoms error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	ctrl.Log.Info("PredictionController.ListSymptoms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSymptomsSuccessMessage, result)
}

func (ctrl *PredictionController) ListDiseases(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PredictionController.ListDiseases called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.predictionTimeout())
	defer cancel()

	result, err := ctrl.PredictionUsecase.ListDiseases(ctx)
	if err != nil {
		ctrl.Log.Error("PredictionController.ListDiseases error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	ctrl.Log.Info("PredictionController.ListDiseases succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiseasesSuccessMessage, result)
}

func (ctrl *PredictionController) FindDiseaseReference(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	disease := chi.URLParam(r, constvars.URLParamDisease)
	if unescaped, err := url.PathUnescape(disease); err == nil {
		disease = unescaped
	}
	ctrl.Log.Info("PredictionController.FindDiseaseReference called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiseaseKey, disease),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.predictionTimeout())
	defer cancel()

	result, err := ctrl.PredictionUsecase.FindDiseaseReference(ctx, disease)
	if err != nil {
		ctrl.Log.Error("PredictionController.FindDiseaseReference error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	ctrl.Log.Info("PredictionController.FindDiseaseReference succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiseaseKey, result.Disease),
		zap.Bool("known", result.Known),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiseaseReferenceSuccessMessage, result)
}

// Health answers 200 once the model is loaded and 503 otherwise.
func (ctrl *PredictionController) Health(w http.ResponseWriter, r *http.Request) {
	status := ctrl.PredictionUsecase.Health(r.Context())
	code := constvars.StatusOK
	if !status.ModelLoaded {
		code = constvars.StatusServiceUnavailable
	}
	utils.BuildJSONResponse(w, code, status)
}

func (ctrl *PredictionController) decodeSymptoms(body io.Reader) ([]string, error) {
	if body == nil {
		return nil, nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, exceptions.ErrRequestBodyTooLarge(err, maxBytesErr.Limit)
		}
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	// An empty body or a JSON null is left for the usecase to reject as malformed.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var symptoms []string
	err = json.Unmarshal(data, &symptoms)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, exceptions.ErrInvalidSymptomList(err)
		}
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return symptoms, nil
}

func (ctrl *PredictionController) buildUsecaseErrorResponse(w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &customErr) {
		err = exceptions.ErrPredictionFailed(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func (ctrl *PredictionController) predictionTimeout() time.Duration {
	seconds := ctrl.InternalConfig.App.PredictionTimeoutInSeconds
	if seconds <= 0 {
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}

package predictions

import (
	"context"
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/app/models"
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/dto/requests"
	"diagnosis-service/internal/pkg/dto/responses"
	"diagnosis-service/internal/pkg/exceptions"
	"diagnosis-service/internal/pkg/utils"
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

type predictionUsecase struct {
	Log        *zap.Logger
	Vocabulary *Vocabulary
	Catalog    *Catalog
	Encoder    *FeatureEncoder
	Model      *PredictionModel
	// LoadErr is why Model is nil; predictions answer service-unavailable while it is set.
	LoadErr error
}

func NewPredictionUsecase(
	logger *zap.Logger,
	vocabulary *Vocabulary,
	catalog *Catalog,
	model *PredictionModel,
	loadErr error,
) contracts.PredictionUsecase {
	if model == nil && loadErr == nil {
		loadErr = errors.New(constvars.ErrDevPredictionModelNotLoaded)
	}
	return &predictionUsecase{
		Log:        logger,
		Vocabulary: vocabulary,
		Catalog:    catalog,
		Encoder:    NewFeatureEncoder(vocabulary),
		Model:      model,
		LoadErr:    loadErr,
	}
}

func (uc *predictionUsecase) Predict(ctx context.Context, symptoms []string) ([]responses.DiseasePrediction, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("predictionUsecase.Predict called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSymptomCountKey, len(symptoms)),
	)

	if uc.LoadErr != nil {
		uc.Log.Error("predictionUsecase.Predict model unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(uc.LoadErr),
		)
		return nil, exceptions.ErrModelUnavailable(uc.LoadErr)
	}

	request := &requests.PredictDisease{Symptoms: symptoms}
	utils.SanitizePredictDiseaseRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Info("predictionUsecase.Predict invalid symptom list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, symptomValidationError(err, len(request.Symptoms))
	}

	encoded := uc.Encoder.Encode(request.Symptoms)
	for _, symptom := range encoded.Unmatched {
		uc.Log.Warn("predictionUsecase.Predict symptom not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSymptomKey, symptom),
		)
	}
	if encoded.MatchedCount < constvars.PredictionMinimumSymptoms {
		return nil, exceptions.ErrInsufficientRecognizedSymptoms(encoded.MatchedCount, len(request.Symptoms))
	}

	distribution, err := uc.Model.Classifier.Score(ctx, encoded.Features)
	if err != nil {
		uc.Log.Error("predictionUsecase.Predict error scoring symptoms",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPredictionFailed(err)
	}
	if len(distribution) != uc.Catalog.Len() {
		return nil, exceptions.ErrDistributionLengthMismatch(len(distribution), uc.Catalog.Len())
	}
	if floats.HasNaN(distribution) {
		return nil, exceptions.ErrPredictionFailed(errors.New("distribution contains NaN"))
	}

	maxProbability := floats.Max(distribution)
	if maxProbability < constvars.PredictionConfidenceFloor {
		uc.Log.Info("predictionUsecase.Predict low confidence",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingMatchedCountKey, encoded.MatchedCount),
			zap.Float64(constvars.LoggingMaxProbabilityKey, maxProbability),
		)
		return nil, exceptions.ErrLowConfidencePrediction(maxProbability)
	}

	candidates := RankCandidates(distribution, uc.Catalog, constvars.PredictionCandidatePoolSize, constvars.PredictionSurfacedResultCount)
	response := make([]responses.DiseasePrediction, 0, len(candidates))
	for _, candidate := range candidates {
		prediction := models.DiseasePrediction{
			PredictionCandidate: candidate,
			Description:         uc.Model.References.Describe(candidate.Disease),
			Precautions:         uc.Model.References.Precautions(candidate.Disease),
		}
		response = append(response, prediction.ConvertIntoResponse())
	}

	uc.Log.Info("predictionUsecase.Predict succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMatchedCountKey, encoded.MatchedCount),
		zap.Float64(constvars.LoggingMaxProbabilityKey, roundProbability(maxProbability)),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, nil
}

func (uc *predictionUsecase) ListSymptoms(ctx context.Context) ([]responses.Symptom, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("predictionUsecase.ListSymptoms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	symptoms := uc.Vocabulary.Symptoms()
	response := make([]responses.Symptom, len(symptoms))
	for i, symptom := range symptoms {
		response[i] = symptom.ConvertIntoResponse()
	}

	uc.Log.Info("predictionUsecase.ListSymptoms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, nil
}

func (uc *predictionUsecase) ListDiseases(ctx context.Context) ([]responses.Disease, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("predictionUsecase.ListDiseases called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	diseases := uc.Catalog.Diseases()
	response := make([]responses.Disease, len(diseases))
	for i, disease := range diseases {
		response[i] = disease.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *predictionUsecase) FindDiseaseReference(ctx context.Context, disease string) (*responses.DiseaseReference, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("predictionUsecase.FindDiseaseReference called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDiseaseKey, disease),
	)

	if uc.LoadErr != nil {
		return nil, exceptions.ErrModelUnavailable(uc.LoadErr)
	}

	reference, known := uc.Model.References.FindByDisease(disease)
	precautions := reference.Precautions
	if precautions == nil {
		precautions = []string{}
	}
	return &responses.DiseaseReference{
		Disease:     reference.Disease,
		Known:       known,
		Description: reference.Description,
		Precautions: precautions,
	}, nil
}

func (uc *predictionUsecase) Health(ctx context.Context) responses.HealthStatus {
	if uc.LoadErr != nil {
		status := responses.HealthStatus{
			Status:      constvars.HealthStatusUnavailable,
			ModelLoaded: false,
		}
		if !utils.IsProductionEnvironment() {
			status.Error = uc.LoadErr.Error()
		}
		return status
	}
	return responses.HealthStatus{
		Status:           constvars.HealthStatusOK,
		ModelLoaded:      true,
		ModelFormat:      uc.Model.Format,
		ArtifactLocation: uc.Model.Location,
	}
}

// symptomValidationError maps validator tags onto the prediction error taxonomy.
func symptomValidationError(err error, supplied int) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return exceptions.ErrInputValidation(err)
	}
	switch validationErrors[0].Tag() {
	case "symptom_list":
		return exceptions.ErrMalformedSymptoms(err)
	case "min":
		return exceptions.ErrInsufficientSymptoms(supplied)
	default:
		return exceptions.ErrInputValidation(err)
	}
}

func roundProbability(p float64) float64 {
	return math.Round(p*1e4) / 1e4
}

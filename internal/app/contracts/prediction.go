package contracts

import (
	"context"
	"diagnosis-service/internal/app/models"
	"diagnosis-service/internal/pkg/dto/responses"
	"io"
)

type PredictionUsecase interface {
	Predict(ctx context.Context, symptoms []string) ([]responses.DiseasePrediction, error)
	ListSymptoms(ctx context.Context) ([]responses.Symptom, error)
	ListDiseases(ctx context.Context) ([]responses.Disease, error)
	FindDiseaseReference(ctx context.Context, disease string) (*responses.DiseaseReference, error)
	Health(ctx context.Context) responses.HealthStatus
}

// DiseaseClassifier returns one probability per class, in Classes() order.
// Implementations are read-only after load and safe for concurrent Score calls.
type DiseaseClassifier interface {
	Score(ctx context.Context, features []float32) ([]float64, error)
	Classes() []string
	FeatureCount() int
	Close() error
}

type ReferenceRepository interface {
	Describe(disease string) string
	Precautions(disease string) []string
	FindByDisease(disease string) (*models.DiseaseReference, bool)
	Len() int
}

type ArtifactStore interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Location() string
}

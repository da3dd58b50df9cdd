package predictions

import (
	"context"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/app/drivers/inference"
	"diagnosis-service/internal/app/services/shared/artifacts"
	"diagnosis-service/internal/app/services/shared/classifier"
	"diagnosis-service/internal/app/services/shared/reference"
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// PredictionModel is the classifier and reference tables loaded from one artifact location.
type PredictionModel struct {
	Classifier contracts.DiseaseClassifier
	References contracts.ReferenceRepository
	Format     string
	Location   string
}

func (m *PredictionModel) Close() error {
	if m == nil || m.Classifier == nil {
		return nil
	}
	return m.Classifier.Close()
}

// LoadPredictionModelFromConfig resolves the artifact store, brings up ONNX Runtime when the
// format needs it, and loads the model. The returned runtime close function is never nil.
func LoadPredictionModelFromConfig(
	ctx context.Context,
	log *zap.Logger,
	driverConfig *config.DriverConfig,
	prediction config.Prediction,
	vocabulary *Vocabulary,
	catalog *Catalog,
) (*PredictionModel, func() error, error) {
	noop := func() error { return nil }

	if prediction.LoadTimeoutInSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(prediction.LoadTimeoutInSeconds)*time.Second)
		defer cancel()
	}

	store, err := artifacts.NewArtifactStore(ctx, log, driverConfig, prediction)
	if err != nil {
		return nil, noop, err
	}

	runtimeClose := noop
	if prediction.Format == constvars.ModelFormatONNX {
		runtimeClose, err = inference.NewONNXRuntime(log, prediction)
		if err != nil {
			return nil, noop, err
		}
	}

	model, err := LoadPredictionModel(ctx, log, store, prediction, vocabulary, catalog)
	if err != nil {
		runtimeClose()
		return nil, noop, err
	}
	return model, runtimeClose, nil
}

// LoadPredictionModel reads the classifier and both reference tables from store and checks
// the classifier against vocabulary and catalog. Every artifact reader is closed before return.
func LoadPredictionModel(
	ctx context.Context,
	log *zap.Logger,
	store contracts.ArtifactStore,
	prediction config.Prediction,
	vocabulary *Vocabulary,
	catalog *Catalog,
) (*PredictionModel, error) {
	start := time.Now()
	log.Info("predictions.LoadPredictionModel called",
		zap.String(constvars.LoggingArtifactLocation, store.Location()),
		zap.String(constvars.LoggingModelFormatKey, prediction.Format),
	)

	diseaseClassifier, err := loadClassifier(ctx, log, store, prediction, vocabulary, catalog)
	if err != nil {
		log.Error("predictions.LoadPredictionModel error loading classifier",
			zap.String(constvars.LoggingArtifactLocation, store.Location()),
			zap.Error(err),
		)
		return nil, err
	}

	references, err := loadReferences(ctx, store, prediction)
	if err != nil {
		diseaseClassifier.Close()
		log.Error("predictions.LoadPredictionModel error loading reference tables",
			zap.String(constvars.LoggingArtifactLocation, store.Location()),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("predictions.LoadPredictionModel succeeded",
		zap.String(constvars.LoggingArtifactLocation, store.Location()),
		zap.String(constvars.LoggingModelFormatKey, prediction.Format),
		zap.Int(constvars.LoggingFeatureCountKey, diseaseClassifier.FeatureCount()),
		zap.Int(constvars.LoggingClassCountKey, len(diseaseClassifier.Classes())),
		zap.Int(constvars.LoggingReferenceCountKey, references.Len()),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	return &PredictionModel{
		Classifier: diseaseClassifier,
		References: references,
		Format:     prediction.Format,
		Location:   store.Location(),
	}, nil
}

func loadClassifier(
	ctx context.Context,
	log *zap.Logger,
	store contracts.ArtifactStore,
	prediction config.Prediction,
	vocabulary *Vocabulary,
	catalog *Catalog,
) (contracts.DiseaseClassifier, error) {
	fileName := prediction.ResolvedModelFileName()

	switch prediction.Format {
	case constvars.ModelFormatForest:
		reader, err := store.Open(ctx, fileName)
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		artifact, err := classifier.DecodeForestArtifact(reader)
		if err != nil {
			return nil, exceptions.ErrArtifactDecode(err, fileName)
		}
		columnCount := len(artifact.FeatureNames)
		if err := alignForestFeatures(artifact, vocabulary); err != nil {
			return nil, exceptions.ErrArtifactContractMismatch(err, fileName)
		}
		forest, err := classifier.NewForestClassifier(artifact)
		if err != nil {
			return nil, exceptions.ErrArtifactDecode(err, fileName)
		}
		if !catalog.Matches(forest.Classes()) {
			return nil, exceptions.ErrArtifactContractMismatch(fmt.Errorf("classes differ from the %d disease catalog", catalog.Len()), fileName)
		}
		log.Debug("predictions.loadClassifier forest decoded",
			zap.String(constvars.LoggingArtifactKey, fileName),
			zap.Int(constvars.LoggingTreeCountKey, forest.TreeCount()),
			zap.Int(constvars.LoggingColumnCountKey, columnCount),
			zap.Int(constvars.LoggingFeatureCountKey, forest.FeatureCount()),
		)
		return forest, nil

	case constvars.ModelFormatONNX:
		reader, err := store.Open(ctx, fileName)
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		modelData, err := io.ReadAll(reader)
		if err != nil {
			return nil, exceptions.ErrArtifactOpen(err, fileName)
		}
		onnx, err := classifier.NewONNXClassifier(modelData, catalog.Names(), prediction.ONNXInputName, prediction.ONNXOutputName)
		if err != nil {
			return nil, exceptions.ErrArtifactDecode(err, fileName)
		}
		if onnx.FeatureCount() != vocabulary.Len() {
			onnx.Close()
			return nil, exceptions.ErrArtifactContractMismatch(fmt.Errorf("model expects %d features, vocabulary has %d", onnx.FeatureCount(), vocabulary.Len()), fileName)
		}
		return onnx, nil

	default:
		return nil, exceptions.ErrUnsupportedModelFormat(prediction.Format)
	}
}

// alignForestFeatures rewrites every split so it reads the vocabulary position of its column.
// Exports carry one column per spelling of a symptom; those columns fold onto one position.
func alignForestFeatures(artifact *classifier.ForestArtifact, vocabulary *Vocabulary) error {
	if len(artifact.FeatureNames) == 0 {
		return errors.New("model has no feature names")
	}

	columns := make([]int, len(artifact.FeatureNames))
	for i, featureName := range artifact.FeatureNames {
		position, ok := vocabulary.FeaturePosition(featureName)
		if !ok {
			return fmt.Errorf("feature %d %q is not a known symptom", i, featureName)
		}
		columns[i] = position
	}

	for t := range artifact.Trees {
		tree := &artifact.Trees[t]
		for node, column := range tree.Feature {
			if node < len(tree.ChildrenLeft) && tree.ChildrenLeft[node] == classifier.ForestLeaf {
				continue
			}
			if column < 0 || column >= len(columns) {
				return fmt.Errorf("tree %d node %d splits on column %d of %d", t, node, column, len(columns))
			}
			tree.Feature[node] = columns[column]
		}
	}
	artifact.FeatureNames = vocabulary.Names()
	return nil
}

func loadReferences(ctx context.Context, store contracts.ArtifactStore, prediction config.Prediction) (contracts.ReferenceRepository, error) {
	descriptionTable, err := store.Open(ctx, prediction.DescriptionFileName)
	if err != nil {
		return nil, err
	}
	defer descriptionTable.Close()

	precautionTable, err := store.Open(ctx, prediction.PrecautionFileName)
	if err != nil {
		return nil, err
	}
	defer precautionTable.Close()

	references, err := reference.NewCSVReferenceRepository(descriptionTable, precautionTable)
	if err != nil {
		return nil, exceptions.ErrArtifactDecode(err, prediction.DescriptionFileName+", "+prediction.PrecautionFileName)
	}
	return references, nil
}
